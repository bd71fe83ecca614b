package booking

import (
	"context"
	"time"

	bookingRepo "coachly/database/repository/booking"
	providerRepo "coachly/database/repository/provider"
	"coachly/models"
	"coachly/services/events"

	"go.uber.org/zap"
)

// BookingService orchestrates the booking lifecycle against the durable
// store: it computes next record states with the pure transition functions
// and persists them one record at a time.
type BookingService interface {
	Create(ctx context.Context, input CreateInput) (*models.Booking, error)
	Get(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	Update(ctx context.Context, bookingID string, upd Update) (*models.Booking, error)
	Confirm(ctx context.Context, bookingID string) (*models.Booking, error)
	Reject(ctx context.Context, bookingID, reason string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID, reason string) (*models.Booking, error)
	RecordPayment(ctx context.Context, bookingID string, amount float64) (*models.Booking, error)
	SubmitSelections(ctx context.Context, client ClientInfo, blocks []models.SelectionBlock) []SubmissionResult
}

// CompletionScheduler defers the confirmed -> completed transition to the
// session's end time.
type CompletionScheduler interface {
	ScheduleCompletion(bookingID string, fireAt time.Time) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	Bus          *events.Bus
	Completions  CompletionScheduler
	Logger       *zap.Logger
}
