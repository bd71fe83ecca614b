package bookingRepo

import (
	"context"

	"coachly/models"
)

// BookingRepository is the durable store for booking records. The engine
// assumes single-writer-per-record; callers apply updates atomically per
// booking id.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, bookingID string) error
	GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
}
