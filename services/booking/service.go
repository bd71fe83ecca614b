package booking

import (
	"context"
	"fmt"
	"time"

	"coachly/models"
	"coachly/services/events"

	"go.uber.org/zap"
)

// ClientInfo carries the client identity attached to every booking
// produced from a selection submission.
type ClientInfo struct {
	ClientID  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// SubmissionResult is the per-item outcome of submitting one selection
// block. Each block is an independent booking; partial failure is normal
// and reported per item, never as an all-or-nothing unit.
type SubmissionResult struct {
	Block   models.SelectionBlock `json:"block"`
	Booking *models.Booking       `json:"booking,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// Create persists a new pending booking priced at the provider's current
// rate. Caller-supplied status is ignored by construction (CreateInput has
// none): creation always yields pending.
func (s *DefaultBookingService) Create(ctx context.Context, input CreateInput) (*models.Booking, error) {
	provider, err := s.ProviderRepo.GetByID(ctx, input.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider for booking: %w", err)
	}

	b := Create(input, provider.HourlyRate, time.Now())
	if err := s.Repo.Create(ctx, &b); err != nil {
		return nil, err
	}

	s.publish(events.TypeBookingCreated, b)
	return &b, nil
}

// Get loads a booking, normalizing an absent status to pending.
func (s *DefaultBookingService) Get(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	b.Status = b.Status.Normalize()
	return b, nil
}

// ListByProvider returns a provider's bookings, statuses normalized.
func (s *DefaultBookingService) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].Status = bookings[i].Status.Normalize()
	}
	return bookings, nil
}

// ListByProviderAndDate returns a provider's bookings on one date,
// statuses normalized.
func (s *DefaultBookingService) ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].Status = bookings[i].Status.Normalize()
	}
	return bookings, nil
}

// Update applies a partial edit optimistically: the tentative record is
// computed against a snapshot, and a failed durable write reverts to the
// snapshot so the caller can retry or surface the pre-edit state.
func (s *DefaultBookingService) Update(ctx context.Context, bookingID string, upd Update) (*models.Booking, error) {
	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	provider, err := s.ProviderRepo.GetByID(ctx, current.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider for booking %s: %w", bookingID, err)
	}

	tentative, err := BeginUpdate(*current, upd, provider.HourlyRate, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, &tentative.Next); err != nil {
		rolledBack := tentative.Rollback()
		s.Logger.Warn("booking update write failed, rolled back",
			zap.String("bookingId", bookingID), zap.Error(err))
		return &rolledBack, fmt.Errorf("failed to persist update for booking %s: %w", bookingID, err)
	}
	return &tentative.Next, nil
}

// Confirm transitions pending -> confirmed and schedules the time-driven
// completion at the session's end.
func (s *DefaultBookingService) Confirm(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.transition(ctx, bookingID, func(b models.Booking, now time.Time) (models.Booking, error) {
		return Confirm(b, now)
	})
	if err != nil {
		return nil, err
	}

	if s.Completions != nil {
		if fireAt, ferr := sessionEnd(b.Date, b.TimeSlot.End); ferr == nil {
			if serr := s.Completions.ScheduleCompletion(b.ID, fireAt); serr != nil {
				s.Logger.Warn("failed to schedule completion",
					zap.String("bookingId", b.ID), zap.Error(serr))
			}
		}
	}

	s.publish(events.TypeBookingConfirmed, *b)
	return b, nil
}

// Reject transitions pending -> rejected with the given reason.
func (s *DefaultBookingService) Reject(ctx context.Context, bookingID, reason string) (*models.Booking, error) {
	b, err := s.transition(ctx, bookingID, func(b models.Booking, now time.Time) (models.Booking, error) {
		return Reject(b, reason, now)
	})
	if err != nil {
		return nil, err
	}
	s.publish(events.TypeBookingRejected, *b)
	return b, nil
}

// Cancel transitions confirmed -> cancelled with the given reason.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, reason string) (*models.Booking, error) {
	b, err := s.transition(ctx, bookingID, func(b models.Booking, now time.Time) (models.Booking, error) {
		return Cancel(b, reason, now)
	})
	if err != nil {
		return nil, err
	}
	s.publish(events.TypeBookingCancelled, *b)
	return b, nil
}

// RecordPayment adds a received amount and persists the recomputed ledger.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, bookingID string, amount float64) (*models.Booking, error) {
	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	provider, err := s.ProviderRepo.GetByID(ctx, current.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider for booking %s: %w", bookingID, err)
	}

	next, err := RecordPayment(*current, amount, provider.HourlyRate, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to persist payment for booking %s: %w", bookingID, err)
	}
	return &next, nil
}

// SubmitSelections turns N selection blocks into N independent bookings.
// The operations are order-insensitive; each result carries its own
// booking or error so the caller can retry or roll back items
// individually.
func (s *DefaultBookingService) SubmitSelections(ctx context.Context, client ClientInfo, blocks []models.SelectionBlock) []SubmissionResult {
	results := make([]SubmissionResult, 0, len(blocks))
	for _, block := range blocks {
		input := CreateInput{
			ProviderID:      block.ProviderID,
			ClientID:        client.ClientID,
			FirstName:       client.FirstName,
			LastName:        client.LastName,
			Email:           client.Email,
			Phone:           client.Phone,
			Date:            block.Date,
			StartTime:       block.StartTime,
			DurationMinutes: block.DurationMinutes,
			Technique:       block.Technique,
			SkillLevel:      block.SkillLevel,
			Notes:           block.Notes,
		}
		b, err := s.Create(ctx, input)
		if err != nil {
			results = append(results, SubmissionResult{Block: block, Error: err.Error()})
			continue
		}
		results = append(results, SubmissionResult{Block: block, Booking: b})
	}
	return results
}

func (s *DefaultBookingService) transition(ctx context.Context, bookingID string, fn func(models.Booking, time.Time) (models.Booking, error)) (*models.Booking, error) {
	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	next, err := fn(*current, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to persist transition for booking %s: %w", bookingID, err)
	}
	return &next, nil
}

func (s *DefaultBookingService) publish(eventType string, b models.Booking) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(events.Event{Type: eventType, BookingID: b.ID, ProviderID: b.ProviderID})
}

// sessionEnd computes the absolute end of the booked session in local time.
func sessionEnd(date string, end models.TimeOfDay) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(end) * time.Minute), nil
}
