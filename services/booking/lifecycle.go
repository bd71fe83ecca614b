// Package booking owns the booking record's state machine and payment
// ledger. Transitions are pure functions that compute the next record
// state; durable writes happen in the repository layer, one writer per
// booking id.
package booking

import (
	"time"

	"github.com/google/uuid"

	"coachly/models"
)

// CreateInput is the caller-supplied data for a new booking. Any status a
// caller suggests is ignored: creation is the single authority that sets
// status, and it always sets pending. Manual entry flows that want a
// confirmed record must create first, then transition.
type CreateInput struct {
	ProviderID       string
	ClientID         string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Date             string // "2006-01-02"
	StartTime        models.TimeOfDay
	DurationMinutes  int
	Technique        string
	SkillLevel       string
	Notes            string
	CustomHourlyRate *float64
}

// Create computes a new pending booking record, priced from the effective
// hourly rate.
func Create(in CreateInput, providerRate float64, now time.Time) models.Booking {
	b := models.Booking{
		ID:            uuid.New().String(),
		BookingNumber: BookingNumber(now),
		ProviderID:    in.ProviderID,
		ClientID:      in.ClientID,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Phone:         in.Phone,
		Date:          in.Date,
		TimeSlot: models.BookingTimeSlot{
			Start:           in.StartTime,
			End:             in.StartTime.AddMinutes(in.DurationMinutes),
			DurationMinutes: in.DurationMinutes,
		},
		SessionDetails: models.SessionDetails{
			Technique:  in.Technique,
			SkillLevel: in.SkillLevel,
			Notes:      in.Notes,
		},
		Status:           models.StatusPending,
		CustomHourlyRate: in.CustomHourlyRate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return Reprice(b, providerRate, now)
}

// Confirm moves a pending booking to confirmed.
func Confirm(b models.Booking, now time.Time) (models.Booking, error) {
	if err := checkTransition(b, models.StatusPending, models.StatusConfirmed); err != nil {
		return b, err
	}
	b.Status = models.StatusConfirmed
	b.ConfirmedAt = &now
	b.UpdatedAt = now
	return b, nil
}

// Reject moves a pending booking to rejected, recording the reason.
func Reject(b models.Booking, reason string, now time.Time) (models.Booking, error) {
	if reason == "" {
		return b, ErrMissingReason
	}
	if err := checkTransition(b, models.StatusPending, models.StatusRejected); err != nil {
		return b, err
	}
	b.Status = models.StatusRejected
	b.RejectionReason = reason
	b.RejectedAt = &now
	b.UpdatedAt = now
	return b, nil
}

// Cancel moves a confirmed booking to cancelled, recording the reason.
func Cancel(b models.Booking, reason string, now time.Time) (models.Booking, error) {
	if reason == "" {
		return b, ErrMissingReason
	}
	if err := checkTransition(b, models.StatusConfirmed, models.StatusCancelled); err != nil {
		return b, err
	}
	b.Status = models.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	b.UpdatedAt = now
	return b, nil
}

// Complete moves a confirmed booking to completed. This is the time-driven
// transition applied by the completion worker once the session has ended.
func Complete(b models.Booking, now time.Time) (models.Booking, error) {
	if err := checkTransition(b, models.StatusConfirmed, models.StatusCompleted); err != nil {
		return b, err
	}
	b.Status = models.StatusCompleted
	b.UpdatedAt = now
	return b, nil
}

// RecordPayment adds a received amount to the ledger and recomputes the
// derived fields. Allowed while the booking is not terminal.
func RecordPayment(b models.Booking, amount float64, providerRate float64, now time.Time) (models.Booking, error) {
	if b.Status.IsTerminal() {
		return b, ErrStaleRecord
	}
	b.PaymentInfo.AmountPaid += amount
	b = Reprice(b, providerRate, now)
	b.UpdatedAt = now
	return b, nil
}

func checkTransition(b models.Booking, from, to models.BookingStatus) error {
	status := b.Status.Normalize()
	if status.IsTerminal() {
		return ErrStaleRecord
	}
	if status != from {
		return &TransitionError{From: status, To: to}
	}
	return nil
}
