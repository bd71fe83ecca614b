package booking

import (
	"time"

	"coachly/models"
)

// TimeSlotUpdate changes the reserved window. End and DurationMinutes are
// derived from Start and DurationMinutes; callers never set End directly.
type TimeSlotUpdate struct {
	Start           *models.TimeOfDay `json:"start,omitempty"`
	DurationMinutes *int              `json:"durationMinutes,omitempty"`
}

// SessionDetailsUpdate changes what the session covers. Fields left nil
// keep their current values, so editing only Notes never clobbers
// Technique or SkillLevel.
type SessionDetailsUpdate struct {
	Technique  *string `json:"technique,omitempty"`
	SkillLevel *string `json:"skillLevel,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Update is a partial edit of a booking. Nested objects merge
// field-by-field; the payment ledger is always recomputed, never patched.
type Update struct {
	FirstName        *string               `json:"firstName,omitempty"`
	LastName         *string               `json:"lastName,omitempty"`
	Email            *string               `json:"email,omitempty"`
	Phone            *string               `json:"phone,omitempty"`
	Date             *string               `json:"date,omitempty"`
	TimeSlot         *TimeSlotUpdate       `json:"timeSlot,omitempty"`
	SessionDetails   *SessionDetailsUpdate `json:"sessionDetails,omitempty"`
	CustomHourlyRate *float64              `json:"customHourlyRate,omitempty"`
}

// ApplyUpdate merges a partial edit into the booking and reprices it.
// Edits against terminal records fail with ErrStaleRecord.
func ApplyUpdate(b models.Booking, upd Update, providerRate float64, now time.Time) (models.Booking, error) {
	if b.Status.IsTerminal() {
		return b, ErrStaleRecord
	}

	if upd.FirstName != nil {
		b.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		b.LastName = *upd.LastName
	}
	if upd.Email != nil {
		b.Email = *upd.Email
	}
	if upd.Phone != nil {
		b.Phone = *upd.Phone
	}
	if upd.Date != nil {
		b.Date = *upd.Date
	}
	if upd.TimeSlot != nil {
		if upd.TimeSlot.Start != nil {
			b.TimeSlot.Start = *upd.TimeSlot.Start
		}
		if upd.TimeSlot.DurationMinutes != nil {
			b.TimeSlot.DurationMinutes = *upd.TimeSlot.DurationMinutes
		}
		b.TimeSlot.End = b.TimeSlot.Start.AddMinutes(b.TimeSlot.DurationMinutes)
	}
	if upd.SessionDetails != nil {
		if upd.SessionDetails.Technique != nil {
			b.SessionDetails.Technique = *upd.SessionDetails.Technique
		}
		if upd.SessionDetails.SkillLevel != nil {
			b.SessionDetails.SkillLevel = *upd.SessionDetails.SkillLevel
		}
		if upd.SessionDetails.Notes != nil {
			b.SessionDetails.Notes = *upd.SessionDetails.Notes
		}
	}
	if upd.CustomHourlyRate != nil {
		b.CustomHourlyRate = upd.CustomHourlyRate
	}

	b = Reprice(b, providerRate, now)
	b.UpdatedAt = now
	return b, nil
}

// Tentative is the apply half of the optimistic update pattern: the
// snapshot is captured before the tentative state, so a failed durable
// write can revert to the last known-good record.
type Tentative struct {
	Prev models.Booking
	Next models.Booking
}

// BeginUpdate captures a snapshot and computes the tentative next state.
func BeginUpdate(b models.Booking, upd Update, providerRate float64, now time.Time) (Tentative, error) {
	next, err := ApplyUpdate(b, upd, providerRate, now)
	if err != nil {
		return Tentative{}, err
	}
	return Tentative{Prev: b, Next: next}, nil
}

// Rollback returns the pre-update snapshot.
func (t Tentative) Rollback() models.Booking {
	return t.Prev
}
