package booking

import (
	"time"

	"coachly/models"
)

// EffectiveHourlyRate picks the booking's custom rate when present, else
// the provider's current rate.
func EffectiveHourlyRate(customRate *float64, providerRate float64) float64 {
	if customRate != nil {
		return *customRate
	}
	return providerRate
}

// TotalAmount prices a session: rate * duration / 60.
func TotalAmount(hourlyRate float64, durationMinutes int) float64 {
	return hourlyRate * float64(durationMinutes) / 60
}

// recalcPayment rebuilds the derived payment fields from the authoritative
// inputs. TotalAmount and AmountDue are computed here on every write and
// never accepted from callers, so the ledger cannot drift:
// amountDue = max(totalAmount - amountPaid, 0).
func recalcPayment(p models.PaymentInfo, totalAmount float64, now time.Time) models.PaymentInfo {
	p.TotalAmount = totalAmount
	due := totalAmount - p.AmountPaid
	if due < 0 {
		due = 0
	}
	p.AmountDue = due

	switch {
	case p.AmountPaid <= 0:
		p.Status = models.PaymentUnpaid
	case p.AmountDue > 0:
		p.Status = models.PaymentPartial
	default:
		p.Status = models.PaymentPaid
	}
	p.LastUpdated = now
	return p
}

// Reprice recomputes the booking's payment ledger from its current rate
// and duration.
func Reprice(b models.Booking, providerRate float64, now time.Time) models.Booking {
	rate := EffectiveHourlyRate(b.CustomHourlyRate, providerRate)
	total := TotalAmount(rate, b.TimeSlot.DurationMinutes)
	b.PaymentInfo = recalcPayment(b.PaymentInfo, total, now)
	return b
}
