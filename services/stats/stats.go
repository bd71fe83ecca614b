// Package stats derives a provider's dashboard figures from their booking
// set. It is pure: callers supply the bookings, the provider's current
// rate, and "now".
package stats

import (
	"time"

	"coachly/models"
	"coachly/services/booking"
)

// Compute derives today/next-7-days counts and projected earnings.
// todayBookings counts records dated today; weekBookings counts records
// dated within [today, today+7 days] inclusive; projected earnings sum
// rate * duration / 60 over the week's bookings, using each booking's own
// rate override when present, else the provider's current rate. Records
// with an absent status are treated as pending throughout.
func Compute(bookings []models.Booking, providerRate float64, now time.Time) models.ProviderStats {
	today := now.Format("2006-01-02")
	weekEnd := now.AddDate(0, 0, 7).Format("2006-01-02")

	var s models.ProviderStats
	for _, b := range bookings {
		if b.Status.Normalize() == models.StatusPending {
			s.PendingBookings++
		}

		if b.Date == today {
			s.TodayBookings++
		}
		if b.Date >= today && b.Date <= weekEnd {
			s.WeekBookings++
			rate := booking.EffectiveHourlyRate(b.CustomHourlyRate, providerRate)
			s.ProjectedEarnings += booking.TotalAmount(rate, b.TimeSlot.DurationMinutes)
		}
	}
	return s
}
