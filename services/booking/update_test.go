package booking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coachly/models"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func todPtr(t models.TimeOfDay) *models.TimeOfDay { return &t }

func TestApplyUpdateMergesNestedFields(t *testing.T) {
	b := newTestBooking(t)

	// Editing only the notes must not clobber technique or skill level.
	next, err := ApplyUpdate(b, Update{
		SessionDetails: &SessionDetailsUpdate{Notes: strPtr("bring own saddle")},
	}, 100, testNow)
	require.NoError(t, err)
	require.Equal(t, "dressage", next.SessionDetails.Technique)
	require.Equal(t, "beginner", next.SessionDetails.SkillLevel)
	require.Equal(t, "bring own saddle", next.SessionDetails.Notes)
}

func TestApplyUpdateRecomputesSlotEnd(t *testing.T) {
	b := newTestBooking(t)

	next, err := ApplyUpdate(b, Update{
		TimeSlot: &TimeSlotUpdate{Start: todPtr(ts("14:00"))},
	}, 100, testNow)
	require.NoError(t, err)
	require.Equal(t, ts("14:00"), next.TimeSlot.Start)
	require.Equal(t, ts("15:00"), next.TimeSlot.End)
	require.Equal(t, 60, next.TimeSlot.DurationMinutes)

	next, err = ApplyUpdate(next, Update{
		TimeSlot: &TimeSlotUpdate{DurationMinutes: intPtr(90)},
	}, 100, testNow)
	require.NoError(t, err)
	require.Equal(t, ts("15:30"), next.TimeSlot.End)
	require.InDelta(t, 150.0, next.PaymentInfo.TotalAmount, 1e-9)
}

func TestApplyUpdateRepricesWithCustomRate(t *testing.T) {
	b := newTestBooking(t)
	custom := 80.0

	next, err := ApplyUpdate(b, Update{CustomHourlyRate: &custom}, 100, testNow)
	require.NoError(t, err)
	require.InDelta(t, 80.0, next.PaymentInfo.TotalAmount, 1e-9)
	require.InDelta(t, 80.0, next.PaymentInfo.AmountDue, 1e-9)
}

func TestApplyUpdateRejectsTerminalRecord(t *testing.T) {
	b := newTestBooking(t)
	rejected, err := Reject(b, "no", testNow)
	require.NoError(t, err)

	_, err = ApplyUpdate(rejected, Update{FirstName: strPtr("Eve")}, 100, testNow)
	require.ErrorIs(t, err, ErrStaleRecord)
}

func TestBeginUpdateAndRollback(t *testing.T) {
	b := newTestBooking(t)

	tentative, err := BeginUpdate(b, Update{FirstName: strPtr("Grace")}, 100, testNow)
	require.NoError(t, err)
	require.Equal(t, "Grace", tentative.Next.FirstName)
	require.Equal(t, "Ada", tentative.Prev.FirstName)

	// Rollback returns the untouched snapshot.
	require.Equal(t, b, tentative.Rollback())
}
