package slots

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coachly/models"
)

func ts(s string) models.TimeOfDay { return models.MustTimeOfDay(s) }

func TestGenerateStartTimesFullDay(t *testing.T) {
	ranges := []models.AvailabilityRange{
		{ID: 0, Start: ts("09:00"), End: ts("17:00"), MinSessionLength: 30, MaxSessionLength: 120},
	}

	starts := GenerateStartTimes(ranges, DefaultInterval)
	require.Len(t, starts, 32)
	require.Equal(t, ts("09:00"), starts[0])
	require.Equal(t, ts("16:45"), starts[len(starts)-1])

	// Every start sits inside the range; the end itself is never offered.
	for _, s := range starts {
		require.True(t, !s.Before(ts("09:00")))
		require.True(t, s.Before(ts("17:00")))
	}
}

func TestGenerateStartTimesDedupesAndSorts(t *testing.T) {
	ranges := []models.AvailabilityRange{
		{ID: 1, Start: ts("13:00"), End: ts("14:00")},
		{ID: 0, Start: ts("09:00"), End: ts("10:00")},
		{ID: 2, Start: ts("09:30"), End: ts("10:30")},
	}

	starts := GenerateStartTimes(ranges, DefaultInterval)
	want := []models.TimeOfDay{
		ts("09:00"), ts("09:15"), ts("09:30"), ts("09:45"),
		ts("10:00"), ts("10:15"),
		ts("13:00"), ts("13:15"), ts("13:30"), ts("13:45"),
	}
	require.Equal(t, want, starts)
}

func TestGenerateStartTimesSkipsSentinelAndInverted(t *testing.T) {
	ranges := []models.AvailabilityRange{
		{},
		{ID: 1, Start: ts("12:00"), End: ts("12:00")},
		{ID: 2, Start: ts("14:00"), End: ts("13:00")},
	}
	require.Empty(t, GenerateStartTimes(ranges, DefaultInterval))
}

func TestValidEndTimes(t *testing.T) {
	ranges := []models.AvailabilityRange{
		{ID: 0, Start: ts("09:00"), End: ts("12:00"), MinSessionLength: 30, MaxSessionLength: 120},
	}

	options, err := ValidEndTimes(ts("10:00"), ranges, DurationBounds{Min: 30, Max: 120})
	require.NoError(t, err)
	want := []EndOption{
		{End: ts("10:30"), DurationMinutes: 30},
		{End: ts("10:45"), DurationMinutes: 45},
		{End: ts("11:00"), DurationMinutes: 60},
		{End: ts("11:15"), DurationMinutes: 75},
		{End: ts("11:30"), DurationMinutes: 90},
		{End: ts("11:45"), DurationMinutes: 105},
		{End: ts("12:00"), DurationMinutes: 120},
	}
	require.Equal(t, want, options)
}

func TestValidEndTimesClampedByRangeEnd(t *testing.T) {
	ranges := []models.AvailabilityRange{
		{ID: 0, Start: ts("09:00"), End: ts("12:00"), MinSessionLength: 30, MaxSessionLength: 120},
	}

	// From 11:30 only a 30-minute session still fits.
	options, err := ValidEndTimes(ts("11:30"), ranges, DurationBounds{Min: 30, Max: 120})
	require.NoError(t, err)
	require.Equal(t, []EndOption{{End: ts("12:00"), DurationMinutes: 30}}, options)

	// From 11:45 nothing fits; that is an empty result, not an error.
	options, err = ValidEndTimes(ts("11:45"), ranges, DurationBounds{Min: 30, Max: 120})
	require.NoError(t, err)
	require.Empty(t, options)
}

func TestValidEndTimesErrors(t *testing.T) {
	ranges := []models.AvailabilityRange{
		{ID: 0, Start: ts("09:00"), End: ts("12:00"), MinSessionLength: 30, MaxSessionLength: 120},
	}

	_, err := ValidEndTimes(ts("13:00"), ranges, DurationBounds{Min: 30, Max: 120})
	require.ErrorIs(t, err, ErrNoContainingRange)

	// The range end is exclusive for starts.
	_, err = ValidEndTimes(ts("12:00"), ranges, DurationBounds{Min: 30, Max: 120})
	require.ErrorIs(t, err, ErrNoContainingRange)

	_, err = ValidEndTimes(ts("10:00"), ranges, DurationBounds{Min: 120, Max: 30})
	require.ErrorIs(t, err, ErrInvalidDurationBounds)
}

func TestEndTimesForStartUsesRangeBounds(t *testing.T) {
	ranges := []models.AvailabilityRange{
		{ID: 0, Start: ts("09:00"), End: ts("12:00"), MinSessionLength: 60, MaxSessionLength: 90},
	}

	options, err := EndTimesForStart(ts("09:00"), ranges)
	require.NoError(t, err)
	want := []EndOption{
		{End: ts("10:00"), DurationMinutes: 60},
		{End: ts("10:15"), DurationMinutes: 75},
		{End: ts("10:30"), DurationMinutes: 90},
	}
	require.Equal(t, want, options)
}

func TestSelectedDuration(t *testing.T) {
	require.Equal(t, 90, SelectedDuration(ts("09:00"), ts("10:30")))
	require.Equal(t, 0, SelectedDuration(ts("10:30"), ts("10:30")))
	require.Equal(t, 0, SelectedDuration(ts("10:30"), ts("09:00")))
}
