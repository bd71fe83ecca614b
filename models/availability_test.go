package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDayScheduleAddRangeAssignsArenaIDs(t *testing.T) {
	var day DaySchedule

	first := day.AddRange(AvailabilityRange{Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("12:00")})
	second := day.AddRange(AvailabilityRange{Start: MustTimeOfDay("13:00"), End: MustTimeOfDay("17:00")})

	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
	require.Equal(t, 2, day.NextRangeID)
	require.Equal(t, 0, day.Ranges[0].ID)
	require.Equal(t, 1, day.Ranges[1].ID)
}

func TestSentinelRange(t *testing.T) {
	require.True(t, AvailabilityRange{}.IsSentinel())
	require.False(t, AvailabilityRange{End: MustTimeOfDay("00:01")}.IsSentinel())

	day := DaySchedule{Ranges: []AvailabilityRange{
		{},
		{Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("12:00")},
	}}
	real := day.RealRanges()
	require.Len(t, real, 1)
	require.Equal(t, MustTimeOfDay("09:00"), real[0].Start)
}

func TestNewWeeklyAvailabilityHasAllWeekdays(t *testing.T) {
	weekly := NewWeeklyAvailability()
	require.Len(t, weekly, 7)
	for _, day := range Weekdays {
		_, ok := weekly[day]
		require.True(t, ok, "missing %s", day)
	}
}

func TestProviderAvailabilityIsUnavailable(t *testing.T) {
	pa := ProviderAvailability{UnavailableDates: []string{"2026-09-01", "2026-09-02"}}
	require.True(t, pa.IsUnavailable("2026-09-01"))
	require.False(t, pa.IsUnavailable("2026-09-03"))
}
