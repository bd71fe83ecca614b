package availability

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coachly/models"
)

func ts(s string) models.TimeOfDay { return models.MustTimeOfDay(s) }

func mkRange(id int, start, end string, min, max int) models.AvailabilityRange {
	return models.AvailabilityRange{
		ID:               id,
		Start:            ts(start),
		End:              ts(end),
		MinSessionLength: min,
		MaxSessionLength: max,
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	day, err := WeekdayOf("2026-09-01")
	require.NoError(t, err)
	require.Equal(t, models.Tuesday, day)

	_, err = WeekdayOf("not-a-date")
	require.Error(t, err)
}

func TestResolveAuthorityOrder(t *testing.T) {
	weekly := models.NewWeeklyAvailability()
	weekly[models.Tuesday] = models.DaySchedule{Ranges: []models.AvailabilityRange{
		mkRange(0, "09:00", "17:00", 30, 120),
	}}

	pa := models.ProviderAvailability{
		ProviderID: "prov-1",
		Weekly:     weekly,
		Custom: models.CustomAvailability{
			"2026-09-01": {Ranges: []models.AvailabilityRange{
				mkRange(0, "13:00", "15:00", 30, 60),
			}},
		},
		UnavailableDates: []string{"2026-09-08"},
	}

	// Custom overrides weekly entirely on its date.
	day, err := Resolve(pa, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, day.Ranges, 1)
	require.Equal(t, ts("13:00"), day.Ranges[0].Start)

	// Unavailable beats both, even though the weekday has ranges.
	day, err = Resolve(pa, "2026-09-08")
	require.NoError(t, err)
	require.Empty(t, day.Ranges)

	// Plain Tuesday falls through to the weekly schedule.
	day, err = Resolve(pa, "2026-09-15")
	require.NoError(t, err)
	require.Len(t, day.Ranges, 1)
	require.Equal(t, ts("09:00"), day.Ranges[0].Start)

	_, err = Resolve(pa, "bogus")
	require.Error(t, err)
}

func TestResolveEmptyCustomDoesNotOverride(t *testing.T) {
	weekly := models.NewWeeklyAvailability()
	weekly[models.Tuesday] = models.DaySchedule{Ranges: []models.AvailabilityRange{
		mkRange(0, "09:00", "17:00", 30, 120),
	}}
	pa := models.ProviderAvailability{
		Weekly: weekly,
		Custom: models.CustomAvailability{"2026-09-01": {}},
	}

	day, err := Resolve(pa, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, day.Ranges, 1)
}

func TestValidateRange(t *testing.T) {
	cases := []struct {
		name    string
		r       models.AvailabilityRange
		wantErr error
	}{
		{name: "valid", r: mkRange(0, "09:00", "17:00", 30, 120)},
		{name: "sentinel is legal", r: models.AvailabilityRange{}},
		{name: "inverted", r: mkRange(0, "17:00", "09:00", 30, 120), wantErr: ErrInvertedRange},
		{name: "zero width", r: mkRange(0, "09:00", "09:00", 30, 120), wantErr: ErrInvertedRange},
		{name: "min over max", r: mkRange(0, "09:00", "17:00", 120, 30), wantErr: ErrInvertedSessionLen},
		{name: "off grid min", r: mkRange(0, "09:00", "17:00", 20, 60), wantErr: ErrOffGrid},
		{name: "zero max", r: mkRange(0, "09:00", "17:00", 0, 0), wantErr: ErrOffGrid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRange(tc.r)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
