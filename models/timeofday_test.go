package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "9:00", want: 540},
		{in: "23:59", want: 1439},
		{in: "14:30", want: 870},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "", wantErr: true},
		{in: "12:5", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrMalformedTime, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestTimeOfDayFormat(t *testing.T) {
	require.Equal(t, "00:00", TimeOfDay(0).Format())
	require.Equal(t, "09:05", MustTimeOfDay("9:05").Format())
	require.Equal(t, "23:59", TimeOfDay(1439).Format())
}

func TestTimeOfDayFormat12Hour(t *testing.T) {
	require.Equal(t, "12:00 AM", MustTimeOfDay("00:00").Format12Hour())
	require.Equal(t, "9:15 AM", MustTimeOfDay("09:15").Format12Hour())
	require.Equal(t, "12:30 PM", MustTimeOfDay("12:30").Format12Hour())
	require.Equal(t, "2:45 PM", MustTimeOfDay("14:45").Format12Hour())
}

func TestTimeOfDayArithmetic(t *testing.T) {
	start := MustTimeOfDay("09:00")
	require.Equal(t, MustTimeOfDay("10:30"), start.AddMinutes(90))
	require.Equal(t, 90, MustTimeOfDay("10:30").DiffMinutes(start))
	require.Equal(t, -90, start.DiffMinutes(MustTimeOfDay("10:30")))
	require.True(t, start.Before(MustTimeOfDay("09:01")))
	require.True(t, MustTimeOfDay("09:01").After(start))
	require.False(t, start.Before(start))
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(MustTimeOfDay("14:30"))
	require.NoError(t, err)
	require.Equal(t, `"14:30"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"08:15"`), &parsed))
	require.Equal(t, MustTimeOfDay("08:15"), parsed)

	require.Error(t, json.Unmarshal([]byte(`"25:00"`), &parsed))
}
