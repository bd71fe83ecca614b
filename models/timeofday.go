package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDay is a clock time stored as minutes from midnight. Keeping it an
// integer makes slot stepping and duration math plain arithmetic; the
// "HH:mm" form exists only at the serialization boundary.
type TimeOfDay int

// ErrMalformedTime means a string was not a valid 24-hour "HH:mm" time.
var ErrMalformedTime = errors.New("malformed time of day")

var timeOfDayPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ParseTimeOfDay parses a 24-hour "HH:mm" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay parses s or panics. For fixtures and constants only.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Format renders the canonical zero-padded 24-hour "HH:mm" form.
func (t TimeOfDay) Format() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12Hour renders a display form like "2:30 PM".
func (t TimeOfDay) Format12Hour() string {
	hour := t.Hour()
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), suffix)
}

// AddMinutes returns the time shifted forward by m minutes.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

// DiffMinutes returns t - other in minutes, signed.
func (t TimeOfDay) DiffMinutes(other TimeOfDay) int {
	return int(t) - int(other)
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool { return t > other }

// MarshalJSON renders the time as a quoted "HH:mm" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format())), nil
}

// UnmarshalJSON accepts a quoted "HH:mm" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
