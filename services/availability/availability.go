// Package availability resolves a provider's published availability into
// the effective schedule for a calendar date, and validates and merges the
// ranges a provider authors.
package availability

import (
	"errors"
	"fmt"
	"time"

	"coachly/models"
)

// Validation errors for authored ranges.
var (
	ErrInvertedRange      = errors.New("range start must be before end")
	ErrInvertedSessionLen = errors.New("min session length exceeds max")
	ErrOffGrid            = errors.New("value is not a positive multiple of the slot granularity")
)

// WeekdayOf returns the weekly-availability key for a "2006-01-02" date.
func WeekdayOf(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Weekday().String(), nil
}

// Resolve computes the effective schedule for a date. Authority order:
// unavailable dates beat custom availability, which beats the weekly
// recurring schedule. A custom entry overrides the weekly entry entirely;
// the two are never merged.
func Resolve(pa models.ProviderAvailability, date string) (models.DaySchedule, error) {
	if pa.IsUnavailable(date) {
		return models.DaySchedule{}, nil
	}
	if custom, ok := pa.Custom[date]; ok && len(custom.Ranges) > 0 {
		return custom, nil
	}
	weekday, err := WeekdayOf(date)
	if err != nil {
		return models.DaySchedule{}, err
	}
	return pa.Weekly[weekday], nil
}

// ValidateRange checks the authored-range invariants: start < end, min <=
// max, and both session lengths on the 15-minute grid. Sentinel ranges are
// legal as-is; they represent an unset slot.
func ValidateRange(r models.AvailabilityRange) error {
	if r.IsSentinel() {
		return nil
	}
	if !r.Start.Before(r.End) {
		return fmt.Errorf("%w: %s-%s", ErrInvertedRange, r.Start.Format(), r.End.Format())
	}
	if r.MinSessionLength > r.MaxSessionLength {
		return fmt.Errorf("%w: min %d, max %d", ErrInvertedSessionLen, r.MinSessionLength, r.MaxSessionLength)
	}
	for _, n := range []int{r.MinSessionLength, r.MaxSessionLength} {
		if n <= 0 || n%models.SlotGranularity != 0 {
			return fmt.Errorf("%w: %d", ErrOffGrid, n)
		}
	}
	return nil
}
