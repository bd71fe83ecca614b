// Package slots turns a day's effective availability ranges into bookable
// start times and, for a chosen start, the valid end-time options bounded
// by the range's session-length limits.
package slots

import (
	"errors"
	"fmt"
	"sort"

	"coachly/models"
)

// DefaultInterval is the step between candidate start times, in minutes.
const DefaultInterval = models.SlotGranularity

var (
	// ErrNoContainingRange means the requested start time does not fall
	// inside any availability range. Callers treat it as "no valid
	// options", not a fault surfaced to the end user.
	ErrNoContainingRange = errors.New("start time is not inside any availability range")

	// ErrInvalidDurationBounds means min exceeds max.
	ErrInvalidDurationBounds = errors.New("invalid duration bounds")
)

// DurationBounds limit the session lengths offered for a chosen start.
type DurationBounds struct {
	Min int // minutes
	Max int // minutes
}

// EndOption is one valid (end time, duration) pair for a chosen start.
type EndOption struct {
	End             models.TimeOfDay `json:"end"`
	DurationMinutes int              `json:"durationMinutes"`
}

// GenerateStartTimes enumerates candidate start times: for each real range,
// step from start to end (exclusive) in interval-minute increments, then
// deduplicate and sort ascending. Ranges with start == end yield nothing.
// An interval <= 0 falls back to DefaultInterval.
func GenerateStartTimes(ranges []models.AvailabilityRange, interval int) []models.TimeOfDay {
	if interval <= 0 {
		interval = DefaultInterval
	}

	seen := make(map[string]struct{})
	var starts []models.TimeOfDay
	for _, r := range ranges {
		if r.IsSentinel() || !r.Start.Before(r.End) {
			continue
		}
		for t := r.Start; t.Before(r.End); t = t.AddMinutes(interval) {
			key := t.Format()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			starts = append(starts, t)
		}
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	return starts
}

// ValidEndTimes finds the range containing start (r.Start <= start < r.End)
// and offers every duration from bounds.Min to bounds.Max in 15-minute
// steps whose end stays within that range. Output is ordered by increasing
// duration.
func ValidEndTimes(start models.TimeOfDay, ranges []models.AvailabilityRange, bounds DurationBounds) ([]EndOption, error) {
	if bounds.Min > bounds.Max {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrInvalidDurationBounds, bounds.Min, bounds.Max)
	}

	containing, err := containingRange(start, ranges)
	if err != nil {
		return nil, err
	}

	var options []EndOption
	for d := bounds.Min; d <= bounds.Max; d += models.SlotGranularity {
		end := start.AddMinutes(d)
		if end.After(containing.End) {
			break
		}
		options = append(options, EndOption{End: end, DurationMinutes: d})
	}
	return options, nil
}

// EndTimesForStart offers end options bounded by the containing range's
// own session-length limits.
func EndTimesForStart(start models.TimeOfDay, ranges []models.AvailabilityRange) ([]EndOption, error) {
	containing, err := containingRange(start, ranges)
	if err != nil {
		return nil, err
	}
	return ValidEndTimes(start, ranges, DurationBounds{
		Min: containing.MinSessionLength,
		Max: containing.MaxSessionLength,
	})
}

// containingRange returns the unique real range with r.Start <= t < r.End.
func containingRange(t models.TimeOfDay, ranges []models.AvailabilityRange) (models.AvailabilityRange, error) {
	for _, r := range ranges {
		if r.IsSentinel() {
			continue
		}
		if !t.Before(r.Start) && t.Before(r.End) {
			return r, nil
		}
	}
	return models.AvailabilityRange{}, fmt.Errorf("%w: %s", ErrNoContainingRange, t.Format())
}

// SelectedDuration returns end - start in minutes, or 0 when the pair is
// not a positive interval. The engine never substitutes a default duration.
func SelectedDuration(start, end models.TimeOfDay) int {
	d := end.DiffMinutes(start)
	if d <= 0 {
		return 0
	}
	return d
}
