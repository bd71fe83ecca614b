package availability

import (
	"sort"

	"coachly/models"
)

// rangesOverlap reports whether two real ranges intersect. Half-open
// intervals: [a.Start,a.End) overlaps [b.Start,b.End) iff
// a.Start < b.End && b.Start < a.End.
func rangesOverlap(a, b models.AvailabilityRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// sortedReal returns the day's non-sentinel ranges sorted by start time.
func sortedReal(day models.DaySchedule) []models.AvailabilityRange {
	real := day.RealRanges()
	sort.Slice(real, func(i, j int) bool {
		return real[i].Start.Before(real[j].Start)
	})
	return real
}

// HasOverlaps reports whether any two real ranges in the day intersect.
// Overlap is a warning condition that requires an explicit merge; it is
// never resolved silently.
func HasOverlaps(day models.DaySchedule) bool {
	real := sortedReal(day)
	for i := 1; i < len(real); i++ {
		if rangesOverlap(real[i-1], real[i]) {
			return true
		}
	}
	return false
}
