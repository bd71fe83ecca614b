package availability

import "coachly/models"

// Merge collapses overlapping real ranges with a left-to-right sweep: when
// the next range starts before the current accumulator ends, it is absorbed
// (end = max of ends, min session length = min of mins, max session length
// = max of maxes) and its range ID is discarded. Sentinel ranges are left
// untouched and keep their IDs. Merge is an explicit user action; the
// result replaces the day's real ranges. Idempotent.
func Merge(day models.DaySchedule) models.DaySchedule {
	real := sortedReal(day)

	var merged []models.AvailabilityRange
	for _, next := range real {
		if len(merged) == 0 {
			merged = append(merged, next)
			continue
		}
		current := &merged[len(merged)-1]
		if next.Start.Before(current.End) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			if next.MinSessionLength < current.MinSessionLength {
				current.MinSessionLength = next.MinSessionLength
			}
			if next.MaxSessionLength > current.MaxSessionLength {
				current.MaxSessionLength = next.MaxSessionLength
			}
			continue
		}
		merged = append(merged, next)
	}

	out := models.DaySchedule{NextRangeID: day.NextRangeID}
	for _, r := range day.Ranges {
		if r.IsSentinel() {
			out.Ranges = append(out.Ranges, r)
		}
	}
	out.Ranges = append(out.Ranges, merged...)
	return out
}
