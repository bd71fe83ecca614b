package selection

import (
	"sort"

	"coachly/models"
)

// FallbackHourlyRate prices a selection when neither a custom rate nor a
// provider rate is known. It is deliberately non-zero so a missing rate
// can never silently price a session at 0.
const FallbackHourlyRate = 50.0

// Rate is the pricing input for one provider. Custom, when set, overrides
// Hourly; an Hourly of 0 means the provider rate is unknown.
type Rate struct {
	Custom *float64
	Hourly float64
}

// Resolve returns the effective hourly rate for this provider.
func (r Rate) Resolve() float64 {
	if r.Custom != nil {
		return *r.Custom
	}
	if r.Hourly > 0 {
		return r.Hourly
	}
	return FallbackHourlyRate
}

// Summarize prices every selected block and groups the results by date
// (ascending) then start time (ascending), with per-provider subtotals and
// a grand total. rates maps provider ID to that provider's pricing input;
// providers absent from the map price at FallbackHourlyRate.
func (a *Aggregator) Summarize(rates map[string]Rate) models.SelectionSummary {
	summary := models.SelectionSummary{}

	dates := make([]string, 0, len(a.Blocks))
	for date := range a.Blocks {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	subtotals := make(map[string]*models.ProviderSubtotal)
	var providerOrder []string

	for _, date := range dates {
		blocks := append([]models.SelectionBlock(nil), a.Blocks[date]...)
		sort.Slice(blocks, func(i, j int) bool {
			return blocks[i].StartTime.Before(blocks[j].StartTime)
		})

		group := models.DateSummary{Date: date}
		for _, b := range blocks {
			rate := rates[b.ProviderID].Resolve()
			price := rate * float64(b.DurationMinutes) / 60

			group.Sessions = append(group.Sessions, models.SessionSummary{
				Date:            b.Date,
				StartTime:       b.StartTime,
				EndTime:         b.StartTime.AddMinutes(b.DurationMinutes),
				DurationMinutes: b.DurationMinutes,
				ProviderID:      b.ProviderID,
				Technique:       b.Technique,
				SkillLevel:      b.SkillLevel,
				Notes:           b.Notes,
				HourlyRate:      rate,
				Price:           price,
			})

			sub, ok := subtotals[b.ProviderID]
			if !ok {
				sub = &models.ProviderSubtotal{ProviderID: b.ProviderID}
				subtotals[b.ProviderID] = sub
				providerOrder = append(providerOrder, b.ProviderID)
			}
			sub.SlotCount++
			sub.Total += price
			summary.GrandTotal += price
		}
		summary.Dates = append(summary.Dates, group)
	}

	for _, id := range providerOrder {
		summary.Providers = append(summary.Providers, *subtotals[id])
	}
	return summary
}

// contiguousGapMinutes is the largest gap between selected start times that
// still reads as one continuous block in the summary view.
const contiguousGapMinutes = 30

// GroupContiguous collapses a provider/date's selected start times into
// display ranges: sorted starts whose gaps are <= 30 minutes merge into a
// single [first, lastStart+30m] range; a larger gap starts a new range.
// This is a display aggregation over chosen points, not a merge of
// authored availability.
// GroupContiguousByProvider partitions one date's blocks by provider and
// collapses each provider's start times separately. Picks from different
// providers never join the same display range, however close in time.
func GroupContiguousByProvider(blocks []models.SelectionBlock) map[string][]models.DisplayRange {
	byProvider := make(map[string][]models.TimeOfDay)
	for _, b := range blocks {
		byProvider[b.ProviderID] = append(byProvider[b.ProviderID], b.StartTime)
	}

	out := make(map[string][]models.DisplayRange, len(byProvider))
	for providerID, starts := range byProvider {
		out[providerID] = GroupContiguous(starts)
	}
	return out
}

func GroupContiguous(starts []models.TimeOfDay) []models.DisplayRange {
	if len(starts) == 0 {
		return nil
	}

	sorted := append([]models.TimeOfDay(nil), starts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var ranges []models.DisplayRange
	current := models.DisplayRange{Start: sorted[0], End: sorted[0].AddMinutes(contiguousGapMinutes)}
	lastStart := sorted[0]
	for _, t := range sorted[1:] {
		if t.DiffMinutes(lastStart) <= contiguousGapMinutes {
			current.End = t.AddMinutes(contiguousGapMinutes)
		} else {
			ranges = append(ranges, current)
			current = models.DisplayRange{Start: t, End: t.AddMinutes(contiguousGapMinutes)}
		}
		lastStart = t
	}
	return append(ranges, current)
}
