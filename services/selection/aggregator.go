// Package selection accumulates a client's in-progress slot picks across
// dates and providers, prices them into a grouped summary, and persists
// the working set as a Redis-backed session between requests.
package selection

import (
	"sort"

	"coachly/models"
)

// Aggregator holds the ephemeral date -> selection blocks mapping. It is
// caller-owned state; callers must serialize access if shared.
type Aggregator struct {
	Blocks map[string][]models.SelectionBlock `json:"blocks"`
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{Blocks: make(map[string][]models.SelectionBlock)}
}

// BlockMeta carries the per-selection details attached on toggle-on.
type BlockMeta struct {
	ProviderID string
	Technique  string
	SkillLevel string
	Notes      string
}

// Toggle adds the (date, time) selection, or removes it when an entry with
// the same start time already exists for that date. Removing the last
// entry for a date deletes the date key entirely.
func (a *Aggregator) Toggle(date string, start models.TimeOfDay, durationMinutes int, meta BlockMeta) {
	if a.removeBlock(date, start) {
		return
	}
	if a.Blocks == nil {
		a.Blocks = make(map[string][]models.SelectionBlock)
	}
	a.Blocks[date] = append(a.Blocks[date], models.SelectionBlock{
		Date:            date,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		ProviderID:      meta.ProviderID,
		Technique:       meta.Technique,
		SkillLevel:      meta.SkillLevel,
		Notes:           meta.Notes,
	})
}

// Remove drops the selection at (date, time) if present, with the same
// empty-key cleanup rule as Toggle.
func (a *Aggregator) Remove(date string, start models.TimeOfDay) {
	a.removeBlock(date, start)
}

// Clear resets the aggregator to an empty mapping.
func (a *Aggregator) Clear() {
	a.Blocks = make(map[string][]models.SelectionBlock)
}

// Count returns the total number of selected blocks.
func (a *Aggregator) Count() int {
	n := 0
	for _, blocks := range a.Blocks {
		n += len(blocks)
	}
	return n
}

// All returns every block ordered by date then start time.
func (a *Aggregator) All() []models.SelectionBlock {
	var all []models.SelectionBlock
	for _, blocks := range a.Blocks {
		all = append(all, blocks...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date < all[j].Date
		}
		return all[i].StartTime.Before(all[j].StartTime)
	})
	return all
}

func (a *Aggregator) removeBlock(date string, start models.TimeOfDay) bool {
	blocks, ok := a.Blocks[date]
	if !ok {
		return false
	}
	for i, b := range blocks {
		if b.StartTime == start {
			blocks = append(blocks[:i], blocks[i+1:]...)
			if len(blocks) == 0 {
				delete(a.Blocks, date)
			} else {
				a.Blocks[date] = blocks
			}
			return true
		}
	}
	return false
}
