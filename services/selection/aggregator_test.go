package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coachly/models"
)

func ts(s string) models.TimeOfDay { return models.MustTimeOfDay(s) }

func TestToggleAddsThenRemoves(t *testing.T) {
	agg := NewAggregator()
	meta := BlockMeta{ProviderID: "prov-1", Technique: "dressage", SkillLevel: "beginner"}

	agg.Toggle("2026-09-01", ts("10:00"), 30, meta)
	require.Equal(t, 1, agg.Count())
	require.Len(t, agg.Blocks["2026-09-01"], 1)

	// Toggling the same (date, time) again removes it, and removing the
	// last block for a date drops the date key entirely.
	agg.Toggle("2026-09-01", ts("10:00"), 30, meta)
	require.Equal(t, 0, agg.Count())
	_, exists := agg.Blocks["2026-09-01"]
	require.False(t, exists)
}

func TestToggleMatchesOnStartTimeOnly(t *testing.T) {
	agg := NewAggregator()
	agg.Toggle("2026-09-01", ts("10:00"), 30, BlockMeta{ProviderID: "prov-1"})

	// Same start, different duration and provider still toggles off.
	agg.Toggle("2026-09-01", ts("10:00"), 60, BlockMeta{ProviderID: "prov-2"})
	require.Equal(t, 0, agg.Count())
}

func TestToggleKeepsOtherDatesAndTimes(t *testing.T) {
	agg := NewAggregator()
	meta := BlockMeta{ProviderID: "prov-1"}
	agg.Toggle("2026-09-01", ts("10:00"), 30, meta)
	agg.Toggle("2026-09-01", ts("11:00"), 30, meta)
	agg.Toggle("2026-09-02", ts("09:00"), 30, meta)

	agg.Toggle("2026-09-01", ts("10:00"), 30, meta)
	require.Equal(t, 2, agg.Count())
	require.Len(t, agg.Blocks["2026-09-01"], 1)
	require.Equal(t, ts("11:00"), agg.Blocks["2026-09-01"][0].StartTime)
	require.Len(t, agg.Blocks["2026-09-02"], 1)
}

func TestRemoveIsNotAToggle(t *testing.T) {
	agg := NewAggregator()
	agg.Remove("2026-09-01", ts("10:00"))
	require.Equal(t, 0, agg.Count())

	agg.Toggle("2026-09-01", ts("10:00"), 30, BlockMeta{ProviderID: "prov-1"})
	agg.Remove("2026-09-01", ts("10:00"))
	require.Equal(t, 0, agg.Count())
	_, exists := agg.Blocks["2026-09-01"]
	require.False(t, exists)
}

func TestClear(t *testing.T) {
	agg := NewAggregator()
	agg.Toggle("2026-09-01", ts("10:00"), 30, BlockMeta{ProviderID: "prov-1"})
	agg.Toggle("2026-09-02", ts("11:00"), 30, BlockMeta{ProviderID: "prov-1"})

	agg.Clear()
	require.Equal(t, 0, agg.Count())
	require.Empty(t, agg.Blocks)
}

func TestAllOrdersByDateThenTime(t *testing.T) {
	agg := NewAggregator()
	meta := BlockMeta{ProviderID: "prov-1"}
	agg.Toggle("2026-09-02", ts("09:00"), 30, meta)
	agg.Toggle("2026-09-01", ts("14:00"), 30, meta)
	agg.Toggle("2026-09-01", ts("10:00"), 30, meta)

	all := agg.All()
	require.Len(t, all, 3)
	require.Equal(t, "2026-09-01", all[0].Date)
	require.Equal(t, ts("10:00"), all[0].StartTime)
	require.Equal(t, ts("14:00"), all[1].StartTime)
	require.Equal(t, "2026-09-02", all[2].Date)
}
