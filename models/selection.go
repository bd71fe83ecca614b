package models

// SelectionBlock is one client-chosen reservation candidate. It is held in
// an ephemeral selection session, not persisted as a booking.
type SelectionBlock struct {
	Date            string    `json:"date"` // "2006-01-02"
	StartTime       TimeOfDay `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	ProviderID      string    `json:"providerId"`
	Technique       string    `json:"technique,omitempty"`
	SkillLevel      string    `json:"skillLevel,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// SessionSummary is one priced selection in a summary.
type SessionSummary struct {
	Date            string    `json:"date"`
	StartTime       TimeOfDay `json:"startTime"`
	EndTime         TimeOfDay `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	ProviderID      string    `json:"providerId"`
	Technique       string    `json:"technique,omitempty"`
	SkillLevel      string    `json:"skillLevel,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	HourlyRate      float64   `json:"hourlyRate"`
	Price           float64   `json:"price"`
}

// DateSummary groups priced selections for one date, ordered by start time.
type DateSummary struct {
	Date     string           `json:"date"`
	Sessions []SessionSummary `json:"sessions"`
}

// ProviderSubtotal is the per-provider rollup in a selection summary.
type ProviderSubtotal struct {
	ProviderID string  `json:"providerId"`
	SlotCount  int     `json:"slotCount"`
	Total      float64 `json:"total"`
}

// SelectionSummary is the full priced summary of an in-progress selection.
type SelectionSummary struct {
	Dates      []DateSummary      `json:"dates"`
	Providers  []ProviderSubtotal `json:"providers"`
	GrandTotal float64            `json:"grandTotal"`
}

// DisplayRange is a contiguous visual range of selected start times, used
// by the read-only summary view.
type DisplayRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}
