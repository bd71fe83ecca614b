package models

// SlotGranularity is the scheduling grid, in minutes. Start times, session
// lengths, and end options all land on this grid.
const SlotGranularity = 15

// AvailabilityRange is one bookable window in a day. IDs are arena-style:
// assigned per day from DaySchedule.NextRangeID, unique within the day
// only, and never reused after a merge discards them.
type AvailabilityRange struct {
	ID               int       `bson:"id" json:"id"`
	Start            TimeOfDay `bson:"start" json:"start"`
	End              TimeOfDay `bson:"end" json:"end"`
	MinSessionLength int       `bson:"minSessionLength" json:"minSessionLength"`
	MaxSessionLength int       `bson:"maxSessionLength" json:"maxSessionLength"`
}

// IsSentinel reports whether the range is the 00:00-00:00 placeholder. A
// sentinel is a legal stored value that offers no bookable time.
func (r AvailabilityRange) IsSentinel() bool {
	return r.Start == 0 && r.End == 0
}

// DaySchedule is the set of ranges for one day plus the arena counter used
// to assign new range IDs.
type DaySchedule struct {
	Ranges      []AvailabilityRange `bson:"ranges" json:"ranges"`
	NextRangeID int                 `bson:"nextRangeId" json:"nextRangeId"`
}

// AddRange appends a range with a freshly assigned ID and returns that ID.
func (d *DaySchedule) AddRange(r AvailabilityRange) int {
	r.ID = d.NextRangeID
	d.NextRangeID++
	d.Ranges = append(d.Ranges, r)
	return r.ID
}

// RealRanges returns the day's non-sentinel ranges.
func (d DaySchedule) RealRanges() []AvailabilityRange {
	var real []AvailabilityRange
	for _, r := range d.Ranges {
		if !r.IsSentinel() {
			real = append(real, r)
		}
	}
	return real
}

// Weekday keys for the recurring schedule, matching time.Weekday.String().
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

// Weekdays lists the weekly-availability keys in calendar order.
var Weekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeeklyAvailability is the recurring schedule, keyed by weekday name.
type WeeklyAvailability map[string]DaySchedule

// NewWeeklyAvailability returns a schedule with every weekday present and
// empty.
func NewWeeklyAvailability() WeeklyAvailability {
	w := make(WeeklyAvailability, len(Weekdays))
	for _, day := range Weekdays {
		w[day] = DaySchedule{}
	}
	return w
}

// CustomAvailability holds per-date overrides, keyed by "2006-01-02". An
// entry fully replaces the weekly schedule for that date.
type CustomAvailability map[string]DaySchedule

// ProviderAvailability is the full availability document a provider
// publishes.
type ProviderAvailability struct {
	ProviderID       string             `bson:"providerId" json:"providerId"`
	Weekly           WeeklyAvailability `bson:"weekly" json:"weekly"`
	Custom           CustomAvailability `bson:"custom,omitempty" json:"custom,omitempty"`
	UnavailableDates []string           `bson:"unavailableDates,omitempty" json:"unavailableDates,omitempty"`
}

// IsUnavailable reports whether the date is blacked out entirely.
func (pa ProviderAvailability) IsUnavailable(date string) bool {
	for _, d := range pa.UnavailableDates {
		if d == date {
			return true
		}
	}
	return false
}
