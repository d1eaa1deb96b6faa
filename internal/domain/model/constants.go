package model

import "time"

// WeekdayKeys maps time.Weekday (Sunday = 0) onto the short day keys used by
// venue hours data. Every component reads weekday names from this table so
// hours, dayparts and the stage planner can never disagree on day indexing.
var WeekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeekdayKey returns the short day key for the given timestamp.
func WeekdayKey(t time.Time) string {
	return WeekdayKeys[int(t.Weekday())]
}

// PrevWeekdayKey returns the short day key for the day before the given
// timestamp. Needed for overnight opening hours that wrap past midnight.
func PrevWeekdayKey(t time.Time) string {
	return WeekdayKeys[(int(t.Weekday())+6)%7]
}

// DaypartWindow is a coarse hour window attached to a single-letter daypart
// code. End may exceed 24 for windows that run past midnight.
type DaypartWindow struct {
	Start float64
	End   float64
}

// DaypartWindows maps the single-letter daypart codes on venue records to
// their hour windows. Unknown codes and the placeholder value impose no
// constraint.
var DaypartWindows = map[string]DaypartWindow{
	"M": {Start: 5, End: 12},  // morning
	"D": {Start: 10, End: 15}, // mid-day
	"A": {Start: 12, End: 17}, // afternoon
	"H": {Start: 16, End: 19}, // happy hour
	"E": {Start: 17, End: 24}, // evening
	"L": {Start: 22, End: 28}, // late night, wraps to 4am
}

// DaypartNone is the placeholder daypart value meaning "no constraint".
const DaypartNone = "-"

// MealTypes are the venue type tokens that count as a sit-down meal stop.
// Meal stops get the larger distance cap during candidate selection.
var MealTypes = []string{"breakfast", "brunch", "lunch", "dinner"}

// Planner defaults.
const (
	DefaultMaxStops        = 6
	DefaultDurationHours   = 1.0 // assumed visit length when a venue has none
	ArrivalBufferHours     = 1.0 // travel/transition allowance between stops
	DefaultMaxDistMeal     = 2500.0
	DefaultMaxDistOther    = 1000.0
	RelaxedWindowMinutes   = 90 // "opens soon" window in relaxed mode
	WeekdayLatestEndHour   = 24.0
	LateNightLatestEndHour = 27.0 // 3am next day, Thursday through Saturday
)

// LateNightDay reports whether the weekday gets the extended 3am cutoff.
func LateNightDay(weekday time.Weekday) bool {
	return weekday >= time.Thursday && weekday <= time.Saturday
}
