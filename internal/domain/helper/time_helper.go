package helper

import (
	"time"

	"roam-backend/internal/domain/model"
)

// Interval is one concrete open window on the timeline.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls inside the half-open interval
// [Start, End).
func (iv Interval) Contains(ts time.Time) bool {
	return !ts.Before(iv.Start) && ts.Before(iv.End)
}

func midnightOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addHours(t time.Time, hours float64) time.Time {
	return t.Add(time.Duration(hours * float64(time.Hour)))
}

// IntervalsForDate expands a venue's weekly numeric hours into the concrete
// open intervals touching the given calendar date. Two entries are consulted:
// the date's own weekday, and the previous weekday in case its closing hour
// wraps past midnight into this date. A venue open Thu 18:00-26:00 is
// therefore still open early Friday morning even if Friday's own entry says
// otherwise.
func IntervalsForDate(date time.Time, hours model.HoursNumeric) []Interval {
	if hours == nil {
		return nil
	}
	var intervals []Interval
	midnight := midnightOf(date)

	if today := hours[model.WeekdayKey(date)]; today != nil {
		intervals = append(intervals, Interval{
			Start: addHours(midnight, today.Open),
			End:   addHours(midnight, today.Close),
		})
	}
	if prev := hours[model.PrevWeekdayKey(date)]; prev != nil && prev.Close > 24 {
		prevMidnight := midnight.AddDate(0, 0, -1)
		intervals = append(intervals, Interval{
			Start: addHours(prevMidnight, prev.Open),
			End:   addHours(prevMidnight, prev.Close),
		})
	}
	return intervals
}

// IsOpenAt reports whether the venue is open at the given timestamp. Venues
// without hours data are treated as always open; a present-but-empty entry
// for the day means closed.
func IsOpenAt(v *model.Venue, ts time.Time) bool {
	if v.HoursNumeric == nil {
		return true
	}
	for _, iv := range IntervalsForDate(ts, v.HoursNumeric) {
		if iv.Contains(ts) {
			return true
		}
	}
	return false
}

// IsOpenWithinWindow is the relaxed check: open at ts, or opening within
// windowMinutes after ts. Used when strict filtering starves the candidate
// pool.
func IsOpenWithinWindow(v *model.Venue, ts time.Time, windowMinutes int) bool {
	if IsOpenAt(v, ts) {
		return true
	}
	if v.HoursNumeric == nil {
		return true
	}
	deadline := ts.Add(time.Duration(windowMinutes) * time.Minute)
	intervals := IntervalsForDate(ts, v.HoursNumeric)
	if deadline.Day() != ts.Day() {
		intervals = append(intervals, IntervalsForDate(deadline, v.HoursNumeric)...)
	}
	for _, iv := range intervals {
		if iv.Start.After(ts) && !iv.Start.After(deadline) {
			return true
		}
	}
	return false
}

// DaypartAllowed applies the coarse daypart window for the timestamp's
// weekday. No label, an unknown code, or the placeholder value means no
// constraint. Windows ending past 24 accept the wrapped early-morning hours.
func DaypartAllowed(v *model.Venue, ts time.Time) bool {
	if v.DayParts == nil {
		return true
	}
	label := v.DayParts[model.WeekdayKey(ts)]
	if label == "" || label == model.DaypartNone {
		return true
	}
	window, ok := model.DaypartWindows[label]
	if !ok {
		return true
	}
	h := float64(ts.Hour()) + float64(ts.Minute())/60
	if h >= window.Start && h < window.End {
		return true
	}
	return window.End > 24 && h < window.End-24
}
