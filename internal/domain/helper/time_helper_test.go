package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roam-backend/internal/domain/model"
)

// 2026-01-02 is a Friday.
func friday(hour, min int) time.Time {
	return time.Date(2026, 1, 2, hour, min, 0, 0, time.UTC)
}

func saturday(hour, min int) time.Time {
	return time.Date(2026, 1, 3, hour, min, 0, 0, time.UTC)
}

func TestIsOpenAt(t *testing.T) {
	lateBar := &model.Venue{
		Name: "Late Bar",
		HoursNumeric: model.HoursNumeric{
			"fri": {Open: 20, Close: 26},
		},
	}

	t.Run("open at the opening boundary", func(t *testing.T) {
		assert.True(t, IsOpenAt(lateBar, friday(20, 0)))
	})

	t.Run("closed just before opening", func(t *testing.T) {
		assert.False(t, IsOpenAt(lateBar, friday(19, 59)))
	})

	t.Run("overnight hours spill into the next morning", func(t *testing.T) {
		assert.True(t, IsOpenAt(lateBar, saturday(1, 30)))
	})

	t.Run("closed at the closing boundary", func(t *testing.T) {
		// close 26 means 2am Saturday, exclusive
		assert.False(t, IsOpenAt(lateBar, saturday(2, 0)))
		assert.False(t, IsOpenAt(lateBar, saturday(3, 30)))
	})

	t.Run("no hours data means always open", func(t *testing.T) {
		v := &model.Venue{Name: "Mystery Spot"}
		assert.True(t, IsOpenAt(v, friday(4, 0)))
	})

	t.Run("present map with missing day means closed", func(t *testing.T) {
		v := &model.Venue{
			Name:         "Weekday Only",
			HoursNumeric: model.HoursNumeric{"mon": {Open: 9, Close: 17}},
		}
		assert.False(t, IsOpenAt(v, friday(12, 0)))
	})

	t.Run("explicit nil day entry means closed", func(t *testing.T) {
		v := &model.Venue{
			Name:         "Closed Fridays",
			HoursNumeric: model.HoursNumeric{"fri": nil, "sat": {Open: 10, Close: 22}},
		}
		assert.False(t, IsOpenAt(v, friday(12, 0)))
		assert.True(t, IsOpenAt(v, saturday(12, 0)))
	})
}

func TestIsOpenWithinWindow(t *testing.T) {
	opensAtNine := &model.Venue{
		Name:         "Evening Spot",
		HoursNumeric: model.HoursNumeric{"fri": {Open: 21, Close: 24}},
	}

	t.Run("already open passes", func(t *testing.T) {
		assert.True(t, IsOpenWithinWindow(opensAtNine, friday(22, 0), 90))
	})

	t.Run("opening inside the window passes", func(t *testing.T) {
		assert.True(t, IsOpenWithinWindow(opensAtNine, friday(20, 0), 90))
	})

	t.Run("opening after the window fails", func(t *testing.T) {
		assert.False(t, IsOpenWithinWindow(opensAtNine, friday(20, 0), 30))
	})

	t.Run("window crossing midnight sees the next day's opening", func(t *testing.T) {
		afterHours := &model.Venue{
			Name:         "After Hours",
			HoursNumeric: model.HoursNumeric{"sat": {Open: 0.5, Close: 4}},
		}
		assert.True(t, IsOpenWithinWindow(afterHours, friday(23, 30), 90))
		assert.False(t, IsOpenWithinWindow(afterHours, friday(22, 0), 90))
	})

	t.Run("no hours data passes", func(t *testing.T) {
		assert.True(t, IsOpenWithinWindow(&model.Venue{Name: "Mystery"}, friday(3, 0), 90))
	})
}

func TestDaypartAllowed(t *testing.T) {
	t.Run("inside the window", func(t *testing.T) {
		v := &model.Venue{DayParts: map[string]string{"fri": "E"}}
		assert.True(t, DaypartAllowed(v, friday(18, 0)))
	})

	t.Run("outside the window", func(t *testing.T) {
		v := &model.Venue{DayParts: map[string]string{"fri": "E"}}
		assert.False(t, DaypartAllowed(v, friday(10, 0)))
	})

	t.Run("late-night window wraps past midnight", func(t *testing.T) {
		v := &model.Venue{DayParts: map[string]string{"sat": "L"}}
		assert.True(t, DaypartAllowed(v, saturday(23, 0)))
		assert.True(t, DaypartAllowed(v, saturday(2, 0)))
		assert.False(t, DaypartAllowed(v, saturday(12, 0)))
	})

	t.Run("placeholder and unknown codes impose no constraint", func(t *testing.T) {
		dash := &model.Venue{DayParts: map[string]string{"fri": "-"}}
		assert.True(t, DaypartAllowed(dash, friday(4, 0)))

		unknown := &model.Venue{DayParts: map[string]string{"fri": "X"}}
		assert.True(t, DaypartAllowed(unknown, friday(4, 0)))
	})

	t.Run("no daypart data imposes no constraint", func(t *testing.T) {
		assert.True(t, DaypartAllowed(&model.Venue{}, friday(4, 0)))
	})
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: friday(10, 0), End: friday(12, 0)}

	assert.True(t, iv.Contains(friday(10, 0)))
	assert.True(t, iv.Contains(friday(11, 59)))
	assert.False(t, iv.Contains(friday(12, 0)))
	assert.False(t, iv.Contains(friday(9, 59)))
}
