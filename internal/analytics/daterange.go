// Package analytics holds the pure filtering and aggregation functions behind
// the dashboard. Nothing here performs I/O or keeps state between calls.
package analytics

import (
	"time"

	"finance-visualizer/internal/models"
)

// DateRange is a closed calendar-date interval. An unbounded range matches every date.
type DateRange struct {
	Start   time.Time `json:"start,omitempty"`
	End     time.Time `json:"end,omitempty"`
	Bounded bool      `json:"bounded"`
}

// Unbounded returns the range that matches every date
func Unbounded() DateRange {
	return DateRange{}
}

// MonthRange returns the range covering months [from, to] inclusive, where both
// arguments are any instant inside the first and last month.
func MonthRange(from, to time.Time) DateRange {
	start := firstOfMonth(from)
	end := firstOfMonth(to).AddDate(0, 1, 0).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end, Bounded: true}
}

// Contains reports whether the calendar day of t lies inside the range.
// Only the year, month and day of t are considered.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Bounded {
		return true
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.Start.Location())
	return !day.Before(r.Start) && !day.After(r.End)
}

// ResolveRange maps a selector to a concrete interval anchored at now.
// Month arithmetic rolls over year boundaries; unknown selectors are unbounded.
func ResolveRange(selector models.RangeSelector, now time.Time) DateRange {
	switch selector {
	case models.RangeThisMonth:
		return MonthRange(now, now)
	case models.RangeLastMonth:
		previous := addMonths(now, -1)
		return MonthRange(previous, previous)
	case models.RangeLast3Months:
		return MonthRange(addMonths(now, -2), now)
	case models.RangeLast6Months:
		return MonthRange(addMonths(now, -5), now)
	case models.RangeThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), time.December, 1, 0, 0, 0, 0, now.Location())
		return MonthRange(start, end)
	default:
		return Unbounded()
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// addMonths shifts by whole months from the first of the month, so the 31st never
// overflows into the following month.
func addMonths(t time.Time, months int) time.Time {
	return firstOfMonth(t).AddDate(0, months, 0)
}
