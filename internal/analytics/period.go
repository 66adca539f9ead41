package analytics

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"finance-visualizer/internal/models"
)

var (
	monthPeriodPattern   = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	quarterPeriodPattern = regexp.MustCompile(`^(\d{4})-?[Qq]([1-4])$`)
	yearPeriodPattern    = regexp.MustCompile(`^(\d{4})$`)
)

// ResolvePeriod turns a budget period label into a date range.
//
// Recognized labels:
//   - "2024-07"  the month
//   - "2024-Q3"  the quarter ("2024Q3" also accepted)
//   - "2024"     the year
//   - "weekly", "monthly", "quarterly", "yearly" relative to now (ISO weeks start on Monday)
//
// Any other label is unbounded, so every matching transaction counts toward the budget.
func ResolvePeriod(label string, now time.Time) DateRange {
	label = strings.TrimSpace(label)
	loc := now.Location()

	if m := monthPeriodPattern.FindStringSubmatch(label); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return Unbounded()
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		return MonthRange(start, start)
	}

	if m := quarterPeriodPattern.FindStringSubmatch(label); m != nil {
		year, _ := strconv.Atoi(m[1])
		quarter, _ := strconv.Atoi(m[2])
		return quarterRange(year, quarter, loc)
	}

	if m := yearPeriodPattern.FindStringSubmatch(label); m != nil {
		year, _ := strconv.Atoi(m[1])
		return yearRange(year, loc)
	}

	switch strings.ToLower(label) {
	case models.BudgetPeriodWeekly:
		return weekRange(now)
	case models.BudgetPeriodMonthly:
		return MonthRange(now, now)
	case models.BudgetPeriodQuarterly:
		return quarterRange(now.Year(), (int(now.Month())-1)/3+1, loc)
	case models.BudgetPeriodYearly, "annual", "annually":
		return yearRange(now.Year(), loc)
	}

	return Unbounded()
}

func quarterRange(year, quarter int, loc *time.Location) DateRange {
	firstMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, firstMonth, 1, 0, 0, 0, 0, loc)
	return MonthRange(start, start.AddDate(0, 2, 0))
}

func yearRange(year int, loc *time.Location) DateRange {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return MonthRange(start, start.AddDate(0, 11, 0))
}

func weekRange(now time.Time) DateRange {
	offset := (int(now.Weekday()) + 6) % 7
	monday := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, now.Location())
	end := monday.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return DateRange{Start: monday, End: end, Bounded: true}
}
