package analytics

import (
	"time"

	"finance-visualizer/internal/models"

	"github.com/shopspring/decimal"
)

const monthKeyLayout = "2006-01"

// MonthlyTrend buckets income and expenses per calendar month, oldest first.
// A bounded range yields every month it covers, including empty ones. An
// unbounded range spans the months between the oldest and newest record.
func MonthlyTrend(records []models.Transaction, rng DateRange) []models.MonthlyTotals {
	from, to, ok := trendBounds(records, rng)
	if !ok {
		return []models.MonthlyTotals{}
	}

	buckets := make([]models.MonthlyTotals, 0)
	index := make(map[string]int)
	for month := from; !month.After(to); month = month.AddDate(0, 1, 0) {
		key := month.Format(monthKeyLayout)
		index[key] = len(buckets)
		buckets = append(buckets, models.MonthlyTotals{
			Month:    key,
			Start:    month,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		})
	}

	for i := range records {
		t := &records[i]
		if !rng.Contains(t.Date) {
			continue
		}
		key := time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC).Format(monthKeyLayout)
		pos, ok := index[key]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			buckets[pos].Income = buckets[pos].Income.Add(t.Amount)
		case models.TransactionTypeExpense:
			buckets[pos].Expenses = buckets[pos].Expenses.Add(t.Amount)
		}
	}

	for i := range buckets {
		buckets[i].Net = buckets[i].Income.Sub(buckets[i].Expenses)
	}

	return buckets
}

func trendBounds(records []models.Transaction, rng DateRange) (time.Time, time.Time, bool) {
	if rng.Bounded {
		return firstOfMonth(rng.Start), firstOfMonth(rng.End), true
	}

	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}

	oldest := models.CalendarDate(records[0].Date)
	newest := oldest
	for i := range records {
		day := models.CalendarDate(records[i].Date)
		if day.Before(oldest) {
			oldest = day
		}
		if day.After(newest) {
			newest = day
		}
	}
	return firstOfMonth(oldest), firstOfMonth(newest), true
}
