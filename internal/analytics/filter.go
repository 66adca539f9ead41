package analytics

import (
	"sort"
	"strings"
	"time"

	"finance-visualizer/internal/models"
)

// SortByDateDesc returns a copy of records ordered newest first.
// The sort is stable: records sharing a date keep their relative order.
func SortByDateDesc(records []models.Transaction) []models.Transaction {
	sorted := make([]models.Transaction, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.CalendarDate(sorted[i].Date).After(models.CalendarDate(sorted[j].Date))
	})
	return sorted
}

// FilterTransactions returns the records matching every active filter, newest first.
// The input slice is left untouched.
func FilterTransactions(records []models.Transaction, filters models.TransactionFilters, now time.Time) []models.Transaction {
	match := Predicate(filters, now)

	sorted := SortByDateDesc(records)
	result := make([]models.Transaction, 0, len(sorted))
	for i := range sorted {
		if match(&sorted[i]) {
			result = append(result, sorted[i])
		}
	}
	return result
}

// Predicate composes the active filters into a single AND-ed test
func Predicate(filters models.TransactionFilters, now time.Time) func(*models.Transaction) bool {
	var checks []func(*models.Transaction) bool

	if filters.HasSearch() {
		needle := strings.ToLower(strings.TrimSpace(filters.Search))
		checks = append(checks, func(t *models.Transaction) bool {
			return containsFold(t.DisplayName(), needle) || containsFold(t.Description, needle)
		})
	}

	if filters.HasCategory() {
		category := strings.TrimSpace(filters.Category)
		checks = append(checks, func(t *models.Transaction) bool {
			return strings.EqualFold(strings.TrimSpace(t.Category), category)
		})
	}

	if filters.HasType() {
		txType := strings.TrimSpace(filters.Type)
		checks = append(checks, func(t *models.Transaction) bool {
			return strings.EqualFold(t.Type, txType)
		})
	}

	if rng := ResolveRange(filters.Range, now); rng.Bounded {
		checks = append(checks, func(t *models.Transaction) bool {
			return rng.Contains(t.Date)
		})
	}

	return func(t *models.Transaction) bool {
		for _, check := range checks {
			if !check(t) {
				return false
			}
		}
		return true
	}
}

// containsFold expects needle to be lower case already
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
