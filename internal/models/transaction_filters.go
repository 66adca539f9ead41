package models

import "strings"

// FilterAll is the sentinel that disables a category or type filter
const FilterAll = "all"

// RangeSelector names a date window relative to the moment of evaluation
type RangeSelector string

const (
	RangeAll         RangeSelector = "all"
	RangeThisMonth   RangeSelector = "this-month"
	RangeLastMonth   RangeSelector = "last-month"
	RangeLast3Months RangeSelector = "last-3-months"
	RangeLast6Months RangeSelector = "last-6-months"
	RangeThisYear    RangeSelector = "this-year"
)

// AllRangeSelectors returns every recognized selector
func AllRangeSelectors() []RangeSelector {
	return []RangeSelector{
		RangeAll,
		RangeThisMonth,
		RangeLastMonth,
		RangeLast3Months,
		RangeLast6Months,
		RangeThisYear,
	}
}

// ParseRangeSelector maps a raw value to a selector. Unknown values become RangeAll.
func ParseRangeSelector(raw string) RangeSelector {
	candidate := RangeSelector(strings.ToLower(strings.TrimSpace(raw)))
	for _, selector := range AllRangeSelectors() {
		if candidate == selector {
			return selector
		}
	}
	return RangeAll
}

// TransactionFilters is the filter set applied by the dashboard.
// Empty strings and "all" leave the corresponding axis unfiltered.
type TransactionFilters struct {
	Search   string
	Category string
	Type     string
	Range    RangeSelector
}

// HasCategory reports whether the category axis is active
func (f TransactionFilters) HasCategory() bool {
	return isActiveFilter(f.Category)
}

// HasType reports whether the type axis is active
func (f TransactionFilters) HasType() bool {
	return isActiveFilter(f.Type)
}

// HasSearch reports whether free-text search is active
func (f TransactionFilters) HasSearch() bool {
	return strings.TrimSpace(f.Search) != ""
}

func isActiveFilter(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && !strings.EqualFold(value, FilterAll)
}
