package analytics

import (
	"testing"
	"time"

	"finance-visualizer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveRange(t *testing.T) {
	now := time.Date(2025, time.January, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		selector  models.RangeSelector
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"this month", models.RangeThisMonth, day(2025, time.January, 1), day(2025, time.January, 31)},
		{"last month rolls back a year", models.RangeLastMonth, day(2024, time.December, 1), day(2024, time.December, 31)},
		{"last three months", models.RangeLast3Months, day(2024, time.November, 1), day(2025, time.January, 31)},
		{"last six months", models.RangeLast6Months, day(2024, time.August, 1), day(2025, time.January, 31)},
		{"this year", models.RangeThisYear, day(2025, time.January, 1), day(2025, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ResolveRange(tt.selector, now)
			assert.True(t, rng.Bounded)
			assert.Equal(t, tt.wantStart, rng.Start)
			assert.Equal(t, tt.wantEnd.AddDate(0, 0, 1).Add(-time.Nanosecond), rng.End)
		})
	}
}

func TestResolveRange_UnknownSelectorIsUnbounded(t *testing.T) {
	now := day(2025, time.March, 10)

	for _, selector := range []models.RangeSelector{models.RangeAll, "", "last-decade"} {
		rng := ResolveRange(selector, now)
		assert.False(t, rng.Bounded, "selector %q", selector)
		assert.True(t, rng.Contains(day(1999, time.January, 1)))
	}
}

func TestResolveRange_MonthEndDoesNotOverflow(t *testing.T) {
	now := day(2025, time.March, 31)

	rng := ResolveRange(models.RangeLastMonth, now)

	assert.Equal(t, day(2025, time.February, 1), rng.Start)
	assert.True(t, rng.Contains(day(2025, time.February, 28)))
	assert.False(t, rng.Contains(day(2025, time.March, 1)))
}

func TestDateRange_ContainsIsInclusive(t *testing.T) {
	rng := MonthRange(day(2024, time.December, 5), day(2024, time.December, 5))

	assert.True(t, rng.Contains(day(2024, time.December, 1)))
	assert.True(t, rng.Contains(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, rng.Contains(day(2024, time.November, 30)))
	assert.False(t, rng.Contains(day(2025, time.January, 1)))
}
