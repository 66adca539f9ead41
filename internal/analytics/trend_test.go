package analytics

import (
	"testing"
	"time"

	"finance-visualizer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyTrend_BoundedRangeIncludesEmptyMonths(t *testing.T) {
	now := day(2025, time.August, 25)
	rng := ResolveRange(models.RangeLast3Months, now)

	trend := MonthlyTrend(sampleTransactions(), rng)

	require.Len(t, trend, 3)
	assert.Equal(t, "2025-06", trend[0].Month)
	assert.Equal(t, "2025-07", trend[1].Month)
	assert.Equal(t, "2025-08", trend[2].Month)

	assert.Equal(t, "8000", trend[0].Income.String())
	assert.Equal(t, "3000", trend[0].Expenses.String())
	assert.Equal(t, "5000", trend[0].Net.String())

	assert.True(t, trend[1].Income.IsZero())
	assert.Equal(t, "1200", trend[1].Expenses.String())

	assert.Equal(t, "45000", trend[2].Income.String())
	assert.Equal(t, "450", trend[2].Expenses.String())
}

func TestMonthlyTrend_UnboundedSpansRecords(t *testing.T) {
	trend := MonthlyTrend(sampleTransactions(), Unbounded())

	require.Len(t, trend, 9)
	assert.Equal(t, "2024-12", trend[0].Month)
	assert.Equal(t, "800", trend[0].Expenses.String())
	assert.Equal(t, "2025-08", trend[len(trend)-1].Month)
}

func TestMonthlyTrend_Empty(t *testing.T) {
	assert.Empty(t, MonthlyTrend(nil, Unbounded()))

	rng := ResolveRange(models.RangeThisMonth, day(2025, time.August, 25))
	trend := MonthlyTrend(nil, rng)
	require.Len(t, trend, 1)
	assert.True(t, trend[0].Net.IsZero())
}
