package services

import (
	"context"
	"time"

	"finance-visualizer/internal/dto"
	"finance-visualizer/internal/models"
)

// DashboardServiceInterface runs the filter and aggregation engine over a snapshot of the store
type DashboardServiceInterface interface {
	Summary(ctx context.Context, query dto.DashboardQuery) (*dto.DashboardSummaryResponse, error)
	FilteredTransactions(ctx context.Context, query dto.DashboardQuery) (*dto.FilteredTransactionsResponse, error)
	BudgetOverview(ctx context.Context) (*dto.BudgetOverviewResponse, error)
	CategoryOverview(ctx context.Context, query dto.DashboardQuery) (*dto.CategoryOverviewResponse, error)
	// ViewContent returns the content of exactly one view
	ViewContent(ctx context.Context, view models.View, query dto.DashboardQuery) (*dto.ViewResponse, error)
}

// DemoSeederInterface fills an empty store with sample data
type DemoSeederInterface interface {
	// SeedIfEmpty reports whether anything was written
	SeedIfEmpty(ctx context.Context) (bool, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
