package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-visualizer/internal/analytics"
	"finance-visualizer/internal/dto"
	"finance-visualizer/internal/middleware"
	"finance-visualizer/internal/models"
	"finance-visualizer/internal/repositories"

	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewDashboardService creates the service that feeds stored records through the analytics engine
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

func (s *dashboardService) Summary(ctx context.Context, query dto.DashboardQuery) (*dto.DashboardSummaryResponse, error) {
	start := time.Now()

	records, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filters := query.Filters()
	rng := analytics.ResolveRange(filters.Range, now)
	filtered := analytics.FilterTransactions(records, filters, now)
	recent := filtered[:min(query.RecentLimit(), len(filtered))]

	response := &dto.DashboardSummaryResponse{
		Filters:            dto.NewAppliedFilters(filters),
		Period:             dto.NewDateRange(rng.Start, rng.End, rng.Bounded),
		Totals:             dto.NewTotals(analytics.Totals(filtered)),
		ExpenseBreakdown:   dto.NewCategoryShares(analytics.CategoryBreakdown(analytics.ExpensesOnly(filtered))),
		IncomeBreakdown:    dto.NewCategoryShares(analytics.CategoryBreakdown(analytics.IncomeOnly(filtered))),
		MonthlyTrend:       dto.NewMonthlyTrend(analytics.MonthlyTrend(filtered, rng)),
		RecentTransactions: dto.NewTransactions(recent),
	}

	s.observe(ctx, "summary", start, len(records), len(filtered))
	return response, nil
}

func (s *dashboardService) FilteredTransactions(ctx context.Context, query dto.DashboardQuery) (*dto.FilteredTransactionsResponse, error) {
	start := time.Now()

	records, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filters := query.Filters()
	rng := analytics.ResolveRange(filters.Range, now)
	filtered := analytics.FilterTransactions(records, filters, now)

	response := &dto.FilteredTransactionsResponse{
		Filters:      dto.NewAppliedFilters(filters),
		Period:       dto.NewDateRange(rng.Start, rng.End, rng.Bounded),
		Totals:       dto.NewTotals(analytics.Totals(filtered)),
		Transactions: dto.NewTransactions(filtered),
	}

	s.observe(ctx, "transactions", start, len(records), len(filtered))
	return response, nil
}

func (s *dashboardService) BudgetOverview(ctx context.Context) (*dto.BudgetOverviewResponse, error) {
	start := time.Now()

	var (
		budgets []models.Budget
		records []models.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load budgets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.loadTransactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	statuses := analytics.BudgetStatuses(budgets, records, s.now())
	rollup := analytics.BudgetRollup(statuses)

	response := &dto.BudgetOverviewResponse{
		Budgets: dto.NewBudgetStatuses(statuses),
		Rollup:  dto.NewBudgetRollup(rollup),
	}

	s.metrics.RecordGauge(MetricOverBudgetSize, float64(rollup.OverBudgetCount), nil)
	s.observe(ctx, "budgets", start, len(records), len(budgets))
	return response, nil
}

func (s *dashboardService) CategoryOverview(ctx context.Context, query dto.DashboardQuery) (*dto.CategoryOverviewResponse, error) {
	start := time.Now()

	var (
		categories []models.Category
		records    []models.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.loadTransactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := analytics.FilterTransactions(records, query.Filters(), s.now())

	response := &dto.CategoryOverviewResponse{
		Categories:       dto.NewCategories(categories),
		ExpenseBreakdown: dto.NewCategoryShares(analytics.CategoryBreakdown(analytics.ExpensesOnly(filtered))),
		IncomeBreakdown:  dto.NewCategoryShares(analytics.CategoryBreakdown(analytics.IncomeOnly(filtered))),
	}

	s.observe(ctx, "categories", start, len(records), len(filtered))
	return response, nil
}

func (s *dashboardService) ViewContent(ctx context.Context, view models.View, query dto.DashboardQuery) (*dto.ViewResponse, error) {
	response := &dto.ViewResponse{View: string(view)}

	var err error
	switch view {
	case models.ViewOverview:
		response.Overview, err = s.Summary(ctx, query)
	case models.ViewTransactions:
		response.Transactions, err = s.FilteredTransactions(ctx, query)
	case models.ViewBudgets:
		response.Budgets, err = s.BudgetOverview(ctx)
	case models.ViewCategories:
		response.Categories, err = s.CategoryOverview(ctx, query)
	default:
		return nil, models.ErrUnknownView
	}
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *dashboardService) loadTransactions(ctx context.Context) ([]models.Transaction, error) {
	records, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	s.metrics.RecordGauge(MetricSnapshotSize, float64(len(records)), map[string]string{"entity": "transaction"})
	return records, nil
}

func (s *dashboardService) observe(ctx context.Context, operation string, start time.Time, loaded, matched int) {
	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime(operation, elapsed)

	result := "matched"
	if matched == 0 {
		result = "empty"
	}
	s.metrics.IncrementCounter(MetricEngineRun, map[string]string{"operation": operation, "result": result})

	slog.DebugContext(ctx, "dashboard engine run",
		"trace_id", middleware.TraceIDFromContext(ctx),
		"operation", operation,
		"loaded", loaded,
		"matched", matched,
		"duration_ms", elapsed.Milliseconds(),
	)
}
