package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-visualizer/internal/dto"
	"finance-visualizer/internal/models"
	"finance-visualizer/internal/repositories/repository_mocks"
	"finance-visualizer/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	service         *dashboardService
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	budgetRepo      *repository_mocks.MockBudgetRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().IncrementCounter(MetricEngineRun, gomock.Any()).AnyTimes()

	s.service = NewDashboardService(s.transactionRepo, s.budgetRepo, s.categoryRepo, s.metrics).(*dashboardService)
	s.service.now = func() time.Time {
		return time.Date(2025, time.August, 25, 14, 30, 0, 0, time.UTC)
	}
}

func (s *DashboardServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func record(txType, category, amount string, year int, month time.Month, day int) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Date:        time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Description: category + " entry",
		Category:    category,
		Status:      models.TransactionStatusSuccess,
	}
}

func (s *DashboardServiceTestSuite) snapshot() []models.Transaction {
	return []models.Transaction{
		record(models.TransactionTypeIncome, "Income", "45000", 2025, time.August, 20),
		record(models.TransactionTypeExpense, "Food & Dining", "450", 2025, time.August, 22),
		record(models.TransactionTypeExpense, "Food & Dining", "6050", 2025, time.August, 2),
		record(models.TransactionTypeExpense, "Transportation", "350", 2025, time.July, 14),
		record(models.TransactionTypeIncome, "Freelance", "15000", 2025, time.June, 3),
		record(models.TransactionTypeExpense, "Shopping", "3200", 2024, time.December, 31),
	}
}

func (s *DashboardServiceTestSuite) TestSummary_ExpenseFilter() {
	records := []models.Transaction{
		record(models.TransactionTypeIncome, "Income", "45000", 2025, time.August, 20),
		record(models.TransactionTypeExpense, "Food & Dining", "450", 2025, time.August, 22),
	}
	s.transactionRepo.EXPECT().List(s.ctx).Return(records, nil)

	summary, err := s.service.Summary(s.ctx, dto.DashboardQuery{Type: "expense"})

	s.Require().NoError(err)
	s.Equal("expense", summary.Filters.Type)
	s.Equal("all", summary.Filters.Range)
	s.False(summary.Period.Bounded)
	s.Equal("0.00", summary.Totals.Income)
	s.Equal("450.00", summary.Totals.Expenses)
	s.Equal("-450.00", summary.Totals.Net)
	s.Equal("0.00", summary.Totals.SavingsRate)
	s.Require().Len(summary.RecentTransactions, 1)
	s.Equal("450.00", summary.RecentTransactions[0].Amount)
	s.Require().Len(summary.ExpenseBreakdown, 1)
	s.Equal(int64(100), summary.ExpenseBreakdown[0].Percentage)
	s.Empty(summary.IncomeBreakdown)
	s.NotNil(summary.IncomeBreakdown)
}

func (s *DashboardServiceTestSuite) TestSummary_RecentLimitAndTrend() {
	s.transactionRepo.EXPECT().List(s.ctx).Return(s.snapshot(), nil)

	summary, err := s.service.Summary(s.ctx, dto.DashboardQuery{Range: "last-3-months", Recent: 2})

	s.Require().NoError(err)
	s.True(summary.Period.Bounded)
	s.Equal("2025-06-01", summary.Period.Start)
	s.Equal("2025-08-31", summary.Period.End)
	s.Equal(5, summary.Totals.TransactionCount)

	s.Require().Len(summary.RecentTransactions, 2)
	s.Equal("2025-08-22", summary.RecentTransactions[0].Date)
	s.Equal("2025-08-20", summary.RecentTransactions[1].Date)

	s.Require().Len(summary.MonthlyTrend, 3)
	s.Equal("2025-06", summary.MonthlyTrend[0].Month)
	s.Equal("15000.00", summary.MonthlyTrend[0].Income)
	s.Equal("2025-07", summary.MonthlyTrend[1].Month)
	s.Equal("350.00", summary.MonthlyTrend[1].Expenses)
	s.Equal("2025-08", summary.MonthlyTrend[2].Month)
	s.Equal("38500.00", summary.MonthlyTrend[2].Net)
}

func (s *DashboardServiceTestSuite) TestSummary_RepositoryError() {
	s.transactionRepo.EXPECT().List(s.ctx).Return(nil, errors.New("connection reset"))

	summary, err := s.service.Summary(s.ctx, dto.DashboardQuery{})

	s.Nil(summary)
	s.ErrorContains(err, "failed to load transactions")
}

func (s *DashboardServiceTestSuite) TestFilteredTransactions_SearchAndCategory() {
	s.transactionRepo.EXPECT().List(s.ctx).Return(s.snapshot(), nil)

	result, err := s.service.FilteredTransactions(s.ctx, dto.DashboardQuery{Category: "food & dining", Search: "ENTRY"})

	s.Require().NoError(err)
	s.Require().Len(result.Transactions, 2)
	s.Equal("2025-08-22", result.Transactions[0].Date)
	s.Equal("2025-08-02", result.Transactions[1].Date)
	s.Equal("6500.00", result.Totals.Expenses)
	s.Equal("food & dining", result.Filters.Category)
}

func (s *DashboardServiceTestSuite) TestBudgetOverview() {
	budgets := []models.Budget{
		{ID: uuid.New(), Category: "Food & Dining", Amount: decimal.NewFromInt(8000), Period: "2025-08"},
		{ID: uuid.New(), Category: "Transportation", Amount: decimal.NewFromInt(300), Period: "Monthly"},
		{ID: uuid.New(), Category: "Travel", Amount: decimal.Zero, Period: "Monthly"},
	}
	s.budgetRepo.EXPECT().List(gomock.Any()).Return(budgets, nil)
	s.transactionRepo.EXPECT().List(gomock.Any()).Return(s.snapshot(), nil)

	overview, err := s.service.BudgetOverview(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(overview.Budgets, 3)

	food := overview.Budgets[0]
	s.Equal("6500.00", food.Spent)
	s.Equal("1500.00", food.Remaining)
	s.Equal("81.25", food.Percentage)
	s.False(food.OverBudget)

	// July spending is outside the current month
	s.Equal("0.00", overview.Budgets[1].Spent)
	s.Equal("0.00", overview.Budgets[2].Percentage)

	s.Equal("8300.00", overview.Rollup.TotalBudgeted)
	s.Equal("6500.00", overview.Rollup.TotalSpent)
	s.Equal(0, overview.Rollup.OverBudgetCount)
}

func (s *DashboardServiceTestSuite) TestBudgetOverview_BudgetRepositoryError() {
	s.budgetRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))
	s.transactionRepo.EXPECT().List(gomock.Any()).Return(s.snapshot(), nil).MaxTimes(1)

	_, err := s.service.BudgetOverview(s.ctx)

	s.ErrorContains(err, "failed to load budgets")
}

func (s *DashboardServiceTestSuite) TestCategoryOverview() {
	categories := []models.Category{
		{ID: uuid.New(), Name: "Food & Dining", Type: models.CategoryTypeExpense, Color: "#F97316"},
		{ID: uuid.New(), Name: "Income", Type: models.CategoryTypeIncome, Color: "#22C55E"},
	}
	s.categoryRepo.EXPECT().List(gomock.Any()).Return(categories, nil)
	s.transactionRepo.EXPECT().List(gomock.Any()).Return(s.snapshot(), nil)

	overview, err := s.service.CategoryOverview(s.ctx, dto.DashboardQuery{Range: "this-year"})

	s.Require().NoError(err)
	s.Len(overview.Categories, 2)
	s.Require().Len(overview.ExpenseBreakdown, 2)
	s.Equal("Food & Dining", overview.ExpenseBreakdown[0].Category)
	s.Equal(int64(95), overview.ExpenseBreakdown[0].Percentage)
	s.Equal("Transportation", overview.ExpenseBreakdown[1].Category)
	s.Equal(int64(5), overview.ExpenseBreakdown[1].Percentage)
	s.Require().Len(overview.IncomeBreakdown, 2)
	s.Equal("Income", overview.IncomeBreakdown[0].Category)
}

func (s *DashboardServiceTestSuite) TestViewContent_FillsOnlyRequestedView() {
	s.budgetRepo.EXPECT().List(gomock.Any()).Return([]models.Budget{}, nil)
	s.transactionRepo.EXPECT().List(gomock.Any()).Return([]models.Transaction{}, nil)

	content, err := s.service.ViewContent(s.ctx, models.ViewBudgets, dto.DashboardQuery{})

	s.Require().NoError(err)
	s.Equal("budgets", content.View)
	s.NotNil(content.Budgets)
	s.Nil(content.Overview)
	s.Nil(content.Transactions)
	s.Nil(content.Categories)
	s.Equal("0.00", content.Budgets.Rollup.Percentage)
}

func (s *DashboardServiceTestSuite) TestViewContent_Overview() {
	s.transactionRepo.EXPECT().List(s.ctx).Return(s.snapshot(), nil)

	content, err := s.service.ViewContent(s.ctx, models.ViewOverview, dto.DashboardQuery{})

	s.Require().NoError(err)
	s.Require().NotNil(content.Overview)
	s.Len(content.Overview.RecentTransactions, dto.DefaultRecentLimit)
}

func (s *DashboardServiceTestSuite) TestViewContent_UnknownView() {
	_, err := s.service.ViewContent(s.ctx, models.View("settings"), dto.DashboardQuery{})

	s.ErrorIs(err, models.ErrUnknownView)
}

func (s *DashboardServiceTestSuite) TestObserve_CountsEngineRuns() {
	registry := prometheus.NewRegistry()
	s.service.metrics = NewPrometheusMetricsWith(registry)

	s.transactionRepo.EXPECT().List(s.ctx).Return(s.snapshot(), nil).Times(2)

	_, err := s.service.FilteredTransactions(s.ctx, dto.DashboardQuery{Type: "expense"})
	s.Require().NoError(err)
	_, err = s.service.FilteredTransactions(s.ctx, dto.DashboardQuery{Search: "no such merchant"})
	s.Require().NoError(err)

	t := s.T()
	s.Equal(1.0, gatheredValue(t, registry, "finance_engine_runs_total",
		map[string]string{"operation": "transactions", "result": "matched"}))
	s.Equal(1.0, gatheredValue(t, registry, "finance_engine_runs_total",
		map[string]string{"operation": "transactions", "result": "empty"}))
	s.Equal(2.0, gatheredValue(t, registry, "finance_engine_duration_seconds",
		map[string]string{"operation": "transactions"}))
}
