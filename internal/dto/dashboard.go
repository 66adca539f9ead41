package dto

import (
	"time"

	"finance-visualizer/internal/models"
)

// DefaultRecentLimit is the number of recent transactions on the overview
const DefaultRecentLimit = 5

// DashboardQuery holds the filter query parameters shared by the dashboard endpoints
type DashboardQuery struct {
	Range    string `query:"range"`
	Category string `query:"category"`
	Type     string `query:"type"`
	Search   string `query:"search"`
	Recent   int    `query:"recent" validate:"omitempty,min=1,max=100"`
}

// Filters converts the query into engine filters. Unknown ranges become "all".
func (q *DashboardQuery) Filters() models.TransactionFilters {
	return models.TransactionFilters{
		Search:   q.Search,
		Category: q.Category,
		Type:     q.Type,
		Range:    models.ParseRangeSelector(q.Range),
	}
}

// RecentLimit returns the requested recent count or the default
func (q *DashboardQuery) RecentLimit() int {
	if q.Recent <= 0 {
		return DefaultRecentLimit
	}
	return q.Recent
}

// AppliedFilters echoes the normalized filter set back to the caller
type AppliedFilters struct {
	Range    string `json:"range"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Search   string `json:"search,omitempty"`
}

// NewAppliedFilters maps engine filters to their wire form
func NewAppliedFilters(f models.TransactionFilters) AppliedFilters {
	applied := AppliedFilters{
		Range:    string(f.Range),
		Category: models.FilterAll,
		Type:     models.FilterAll,
		Search:   f.Search,
	}
	if f.HasCategory() {
		applied.Category = f.Category
	}
	if f.HasType() {
		applied.Type = f.Type
	}
	return applied
}

// DateRange is a resolved date window; start and end are omitted when unbounded
type DateRange struct {
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Bounded bool   `json:"bounded"`
}

// NewDateRange formats a resolved window as calendar dates
func NewDateRange(start, end time.Time, bounded bool) DateRange {
	if !bounded {
		return DateRange{}
	}
	return DateRange{
		Start:   start.Format(models.DateLayout),
		End:     end.Format(models.DateLayout),
		Bounded: true,
	}
}

// Totals is the wire form of models.Totals
type Totals struct {
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	Net              string `json:"net"`
	SavingsRate      string `json:"savingsRate"`
	TransactionCount int    `json:"transactionCount"`
}

// NewTotals maps totals to their wire form
func NewTotals(t models.Totals) Totals {
	return Totals{
		Income:           t.Income.StringFixed(2),
		Expenses:         t.Expenses.StringFixed(2),
		Net:              t.Net.StringFixed(2),
		SavingsRate:      t.SavingsRate.StringFixed(2),
		TransactionCount: t.TransactionCount,
	}
}

// CategoryShare is one slice of a category breakdown
type CategoryShare struct {
	Category         string `json:"category"`
	TransactionCount int64  `json:"transactionCount"`
	TotalAmount      string `json:"totalAmount"`
	Percentage       int64  `json:"percentage"`
}

// NewCategoryShares maps a breakdown, never returning nil
func NewCategoryShares(shares []models.CategoryShare) []CategoryShare {
	out := make([]CategoryShare, 0, len(shares))
	for _, share := range shares {
		out = append(out, CategoryShare{
			Category:         share.Category,
			TransactionCount: share.TransactionCount,
			TotalAmount:      share.TotalAmount.StringFixed(2),
			Percentage:       share.Percentage,
		})
	}
	return out
}

// MonthlyTotals is one bar of the income vs expenses chart
type MonthlyTotals struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// NewMonthlyTrend maps a trend, never returning nil
func NewMonthlyTrend(trend []models.MonthlyTotals) []MonthlyTotals {
	out := make([]MonthlyTotals, 0, len(trend))
	for _, month := range trend {
		out = append(out, MonthlyTotals{
			Month:    month.Month,
			Income:   month.Income.StringFixed(2),
			Expenses: month.Expenses.StringFixed(2),
			Net:      month.Net.StringFixed(2),
		})
	}
	return out
}

// BudgetStatus is a budget with its derived spending
type BudgetStatus struct {
	Budget
	Spent      string `json:"spent"`
	Remaining  string `json:"remaining"`
	Percentage string `json:"percentage"`
	OverBudget bool   `json:"overBudget"`
}

// NewBudgetStatuses maps budget statuses, never returning nil
func NewBudgetStatuses(statuses []models.BudgetStatus) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(statuses))
	for i := range statuses {
		out = append(out, BudgetStatus{
			Budget:     NewBudget(&statuses[i].Budget),
			Spent:      statuses[i].Spent.StringFixed(2),
			Remaining:  statuses[i].Remaining.StringFixed(2),
			Percentage: statuses[i].Percentage.StringFixed(2),
			OverBudget: statuses[i].OverBudget,
		})
	}
	return out
}

// BudgetRollup totals every budget
type BudgetRollup struct {
	TotalBudgeted   string `json:"totalBudgeted"`
	TotalSpent      string `json:"totalSpent"`
	TotalRemaining  string `json:"totalRemaining"`
	Percentage      string `json:"percentage"`
	BudgetCount     int    `json:"budgetCount"`
	OverBudgetCount int    `json:"overBudgetCount"`
}

// NewBudgetRollup maps a rollup to its wire form
func NewBudgetRollup(r models.BudgetRollup) BudgetRollup {
	return BudgetRollup{
		TotalBudgeted:   r.TotalBudgeted.StringFixed(2),
		TotalSpent:      r.TotalSpent.StringFixed(2),
		TotalRemaining:  r.TotalRemaining.StringFixed(2),
		Percentage:      r.Percentage.StringFixed(2),
		BudgetCount:     r.BudgetCount,
		OverBudgetCount: r.OverBudgetCount,
	}
}

// DashboardSummaryResponse is the overview screen for one filter set
type DashboardSummaryResponse struct {
	Filters            AppliedFilters  `json:"filters"`
	Period             DateRange       `json:"period"`
	Totals             Totals          `json:"totals"`
	ExpenseBreakdown   []CategoryShare `json:"expenseBreakdown"`
	IncomeBreakdown    []CategoryShare `json:"incomeBreakdown"`
	MonthlyTrend       []MonthlyTotals `json:"monthlyTrend"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
}

// FilteredTransactionsResponse is the transactions screen for one filter set
type FilteredTransactionsResponse struct {
	Filters      AppliedFilters `json:"filters"`
	Period       DateRange      `json:"period"`
	Totals       Totals         `json:"totals"`
	Transactions []Transaction  `json:"transactions"`
}

// BudgetOverviewResponse is the budgets screen
type BudgetOverviewResponse struct {
	Budgets []BudgetStatus `json:"budgets"`
	Rollup  BudgetRollup   `json:"rollup"`
}

// CategoryOverviewResponse is the categories screen
type CategoryOverviewResponse struct {
	Categories       []Category      `json:"categories"`
	ExpenseBreakdown []CategoryShare `json:"expenseBreakdown"`
	IncomeBreakdown  []CategoryShare `json:"incomeBreakdown"`
}

// ViewResponse carries the content of exactly one dashboard view
type ViewResponse struct {
	View         string                        `json:"view"`
	Overview     *DashboardSummaryResponse     `json:"overview,omitempty"`
	Transactions *FilteredTransactionsResponse `json:"transactions,omitempty"`
	Budgets      *BudgetOverviewResponse       `json:"budgets,omitempty"`
	Categories   *CategoryOverviewResponse     `json:"categories,omitempty"`
}
