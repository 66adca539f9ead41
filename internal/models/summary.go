package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals is the income/expense/savings rollup over a set of transactions
type Totals struct {
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Net              decimal.Decimal `json:"net"`
	SavingsRate      decimal.Decimal `json:"savings_rate"`
	TransactionCount int             `json:"transaction_count"`
}

// MonthlyTotals is one bucket of the income-vs-expenses trend
type MonthlyTotals struct {
	Month    string          `json:"month"`
	Start    time.Time       `json:"start"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// BudgetStatus is a budget with its spending derived from transactions
type BudgetStatus struct {
	Budget     Budget          `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
	OverBudget bool            `json:"over_budget"`
}

// BudgetRollup aggregates a set of budget statuses
type BudgetRollup struct {
	TotalBudgeted   decimal.Decimal `json:"total_budgeted"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	TotalRemaining  decimal.Decimal `json:"total_remaining"`
	Percentage      decimal.Decimal `json:"percentage"`
	BudgetCount     int             `json:"budget_count"`
	OverBudgetCount int             `json:"over_budget_count"`
}
