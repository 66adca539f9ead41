package analytics

import (
	"errors"
	"sort"
	"strings"
	"time"

	"finance-visualizer/internal/models"

	"github.com/shopspring/decimal"
)

// ErrDegenerateInput is returned when a percentage would divide by zero
var ErrDegenerateInput = errors.New("degenerate input: zero denominator")

var hundred = decimal.NewFromInt(100)

// Percentage returns part / whole * 100 rounded to two places.
// A zero whole yields ErrDegenerateInput and a zero value.
func Percentage(part, whole decimal.Decimal) (decimal.Decimal, error) {
	if whole.IsZero() {
		return decimal.Zero, ErrDegenerateInput
	}
	return part.Mul(hundred).Div(whole).Round(2), nil
}

// percentageOrZero applies the zero policy for degenerate denominators
func percentageOrZero(part, whole decimal.Decimal) decimal.Decimal {
	pct, err := Percentage(part, whole)
	if err != nil {
		return decimal.Zero
	}
	return pct
}

// Totals sums income and expenses over records
func Totals(records []models.Transaction) models.Totals {
	income := decimal.Zero
	expenses := decimal.Zero

	for i := range records {
		switch {
		case records[i].IsIncome():
			income = income.Add(records[i].Amount)
		case records[i].IsExpense():
			expenses = expenses.Add(records[i].Amount)
		}
	}

	net := income.Sub(expenses)
	return models.Totals{
		Income:           income,
		Expenses:         expenses,
		Net:              net,
		SavingsRate:      percentageOrZero(net, income),
		TransactionCount: len(records),
	}
}

// CategoryBreakdown groups records by category label and computes each group's
// share of the grand total as round(100 * share). The rounded shares are not
// adjusted to sum to 100. Result is ordered by amount desc, then label asc.
func CategoryBreakdown(records []models.Transaction) []models.CategoryShare {
	index := make(map[string]int)
	shares := make([]models.CategoryShare, 0)
	grandTotal := decimal.Zero

	for i := range records {
		label := strings.TrimSpace(records[i].Category)
		pos, ok := index[label]
		if !ok {
			pos = len(shares)
			index[label] = pos
			shares = append(shares, models.CategoryShare{Category: label, TotalAmount: decimal.Zero})
		}
		shares[pos].TotalAmount = shares[pos].TotalAmount.Add(records[i].Amount)
		shares[pos].TransactionCount++
		grandTotal = grandTotal.Add(records[i].Amount)
	}

	for i := range shares {
		if grandTotal.IsZero() {
			continue
		}
		shares[i].Percentage = shares[i].TotalAmount.Mul(hundred).Div(grandTotal).Round(0).IntPart()
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].TotalAmount.Equal(shares[j].TotalAmount) {
			return shares[i].TotalAmount.GreaterThan(shares[j].TotalAmount)
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

// ExpensesOnly returns the expense records of a set
func ExpensesOnly(records []models.Transaction) []models.Transaction {
	return ofType(records, models.TransactionTypeExpense)
}

// IncomeOnly returns the income records of a set
func IncomeOnly(records []models.Transaction) []models.Transaction {
	return ofType(records, models.TransactionTypeIncome)
}

func ofType(records []models.Transaction, txType string) []models.Transaction {
	result := make([]models.Transaction, 0, len(records))
	for i := range records {
		if records[i].Type == txType {
			result = append(result, records[i])
		}
	}
	return result
}

// BudgetStatuses derives spending for each budget from expense transactions in the
// budget's category (case-insensitive) that fall inside the budget's period.
func BudgetStatuses(budgets []models.Budget, transactions []models.Transaction, now time.Time) []models.BudgetStatus {
	statuses := make([]models.BudgetStatus, 0, len(budgets))

	for _, budget := range budgets {
		period := ResolvePeriod(budget.Period, now)
		spent := decimal.Zero
		for i := range transactions {
			t := &transactions[i]
			if !t.IsExpense() {
				continue
			}
			if !strings.EqualFold(strings.TrimSpace(t.Category), strings.TrimSpace(budget.Category)) {
				continue
			}
			if !period.Contains(t.Date) {
				continue
			}
			spent = spent.Add(t.Amount)
		}
		statuses = append(statuses, NewBudgetStatus(budget, spent))
	}

	return statuses
}

// NewBudgetStatus builds the derived view of a budget for a known spent amount
func NewBudgetStatus(budget models.Budget, spent decimal.Decimal) models.BudgetStatus {
	return models.BudgetStatus{
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget.Amount.Sub(spent),
		Percentage: percentageOrZero(spent, budget.Amount),
		OverBudget: spent.GreaterThan(budget.Amount),
	}
}

// BudgetRollup totals a set of budget statuses. A zero total budget reports 0%.
func BudgetRollup(statuses []models.BudgetStatus) models.BudgetRollup {
	budgeted := decimal.Zero
	spent := decimal.Zero
	over := 0

	for i := range statuses {
		budgeted = budgeted.Add(statuses[i].Budget.Amount)
		spent = spent.Add(statuses[i].Spent)
		if statuses[i].OverBudget {
			over++
		}
	}

	return models.BudgetRollup{
		TotalBudgeted:   budgeted,
		TotalSpent:      spent,
		TotalRemaining:  budgeted.Sub(spent),
		Percentage:      percentageOrZero(spent, budgeted),
		BudgetCount:     len(statuses),
		OverBudgetCount: over,
	}
}
