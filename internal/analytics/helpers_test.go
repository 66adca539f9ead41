package analytics

import (
	"time"

	"finance-visualizer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func newTx(txType string, amount int64, date time.Time, category, description string) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		Type:        txType,
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		Description: description,
		Category:    category,
		Status:      models.TransactionStatusSuccess,
	}
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		newTx(models.TransactionTypeIncome, 45000, day(2025, time.August, 20), "Income", "Salary Credit"),
		newTx(models.TransactionTypeExpense, 450, day(2025, time.August, 22), "Food & Dining", "Swiggy Order"),
		newTx(models.TransactionTypeExpense, 1200, day(2025, time.July, 3), "Fuel & Transport", "Petrol Pump"),
		newTx(models.TransactionTypeExpense, 3000, day(2025, time.June, 15), "Shopping", "Amazon Purchase"),
		newTx(models.TransactionTypeIncome, 8000, day(2025, time.June, 1), "Freelance", "Logo Design"),
		newTx(models.TransactionTypeExpense, 800, day(2024, time.December, 31), "Food & Dining", "New Year Dinner"),
	}
}
