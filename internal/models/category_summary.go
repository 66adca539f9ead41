package models

import "github.com/shopspring/decimal"

// CategoryShare contains aggregated transaction data for one category label.
// Percentage is round(100 * share) computed per category, so the shares of a
// breakdown are not guaranteed to add up to exactly 100.
type CategoryShare struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Percentage       int64           `json:"percentage"`
}
