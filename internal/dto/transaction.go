package dto

import (
	"time"

	"finance-visualizer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /transactions
type CreateTransactionRequest struct {
	Type        string           `json:"type" validate:"required,transaction_type"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,money"`
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`
	Name        string           `json:"name" validate:"omitempty,max=255"`
	Description string           `json:"description" validate:"required,notblank,max=500"`
	Category    string           `json:"category" validate:"required,notblank,max=100"`
	Status      string           `json:"status" validate:"omitempty,transaction_status"`
	Account     string           `json:"account" validate:"omitempty,max=100"`
}

// ToModel converts the request into a transaction ready to insert
func (r *CreateTransactionRequest) ToModel() (*models.Transaction, error) {
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		Type:        r.Type,
		Amount:      *r.Amount,
		Date:        date,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		Account:     r.Account,
	}
	if txn.Status == "" {
		txn.Status = models.TransactionStatusSuccess
	}
	txn.Normalize()
	return txn, nil
}

// UpdateTransactionRequest is the body of PUT /transactions. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	ID          string           `json:"id"`
	Type        *string          `json:"type" validate:"omitempty,transaction_type"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,money"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Status      *string          `json:"status" validate:"omitempty,transaction_status"`
	Account     *string          `json:"account" validate:"omitempty,max=100"`
}

// ApplyTo overwrites the fields present in the request
func (r *UpdateTransactionRequest) ApplyTo(txn *models.Transaction) error {
	if r.Type != nil {
		txn.Type = *r.Type
	}
	if r.Amount != nil {
		txn.Amount = *r.Amount
	}
	if r.Date != nil {
		date, err := models.ParseDate(*r.Date)
		if err != nil {
			return err
		}
		txn.Date = date
	}
	if r.Name != nil {
		txn.Name = *r.Name
	}
	if r.Description != nil {
		txn.Description = *r.Description
	}
	if r.Category != nil {
		txn.Category = *r.Category
	}
	if r.Status != nil {
		txn.Status = *r.Status
	}
	if r.Account != nil {
		txn.Account = *r.Account
	}
	txn.Normalize()
	return nil
}

// Transaction is the wire representation of a transaction
type Transaction struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Name        string    `json:"name,omitempty"`
	DisplayName string    `json:"displayName"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Account     string    `json:"account,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTransaction maps a model to its wire form
func NewTransaction(t *models.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount.StringFixed(2),
		Date:        t.Date.Format(models.DateLayout),
		Name:        t.Name,
		DisplayName: t.DisplayName(),
		Description: t.Description,
		Category:    t.Category,
		Status:      t.Status,
		Account:     t.Account,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTransactions maps a slice of models, never returning nil
func NewTransactions(records []models.Transaction) []Transaction {
	out := make([]Transaction, 0, len(records))
	for i := range records {
		out = append(out, NewTransaction(&records[i]))
	}
	return out
}

// TransactionResponse wraps a single transaction
type TransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}
