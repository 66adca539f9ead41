package dto

import (
	"time"

	"finance-visualizer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest is the body of POST /budgets
type CreateBudgetRequest struct {
	Category string           `json:"category" validate:"required,notblank,max=100"`
	Amount   *decimal.Decimal `json:"amount" validate:"required,money"`
	Period   string           `json:"period" validate:"required,notblank,max=50"`
}

// ToModel converts the request into a budget ready to insert
func (r *CreateBudgetRequest) ToModel() *models.Budget {
	budget := &models.Budget{
		Category: r.Category,
		Amount:   *r.Amount,
		Period:   r.Period,
	}
	budget.Normalize()
	return budget
}

// UpdateBudgetRequest is the body of PUT /budgets. Nil fields are left unchanged.
type UpdateBudgetRequest struct {
	ID       string           `json:"id"`
	Category *string          `json:"category" validate:"omitempty,max=100"`
	Amount   *decimal.Decimal `json:"amount" validate:"omitempty,money"`
	Period   *string          `json:"period" validate:"omitempty,max=50"`
}

// ApplyTo overwrites the fields present in the request
func (r *UpdateBudgetRequest) ApplyTo(budget *models.Budget) {
	if r.Category != nil {
		budget.Category = *r.Category
	}
	if r.Amount != nil {
		budget.Amount = *r.Amount
	}
	if r.Period != nil {
		budget.Period = *r.Period
	}
	budget.Normalize()
}

// Budget is the wire representation of a stored budget
type Budget struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBudget maps a model to its wire form
func NewBudget(b *models.Budget) Budget {
	return Budget{
		ID:        b.ID,
		Category:  b.Category,
		Amount:    b.Amount.StringFixed(2),
		Period:    b.Period,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// NewBudgets maps a slice of models, never returning nil
func NewBudgets(records []models.Budget) []Budget {
	out := make([]Budget, 0, len(records))
	for i := range records {
		out = append(out, NewBudget(&records[i]))
	}
	return out
}

// BudgetResponse wraps a single budget
type BudgetResponse struct {
	Budget Budget `json:"budget"`
}

// ListBudgetsResponse represents the response for listing budgets
type ListBudgetsResponse struct {
	Budgets []Budget `json:"budgets"`
}
