package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Well-known budget period labels. Any other label is accepted and stored as-is.
const (
	BudgetPeriodWeekly    = "weekly"
	BudgetPeriodMonthly   = "monthly"
	BudgetPeriodQuarterly = "quarterly"
	BudgetPeriodYearly    = "yearly"
)

var (
	ErrBudgetCategoryRequired = errors.New("budget category is required")
	ErrBudgetPeriodRequired   = errors.New("budget period is required")
	ErrInvalidBudgetAmount    = errors.New("budget amount must not be negative")
)

// Budget is a planned spending limit for one category over a period
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category  string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period    string          `gorm:"type:varchar(50);not null;index" json:"period"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	b.Normalize()
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	b.Normalize()
	return b.Validate()
}

// Normalize trims the free text fields
func (b *Budget) Normalize() {
	b.Category = strings.TrimSpace(b.Category)
	b.Period = strings.TrimSpace(b.Period)
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrBudgetCategoryRequired
	}
	if strings.TrimSpace(b.Period) == "" {
		return ErrBudgetPeriodRequired
	}
	if b.Amount.IsNegative() {
		return ErrInvalidBudgetAmount
	}
	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
