package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	TransactionStatusSuccess = "success"
	TransactionStatusPending = "pending"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("amount must not be negative")
	ErrDescriptionRequired      = errors.New("transaction description is required")
	ErrCategoryRequired         = errors.New("category is required")
	ErrDateRequired             = errors.New("transaction date is required")
	ErrCategoryTooLong          = errors.New("category label must be at most 100 characters")
)

// Transaction represents a single income or expense entry
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Type        string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Name        string          `gorm:"type:varchar(255)" json:"name,omitempty"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Status      string          `gorm:"type:varchar(20);not null;default:'success'" json:"status"`
	Account     string          `gorm:"type:varchar(100)" json:"account,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.Normalize()
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	t.Normalize()
	return t.Validate()
}

// Normalize trims free text, defaults an empty status to success and truncates
// the date to a calendar day
func (t *Transaction) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	t.Account = strings.TrimSpace(t.Account)
	t.Type = strings.ToLower(strings.TrimSpace(t.Type))
	t.Status = strings.ToLower(strings.TrimSpace(t.Status))
	if t.Status == "" {
		t.Status = TransactionStatusSuccess
	}
	if !t.Date.IsZero() {
		t.Date = CalendarDate(t.Date)
	}
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if t.Date.IsZero() {
		return ErrDateRequired
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrCategoryRequired
	}

	if len(t.Category) > 100 {
		return ErrCategoryTooLong
	}

	return nil
}

// DisplayName returns the name shown in lists, falling back to the description
func (t *Transaction) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Description
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusSuccess, TransactionStatusPending:
		return true
	default:
		return false
	}
}

// CalendarDate drops the clock and zone of t, keeping its year, month and day
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}
