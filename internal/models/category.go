package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
	CategoryTypeOther   = "other"

	// DefaultCategoryColor is applied when a category is created without a color
	DefaultCategoryColor = "#FFA500"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidCategoryType  = errors.New("invalid category type")
	ErrInvalidCategoryColor = errors.New("category color must be a hex color such as #FFA500")

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// Category is a display label used to group transactions and budgets
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null;default:'expense'" json:"type"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#FFA500'" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Type == "" {
		c.Type = CategoryTypeExpense
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	c.Normalize()
	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	c.Normalize()
	return c.Validate()
}

// Normalize trims the free text fields
func (c *Category) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Type = strings.ToLower(strings.TrimSpace(c.Type))
	c.Color = strings.TrimSpace(c.Color)
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	if !IsValidCategoryType(c.Type) {
		return ErrInvalidCategoryType
	}
	if c.Color != "" && !IsValidHexColor(c.Color) {
		return ErrInvalidCategoryColor
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryType checks if a category type is valid
func IsValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeOther:
		return true
	default:
		return false
	}
}

// IsValidHexColor checks for #RGB or #RRGGBB
func IsValidHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

// DefaultCategories returns the starter category set offered on a fresh install
func DefaultCategories() []Category {
	return []Category{
		{Name: "Income", Type: CategoryTypeIncome, Color: "#22C55E"},
		{Name: "Freelance", Type: CategoryTypeIncome, Color: "#16A34A"},
		{Name: "Investment", Type: CategoryTypeIncome, Color: "#15803D"},
		{Name: "Food & Dining", Type: CategoryTypeExpense, Color: "#F97316"},
		{Name: "Groceries", Type: CategoryTypeExpense, Color: "#FB923C"},
		{Name: "Transportation", Type: CategoryTypeExpense, Color: "#3B82F6"},
		{Name: "Fuel & Transport", Type: CategoryTypeExpense, Color: "#60A5FA"},
		{Name: "Entertainment", Type: CategoryTypeExpense, Color: "#A855F7"},
		{Name: "Shopping", Type: CategoryTypeExpense, Color: "#EC4899"},
		{Name: "Utilities", Type: CategoryTypeExpense, Color: "#10B981"},
		{Name: "Healthcare", Type: CategoryTypeExpense, Color: "#EF4444"},
		{Name: "Other", Type: CategoryTypeOther, Color: DefaultCategoryColor},
	}
}
