package dto

import (
	"time"

	"finance-visualizer/internal/models"

	"github.com/google/uuid"
)

// CreateCategoryRequest is the body of POST /categories
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Type  string `json:"type" validate:"omitempty,category_type"`
	Color string `json:"color" validate:"omitempty,hex_color"`
}

// ToModel converts the request into a category ready to insert
func (r *CreateCategoryRequest) ToModel() *models.Category {
	category := &models.Category{
		Name:  r.Name,
		Type:  r.Type,
		Color: r.Color,
	}
	category.Normalize()
	return category
}

// UpdateCategoryRequest is the body of PUT /categories. Nil fields are left unchanged.
type UpdateCategoryRequest struct {
	ID    string  `json:"id"`
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Type  *string `json:"type" validate:"omitempty,category_type"`
	Color *string `json:"color" validate:"omitempty,hex_color"`
}

// ApplyTo overwrites the fields present in the request
func (r *UpdateCategoryRequest) ApplyTo(category *models.Category) {
	if r.Name != nil {
		category.Name = *r.Name
	}
	if r.Type != nil {
		category.Type = *r.Type
	}
	if r.Color != nil {
		category.Color = *r.Color
	}
	category.Normalize()
}

// Category is the wire representation of a category
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCategory maps a model to its wire form
func NewCategory(c *models.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewCategories maps a slice of models, never returning nil
func NewCategories(records []models.Category) []Category {
	out := make([]Category, 0, len(records))
	for i := range records {
		out = append(out, NewCategory(&records[i]))
	}
	return out
}

// CategoryResponse wraps a single category
type CategoryResponse struct {
	Category Category `json:"category"`
}

// ListCategoriesResponse represents the response for listing categories
type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}
