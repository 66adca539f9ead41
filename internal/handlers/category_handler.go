package handlers

import (
	"net/http"

	"finance-visualizer/internal/dto"
	apierrors "finance-visualizer/internal/errors"
	"finance-visualizer/internal/repositories"
	"finance-visualizer/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles the category CRUD endpoints
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      services.MetricsRecorderInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryInterface, metrics services.MetricsRecorderInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// ListCategories returns every category ordered by name
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.List(c.Request().Context())
	recordOperation(h.metrics, entityCategory, "list", err)
	if err != nil {
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: dto.NewCategories(categories)})
}

// CreateCategory stores a new category. Names are unique regardless of case.
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category name already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	category := req.ToModel()
	err := h.categoryRepo.Create(c.Request().Context(), category)
	recordOperation(h.metrics, entityCategory, "create", err)
	if err != nil {
		return sendStoreError(c, entityCategory, err)
	}

	return c.JSON(http.StatusCreated, dto.CategoryResponse{Category: dto.NewCategory(category)})
}

// UpdateCategory overwrites the fields present in the body of an existing category
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.UpdateCategoryRequest true "Category id and changed fields"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category name already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /categories [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}

	ctx := c.Request().Context()
	id, err := parseID(req.ID)
	if err != nil {
		recordOperation(h.metrics, entityCategory, "update", err)
		return sendStoreError(c, entityCategory, err)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	category, err := h.categoryRepo.GetByID(ctx, id)
	if err != nil {
		recordOperation(h.metrics, entityCategory, "update", err)
		return sendStoreError(c, entityCategory, err)
	}

	req.ApplyTo(category)
	err = h.categoryRepo.Update(ctx, category)
	recordOperation(h.metrics, entityCategory, "update", err)
	if err != nil {
		return sendStoreError(c, entityCategory, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryResponse{Category: dto.NewCategory(category)})
}

// DeleteCategory removes the category named in the body. Transactions keep their label.
// @Summary Delete category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Category id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /categories [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	var req dto.DeleteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}

	id, err := parseID(req.ID)
	if err == nil {
		err = h.categoryRepo.Delete(c.Request().Context(), id)
	}
	recordOperation(h.metrics, entityCategory, "delete", err)
	if err != nil {
		return sendStoreError(c, entityCategory, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted."})
}
