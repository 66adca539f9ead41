package handlers

import (
	"net/http"

	"finance-visualizer/internal/dto"
	apierrors "finance-visualizer/internal/errors"
	"finance-visualizer/internal/repositories"
	"finance-visualizer/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles the budget CRUD endpoints
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetRepo repositories.BudgetRepositoryInterface, metrics services.MetricsRecorderInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetRepo: budgetRepo,
		metrics:    metrics,
	}
}

// ListBudgets returns every stored budget
// @Summary List budgets
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	budgets, err := h.budgetRepo.List(c.Request().Context())
	recordOperation(h.metrics, entityBudget, "list", err)
	if err != nil {
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListBudgetsResponse{Budgets: dto.NewBudgets(budgets)})
}

// CreateBudget stores a new budget
// @Summary Create budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	budget := req.ToModel()
	err := h.budgetRepo.Create(c.Request().Context(), budget)
	recordOperation(h.metrics, entityBudget, "create", err)
	if err != nil {
		return sendStoreError(c, entityBudget, err)
	}

	return c.JSON(http.StatusCreated, dto.BudgetResponse{Budget: dto.NewBudget(budget)})
}

// UpdateBudget overwrites the fields present in the body of an existing budget
// @Summary Update budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.UpdateBudgetRequest true "Budget id and changed fields"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /budgets [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}

	ctx := c.Request().Context()
	id, err := parseID(req.ID)
	if err != nil {
		recordOperation(h.metrics, entityBudget, "update", err)
		return sendStoreError(c, entityBudget, err)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	budget, err := h.budgetRepo.GetByID(ctx, id)
	if err != nil {
		recordOperation(h.metrics, entityBudget, "update", err)
		return sendStoreError(c, entityBudget, err)
	}

	req.ApplyTo(budget)
	err = h.budgetRepo.Update(ctx, budget)
	recordOperation(h.metrics, entityBudget, "update", err)
	if err != nil {
		return sendStoreError(c, entityBudget, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{Budget: dto.NewBudget(budget)})
}

// DeleteBudget removes the budget named in the body
// @Summary Delete budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Budget id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /budgets [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	var req dto.DeleteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}

	id, err := parseID(req.ID)
	if err == nil {
		err = h.budgetRepo.Delete(c.Request().Context(), id)
	}
	recordOperation(h.metrics, entityBudget, "delete", err)
	if err != nil {
		return sendStoreError(c, entityBudget, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted."})
}
