package handlers

import (
	"errors"
	"net/http"

	"finance-visualizer/internal/dto"
	apierrors "finance-visualizer/internal/errors"
	"finance-visualizer/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the read-only dashboard aggregates
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

var errInvalidQuery = errors.New("invalid query parameters")

// bindDashboardQuery reads and validates the shared filter query parameters
func bindDashboardQuery(c echo.Context) (dto.DashboardQuery, error) {
	var query dto.DashboardQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return query, errInvalidQuery
	}
	if err := c.Validate(&query); err != nil {
		return query, err
	}
	return query, nil
}

func sendQueryError(c echo.Context, err error) error {
	if errors.Is(err, errInvalidQuery) {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}
	return SendValidationError(c, err)
}

// GetSummary returns totals, breakdowns, trend and recent activity for a filter set
// @Summary Dashboard overview
// @Tags Dashboard
// @Produce json
// @Param range query string false "Date range" Enums(all, this-month, last-month, last-3-months, last-6-months, this-year)
// @Param category query string false "Category label or all"
// @Param type query string false "Transaction type or all" Enums(all, income, expense)
// @Param search query string false "Case-insensitive text search"
// @Param recent query int false "Number of recent transactions (max 100)" default(5)
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	query, err := bindDashboardQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	summary, err := h.dashboardService.Summary(c.Request().Context(), query)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetTransactions returns the filtered transaction list with its totals
// @Summary Filtered transactions
// @Tags Dashboard
// @Produce json
// @Param range query string false "Date range"
// @Param category query string false "Category label or all"
// @Param type query string false "Transaction type or all"
// @Param search query string false "Case-insensitive text search"
// @Success 200 {object} dto.FilteredTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/transactions [get]
func (h *DashboardHandler) GetTransactions(c echo.Context) error {
	query, err := bindDashboardQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	result, err := h.dashboardService.FilteredTransactions(c.Request().Context(), query)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetBudgets returns every budget with its derived spending and the rollup
// @Summary Budget overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.BudgetOverviewResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/budgets [get]
func (h *DashboardHandler) GetBudgets(c echo.Context) error {
	overview, err := h.dashboardService.BudgetOverview(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}

// GetCategories returns the categories with expense and income breakdowns
// @Summary Category overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.CategoryOverviewResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/categories [get]
func (h *DashboardHandler) GetCategories(c echo.Context) error {
	query, err := bindDashboardQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	overview, err := h.dashboardService.CategoryOverview(c.Request().Context(), query)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}
