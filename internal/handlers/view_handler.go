package handlers

import (
	"errors"
	"net/http"

	apierrors "finance-visualizer/internal/errors"
	"finance-visualizer/internal/models"
	"finance-visualizer/internal/services"

	"github.com/labstack/echo/v4"
)

// ViewHandler resolves a navigation selection to the content of exactly one view
type ViewHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewViewHandler creates a new view handler
func NewViewHandler(dashboardService services.DashboardServiceInterface) *ViewHandler {
	return &ViewHandler{dashboardService: dashboardService}
}

// ListViews returns the selectable views in navigation order
// @Summary List views
// @Tags Views
// @Produce json
// @Success 200 {object} object{views=[]string}
// @Router /views [get]
func (h *ViewHandler) ListViews(c echo.Context) error {
	views := models.AllViews()
	names := make([]string, 0, len(views))
	for _, view := range views {
		names = append(names, string(view))
	}
	return c.JSON(http.StatusOK, map[string][]string{"views": names})
}

// GetView returns the content of the selected view
// @Summary Show view
// @Tags Views
// @Produce json
// @Param view path string true "View" Enums(overview, transactions, budgets, categories)
// @Success 200 {object} dto.ViewResponse
// @Failure 404 {object} errors.ErrorResponse "VIEW_001 - Unknown view"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /views/{view} [get]
func (h *ViewHandler) GetView(c echo.Context) error {
	view, err := models.ParseView(c.Param("view"))
	if err != nil {
		return SendError(c, apierrors.ViewNotFound)
	}

	query, err := bindDashboardQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	content, err := h.dashboardService.ViewContent(c.Request().Context(), view, query)
	if err != nil {
		if errors.Is(err, models.ErrUnknownView) {
			return SendError(c, apierrors.ViewNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, content)
}
