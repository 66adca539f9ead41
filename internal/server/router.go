// Package server assembles the HTTP API: middleware chain, handlers and routes.
package server

import (
	"net/http"

	"finance-visualizer/internal/handlers"
	"finance-visualizer/internal/middleware"
	"finance-visualizer/internal/repositories"
	"finance-visualizer/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Dependencies are the collaborators the routes are wired to
type Dependencies struct {
	Health          handlers.HealthChecker
	TransactionRepo repositories.TransactionRepositoryInterface
	BudgetRepo      repositories.BudgetRepositoryInterface
	CategoryRepo    repositories.CategoryRepositoryInterface
	Dashboard       services.DashboardServiceInterface
	Metrics         services.MetricsRecorderInterface

	// MetricsHandler serves /metrics when set
	MetricsHandler   http.Handler
	CORSAllowOrigins []string
}

// NewRouter returns an echo instance with every route registered
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Trace-ID"},
	}))

	health := handlers.NewHealthCheckHandler(deps.Health)
	e.GET("/health", health.HealthCheck)
	if deps.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(deps.MetricsHandler))
	}

	api := e.Group("/api/v1")

	transactions := handlers.NewTransactionHandler(deps.TransactionRepo, deps.Metrics)
	api.GET("/transactions", transactions.ListTransactions)
	api.POST("/transactions", transactions.CreateTransaction)
	api.PUT("/transactions", transactions.UpdateTransaction)
	api.DELETE("/transactions", transactions.DeleteTransaction)

	budgets := handlers.NewBudgetHandler(deps.BudgetRepo, deps.Metrics)
	api.GET("/budgets", budgets.ListBudgets)
	api.POST("/budgets", budgets.CreateBudget)
	api.PUT("/budgets", budgets.UpdateBudget)
	api.DELETE("/budgets", budgets.DeleteBudget)

	categories := handlers.NewCategoryHandler(deps.CategoryRepo, deps.Metrics)
	api.GET("/categories", categories.ListCategories)
	api.POST("/categories", categories.CreateCategory)
	api.PUT("/categories", categories.UpdateCategory)
	api.DELETE("/categories", categories.DeleteCategory)

	dashboard := handlers.NewDashboardHandler(deps.Dashboard)
	api.GET("/dashboard/summary", dashboard.GetSummary)
	api.GET("/dashboard/transactions", dashboard.GetTransactions)
	api.GET("/dashboard/budgets", dashboard.GetBudgets)
	api.GET("/dashboard/categories", dashboard.GetCategories)

	views := handlers.NewViewHandler(deps.Dashboard)
	api.GET("/views", views.ListViews)
	api.GET("/views/:view", views.GetView)

	return e
}
