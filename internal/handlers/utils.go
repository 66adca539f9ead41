package handlers

import (
	"errors"
	"strings"

	apierrors "finance-visualizer/internal/errors"
	"finance-visualizer/internal/models"
	"finance-visualizer/internal/repositories"
	"finance-visualizer/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// errMissingID is returned by parseID for an absent or malformed id
var errMissingID = errors.New("missing or malformed id")

// Entity names used in metrics and not-found codes
const (
	entityTransaction = "transaction"
	entityBudget      = "budget"
	entityCategory    = "category"
)

// parseID parses a record id taken from a request body
func parseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errMissingID
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errMissingID
	}
	return id, nil
}

// modelErrorCodes maps model validation failures raised by gorm hooks to API codes
var modelErrorCodes = []struct {
	err  error
	code apierrors.ErrorCode
}{
	{models.ErrInvalidTransactionType, apierrors.TransactionInvalidType},
	{models.ErrInvalidAmount, apierrors.TransactionInvalidAmount},
	{models.ErrInvalidBudgetAmount, apierrors.BudgetInvalidAmount},
	{models.ErrInvalidCategoryColor, apierrors.CategoryInvalidColor},
	{models.ErrInvalidTransactionStatus, apierrors.ValidationGeneral},
	{models.ErrDescriptionRequired, apierrors.ValidationRequiredField},
	{models.ErrCategoryRequired, apierrors.ValidationRequiredField},
	{models.ErrCategoryTooLong, apierrors.ValidationOutOfRange},
	{models.ErrDateRequired, apierrors.ValidationRequiredField},
	{models.ErrBudgetCategoryRequired, apierrors.ValidationRequiredField},
	{models.ErrBudgetPeriodRequired, apierrors.ValidationRequiredField},
	{models.ErrCategoryNameRequired, apierrors.ValidationRequiredField},
	{models.ErrInvalidCategoryType, apierrors.ValidationGeneral},
}

// sendStoreError maps an error from a repository call to its API response
func sendStoreError(c echo.Context, entity string, err error) error {
	switch {
	case errors.Is(err, errMissingID),
		errors.Is(err, repositories.ErrTransactionNotFound),
		errors.Is(err, repositories.ErrBudgetNotFound),
		errors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, apierrors.NotFoundCode(entity))
	case errors.Is(err, repositories.ErrCategoryNameTaken):
		return SendError(c, apierrors.CategoryAlreadyExists)
	}

	for _, mapping := range modelErrorCodes {
		if errors.Is(err, mapping.err) {
			return SendError(c, mapping.code, apierrors.WithDetails(mapping.err.Error()))
		}
	}

	return SendDatabaseError(c, err)
}

// operationStatus classifies an error for the CRUD operations counter
func operationStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, repositories.ErrTransactionNotFound),
		errors.Is(err, repositories.ErrBudgetNotFound),
		errors.Is(err, repositories.ErrCategoryNotFound),
		errors.Is(err, errMissingID):
		return "not_found"
	case errors.Is(err, repositories.ErrCategoryNameTaken):
		return "conflict"
	default:
		return "error"
	}
}

func recordOperation(metrics services.MetricsRecorderInterface, entity, operation string, err error) {
	metrics.IncrementCounter(services.MetricCRUDOperation, map[string]string{
		"entity":    entity,
		"operation": operation,
		"status":    operationStatus(err),
	})
}
