package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "finance-visualizer/internal/errors"
	"finance-visualizer/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers never build error bodies themselves:
//
// 1. SendError for client errors (4xx), e.g. SendError(c, apierrors.TransactionNotFound)
// 2. SendValidationError for failures returned by c.Validate
// 3. SendDatabaseError for record store failures and SendSystemError for anything
//    else unexpected (500). The cause is logged with the trace ID and never sent
//    to the client.

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apierrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	return middleware.GetTraceID(c)
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := apierrors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError renders validator field errors as VALIDATION_001 with one
// detail per field
func SendValidationError(c echo.Context, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = middleware.FormatValidationError(fe)
	}
	return c.JSON(http.StatusBadRequest, apierrors.NewValidationError(details, getTraceID(c)))
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := apierrors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError is SendSystemError for failures reported by the record store
func SendDatabaseError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := apierrors.WrapDatabaseError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "record store error",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
