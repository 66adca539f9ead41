package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"finance-visualizer/internal/models"
	"finance-visualizer/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id := uuid.New()

	parsed, err := parseID("  " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	for _, raw := range []string{"", "   ", "abc", uuid.Nil.String()} {
		_, err := parseID(raw)
		assert.ErrorIs(t, err, errMissingID, raw)
	}
}

func TestOperationStatus(t *testing.T) {
	assert.Equal(t, "success", operationStatus(nil))
	assert.Equal(t, "not_found", operationStatus(errMissingID))
	assert.Equal(t, "not_found", operationStatus(fmt.Errorf("wrapped: %w", repositories.ErrBudgetNotFound)))
	assert.Equal(t, "conflict", operationStatus(repositories.ErrCategoryNameTaken))
	assert.Equal(t, "error", operationStatus(assert.AnError))
}

func TestSendStoreError(t *testing.T) {
	testCases := []struct {
		name   string
		entity string
		err    error
		status int
		code   string
	}{
		{"missing id", entityBudget, errMissingID, http.StatusNotFound, "BUDGET_001"},
		{"category not found", entityCategory, repositories.ErrCategoryNotFound, http.StatusNotFound, "CATEGORY_001"},
		{"name taken", entityCategory, repositories.ErrCategoryNameTaken, http.StatusConflict, "CATEGORY_002"},
		{"invalid type", entityTransaction, fmt.Errorf("create: %w", models.ErrInvalidTransactionType), http.StatusBadRequest, "TRANSACTION_003"},
		{"invalid color", entityCategory, models.ErrInvalidCategoryColor, http.StatusBadRequest, "CATEGORY_003"},
		{"budget amount", entityBudget, models.ErrInvalidBudgetAmount, http.StatusBadRequest, "BUDGET_002"},
		{"required field", entityTransaction, models.ErrDescriptionRequired, http.StatusBadRequest, "VALIDATION_002"},
		{"unexpected", entityTransaction, assert.AnError, http.StatusInternalServerError, "SYSTEM_002"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newGetContext(newTestEcho(), "/")
			require.NoError(t, sendStoreError(c, tc.entity, tc.err))
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, decodeErrorResponse(t, rec).Error.Code)
		})
	}
}
