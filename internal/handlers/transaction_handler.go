package handlers

import (
	"net/http"

	"finance-visualizer/internal/dto"
	apierrors "finance-visualizer/internal/errors"
	"finance-visualizer/internal/repositories"
	"finance-visualizer/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles the transaction CRUD endpoints
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ListTransactions returns every transaction, newest first
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	records, err := h.transactionRepo.List(c.Request().Context())
	recordOperation(h.metrics, entityTransaction, "list", err)
	if err != nil {
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.NewTransactions(records),
	})
}

// CreateTransaction stores a new transaction
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	transaction, err := req.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("date must be YYYY-MM-DD"))
	}

	err = h.transactionRepo.Create(c.Request().Context(), transaction)
	recordOperation(h.metrics, entityTransaction, "create", err)
	if err != nil {
		return sendStoreError(c, entityTransaction, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{
		Transaction: dto.NewTransaction(transaction),
	})
}

// UpdateTransaction overwrites the fields present in the body of an existing transaction
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.UpdateTransactionRequest true "Transaction id and changed fields"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /transactions [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}

	ctx := c.Request().Context()
	id, err := parseID(req.ID)
	if err != nil {
		recordOperation(h.metrics, entityTransaction, "update", err)
		return sendStoreError(c, entityTransaction, err)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	transaction, err := h.transactionRepo.GetByID(ctx, id)
	if err != nil {
		recordOperation(h.metrics, entityTransaction, "update", err)
		return sendStoreError(c, entityTransaction, err)
	}

	if err := req.ApplyTo(transaction); err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("date must be YYYY-MM-DD"))
	}

	err = h.transactionRepo.Update(ctx, transaction)
	recordOperation(h.metrics, entityTransaction, "update", err)
	if err != nil {
		return sendStoreError(c, entityTransaction, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{
		Transaction: dto.NewTransaction(transaction),
	})
}

// DeleteTransaction removes the transaction named in the body
// @Summary Delete transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Transaction id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Record store failure"
// @Router /transactions [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	var req dto.DeleteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}

	id, err := parseID(req.ID)
	if err == nil {
		err = h.transactionRepo.Delete(c.Request().Context(), id)
	}
	recordOperation(h.metrics, entityTransaction, "delete", err)
	if err != nil {
		return sendStoreError(c, entityTransaction, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted."})
}
