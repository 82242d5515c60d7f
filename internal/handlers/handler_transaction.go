package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.addTransaction)
		transactions.GET("", h.listTransactions)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.removeTransaction)
	}
}

// addTransaction godoc
// @Summary Add a transaction
// @Description Records a new income or expense entry in the ledger
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /transactions [post]
func (h *transactionHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for add transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to add transaction in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns all ledger transactions, most recent first
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.ledgerService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces the full record behind an existing transaction id
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Replacement record"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Transaction not found for update", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		default:
			logger.Error("Failed to update transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// removeTransaction godoc
// @Summary Remove a transaction
// @Description Deletes a transaction; removing an unknown id succeeds without effect
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) removeTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.ledgerService.RemoveTransaction(c.Request.Context(), transactionID); err != nil {
		logger.Error("Failed to remove transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}
