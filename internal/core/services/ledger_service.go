package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"
)

// ledgerService provides the transaction ledger operations.
type ledgerService struct {
	transactionRepo portsrepo.TransactionRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(transactionRepo portsrepo.TransactionRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{transactionRepo: transactionRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateTransactionFields checks the invariants shared by create and update:
// a known type and method, and a category label.
func validateTransactionFields(txnType domain.TransactionType, method domain.PaymentMethod, category string) error {
	if !domain.ValidTransactionType(txnType) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown transaction type %q", txnType))
	}
	if !domain.ValidPaymentMethod(method) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown payment method %q", method))
	}
	if category == "" {
		return apperrors.NewValidationError("category is required")
	}
	return nil
}

// AddTransaction validates and inserts a manual ledger entry.
func (s *ledgerService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount must not be negative")
	}
	if err := validateTransactionFields(req.Type, req.PaymentMethod, req.Category); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Now().UTC(),
		Amount:        req.Amount,
		Category:      req.Category,
		Type:          req.Type,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction added",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// UpdateTransaction replaces the full record behind transactionID. The id is
// preserved; the date is taken as supplied by the caller.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount must not be negative")
	}
	if err := validateTransactionFields(req.Type, req.PaymentMethod, req.Category); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: transactionID,
		Date:          req.Date,
		Amount:        req.Amount,
		Category:      req.Category,
		Type:          req.Type,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		StaffID:       req.StaffID,
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
		// Propagate NotFound untouched so handlers can map it.
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return &txn, nil
}

// RemoveTransaction deletes the record. Delete is advisory: removing an
// absent id succeeds without effect.
func (s *ledgerService) RemoveTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Error("Failed to delete transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction removed", slog.String("transaction_id", transactionID))
	return nil
}

// ListTransactions returns a most-recent-first snapshot copy of the ledger.
func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
