package dto

import (
	"time"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for manual transaction entry.
// The creation timestamp is assigned server-side.
type CreateTransactionRequest struct {
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	Category      string               `json:"category" binding:"required"`
	Type          domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,paymentmethod"`
	Notes         string               `json:"notes"`
}

// UpdateTransactionRequest replaces the full record behind an existing id.
// Date is taken as supplied; callers preserve the original creation date
// unless the edit is intentionally re-dating the record.
type UpdateTransactionRequest struct {
	Date          time.Time            `json:"date" binding:"required"`
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	Category      string               `json:"category" binding:"required"`
	Type          domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,paymentmethod"`
	Notes         string               `json:"notes"`
	StaffID       string               `json:"staffID"`
}

// TransactionResponse is the API representation of a ledger transaction.
type TransactionResponse struct {
	TransactionID string               `json:"transactionID"`
	Date          time.Time            `json:"date"`
	Amount        decimal.Decimal      `json:"amount"`
	Category      string               `json:"category"`
	Type          domain.TransactionType `json:"type"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Notes         string               `json:"notes"`
	StaffID       string               `json:"staffID,omitempty"`
}

// ListTransactionsResponse wraps the most-recent-first transaction list.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date,
		Amount:        txn.Amount,
		Category:      txn.Category,
		Type:          txn.Type,
		PaymentMethod: txn.PaymentMethod,
		Notes:         txn.Notes,
		StaffID:       txn.StaffID,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
