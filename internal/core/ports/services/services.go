package services

import (
	"context"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade exposes the transaction ledger operations.
type LedgerSvcFacade interface {
	// AddTransaction validates and inserts a manual entry, assigning id and date.
	// Returns apperrors.ErrValidation on malformed input.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	// UpdateTransaction replaces the record behind transactionID, preserving the id.
	// Returns apperrors.ErrNotFound for an unknown id.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	// RemoveTransaction deletes the record; removal of an absent id is a no-op.
	RemoveTransaction(ctx context.Context, transactionID string) error
	// ListTransactions returns a most-recent-first snapshot copy.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// PayrollSvcFacade exposes staff registration and the payroll state machine.
type PayrollSvcFacade interface {
	RegisterStaff(ctx context.Context, req dto.RegisterStaffRequest) (*domain.StaffMember, error)
	UpdateStaffDetails(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.StaffMember, error)
	GetStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error)
	ListStaff(ctx context.Context) ([]domain.StaffMember, error)
	// ProcessWeeklyPay pays out 40% of the fixed base pay now and escrows 60%,
	// appending one EXPENSE transaction atomically with the balance mutation.
	ProcessWeeklyPay(ctx context.Context, staffID string) (*domain.PayrollRun, error)
	// SettleMonthlyHold pays out the full held balance and resets it to zero.
	// With a zero balance it returns Settled=false and appends nothing.
	SettleMonthlyHold(ctx context.Context, staffID string) (*domain.PayrollRun, error)
	// TotalEscrowLiability sums the held balances over all staff.
	TotalEscrowLiability(ctx context.Context) (decimal.Decimal, error)
}

// ReportingSvcFacade exposes pure reads over the ledger snapshot.
type ReportingSvcFacade interface {
	ComputeTotals(ctx context.Context) (*domain.Totals, error)
	ComputePaymentBreakdown(ctx context.Context) (map[domain.PaymentMethod]decimal.Decimal, error)
	// ComputeDailyTrend returns exactly 7 points for the UTC calendar days
	// ending today, oldest first.
	ComputeDailyTrend(ctx context.Context) ([]domain.TrendPoint, error)
}

// ProfileSvcFacade exposes the shop profile and onboarding flag.
type ProfileSvcFacade interface {
	GetProfile(ctx context.Context) (*domain.ShopProfile, error)
	SaveProfile(ctx context.Context, req dto.SaveProfileRequest) (*domain.ShopProfile, error)
}

// AdvisorSvcFacade generates business advice from a ledger snapshot. The
// external call may fail; implementations return a static fallback instead
// of propagating that failure.
type AdvisorSvcFacade interface {
	BusinessAdvice(ctx context.Context) (*dto.AdviceResponse, error)
}

// ExportSvcFacade renders collections as delimited text for download.
type ExportSvcFacade interface {
	TransactionsCSV(ctx context.Context) ([]byte, error)
	StaffCSV(ctx context.Context) ([]byte, error)
}

// ServiceContainer bundles all service facades for handler registration.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Payroll   PayrollSvcFacade
	Reporting ReportingSvcFacade
	Profile   ProfileSvcFacade
	Advisor   AdvisorSvcFacade
	Export    ExportSvcFacade
}
