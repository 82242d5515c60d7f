package repositories

import (
	"context"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
)

// TransactionRepository owns the persisted transaction collection.
// Implementations persist the full collection on every mutation.
type TransactionRepository interface {
	// SaveTransaction inserts a new record at the front of recency ordering.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// UpdateTransaction replaces the record with a matching TransactionID.
	// Returns apperrors.ErrNotFound if no such record exists.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction removes the record. Deleting an absent id is a no-op.
	DeleteTransaction(ctx context.Context, transactionID string) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactions returns a most-recent-first copy of the collection.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// StaffRepository owns the persisted staff collection.
type StaffRepository interface {
	SaveStaff(ctx context.Context, staff domain.StaffMember) error
	// UpdateStaff replaces the record with a matching StaffID.
	// Returns apperrors.ErrNotFound if no such record exists.
	UpdateStaff(ctx context.Context, staff domain.StaffMember) error
	FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error)
	ListStaff(ctx context.Context) ([]domain.StaffMember, error)
}

// PayrollRepository extends StaffRepository with the cross-collection write a
// payroll operation needs: one appended transaction plus one staff balance
// mutation, both-or-neither.
type PayrollRepository interface {
	StaffRepository
	SavePayrollRun(ctx context.Context, txn domain.Transaction, staff domain.StaffMember) error
}

// ProfileRepository owns the single shop profile record.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, profile domain.ShopProfile) error
	// FindProfile returns apperrors.ErrNotFound before onboarding has stored one.
	FindProfile(ctx context.Context) (*domain.ShopProfile, error)
}

// RepositoryProvider bundles the repositories handed to the service container.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
	PayrollRepo     PayrollRepository
	ProfileRepo     ProfileRepository
}
