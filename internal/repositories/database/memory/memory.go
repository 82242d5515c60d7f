// Package memory provides in-memory repository implementations used by tests
// and as a reference for the persistence contract.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
)

// Repository holds all collections behind one lock so cross-collection
// payroll writes stay atomic with respect to readers.
type Repository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	staff        []domain.StaffMember
	profile      *domain.ShopProfile

	// FailNextPayrollSave, when set, makes the next SavePayrollRun fail.
	// Tests use it to verify the both-or-neither guarantee.
	FailNextPayrollSave bool
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{}
}

var (
	_ portsrepo.TransactionRepository = (*Repository)(nil)
	_ portsrepo.PayrollRepository     = (*Repository)(nil)
	_ portsrepo.ProfileRepository     = (*Repository)(nil)
)

// SaveTransaction inserts at the front of recency ordering.
func (r *Repository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append([]domain.Transaction{txn}, r.transactions...)
	return nil
}

// UpdateTransaction replaces the record with a matching id.
func (r *Repository) UpdateTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.transactions {
		if r.transactions[i].TransactionID == txn.TransactionID {
			r.transactions[i] = txn
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// DeleteTransaction removes the record; absent ids are a no-op.
func (r *Repository) DeleteTransaction(_ context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.transactions {
		if r.transactions[i].TransactionID == transactionID {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

// FindTransactionByID returns a copy of the matching record.
func (r *Repository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.transactions {
		if r.transactions[i].TransactionID == transactionID {
			txn := r.transactions[i]
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTransactions returns a most-recent-first copy.
func (r *Repository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// SaveStaff appends a staff record.
func (r *Repository) SaveStaff(_ context.Context, staff domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staff = append(r.staff, staff)
	return nil
}

// UpdateStaff replaces the record with a matching id.
func (r *Repository) UpdateStaff(_ context.Context, staff domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replaceStaffLocked(staff)
}

func (r *Repository) replaceStaffLocked(staff domain.StaffMember) error {
	for i := range r.staff {
		if r.staff[i].StaffID == staff.StaffID {
			r.staff[i] = staff
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// FindStaffByID returns a copy of the matching record.
func (r *Repository) FindStaffByID(_ context.Context, staffID string) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.staff {
		if r.staff[i].StaffID == staffID {
			member := r.staff[i]
			return &member, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListStaff returns a copy of the staff collection.
func (r *Repository) ListStaff(_ context.Context) ([]domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.StaffMember, len(r.staff))
	copy(out, r.staff)
	return out, nil
}

// SavePayrollRun appends the transaction and replaces the staff record under
// one lock: both land or neither does.
func (r *Repository) SavePayrollRun(_ context.Context, txn domain.Transaction, staff domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailNextPayrollSave {
		r.FailNextPayrollSave = false
		return fmt.Errorf("%w: injected payroll save failure", apperrors.ErrInternal)
	}
	if err := r.replaceStaffLocked(staff); err != nil {
		return err
	}
	r.transactions = append([]domain.Transaction{txn}, r.transactions...)
	return nil
}

// SaveProfile stores the single shop profile.
func (r *Repository) SaveProfile(_ context.Context, profile domain.ShopProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = &profile
	return nil
}

// FindProfile returns the stored profile or ErrNotFound.
func (r *Repository) FindProfile(_ context.Context) (*domain.ShopProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return nil, apperrors.ErrNotFound
	}
	profile := *r.profile
	return &profile, nil
}
