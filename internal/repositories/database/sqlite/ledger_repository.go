// Package sqlite persists the ledger as JSON blobs in a sqlite key-value
// table: the full transaction, staff and profile collections each live under
// their own key and are rewritten on every mutation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
)

// LedgerRepository implements all repository ports over one kv_store table.
type LedgerRepository struct {
	BaseRepository
}

// NewLedgerRepository creates a repository over an open sqlite handle.
func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{BaseRepository{db: db}}
}

var (
	_ portsrepo.TransactionRepository = (*LedgerRepository)(nil)
	_ portsrepo.PayrollRepository     = (*LedgerRepository)(nil)
	_ portsrepo.ProfileRepository     = (*LedgerRepository)(nil)
)

func (r *LedgerRepository) loadTransactions(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}) ([]domain.Transaction, error) {
	blob, err := r.getBlob(ctx, q, keyTransactions)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []domain.Transaction{}, nil
	}
	var txns []domain.Transaction
	if err := json.Unmarshal(blob, &txns); err != nil {
		return nil, fmt.Errorf("failed to decode transactions blob: %w", err)
	}
	return txns, nil
}

func (r *LedgerRepository) storeTransactions(ctx context.Context, e interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, txns []domain.Transaction) error {
	blob, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to encode transactions blob: %w", err)
	}
	return r.putBlob(ctx, e, keyTransactions, blob)
}

func (r *LedgerRepository) loadStaff(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}) ([]domain.StaffMember, error) {
	blob, err := r.getBlob(ctx, q, keyStaff)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []domain.StaffMember{}, nil
	}
	var staff []domain.StaffMember
	if err := json.Unmarshal(blob, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff blob: %w", err)
	}
	return staff, nil
}

func (r *LedgerRepository) storeStaff(ctx context.Context, e interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, staff []domain.StaffMember) error {
	blob, err := json.Marshal(staff)
	if err != nil {
		return fmt.Errorf("failed to encode staff blob: %w", err)
	}
	return r.putBlob(ctx, e, keyStaff, blob)
}

// SaveTransaction inserts at the front of recency ordering.
func (r *LedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		txns, err := r.loadTransactions(ctx, tx)
		if err != nil {
			return err
		}
		txns = append([]domain.Transaction{txn}, txns...)
		return r.storeTransactions(ctx, tx, txns)
	})
}

// UpdateTransaction replaces the record with a matching id.
func (r *LedgerRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		txns, err := r.loadTransactions(ctx, tx)
		if err != nil {
			return err
		}
		for i := range txns {
			if txns[i].TransactionID == txn.TransactionID {
				txns[i] = txn
				return r.storeTransactions(ctx, tx, txns)
			}
		}
		return apperrors.ErrNotFound
	})
}

// DeleteTransaction removes the record; absent ids are a no-op.
func (r *LedgerRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		txns, err := r.loadTransactions(ctx, tx)
		if err != nil {
			return err
		}
		for i := range txns {
			if txns[i].TransactionID == transactionID {
				txns = append(txns[:i], txns[i+1:]...)
				return r.storeTransactions(ctx, tx, txns)
			}
		}
		return nil
	})
}

// FindTransactionByID returns the matching record.
func (r *LedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txns, err := r.loadTransactions(ctx, r.db)
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].TransactionID == transactionID {
			return &txns[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTransactions returns the most-recent-first collection.
func (r *LedgerRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.loadTransactions(ctx, r.db)
}

// SaveStaff appends a staff record.
func (r *LedgerRepository) SaveStaff(ctx context.Context, staff domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		members, err := r.loadStaff(ctx, tx)
		if err != nil {
			return err
		}
		members = append(members, staff)
		return r.storeStaff(ctx, tx, members)
	})
}

// UpdateStaff replaces the record with a matching id.
func (r *LedgerRepository) UpdateStaff(ctx context.Context, staff domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		members, err := r.loadStaff(ctx, tx)
		if err != nil {
			return err
		}
		for i := range members {
			if members[i].StaffID == staff.StaffID {
				members[i] = staff
				return r.storeStaff(ctx, tx, members)
			}
		}
		return apperrors.ErrNotFound
	})
}

// FindStaffByID returns the matching staff record.
func (r *LedgerRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	members, err := r.loadStaff(ctx, r.db)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].StaffID == staffID {
			return &members[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListStaff returns the staff collection.
func (r *LedgerRepository) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	return r.loadStaff(ctx, r.db)
}

// SavePayrollRun writes the appended transaction and the mutated staff record
// inside one database transaction: both land or neither does.
func (r *LedgerRepository) SavePayrollRun(ctx context.Context, txn domain.Transaction, staff domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		members, err := r.loadStaff(ctx, tx)
		if err != nil {
			return err
		}
		found := false
		for i := range members {
			if members[i].StaffID == staff.StaffID {
				members[i] = staff
				found = true
				break
			}
		}
		if !found {
			return apperrors.ErrNotFound
		}

		txns, err := r.loadTransactions(ctx, tx)
		if err != nil {
			return err
		}
		txns = append([]domain.Transaction{txn}, txns...)

		if err := r.storeStaff(ctx, tx, members); err != nil {
			return err
		}
		return r.storeTransactions(ctx, tx, txns)
	})
}

// SaveProfile stores the single shop profile.
func (r *LedgerRepository) SaveProfile(ctx context.Context, profile domain.ShopProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile blob: %w", err)
	}
	return r.putBlob(ctx, r.db, keyProfile, blob)
}

// FindProfile returns the stored profile or ErrNotFound.
func (r *LedgerRepository) FindProfile(ctx context.Context) (*domain.ShopProfile, error) {
	blob, err := r.getBlob(ctx, r.db, keyProfile)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, apperrors.ErrNotFound
	}
	var profile domain.ShopProfile
	if err := json.Unmarshal(blob, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile blob: %w", err)
	}
	return &profile, nil
}
