package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Storage keys. Collections persist independently as JSON blobs.
const (
	keyTransactions = "transactions"
	keyStaff        = "staff"
	keyProfile      = "profile"
)

// BaseRepository provides the key-value blob access shared by all
// repositories. Mutations are read-modify-write cycles, so a process-wide
// mutex serializes them; the single-session model makes contention rare.
type BaseRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func (r *BaseRepository) getBlob(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q: %w", key, err)
	}
	return value, nil
}

func (r *BaseRepository) putBlob(ctx context.Context, e interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, key string, value []byte) error {
	_, err := e.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to write blob %q: %w", key, err)
	}
	return nil
}

// withTx runs fn inside a database transaction, committing on success and
// rolling back on error.
func (r *BaseRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
