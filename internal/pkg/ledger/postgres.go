package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/models"
)

const (
	lockAccountQuery = `
		SELECT id, role, wallet_balance, created_at, updated_at
		FROM accounts
		WHERE id = $1
		FOR UPDATE`

	ensureAccountQuery = `
		INSERT INTO accounts (id, role, wallet_balance, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING`

	setBalanceQuery = `
		UPDATE accounts
		SET wallet_balance = $1, updated_at = NOW()
		WHERE id = $2`

	appendEntryQuery = `
		INSERT INTO ledger_entries (id, from_account, to_account, amount, kind, trip_id, note, created_at)
		VALUES (:id, :from_account, :to_account, :amount, :kind, :trip_id, :note, :created_at)`

	entriesByTripQuery = `
		SELECT id, from_account, to_account, amount, kind, trip_id, note, created_at
		FROM ledger_entries
		WHERE trip_id = $1
		ORDER BY created_at`
)

// PostgresBook is a Book bound to one open sqlx transaction
type PostgresBook struct {
	tx *sqlx.Tx
}

// NewPostgresBook wraps an open transaction
func NewPostgresBook(tx *sqlx.Tx) *PostgresBook {
	return &PostgresBook{tx: tx}
}

// LockAccount reads an account and holds its row lock until the transaction ends
func (b *PostgresBook) LockAccount(ctx context.Context, id string) (*models.Account, error) {
	var acc models.Account
	if err := b.tx.GetContext(ctx, &acc, lockAccountQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

// EnsureAccount creates the account with a zero balance if absent, then locks it
func (b *PostgresBook) EnsureAccount(ctx context.Context, id string, role models.AccountRole) (*models.Account, bool, error) {
	res, err := b.tx.ExecContext(ctx, ensureAccountQuery, id, role)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert account: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	acc, err := b.LockAccount(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return acc, rows == 1, nil
}

// SetBalance overwrites the cached balance of a locked account
func (b *PostgresBook) SetBalance(ctx context.Context, id string, balance int64) error {
	res, err := b.tx.ExecContext(ctx, setBalanceQuery, balance, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperror.ErrAccountNotFound
	}
	return nil
}

// AppendEntry inserts an immutable ledger entry
func (b *PostgresBook) AppendEntry(ctx context.Context, entry *models.LedgerEntry) error {
	_, err := b.tx.NamedExecContext(ctx, appendEntryQuery, entry)
	return err
}

// EntriesByTrip returns the entries correlated with a trip, oldest first
func (b *PostgresBook) EntriesByTrip(ctx context.Context, tripID string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := b.tx.SelectContext(ctx, &entries, entriesByTripQuery, tripID); err != nil {
		return nil, err
	}
	return entries, nil
}
