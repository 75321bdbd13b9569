package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/wallet"
)

const (
	getAccountQuery = `
		SELECT id, role, wallet_balance, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	listTransactionsQuery = `
		SELECT id, from_account, to_account, amount, kind, trip_id, note, created_at
		FROM ledger_entries
		WHERE from_account = $1 OR to_account = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
)

// WalletRepo implements wallet.WalletRepo on PostgreSQL
type WalletRepo struct {
	txr *database.Transactor
}

// NewWalletRepository creates a PostgreSQL backed wallet repository
func NewWalletRepository(txr *database.Transactor) wallet.WalletRepo {
	return &WalletRepo{txr: txr}
}

// WithinTx runs fn inside a serializable transaction
func (r *WalletRepo) WithinTx(ctx context.Context, fn func(ctx context.Context, book ledger.Book) error) error {
	return r.txr.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, ledger.NewPostgresBook(tx))
	})
}

// GetAccount reads an account without locking it
func (r *WalletRepo) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	var acc models.Account
	if err := r.txr.DB().GetContext(ctx, &acc, getAccountQuery, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrAccountNotFound
		}
		return nil, database.Classify(err)
	}
	return &acc, nil
}

// ListTransactions returns entries debiting or crediting the account, newest first
func (r *WalletRepo) ListTransactions(ctx context.Context, accountID string, limit int) ([]*models.LedgerEntry, error) {
	entries := make([]*models.LedgerEntry, 0)
	if err := r.txr.DB().SelectContext(ctx, &entries, listTransactionsQuery, accountID, limit); err != nil {
		return nil, database.Classify(err)
	}
	return entries, nil
}
