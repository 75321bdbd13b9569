package repository

import (
	"context"

	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/wallet"
)

type memoryRepo struct {
	store *database.MemoryStore
}

// NewMemoryRepository creates a wallet repository over the in-process store
func NewMemoryRepository(store *database.MemoryStore) wallet.WalletRepo {
	return &memoryRepo{store: store}
}

func (r *memoryRepo) WithinTx(ctx context.Context, fn func(ctx context.Context, book ledger.Book) error) error {
	return r.store.Update(ctx, func(tx *database.MemoryTx) error {
		return fn(ctx, tx)
	})
}

func (r *memoryRepo) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	var acc *models.Account
	err := r.store.View(ctx, func(tx *database.MemoryTx) error {
		var err error
		acc, err = tx.LockAccount(ctx, accountID)
		return err
	})
	return acc, err
}

func (r *memoryRepo) ListTransactions(ctx context.Context, accountID string, limit int) ([]*models.LedgerEntry, error) {
	entries := make([]*models.LedgerEntry, 0)
	err := r.store.View(ctx, func(tx *database.MemoryTx) error {
		for _, e := range tx.EntriesByAccount(accountID, limit) {
			e := e
			entries = append(entries, &e)
		}
		return nil
	})
	return entries, err
}
