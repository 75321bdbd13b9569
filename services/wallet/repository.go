package wallet

import (
	"context"

	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
)

// WalletRepo defines the account and ledger storage behind the wallet
type WalletRepo interface {
	// WithinTx runs fn in one atomic transaction; nothing fn wrote survives an error
	WithinTx(ctx context.Context, fn func(ctx context.Context, book ledger.Book) error) error

	// Snapshot reads
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	ListTransactions(ctx context.Context, accountID string, limit int) ([]*models.LedgerEntry, error)
}
