package wallet

import (
	"context"

	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
)

// WalletUC defines the interface for wallet business logic
type WalletUC interface {
	OpenAccount(ctx context.Context, accountID string, role models.AccountRole) (*models.Account, error)
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	Transfer(ctx context.Context, fromID, toID string, amount int64) (*models.LedgerEntry, error)
	TopUp(ctx context.Context, accountID string, amount int64) (*models.Account, error)
	Deduct(ctx context.Context, in ledger.DeductInput) (*ledger.DeductResult, error)

	ListTransactions(ctx context.Context, accountID string, limit int) ([]*models.LedgerEntry, error)
}
