package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/constants"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/pkg/nsq"
	"github.com/recab/recab/internal/pkg/observability"
	"github.com/recab/recab/services/wallet"
)

const maxTransactionsLimit = 200

// WalletUC implements the wallet.WalletUC interface
type WalletUC struct {
	cfg       models.WalletConfig
	repo      wallet.WalletRepo
	poster    *ledger.Poster
	publisher nsq.Publisher
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(cfg *models.Config, repo wallet.WalletRepo, poster *ledger.Poster, publisher nsq.Publisher) wallet.WalletUC {
	return &WalletUC{
		cfg:       cfg.Wallet,
		repo:      repo,
		poster:    poster,
		publisher: publisher,
	}
}

// OpenAccount creates the account on first call and returns it unchanged afterwards.
// A configured signup credit is posted as a top-up only when the account is new.
func (uc *WalletUC) OpenAccount(ctx context.Context, accountID string, role models.AccountRole) (*models.Account, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, apperror.Invalid("userId is required")
	}
	if role == "" {
		role = models.RoleRider
	}
	if !role.Valid() || role == models.RolePlatform {
		return nil, apperror.Invalid("role must be rider or driver")
	}
	if accountID == uc.poster.PlatformID() {
		return nil, apperror.Invalid("account id is reserved")
	}

	var account *models.Account
	err := uc.repo.WithinTx(ctx, func(ctx context.Context, book ledger.Book) error {
		acc, created, err := book.EnsureAccount(ctx, accountID, role)
		if err != nil {
			return err
		}
		account = acc
		if created && uc.cfg.SignupCredit > 0 {
			account, err = uc.poster.TopUp(ctx, book, accountID, uc.cfg.SignupCredit)
			if err != nil {
				return fmt.Errorf("failed to post signup credit: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount returns the current balance of an account
func (uc *WalletUC) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	if accountID == "" {
		return nil, apperror.Invalid("userId is required")
	}
	return uc.repo.GetAccount(ctx, accountID)
}

// Transfer moves money between two wallets
func (uc *WalletUC) Transfer(ctx context.Context, fromID, toID string, amount int64) (*models.LedgerEntry, error) {
	if fromID == "" || toID == "" {
		return nil, apperror.Invalid("fromId and toId are required")
	}
	if err := ledger.ValidateAmount(amount); err != nil {
		return nil, err
	}

	var entry *models.LedgerEntry
	err := uc.repo.WithinTx(ctx, func(ctx context.Context, book ledger.Book) error {
		var err error
		entry, err = uc.poster.Transfer(ctx, book, fromID, toID, amount)
		return err
	})
	if err != nil {
		uc.reject("transfer", err)
		return nil, err
	}

	observeEntries(entry)
	logger.Info("Wallet transfer committed",
		logger.String("from_id", fromID),
		logger.String("to_id", toID),
		logger.Int64("amount", amount))
	nsq.PublishEvent(uc.publisher, constants.TopicWalletTransferred, entry)
	return entry, nil
}

// TopUp credits a wallet from the simulated payment gateway
func (uc *WalletUC) TopUp(ctx context.Context, accountID string, amount int64) (*models.Account, error) {
	if accountID == "" {
		return nil, apperror.Invalid("userId is required")
	}
	if err := ledger.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if uc.cfg.TopUpMax > 0 && amount > uc.cfg.TopUpMax {
		return nil, apperror.Invalid(fmt.Sprintf("amount exceeds the top-up limit of %d", uc.cfg.TopUpMax))
	}

	var account *models.Account
	err := uc.repo.WithinTx(ctx, func(ctx context.Context, book ledger.Book) error {
		var err error
		account, err = uc.poster.TopUp(ctx, book, accountID, amount)
		return err
	})
	if err != nil {
		uc.reject("topup", err)
		return nil, err
	}

	observe(models.EntryTopUp, amount)
	logger.Info("Wallet top-up committed",
		logger.String("account_id", accountID),
		logger.Int64("amount", amount))
	nsq.PublishEvent(uc.publisher, constants.TopicWalletToppedUp, map[string]interface{}{
		"accountId": accountID,
		"amount":    amount,
		"balance":   account.WalletBalance,
	})
	return account, nil
}

// Deduct debits a wallet, splitting the amount between driver and platform
// when a driver is named
func (uc *WalletUC) Deduct(ctx context.Context, in ledger.DeductInput) (*ledger.DeductResult, error) {
	if in.AccountID == "" {
		return nil, apperror.Invalid("userId is required")
	}
	if err := ledger.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}

	var result *ledger.DeductResult
	err := uc.repo.WithinTx(ctx, func(ctx context.Context, book ledger.Book) error {
		var err error
		result, err = uc.poster.Deduct(ctx, book, in)
		return err
	})
	if err != nil {
		uc.reject("deduct", err)
		return nil, err
	}

	if result.Replayed {
		logger.Info("Wallet deduction already recorded for trip",
			logger.String("account_id", in.AccountID),
			logger.String("trip_id", in.TripID))
		return result, nil
	}

	if result.Settlement != nil {
		observe(models.EntryTripPayout, result.Settlement.Payout)
		observe(models.EntryCommission, result.Settlement.Commission)
	} else {
		observe(models.EntryDeduct, in.Amount)
	}
	logger.Info("Wallet deduction committed",
		logger.String("account_id", in.AccountID),
		logger.String("trip_id", in.TripID),
		logger.String("driver_id", in.DriverID),
		logger.Int64("amount", in.Amount))
	nsq.PublishEvent(uc.publisher, constants.TopicWalletDeducted, map[string]interface{}{
		"accountId":  in.AccountID,
		"tripId":     in.TripID,
		"driverId":   in.DriverID,
		"amount":     in.Amount,
		"settlement": result.Settlement,
	})
	return result, nil
}

// ListTransactions returns the account's incoming and outgoing entries, newest first
func (uc *WalletUC) ListTransactions(ctx context.Context, accountID string, limit int) ([]*models.LedgerEntry, error) {
	if accountID == "" {
		return nil, apperror.Invalid("userId is required")
	}
	if limit <= 0 {
		limit = uc.cfg.TransactionsLimit
	}
	if limit > maxTransactionsLimit {
		limit = maxTransactionsLimit
	}
	return uc.repo.ListTransactions(ctx, accountID, limit)
}

func (uc *WalletUC) reject(operation string, err error) {
	kind := apperror.KindOf(err)
	observability.WalletRejectionsTotal.WithLabelValues(operation, kind.String()).Inc()
	if kind == apperror.Internal || kind == apperror.ServiceUnavailable {
		logger.Error("Wallet operation failed",
			logger.String("operation", operation),
			logger.Err(err))
	}
}

func observe(kind models.EntryKind, amount int64) {
	if amount <= 0 {
		return
	}
	observability.LedgerEntriesTotal.WithLabelValues(string(kind)).Inc()
	observability.LedgerAmountTotal.WithLabelValues(string(kind)).Add(float64(amount))
}

func observeEntries(entries ...*models.LedgerEntry) {
	for _, e := range entries {
		observe(e.Kind, e.Amount)
	}
}
