// Package ledger posts monetary movements as immutable entries and keeps the
// cached account balances in step with them. Every function here runs inside
// a caller-owned transaction exposed through Book; nothing in this package
// commits or retries.
package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/models"
)

// MaxAmount bounds a single movement so amount*percent cannot overflow int64
const MaxAmount int64 = 1_000_000_000_000_000

// Book is the transactional view of accounts and entries.
// Implementations must lock an account row for the rest of the transaction
// once LockAccount or EnsureAccount returned it.
type Book interface {
	LockAccount(ctx context.Context, id string) (*models.Account, error)
	EnsureAccount(ctx context.Context, id string, role models.AccountRole) (*models.Account, bool, error)
	SetBalance(ctx context.Context, id string, balance int64) error
	AppendEntry(ctx context.Context, entry *models.LedgerEntry) error
	EntriesByTrip(ctx context.Context, tripID string) ([]models.LedgerEntry, error)
}

// Poster applies wallet operations to a Book
type Poster struct {
	commissionPercent int64
	platformID        string
	now               func() time.Time
	newID             func() string
}

// NewPoster creates a poster using the configured commission split
func NewPoster(cfg models.WalletConfig) (*Poster, error) {
	if cfg.CommissionPercent < 0 || cfg.CommissionPercent > 100 {
		return nil, fmt.Errorf("commission percent must be within [0,100], got %d", cfg.CommissionPercent)
	}
	if cfg.PlatformAccountID == "" {
		return nil, fmt.Errorf("platform account id is required")
	}
	return &Poster{
		commissionPercent: cfg.CommissionPercent,
		platformID:        cfg.PlatformAccountID,
		now:               time.Now,
		newID:             uuid.NewString,
	}, nil
}

// PlatformID returns the account credited with commission
func (p *Poster) PlatformID() string {
	return p.platformID
}

// Split divides amount into driver payout and platform commission.
// Commission is rounded half up; payout always takes the remainder.
func (p *Poster) Split(amount int64) models.Settlement {
	commission := (amount*p.commissionPercent + 50) / 100
	return models.Settlement{
		Amount:     amount,
		Payout:     amount - commission,
		Commission: commission,
	}
}

// ValidateAmount rejects zero, negative and oversized amounts
func ValidateAmount(amount int64) error {
	if amount <= 0 || amount > MaxAmount {
		return apperror.ErrInvalidAmount
	}
	return nil
}

// MinorUnits rounds a decimal amount to whole minor units. Values past
// MaxAmount in either direction saturate one beyond it so ValidateAmount
// still rejects them.
func MinorUnits(amount float64) int64 {
	switch {
	case math.IsNaN(amount):
		return 0
	case amount > float64(MaxAmount):
		return MaxAmount + 1
	case amount < -float64(MaxAmount):
		return -MaxAmount - 1
	}
	return int64(math.Round(amount))
}

// Transfer moves amount between two existing accounts
func (p *Poster) Transfer(ctx context.Context, book Book, fromID, toID string, amount int64) (*models.LedgerEntry, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if fromID == "" || toID == "" {
		return nil, apperror.Invalid("fromId and toId are required")
	}
	if fromID == toID {
		return nil, apperror.Invalid("cannot transfer to the same account")
	}

	// lock in a stable order so concurrent opposite transfers cannot deadlock
	first, second := fromID, toID
	if second < first {
		first, second = second, first
	}
	locked := make(map[string]*models.Account, 2)
	for _, id := range []string{first, second} {
		acc, err := book.LockAccount(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to lock account %s: %w", id, err)
		}
		locked[id] = acc
	}

	from, to := locked[fromID], locked[toID]
	if from.WalletBalance < amount {
		return nil, fmt.Errorf("transfer from %s: %w", fromID, apperror.ErrInsufficientFunds)
	}

	if err := book.SetBalance(ctx, fromID, from.WalletBalance-amount); err != nil {
		return nil, fmt.Errorf("failed to debit %s: %w", fromID, err)
	}
	if err := book.SetBalance(ctx, toID, to.WalletBalance+amount); err != nil {
		return nil, fmt.Errorf("failed to credit %s: %w", toID, err)
	}

	entry := p.entry(models.EntryTransfer, &fromID, &toID, amount, nil, nil)
	if err := book.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append transfer entry: %w", err)
	}
	return entry, nil
}

// TopUp credits an existing account from outside the system
func (p *Poster) TopUp(ctx context.Context, book Book, accountID string, amount int64) (*models.Account, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	acc, err := book.LockAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}

	acc.WalletBalance += amount
	if err := book.SetBalance(ctx, accountID, acc.WalletBalance); err != nil {
		return nil, fmt.Errorf("failed to credit %s: %w", accountID, err)
	}
	if err := book.AppendEntry(ctx, p.entry(models.EntryTopUp, nil, &accountID, amount, nil, nil)); err != nil {
		return nil, fmt.Errorf("failed to append topup entry: %w", err)
	}
	return acc, nil
}

// DeductInput describes a debit from a wallet
type DeductInput struct {
	AccountID string
	Amount    int64
	TripID    string
	DriverID  string
	Note      string
}

// DeductResult is the outcome of a deduction. Replayed is set when the trip
// had already been charged the same amount from the same account and nothing
// was posted.
type DeductResult struct {
	Account    *models.Account
	Settlement *models.Settlement
	Replayed   bool
}

// Deduct debits an account. Without a driver the money leaves the system as a
// single deduct entry; with a driver it is split into a driver payout and a
// platform commission, creating the driver account on first payout.
// A trip is charged at most once: repeating the same deduct for a trip
// returns the recorded outcome, any other charge for it is a conflict.
func (p *Poster) Deduct(ctx context.Context, book Book, in DeductInput) (*DeductResult, error) {
	if err := ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	if in.AccountID == "" {
		return nil, apperror.Invalid("userId is required")
	}
	if in.DriverID != "" && in.DriverID == in.AccountID {
		return nil, apperror.Invalid("driverId must differ from the paying account")
	}

	if in.TripID != "" {
		replay, err := p.chargedTrip(ctx, book, in)
		if err != nil || replay != nil {
			return replay, err
		}
	}

	acc, err := p.debit(ctx, book, in.AccountID, in.Amount)
	if err != nil {
		return nil, err
	}

	tripID, note := optional(in.TripID), optional(in.Note)

	if in.DriverID == "" {
		if err := book.AppendEntry(ctx, p.entry(models.EntryDeduct, &in.AccountID, nil, in.Amount, tripID, note)); err != nil {
			return nil, fmt.Errorf("failed to append deduct entry: %w", err)
		}
		return &DeductResult{Account: acc}, nil
	}

	split := p.Split(in.Amount)
	if err := p.distribute(ctx, book, &in.AccountID, in.DriverID, split, tripID, note); err != nil {
		return nil, err
	}
	return &DeductResult{Account: acc, Settlement: &split}, nil
}

// chargedTrip inspects the entries already posted for in.TripID. It returns
// nil when the trip has not been charged yet.
func (p *Poster) chargedTrip(ctx context.Context, book Book, in DeductInput) (*DeductResult, error) {
	entries, err := book.EntriesByTrip(ctx, in.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip entries: %w", err)
	}

	var charged int64
	var paid models.Settlement
	for _, e := range entries {
		switch e.Kind {
		case models.EntryDeduct, models.EntryTripPayout, models.EntryCommission:
		default:
			continue
		}
		if e.From != nil && *e.From == in.AccountID {
			charged += e.Amount
		}
		if e.From != nil && *e.From != in.AccountID {
			return nil, fmt.Errorf("trip %s: %w", in.TripID, apperror.ErrTripAlreadyCharged)
		}
		switch e.Kind {
		case models.EntryTripPayout:
			paid.Payout += e.Amount
			paid.Amount += e.Amount
		case models.EntryCommission:
			paid.Commission += e.Amount
			paid.Amount += e.Amount
		}
	}
	if charged == 0 && paid.Amount == 0 {
		return nil, nil
	}
	if charged != in.Amount {
		return nil, fmt.Errorf("trip %s: %w", in.TripID, apperror.ErrTripAlreadyCharged)
	}

	acc, err := book.LockAccount(ctx, in.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account %s: %w", in.AccountID, err)
	}
	result := &DeductResult{Account: acc, Replayed: true}
	if paid.Amount > 0 {
		result.Settlement = &paid
	}
	return result, nil
}

// SettleTrip performs the completion-time fund split for a trip whose status
// the caller is changing to completed in the same transaction. It returns nil
// when nothing is owed.
func (p *Poster) SettleTrip(ctx context.Context, book Book, trip *models.Trip) (*models.Settlement, error) {
	if trip.Fee <= 0 || trip.DriverID == nil || *trip.DriverID == "" {
		return nil, nil
	}
	if err := ValidateAmount(trip.Fee); err != nil {
		return nil, err
	}
	driverID := *trip.DriverID
	tripID := trip.ID

	entries, err := book.EntriesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip entries: %w", err)
	}

	var paid, held models.Settlement
	for _, e := range entries {
		switch {
		case e.Kind == models.EntryTripPayout:
			paid.Payout += e.Amount
			paid.Amount += e.Amount
		case e.Kind == models.EntryCommission:
			paid.Commission += e.Amount
			paid.Amount += e.Amount
		case e.Kind == models.EntryDeduct && e.To == nil:
			held.Amount += e.Amount
		}
	}

	// already split at deduct time
	if paid.Amount > 0 {
		return &paid, nil
	}

	// pre-authorized hold: release it to driver and platform
	if held.Amount > 0 {
		if err := ValidateAmount(held.Amount); err != nil {
			return nil, err
		}
		split := p.Split(held.Amount)
		if err := p.distribute(ctx, book, nil, driverID, split, &tripID, nil); err != nil {
			return nil, err
		}
		return &split, nil
	}

	if trip.UserID == "" || (trip.PaymentMethod != nil && *trip.PaymentMethod == models.PaymentCash) {
		return nil, nil
	}

	riderID := trip.UserID
	if _, err := p.debit(ctx, book, riderID, trip.Fee); err != nil {
		return nil, err
	}
	if err := book.AppendEntry(ctx, p.entry(models.EntryDeduct, &riderID, nil, trip.Fee, &tripID, nil)); err != nil {
		return nil, fmt.Errorf("failed to append deduct entry: %w", err)
	}

	split := p.Split(trip.Fee)
	if err := p.distribute(ctx, book, nil, driverID, split, &tripID, nil); err != nil {
		return nil, err
	}
	return &split, nil
}

func (p *Poster) debit(ctx context.Context, book Book, accountID string, amount int64) (*models.Account, error) {
	acc, err := book.LockAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	if acc.WalletBalance < amount {
		return nil, fmt.Errorf("debit %s: %w", accountID, apperror.ErrInsufficientFunds)
	}
	acc.WalletBalance -= amount
	if err := book.SetBalance(ctx, accountID, acc.WalletBalance); err != nil {
		return nil, fmt.Errorf("failed to debit %s: %w", accountID, err)
	}
	return acc, nil
}

func (p *Poster) credit(ctx context.Context, book Book, accountID string, role models.AccountRole, amount int64) error {
	acc, _, err := book.EnsureAccount(ctx, accountID, role)
	if err != nil {
		return fmt.Errorf("failed to ensure account %s: %w", accountID, err)
	}
	if err := book.SetBalance(ctx, accountID, acc.WalletBalance+amount); err != nil {
		return fmt.Errorf("failed to credit %s: %w", accountID, err)
	}
	return nil
}

// distribute credits payout to the driver and commission to the platform.
// source is the debited account, or nil when the money was already taken out.
func (p *Poster) distribute(ctx context.Context, book Book, source *string, driverID string, split models.Settlement, tripID, note *string) error {
	legs := []struct {
		to     string
		role   models.AccountRole
		kind   models.EntryKind
		amount int64
	}{
		{driverID, models.RoleDriver, models.EntryTripPayout, split.Payout},
		{p.platformID, models.RolePlatform, models.EntryCommission, split.Commission},
	}

	for _, leg := range legs {
		if leg.amount == 0 {
			continue
		}
		if err := p.credit(ctx, book, leg.to, leg.role, leg.amount); err != nil {
			return err
		}
		to := leg.to
		if err := book.AppendEntry(ctx, p.entry(leg.kind, source, &to, leg.amount, tripID, note)); err != nil {
			return fmt.Errorf("failed to append %s entry: %w", leg.kind, err)
		}
	}
	return nil
}

func (p *Poster) entry(kind models.EntryKind, from, to *string, amount int64, tripID, note *string) *models.LedgerEntry {
	return &models.LedgerEntry{
		ID:        p.newID(),
		From:      from,
		To:        to,
		Amount:    amount,
		Kind:      kind,
		TripID:    tripID,
		Note:      note,
		Timestamp: p.now().UTC(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
