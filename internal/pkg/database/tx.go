package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/pkg/retry"
)

// Postgres SQLSTATE codes that mean "abort and try the whole transaction again"
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// TxFunc is the body of a transaction
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

// Transactor runs serializable transactions, retrying the whole body a
// bounded number of times when Postgres reports a serialization failure.
type Transactor struct {
	db      *sqlx.DB
	retrier *retry.Retrier
}

// NewTransactor creates a transactor for the given database
func NewTransactor(db *sqlx.DB, config models.DatabaseConfig) *Transactor {
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = config.TxMaxRetries
	if config.TxBaseDelay > 0 {
		retryConfig.BaseDelay = config.TxBaseDelay
	}
	retryConfig.RetryableFunc = IsSerializationFailure

	return &Transactor{
		db:      db,
		retrier: retry.New(retryConfig),
	}
}

// DB returns the underlying handle for snapshot reads
func (t *Transactor) DB() *sqlx.DB {
	return t.db
}

// RunInTx executes fn inside a serializable transaction.
// Exhausted serialization retries surface as Conflict and connectivity
// failures as ServiceUnavailable; application errors pass through.
func (t *Transactor) RunInTx(ctx context.Context, fn TxFunc) error {
	err := t.retrier.Execute(ctx, func(ctx context.Context) error {
		return t.runOnce(ctx, fn)
	})
	return classify(err)
}

func (t *Transactor) runOnce(ctx context.Context, fn TxFunc) error {
	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IsSerializationFailure reports whether err is a retryable transaction abort
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
	}
	return false
}

// IsUnavailable reports whether err means the store could not be reached
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08: connection exception, 57P0x: operator intervention
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0")
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if IsSerializationFailure(err) {
		return apperror.Wrap(apperror.Conflict, apperror.ErrTxConflict.Message, err)
	}
	if apperror.KindOf(err) != apperror.Internal {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(apperror.ServiceUnavailable, apperror.ErrStoreUnavailable.Message, err)
	}
	if IsUnavailable(err) {
		return apperror.Wrap(apperror.ServiceUnavailable, apperror.ErrStoreUnavailable.Message, err)
	}
	return err
}

// Classify maps a raw store error from a non-transactional read
func Classify(err error) error {
	return classify(err)
}
