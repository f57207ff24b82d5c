package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/migrations"
	"github.com/sethvargo/go-retry"
)

// DB is the shared Postgres handle used by every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	txMaxRetries   uint64
	txRetryBackoff time.Duration
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}
	db.logger.Info().Ints64("applied", applied).Msg("database schema is up to date")
	return nil
}

// inTx runs fn inside a transaction and commits it. Failures classified as
// [Retryable] (deadlocks, serialization failures, dropped connections) rerun
// the whole transaction with exponential backoff. Any other error, including
// errors returned by fn itself, is returned as is.
func (db *DB) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	backoff := retry.WithMaxRetries(db.txMaxRetries, retry.NewExponential(db.txBackoff()))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.runTx(ctx, funcName, fn)
		if err != nil && db.isRetryable(err) {
			log.Warn().Err(err).Str("func", funcName).Msg("transient database error, retrying transaction")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) runTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

func (db *DB) txBackoff() time.Duration {
	if db.txRetryBackoff <= 0 {
		return txRetryBackoff
	}
	return db.txRetryBackoff
}
