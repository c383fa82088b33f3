// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/satu-password/internal/logger"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// maxTxAttempts bounds how often a transaction classified as Retryable is
// replayed.
const maxTxAttempts = 3

const defaultTxRetryDelay = 50 * time.Millisecond

var txRetryDelay = defaultTxRetryDelay

// WithTx runs fn inside a transaction, commits on success and rolls back on
// error or panic. Panics are rethrown. A failure classified as [Retryable]
// replays the whole transaction up to maxTxAttempts times.
func WithTx(ctx context.Context, db *DB, fn func(ctx context.Context, tx DBTX) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = runTx(ctx, db.DB, fn)
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxTxAttempts {
			break
		}

		log.Warn().Err(err).
			Str("func", "store.WithTx").
			Int("attempt", attempt).
			Msg("retryable transaction error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(txRetryDelay * time.Duration(attempt)):
		}
	}

	return err
}

func runTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(ctx, tx)
}
