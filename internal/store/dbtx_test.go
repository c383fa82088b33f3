// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configWithDSN(dsn string) config.Storage {
	return config.Storage{DB: config.DB{DSN: dsn}}
}

func TestWithTx_CommitOnSuccess(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE x").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, "UPDATE x SET y = 1")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	want := errors.New("fail")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		return want
	})
	require.ErrorIs(t, err, want)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
			panic("boom")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newTestDB(t)
	txRetryDelay = 0
	t.Cleanup(func() { txRetryDelay = defaultTxRetryDelay })

	for range maxTxAttempts {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	calls := 0
	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})
	require.Error(t, err)
	assert.Equal(t, maxTxAttempts, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error { return nil })
	require.ErrorIs(t, err, ErrCommitingTransaction)
}
