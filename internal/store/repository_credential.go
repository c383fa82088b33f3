// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository].
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// FindCredentialByEmail returns the credential registered under email.
// [sql.ErrNoRows] is reported as [ErrCredentialNotFound].
func (r *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (models.LoginCredential, error) {
	log := logger.FromContext(ctx)

	var cred models.LoginCredential
	err := r.db.QueryRowContext(ctx, findCredentialByEmail, email).
		Scan(&cred.ID, &cred.Email, &cred.PasswordHash, &cred.PasswordHashSalt, &cred.TOTPSecret, &cred.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LoginCredential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.FindCredentialByEmail").Msg("error scanning login credential")
		return models.LoginCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cred, nil
}
