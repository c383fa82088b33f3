// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. Every method wraps its statements in [WithTx] so the
// credential and the profile are never observed half written.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts the credential and the profile in one transaction.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the email → [ErrLoginAlreadyExists].
//   - Any other failure of either insert rolls back both rows.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	err := WithTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		cred := &account.Credential
		err := tx.QueryRowContext(ctx, createCredential,
			cred.Email, cred.PasswordHash, cred.PasswordHashSalt, cred.TOTPSecret,
		).Scan(&cred.ID, &cred.CreatedAt)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting login credential")

			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return ErrLoginAlreadyExists
			default:
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		profile := &account.Profile
		profile.LoginID = cred.ID
		err = tx.QueryRowContext(ctx, createProfile,
			profile.Name, profile.EncryptedMasterKey, profile.WrappingKeySalt, profile.LoginID,
		).Scan(&profile.ID, &profile.CreatedAt)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting user profile")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// UpdatePassword rewrites the verifier and the wrapped master key together.
func (r *accountRepository) UpdatePassword(ctx context.Context, update models.PasswordUpdate) error {
	log := logger.FromContext(ctx)

	return WithTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, updateCredentialPassword, update.LoginID, update.PasswordHash, update.PasswordHashSalt)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.UpdatePassword").Msg("error updating login credential")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrCredentialNotFound
		}

		res, err = tx.ExecContext(ctx, updateProfileMasterKey, update.LoginID, update.EncryptedMasterKey, update.WrappingKeySalt)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.UpdatePassword").Msg("error updating user profile")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrProfileNotFound
		}

		return nil
	})
}

// DeleteAccount removes the credential. The profile and the vault items go
// with it through ON DELETE CASCADE.
func (r *accountRepository) DeleteAccount(ctx context.Context, loginID int64) error {
	log := logger.FromContext(ctx)

	return WithTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, deleteCredential, loginID)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.DeleteAccount").Int64("login_id", loginID).Msg("error deleting login credential")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrCredentialNotFound
		}

		return nil
	})
}
