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

type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) FindProfileByLoginID(ctx context.Context, loginID int64) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	var p models.UserProfile
	err := r.db.QueryRowContext(ctx, findProfileByLoginID, loginID).
		Scan(&p.ID, &p.Name, &p.EncryptedMasterKey, &p.WrappingKeySalt, &p.LoginID, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByLoginID").Int64("login_id", loginID).Msg("error scanning user profile")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}
