// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/store"
	"github.com/MKhiriev/satu-password/models"
)

type profileService struct {
	accounts    store.AccountRepository
	credentials store.CredentialRepository
	profiles    store.ProfileRepository

	logger *logger.Logger
}

// NewProfileService constructs a [ProfileService].
func NewProfileService(
	accounts store.AccountRepository,
	credentials store.CredentialRepository,
	profiles store.ProfileRepository,
	logger *logger.Logger,
) ProfileService {
	logger.Debug().Msg("creating profile service")
	return &profileService{
		accounts:    accounts,
		credentials: credentials,
		profiles:    profiles,
		logger:      logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, claims *crypto.Claims) (models.ProfileView, error) {
	profile, err := resolveOwner(ctx, p.credentials, p.profiles, claims)
	if err != nil {
		return models.ProfileView{}, err
	}

	return models.ProfileView{Name: profile.Name, Email: claims.Email()}, nil
}

// DeleteAccount removes the credential, the profile and every vault item of
// the session owner in one transaction.
func (p *profileService) DeleteAccount(ctx context.Context, claims *crypto.Claims) error {
	log := logger.FromContext(ctx)

	profile, err := resolveOwner(ctx, p.credentials, p.profiles, claims)
	if err != nil {
		return err
	}

	err = p.accounts.DeleteAccount(ctx, profile.LoginID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*profileService.DeleteAccount").Int64("login_id", profile.LoginID).Msg("error deleting account")
		return fmt.Errorf("%w: error deleting account: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*profileService.DeleteAccount").Int64("login_id", profile.LoginID).Msg("account deleted")
	return nil
}
