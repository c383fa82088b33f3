// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/store"
	"github.com/MKhiriev/satu-password/internal/workers"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService    AuthService
	VaultService   VaultService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

// NewServices wires the crypto components, configured from cfg, to the
// storages and the KDF executor.
func NewServices(
	storages *store.Storages,
	executor workers.Executor,
	secret *crypto.ServerSecret,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	tokens, err := crypto.NewSessionTokenCodec(secret, crypto.SessionConfig{
		Issuer:   cfg.App.TokenIssuer,
		Audience: cfg.App.TokenAudience,
		TTL:      cfg.App.TokenDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating session token codec: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	auth := NewAuthService(AuthDeps{
		Accounts:    storages.Accounts,
		Credentials: storages.Credentials,
		Profiles:    storages.Profiles,
		Hasher:      crypto.NewPasswordHasher(HashParams(cfg.Crypto)),
		KDF:         crypto.NewKeyDerivation(WrapParams(cfg.Crypto)),
		MasterKeys:  crypto.NewMasterKeyManager(),
		Tokens:      tokens,
		Executor:    executor,
		TOTPIssuer:  cfg.App.TOTPIssuer,
		Expect: crypto.Expectation{
			Issuer:   cfg.App.TokenIssuer,
			Audience: cfg.App.TokenAudience,
		},
	}, logger)

	vault := NewVaultService(
		storages.Credentials,
		storages.Profiles,
		storages.Items,
		crypto.NewEnvelopeCipher(crypto.PurposeVaultItem),
		logger,
	)

	return &Services{
		AuthService:    NewAuthValidationService(cfg.App.MinPasswordScore).Wrap(auth),
		VaultService:   NewVaultValidationService().Wrap(vault),
		ProfileService: NewProfileService(storages.Accounts, storages.Credentials, storages.Profiles, logger),
		AppInfoService: appInfo,
	}, nil
}

// HashParams returns the Argon2id cost of the password verifier. Zero
// fields fall back to the library defaults.
func HashParams(cfg config.Crypto) crypto.ArgonParams {
	return crypto.ArgonParams{Time: cfg.HashTime, MemoryKiB: cfg.HashMemoryKiB, Threads: cfg.HashThreads}
}

// WrapParams returns the Argon2id cost of the wrapping-key derivation.
func WrapParams(cfg config.Crypto) crypto.ArgonParams {
	return crypto.ArgonParams{Time: cfg.WrapTime, MemoryKiB: cfg.WrapMemoryKiB, Threads: cfg.WrapThreads}
}
