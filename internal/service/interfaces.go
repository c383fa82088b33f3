// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts and turns passwords into sessions.
type AuthService interface {
	// Register creates the credential and the profile atomically and returns
	// the otpauth:// provisioning URL of the new TOTP secret.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login verifies the password, unwraps the master key and seals it into
	// a session token.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// ParseSession opens a session token pinned to the configured issuer
	// and audience.
	ParseSession(ctx context.Context, token string) (*crypto.Claims, error)

	// ChangePassword re-wraps the unchanged master key under a key derived
	// from the new password. Vault items are not touched.
	ChangePassword(ctx context.Context, claims *crypto.Claims, req models.ChangePasswordRequest) error
}

// VaultService stores and opens vault items of the session owner.
type VaultService interface {
	CreateItem(ctx context.Context, claims *crypto.Claims, req models.CreateItemRequest) (models.VaultItem, error)
	ListItems(ctx context.Context, claims *crypto.Claims) ([]models.VaultItem, error)

	// RetrieveItem loads item id, checks that it belongs to the session owner
	// and decrypts it.
	RetrieveItem(ctx context.Context, claims *crypto.Claims, id int64) (models.DecryptedItem, error)

	// RetrieveNote and RetrievePassword decrypt a base64url ciphertext
	// reference with the session master key.
	RetrieveNote(ctx context.Context, claims *crypto.Claims, ref string) (string, error)
	RetrievePassword(ctx context.Context, claims *crypto.Claims, ref string) (string, error)

	// DeleteItem removes item id after checking that it belongs to the
	// session owner.
	DeleteItem(ctx context.Context, claims *crypto.Claims, id int64) error
}

// ProfileService exposes the account of the session owner.
type ProfileService interface {
	GetProfile(ctx context.Context, claims *crypto.Claims) (models.ProfileView, error)
	DeleteAccount(ctx context.Context, claims *crypto.Claims) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, for example with input
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// VaultServiceWrapper decorates a VaultService.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}
