// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/satu-password/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository owns the operations that touch the credential and the
// profile together. Every method runs in a single transaction.
type AccountRepository interface {
	// CreateAccount inserts the credential and then the profile. If either
	// insert fails nothing is persisted. The returned account carries the
	// generated ids.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// UpdatePassword replaces the password verifier and the wrapped master
	// key of one account.
	UpdatePassword(ctx context.Context, update models.PasswordUpdate) error

	// DeleteAccount removes the credential, its profile and every vault item.
	DeleteAccount(ctx context.Context, loginID int64) error
}

// CredentialRepository reads login credentials.
type CredentialRepository interface {
	FindCredentialByEmail(ctx context.Context, email string) (models.LoginCredential, error)
}

// ProfileRepository reads user profiles.
type ProfileRepository interface {
	FindProfileByLoginID(ctx context.Context, loginID int64) (models.UserProfile, error)
}

// VaultItemRepository persists encrypted vault items. It never sees plaintext.
type VaultItemRepository interface {
	CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	ListItems(ctx context.Context, ownerID int64) ([]models.VaultItem, error)
	FindItem(ctx context.Context, id int64) (models.VaultItem, error)

	// DeleteItem removes the item only when it belongs to ownerID.
	DeleteItem(ctx context.Context, id, ownerID int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
