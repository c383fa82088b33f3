// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginCredential is the authentication record of an account.
// Secret material is never serialised.
type LoginCredential struct {
	// ID is the internal identifier of the credential.
	ID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the Argon2id verifier of the password.
	PasswordHash []byte `json:"-"`

	// PasswordHashSalt is the random salt of PasswordHash.
	PasswordHashSalt []byte `json:"-"`

	// TOTPSecret is the base32 shared secret issued at registration.
	TOTPSecret string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// UserProfile holds the display data and the wrapped master key of an
// account. Exactly one profile exists per credential.
type UserProfile struct {
	ID int64 `json:"-"`

	// Name is the display name; it is also the authenticator app label.
	Name string `json:"name"`

	// EncryptedMasterKey is the master key sealed under the wrapping key.
	// The plaintext master key is never stored.
	EncryptedMasterKey []byte `json:"-"`

	// WrappingKeySalt is the KDF salt of the wrapping key. It is
	// independent of PasswordHashSalt.
	WrappingKeySalt []byte `json:"-"`

	// LoginID references the owning LoginCredential.
	LoginID int64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Account is the unit created and deleted atomically.
type Account struct {
	Credential LoginCredential
	Profile    UserProfile
}

// PasswordUpdate is the new key material written by a password change.
// The master key itself is unchanged; only its wrapping is replaced.
type PasswordUpdate struct {
	LoginID            int64
	PasswordHash       []byte
	PasswordHashSalt   []byte
	EncryptedMasterKey []byte
	WrappingKeySalt    []byte
}
