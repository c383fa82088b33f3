// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher produces and checks the login verifier of a password.
type PasswordHasher interface {
	// Hash returns an Argon2id verifier of password together with the fresh
	// random salt it was computed with.
	Hash(password string) (hash, salt []byte, err error)

	// Verify recomputes the verifier and compares it in constant time.
	// It never explains why a comparison failed.
	Verify(password string, hash, salt []byte) bool
}

// KeyDerivation turns a password into the key that wraps the master key.
// Its Argon2id domain label and cost differ from [PasswordHasher], so the
// stored verifier reveals nothing about the wrapping key.
type KeyDerivation interface {
	// DeriveNew derives a wrapping key under a freshly generated salt.
	DeriveNew(password string) (key, salt []byte, err error)

	// DeriveExisting re-derives the wrapping key for a stored salt.
	DeriveExisting(password string, salt []byte) ([]byte, error)
}

// EnvelopeCipher is an authenticated cipher bound to one purpose.
//
// Output layout is nonce ‖ ciphertext ‖ tag. Every failure of Decrypt is
// reported as [ErrIntegrity].
type EnvelopeCipher interface {
	Encrypt(plaintext, key []byte) ([]byte, error)
	Decrypt(ciphertext, key []byte) ([]byte, error)
}

// MasterKeyManager creates per-user master keys and wraps them at rest.
type MasterKeyManager interface {
	// Generate returns 32 random bytes independent of any password.
	Generate() ([]byte, error)

	// Wrap encrypts masterKey under wrappingKey.
	Wrap(masterKey, wrappingKey []byte) ([]byte, error)

	// Unwrap reverses Wrap. A wrong wrapping key yields [ErrIntegrity].
	Unwrap(wrapped, wrappingKey []byte) ([]byte, error)
}

// SessionTokenCodec mints and opens the bearer token that carries the
// master key between requests.
type SessionTokenCodec interface {
	// Encode seals identity into an opaque URL-safe token and reports the
	// absolute time the token stops being accepted.
	Encode(identity Identity) (token string, expiresAt time.Time, err error)

	// Decode opens token and checks it against expect. On failure the error
	// is exactly one of [ErrTokenExpired], [ErrTokenIntegrity],
	// [ErrIssuerMismatch] or [ErrAudienceMismatch].
	Decode(token string, expect Expectation) (*Claims, error)
}
