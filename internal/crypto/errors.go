// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrIntegrity is the only error returned by a failed decryption.
	// Tampered ciphertext, truncated input and a wrong key are indistinguishable.
	ErrIntegrity = errors.New("integrity check failed")
	// ErrInvalidKey is returned when an encryption key has the wrong length.
	ErrInvalidKey = errors.New("invalid key length")
	// ErrRandomSource is returned when the OS CSPRNG could not be read.
	ErrRandomSource = errors.New("random source failure")

	ErrTokenExpired     = errors.New("session token expired")
	ErrTokenIntegrity   = errors.New("session token integrity failure")
	ErrIssuerMismatch   = errors.New("session token issuer mismatch")
	ErrAudienceMismatch = errors.New("session token audience mismatch")

	// ErrInvalidServerSecret is returned when the configured server secret is
	// not a hex or base64 encoding of exactly 32 bytes.
	ErrInvalidServerSecret = errors.New("invalid server secret")
	// ErrInvalidSessionConfig is returned for an empty issuer or audience or
	// a non-positive token lifetime.
	ErrInvalidSessionConfig = errors.New("invalid session token configuration")
)
