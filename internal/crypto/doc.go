// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the key custody primitives of satu-password.
//
// Key hierarchy:
//
//	password ──Argon2id(auth label)──▶ verifier hash           (PasswordHasher)
//	password ──Argon2id(wrap label)──▶ wrapping key            (KeyDerivation)
//	random 32 bytes                  ──▶ master key            (MasterKeyManager)
//	AES-GCM(wrapping key, master key)──▶ encrypted master key  (persisted)
//	AES-GCM(master key, item)        ──▶ vault item ciphertext (persisted)
//	server secret ──HKDF──▶ sign key + seal key                (SessionTokenCodec)
//
// The master key is never persisted in plaintext. After login it only lives
// inside the sealed session token carried by the client.
package crypto
