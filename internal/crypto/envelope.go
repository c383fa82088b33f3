// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Purpose names what an [EnvelopeCipher] protects. It is bound into every
// ciphertext as additional authenticated data, so a blob sealed for one
// purpose never opens under another.
type Purpose string

const (
	PurposeMasterKeyWrap Purpose = "satu/master-key-wrap/v1"
	PurposeVaultItem     Purpose = "satu/vault-item/v1"
	PurposeSessionToken  Purpose = "satu/session-token/v1"
)

type envelopeCipher struct {
	aad []byte
}

// NewEnvelopeCipher returns an AES-256-GCM [EnvelopeCipher] bound to purpose.
func NewEnvelopeCipher(purpose Purpose) EnvelopeCipher {
	return &envelopeCipher{aad: []byte(purpose)}
}

// Encrypt seals plaintext under key with a fresh random nonce and returns
// nonce ‖ ciphertext ‖ tag.
func (e *envelopeCipher) Encrypt(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, e.aad), nil
}

// Decrypt opens a blob produced by Encrypt. Any failure, including a key
// of the wrong size, is reported as [ErrIntegrity].
func (e *envelopeCipher) Decrypt(ciphertext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrIntegrity
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize+gcm.Overhead() {
		return nil, ErrIntegrity
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, e.aad)
	if err != nil {
		return nil, ErrIntegrity
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
