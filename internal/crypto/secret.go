// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

const (
	signKeyInfo = "satu/session-sign/v1"
	sealKeyInfo = "satu/session-seal/v1"
)

// ServerSecret keeps the two session subkeys sealed in memguard enclaves.
// The raw secret is wiped as soon as the subkeys are derived.
type ServerSecret struct {
	signKey *memguard.Enclave
	sealKey *memguard.Enclave
}

// ParseServerSecret accepts 32 bytes encoded as hex or as standard or
// URL-safe base64, padded or not.
func ParseServerSecret(encoded string) (*ServerSecret, error) {
	raw, err := decodeSecret(strings.TrimSpace(encoded))
	if err != nil {
		return nil, err
	}
	return NewServerSecret(raw)
}

// NewServerSecret derives the session subkeys from raw with HKDF-SHA256.
// raw is wiped before returning.
func NewServerSecret(raw []byte) (*ServerSecret, error) {
	defer memguard.WipeBytes(raw)

	if len(raw) != KeySize {
		return nil, ErrInvalidServerSecret
	}

	signKey, err := expand(raw, signKeyInfo)
	if err != nil {
		return nil, err
	}
	sealKey, err := expand(raw, sealKeyInfo)
	if err != nil {
		memguard.WipeBytes(signKey)
		return nil, err
	}

	return &ServerSecret{
		signKey: memguard.NewEnclave(signKey),
		sealKey: memguard.NewEnclave(sealKey),
	}, nil
}

// GenerateServerSecret returns a fresh random secret, hex encoded.
func GenerateServerSecret() (string, error) {
	buf := memguard.NewBufferRandom(KeySize)
	defer buf.Destroy()
	return hex.EncodeToString(buf.Bytes()), nil
}

// withSignKey opens the signing subkey for the duration of fn.
func (s *ServerSecret) withSignKey(fn func(key []byte) error) error {
	return withEnclave(s.signKey, fn)
}

// withSealKey opens the sealing subkey for the duration of fn.
func (s *ServerSecret) withSealKey(fn func(key []byte) error) error {
	return withEnclave(s.sealKey, fn)
}

func withEnclave(e *memguard.Enclave, fn func(key []byte) error) error {
	buf, err := e.Open()
	if err != nil {
		return fmt.Errorf("open enclave: %w", err)
	}
	defer buf.Destroy()
	return fn(buf.Bytes())
}

func expand(secret []byte, info string) ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("hkdf expand %s: %w", info, err)
	}
	return key, nil
}

func decodeSecret(s string) ([]byte, error) {
	if len(s) == hex.EncodedLen(KeySize) {
		if raw, err := hex.DecodeString(s); err == nil {
			return raw, nil
		}
	}

	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.RawStdEncoding,
		base64.URLEncoding, base64.RawURLEncoding,
	} {
		raw, err := enc.DecodeString(s)
		if err == nil && len(raw) == KeySize {
			return raw, nil
		}
	}

	return nil, ErrInvalidServerSecret
}
