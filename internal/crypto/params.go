// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the length of every symmetric key in the hierarchy.
	KeySize = 32
	// SaltSize is the length of the per-user Argon2id salts.
	SaltSize = 16

	authVerifierLabel = "satu/auth-verifier/v1"
	wrappingKeyLabel  = "satu/wrapping-key/v1"
)

// ArgonParams are the Argon2id cost settings for one use of the function.
type ArgonParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultHashParams is the OWASP (2024) minimum for password verifiers:
// 2 iterations over 19 MiB with a single lane.
var DefaultHashParams = ArgonParams{Time: 2, MemoryKiB: 19 * 1024, Threads: 1}

// DefaultWrapParams is the cost for wrapping-key derivation:
// 1 iteration over 64 MiB with 4 lanes.
var DefaultWrapParams = ArgonParams{Time: 1, MemoryKiB: 64 * 1024, Threads: 4}

// orDefault fills zero fields of p from def.
func (p ArgonParams) orDefault(def ArgonParams) ArgonParams {
	if p.Time == 0 {
		p.Time = def.Time
	}
	if p.MemoryKiB == 0 {
		p.MemoryKiB = def.MemoryKiB
	}
	if p.Threads == 0 {
		p.Threads = def.Threads
	}
	return p
}

// idKey runs Argon2id with label prepended to the salt, which keeps outputs
// of different uses apart even for identical password and salt.
func idKey(label, password string, salt []byte, p ArgonParams) []byte {
	labelled := make([]byte, 0, len(label)+len(salt))
	labelled = append(labelled, label...)
	labelled = append(labelled, salt...)
	return argon2.IDKey([]byte(password), labelled, p.Time, p.MemoryKiB, p.Threads, KeySize)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return b, nil
}
