// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/subtle"

type passwordHasher struct {
	params ArgonParams
}

// NewPasswordHasher returns a [PasswordHasher] using p, with zero fields
// taken from [DefaultHashParams].
func NewPasswordHasher(p ArgonParams) PasswordHasher {
	return &passwordHasher{params: p.orDefault(DefaultHashParams)}
}

func (h *passwordHasher) Hash(password string) ([]byte, []byte, error) {
	salt, err := randomBytes(SaltSize)
	if err != nil {
		return nil, nil, err
	}
	return idKey(authVerifierLabel, password, salt, h.params), salt, nil
}

func (h *passwordHasher) Verify(password string, hash, salt []byte) bool {
	if len(hash) != KeySize || len(salt) == 0 {
		return false
	}
	candidate := idKey(authVerifierLabel, password, salt, h.params)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
