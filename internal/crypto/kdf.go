// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

type keyDerivation struct {
	params ArgonParams
}

// NewKeyDerivation returns a [KeyDerivation] using p, with zero fields
// taken from [DefaultWrapParams].
func NewKeyDerivation(p ArgonParams) KeyDerivation {
	return &keyDerivation{params: p.orDefault(DefaultWrapParams)}
}

func (k *keyDerivation) DeriveNew(password string) ([]byte, []byte, error) {
	salt, err := randomBytes(SaltSize)
	if err != nil {
		return nil, nil, err
	}
	return idKey(wrappingKeyLabel, password, salt, k.params), salt, nil
}

func (k *keyDerivation) DeriveExisting(password string, salt []byte) ([]byte, error) {
	return idKey(wrappingKeyLabel, password, salt, k.params), nil
}
