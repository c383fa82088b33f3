// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

type masterKeyManager struct {
	cipher EnvelopeCipher
}

// NewMasterKeyManager returns a [MasterKeyManager] that wraps keys with an
// [EnvelopeCipher] bound to [PurposeMasterKeyWrap].
func NewMasterKeyManager() MasterKeyManager {
	return &masterKeyManager{cipher: NewEnvelopeCipher(PurposeMasterKeyWrap)}
}

func (m *masterKeyManager) Generate() ([]byte, error) {
	return randomBytes(KeySize)
}

func (m *masterKeyManager) Wrap(masterKey, wrappingKey []byte) ([]byte, error) {
	if len(masterKey) != KeySize {
		return nil, ErrInvalidKey
	}
	return m.cipher.Encrypt(masterKey, wrappingKey)
}

func (m *masterKeyManager) Unwrap(wrapped, wrappingKey []byte) ([]byte, error) {
	masterKey, err := m.cipher.Decrypt(wrapped, wrappingKey)
	if err != nil {
		return nil, ErrIntegrity
	}
	if len(masterKey) != KeySize {
		return nil, ErrIntegrity
	}
	return masterKey, nil
}
