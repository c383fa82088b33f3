// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemKind is the semantic type of a vault item.
type ItemKind string

const (
	ItemKindPassword ItemKind = "password"
	ItemKindNote     ItemKind = "note"
)

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	return k == ItemKindPassword || k == ItemKindNote
}

// VaultItem is a secret encrypted under its owner's master key.
// The server stores and returns only the ciphertext.
type VaultItem struct {
	ID int64 `json:"id"`

	// OwnerID references the owning UserProfile.
	OwnerID int64 `json:"-"`

	Kind ItemKind `json:"kind"`

	// Ciphertext is nonce ‖ ciphertext ‖ tag under the master key.
	Ciphertext []byte `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// DecryptedItem is a vault item opened with its owner's master key.
type DecryptedItem struct {
	ID      int64
	Kind    ItemKind
	Content string
}
