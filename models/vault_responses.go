// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic body of every outcome that carries no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse carries the otpauth:// provisioning URL.
type RegisterResponse struct {
	OTPURL string `json:"otpUrl"`
}

// ItemResponse describes a stored vault item. Ciphertext is base64url and
// doubles as the ref accepted by the decrypt endpoints.
type ItemResponse struct {
	ID         int64    `json:"id"`
	Kind       ItemKind `json:"kind"`
	Ciphertext string   `json:"ciphertext"`
}

// ItemsResponse lists the caller's vault items.
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// DecryptedItemResponse carries the plaintext of one vault item.
type DecryptedItemResponse struct {
	Message string   `json:"message"`
	Kind    ItemKind `json:"kind"`
	Content string   `json:"content"`
}

// NoteResponse is the body of GET /vault/items/note.
type NoteResponse struct {
	Message string `json:"message"`
	Note    string `json:"note"`
}

// PasswordResponse is the body of GET /vault/items/password.
type PasswordResponse struct {
	Message  string `json:"message"`
	Password string `json:"password"`
}

// ProfileResponse is the body of GET /profile.
type ProfileResponse struct {
	Profile ProfileView `json:"profile"`
}

// ProfileView is the public part of an account.
type ProfileView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
