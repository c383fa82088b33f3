// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of POST /profile/password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CreateItemRequest is the body of POST /vault/items.
// Content is the plaintext secret; it is encrypted before storage.
type CreateItemRequest struct {
	Kind    ItemKind `json:"kind"`
	Content string   `json:"content"`
}

// DeleteItemRequest is the body of POST /vault/items/delete.
type DeleteItemRequest struct {
	ID int64 `json:"id"`
}
