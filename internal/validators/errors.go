// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrPasswordLength     = errors.New("password must be between 8 and 64 characters")
	ErrPasswordWhitespace = errors.New("password must not contain whitespace")
	ErrPasswordTooWeak    = errors.New("password is too weak")
	ErrEmptyPassword      = errors.New("password is required")
	ErrSamePassword       = errors.New("new password must differ from the old one")

	ErrInvalidItemKind = errors.New("invalid vault item kind")
	ErrEmptyContent    = errors.New("vault item content is required")
	ErrContentTooLarge = errors.New("vault item content is too large")
	ErrInvalidItemID   = errors.New("invalid vault item id")
)
