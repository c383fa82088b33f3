// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/satu-password/models"
)

const (
	FieldKind    = "kind"
	FieldContent = "content"
	FieldID      = "id"
)

// MaxContentSize bounds the plaintext of one vault item in bytes.
const MaxContentSize = 64 << 10

// VaultItemValidator checks vault item requests.
type VaultItemValidator struct{}

// NewVaultItemValidator returns a [Validator] for vault item requests.
func NewVaultItemValidator() Validator {
	return &VaultItemValidator{}
}

func (v *VaultItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateItemRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateItemRequest:
		return v.validateCreate(*value, fields...)

	case models.DeleteItemRequest:
		return ValidateItemID(value.ID)
	case *models.DeleteItemRequest:
		return ValidateItemID(value.ID)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *VaultItemValidator) validateCreate(req models.CreateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldContent}
	}

	for _, field := range fields {
		switch field {
		case FieldKind:
			if !req.Kind.Valid() {
				return ErrInvalidItemKind
			}
		case FieldContent:
			if req.Content == "" {
				return ErrEmptyContent
			}
			if len(req.Content) > MaxContentSize {
				return ErrContentTooLarge
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// ValidateItemID checks a vault item id taken from a path or body.
func ValidateItemID(id int64) error {
	if id <= 0 {
		return ErrInvalidItemID
	}
	return nil
}
