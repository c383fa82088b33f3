// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/validators"
	"github.com/MKhiriev/satu-password/models"
)

// VaultValidationService validates requests before they reach the wrapped
// [VaultService].
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultItemValidator(),
	}
}

func (v *VaultValidationService) CreateItem(ctx context.Context, claims *crypto.Claims, req models.CreateItemRequest) (models.VaultItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.CreateItem(ctx, claims, req)
}

func (v *VaultValidationService) ListItems(ctx context.Context, claims *crypto.Claims) ([]models.VaultItem, error) {
	return v.inner.ListItems(ctx, claims)
}

func (v *VaultValidationService) RetrieveItem(ctx context.Context, claims *crypto.Claims, id int64) (models.DecryptedItem, error) {
	if err := validators.ValidateItemID(id); err != nil {
		return models.DecryptedItem{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.RetrieveItem(ctx, claims, id)
}

func (v *VaultValidationService) RetrieveNote(ctx context.Context, claims *crypto.Claims, ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: %w", ErrValidation, ErrInvalidRef)
	}
	return v.inner.RetrieveNote(ctx, claims, ref)
}

func (v *VaultValidationService) RetrievePassword(ctx context.Context, claims *crypto.Claims, ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: %w", ErrValidation, ErrInvalidRef)
	}
	return v.inner.RetrievePassword(ctx, claims, ref)
}

func (v *VaultValidationService) DeleteItem(ctx context.Context, claims *crypto.Claims, id int64) error {
	if err := v.validator.Validate(ctx, models.DeleteItemRequest{ID: id}); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.DeleteItem(ctx, claims, id)
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}
