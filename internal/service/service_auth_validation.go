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

// AuthValidationService validates requests before they reach the wrapped
// [AuthService]. Rejections wrap ErrValidation.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService returns a wrapper enforcing the password policy
// with the given minimum zxcvbn score.
func NewAuthValidationService(minPasswordScore int) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(minPasswordScore),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) ParseSession(ctx context.Context, token string) (*crypto.Claims, error) {
	return v.inner.ParseSession(ctx, token)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, claims *crypto.Claims, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.ChangePassword(ctx, claims, req)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
