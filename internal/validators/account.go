// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/satu-password/models"
	"github.com/nbutton23/zxcvbn-go"
)

// Field name constants accepted by [AccountValidator] for field-level
// scoping.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 64
	MaxNameLength     = 128
)

// AccountValidator checks registration, login and password-change input.
//
// New passwords must be 8 to 64 characters and contain no whitespace. A
// positive minScore also requires that score on the zxcvbn scale (0..4), with
// the email and the name counted as guessable user input.
type AccountValidator struct {
	minScore int
}

// NewAccountValidator returns a [Validator] for account requests.
func NewAccountValidator(minScore int) Validator {
	return &AccountValidator{minScore: minScore}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AccountValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldName:
			if err := validateName(req.Name); err != nil {
				return err
			}
		case FieldPassword:
			if err := v.validateNewPassword(req.Password, req.Email, req.Name); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateLogin only checks presence: the policy of a stored password may
// be older than the current one.
func (v *AccountValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AccountValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldOldPassword:
			if req.OldPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if req.NewPassword == req.OldPassword {
				return ErrSamePassword
			}
			if err := v.validateNewPassword(req.NewPassword); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AccountValidator) validateNewPassword(password string, userInputs ...string) error {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength || n > MaxPasswordLength {
		return ErrPasswordLength
	}
	if strings.IndexFunc(password, unicode.IsSpace) >= 0 {
		return ErrPasswordWhitespace
	}

	if v.minScore <= 0 {
		return nil
	}

	inputs := make([]string, 0, len(userInputs))
	for _, in := range userInputs {
		if in != "" {
			inputs = append(inputs, in)
		}
	}
	if zxcvbn.PasswordStrength(password, inputs).Score < v.minScore {
		return ErrPasswordTooWeak
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	// reject display-name forms such as "Alice <a@b.com>"
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}

	return nil
}
