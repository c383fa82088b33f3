// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingServerSecret indicates that APP_SERVER_SECRET was not set
	// by any configuration source.
	ErrMissingServerSecret = errors.New("server secret is not configured")
	// ErrInvalidTokenDuration indicates a negative token lifetime or one
	// longer than [MaxTokenDuration].
	ErrInvalidTokenDuration = errors.New("invalid token duration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a password score outside 0..4).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative pool size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
