// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"runtime"
	"time"
)

const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultTokenOrigin      = "https://satupassword.com"
	DefaultTokenDuration    = 15 * time.Minute
	MaxTokenDuration        = time.Hour
	DefaultCookieName       = "encryptedjwt"
	DefaultTOTPIssuer       = "SatuPassword"
	DefaultMinPasswordScore = 0
	DefaultKDFQueueSize     = 64
)

// applyDefaults fills every field still empty after merging.
// MinPasswordScore is left alone: zero is a valid setting and the default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenOrigin
	}
	if cfg.App.TokenAudience == "" {
		cfg.App.TokenAudience = DefaultTokenOrigin
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.CookieName == "" {
		cfg.App.CookieName = DefaultCookieName
	}
	if cfg.App.TOTPIssuer == "" {
		cfg.App.TOTPIssuer = DefaultTOTPIssuer
	}
	if cfg.Workers.KDFConcurrency == 0 {
		cfg.Workers.KDFConcurrency = runtime.NumCPU()
	}
	if cfg.Workers.KDFQueueSize == 0 {
		cfg.Workers.KDFQueueSize = DefaultKDFQueueSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the package's
// ErrInvalid* errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ServerSecret == "" {
		return ErrMissingServerSecret
	}

	if cfg.App.TokenDuration < 0 || cfg.App.TokenDuration > MaxTokenDuration {
		return ErrInvalidTokenDuration
	}

	if cfg.App.MinPasswordScore < 0 || cfg.App.MinPasswordScore > 4 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.KDFConcurrency < 0 || cfg.Workers.KDFQueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
