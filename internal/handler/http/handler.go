// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/service"
)

// Settings are the transport options of [Handler].
type Settings struct {
	// CookieName is the name of the session cookie.
	CookieName string

	// CookieInsecure drops the Secure attribute. Local development only.
	CookieInsecure bool

	// RequestTimeout bounds every request. Zero disables the limit.
	RequestTimeout time.Duration
}

// SettingsFromConfig extracts the transport options from cfg.
func SettingsFromConfig(cfg config.StructuredConfig) Settings {
	return Settings{
		CookieName:     cfg.App.CookieName,
		CookieInsecure: cfg.App.CookieInsecure,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	if settings.CookieName == "" {
		settings.CookieName = config.DefaultCookieName
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}
