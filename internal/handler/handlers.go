// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/handler/http"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, http.SettingsFromConfig(cfg), logger),
	}, nil
}
