// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/handler"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/server"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/MKhiriev/satu-password/internal/store"
	"github.com/MKhiriev/satu-password/internal/workers"
	"github.com/MKhiriev/satu-password/models"
	"github.com/awnumar/memguard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	defer memguard.Purge()

	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("satu-password-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("satu-password-server", logger.WithLevel(cfg.App.LogLevel))

	secret, err := crypto.ParseServerSecret(cfg.App.ServerSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading server secret")
	}
	cfg.App.ServerSecret = ""

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	w := workers.NewWorkers(cfg.Workers, log)
	w.Run()
	defer func() {
		if err := w.Stop(); err != nil {
			log.Err(err).Msg("error stopping workers")
		}
	}()

	services, err := service.NewServices(storages, w.KDF, secret, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
