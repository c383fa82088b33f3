// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/logger"
)

// Storages bundles every repository the services depend on together with
// the lifecycle of the underlying backend.
type Storages struct {
	Accounts    AccountRepository
	Credentials CredentialRepository
	Profiles    ProfileRepository
	Items       VaultItemRepository

	close func() error
}

// NewStorages opens the configured backend. A non-empty DSN connects to
// PostgreSQL and applies the migrations; an empty DSN selects the in-memory
// storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "store.NewStorages").Msg("no database DSN configured, using in-memory storage")
		return NewMemoryStorages(log), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return NewPostgresStorages(db, log), nil
}

// NewPostgresStorages builds the PostgreSQL repositories on top of db.
func NewPostgresStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Accounts:    NewAccountRepository(db, log),
		Credentials: NewCredentialRepository(db, log),
		Profiles:    NewProfileRepository(db, log),
		Items:       NewVaultItemRepository(db, log),
		close:       db.Close,
	}
}

// NewMemoryStorages builds repositories that share one in-memory backend.
func NewMemoryStorages(log *logger.Logger) *Storages {
	m := newMemoryStorage(log)
	return &Storages{
		Accounts:    m,
		Credentials: m,
		Profiles:    m,
		Items:       m,
	}
}

// Close releases the backend. It is safe to call on in-memory storages.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
