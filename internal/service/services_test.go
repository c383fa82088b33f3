// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/MKhiriev/satu-password/internal/store"
	"github.com/MKhiriev/satu-password/internal/workers"
	"github.com/MKhiriev/satu-password/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIntegrationServices wires real crypto, a real KDF pool and the
// in-memory storage.
func newIntegrationServices(t *testing.T) *service.Services {
	t.Helper()

	encoded, err := crypto.GenerateServerSecret()
	require.NoError(t, err)
	secret, err := crypto.ParseServerSecret(encoded)
	require.NoError(t, err)

	pool := workers.NewPool(2, 4, logger.Nop())
	pool.Run()
	t.Cleanup(func() { _ = pool.Stop() })

	cfg := config.StructuredConfig{
		App: config.App{
			TokenIssuer:      testOrigin,
			TokenAudience:    testOrigin,
			TokenDuration:    time.Minute,
			TOTPIssuer:       "SatuPassword",
			MinPasswordScore: config.DefaultMinPasswordScore,
			Version:          "test",
		},
		Crypto: config.Crypto{
			HashTime: testArgon.Time, HashMemoryKiB: testArgon.MemoryKiB, HashThreads: testArgon.Threads,
			WrapTime: testArgon.Time, WrapMemoryKiB: testArgon.MemoryKiB, WrapThreads: testArgon.Threads,
		},
	}

	services, err := service.NewServices(store.NewMemoryStorages(logger.Nop()), pool, secret, cfg, logger.Nop())
	require.NoError(t, err)
	return services
}

func TestServices_ChangePasswordKeepsVaultReadable(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, err := s.AuthService.Register(ctx, aliceRegister())
	require.NoError(t, err)

	session, err := s.AuthService.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "Str0ngPass!1"})
	require.NoError(t, err)
	claims, err := s.AuthService.ParseSession(ctx, session.Token)
	require.NoError(t, err)

	item, err := s.VaultService.CreateItem(ctx, claims, models.CreateItemRequest{Kind: models.ItemKindNote, Content: "keep me"})
	require.NoError(t, err)

	require.NoError(t, s.AuthService.ChangePassword(ctx, claims, models.ChangePasswordRequest{
		OldPassword: "Str0ngPass!1",
		NewPassword: "An0ther#Secret",
	}))

	_, err = s.AuthService.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "Str0ngPass!1"})
	require.ErrorIs(t, err, service.ErrAuthentication, "old password must stop working")

	session, err = s.AuthService.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "An0ther#Secret"})
	require.NoError(t, err)
	claims, err = s.AuthService.ParseSession(ctx, session.Token)
	require.NoError(t, err)

	got, err := s.VaultService.RetrieveItem(ctx, claims, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", got.Content)
}

func TestServices_RegisterValidationAndConflict(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, err := s.AuthService.Register(ctx, models.RegisterRequest{Email: "a@b.com", Password: "Str0ng Pass!1", Name: "Alice"})
	require.ErrorIs(t, err, service.ErrValidation)

	_, err = s.AuthService.Register(ctx, models.RegisterRequest{Email: "a@b.com", Password: "Ab1!", Name: "Alice"})
	require.ErrorIs(t, err, service.ErrValidation)

	_, err = s.AuthService.Register(ctx, aliceRegister())
	require.NoError(t, err)

	_, err = s.AuthService.Register(ctx, models.RegisterRequest{Email: "a@b.com", Password: "Str0ngPass!2", Name: "Alice 2"})
	require.ErrorIs(t, err, service.ErrConflict)
}

func TestServices_DeleteAccountEndsSessions(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, err := s.AuthService.Register(ctx, aliceRegister())
	require.NoError(t, err)
	session, err := s.AuthService.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "Str0ngPass!1"})
	require.NoError(t, err)
	claims, err := s.AuthService.ParseSession(ctx, session.Token)
	require.NoError(t, err)

	require.NoError(t, s.ProfileService.DeleteAccount(ctx, claims))

	_, err = s.VaultService.ListItems(ctx, claims)
	require.ErrorIs(t, err, service.ErrAuthentication)
	_, err = s.AuthService.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "Str0ngPass!1"})
	require.ErrorIs(t, err, service.ErrAuthentication)
}

func TestServices_ConcurrentRegisterSameEmail(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	const n = 6
	errs := make([]error, n)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := aliceRegister()
			if i%2 == 1 {
				req.Email = "A@B.com"
			}
			<-start
			_, errs[i] = s.AuthService.Register(ctx, req)
		}()
	}
	close(start)
	wg.Wait()

	var created, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, service.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, n-1, conflicts)

	_, err := s.AuthService.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "Str0ngPass!1"})
	require.NoError(t, err)
}
