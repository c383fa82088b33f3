// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/store"
	"github.com/MKhiriev/satu-password/models"
)

// vaultService is the concrete implementation of [VaultService].
//
// Items are encrypted and decrypted with the master key carried by the
// session claims. The repositories only ever see ciphertext.
type vaultService struct {
	credentials store.CredentialRepository
	profiles    store.ProfileRepository
	items       store.VaultItemRepository

	// cipher is bound to the vault-item purpose.
	cipher crypto.EnvelopeCipher

	logger *logger.Logger
}

// NewVaultService constructs a [VaultService].
func NewVaultService(
	credentials store.CredentialRepository,
	profiles store.ProfileRepository,
	items store.VaultItemRepository,
	cipher crypto.EnvelopeCipher,
	logger *logger.Logger,
) VaultService {
	logger.Debug().Msg("creating vault service")
	return &vaultService{
		credentials: credentials,
		profiles:    profiles,
		items:       items,
		cipher:      cipher,
		logger:      logger,
	}
}

func (v *vaultService) CreateItem(ctx context.Context, claims *crypto.Claims, req models.CreateItemRequest) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	owner, err := resolveOwner(ctx, v.credentials, v.profiles, claims)
	if err != nil {
		return models.VaultItem{}, err
	}

	ciphertext, err := v.cipher.Encrypt([]byte(req.Content), claims.MasterKey())
	if err != nil {
		log.Err(err).Str("func", "*vaultService.CreateItem").Msg("error encrypting vault item")
		return models.VaultItem{}, fmt.Errorf("%w: error encrypting vault item: %w", ErrInternal, err)
	}

	item, err := v.items.CreateItem(ctx, models.VaultItem{
		OwnerID:    owner.ID,
		Kind:       req.Kind,
		Ciphertext: ciphertext,
	})
	if err != nil {
		log.Err(err).Str("func", "*vaultService.CreateItem").Int64("owner_id", owner.ID).Msg("error saving vault item")
		return models.VaultItem{}, fmt.Errorf("%w: error saving vault item: %w", ErrInternal, err)
	}

	return item, nil
}

func (v *vaultService) ListItems(ctx context.Context, claims *crypto.Claims) ([]models.VaultItem, error) {
	owner, err := resolveOwner(ctx, v.credentials, v.profiles, claims)
	if err != nil {
		return nil, err
	}

	items, err := v.items.ListItems(ctx, owner.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultService.ListItems").Int64("owner_id", owner.ID).Msg("error listing vault items")
		return nil, fmt.Errorf("%w: error listing vault items: %w", ErrInternal, err)
	}

	return items, nil
}

// RetrieveItem returns the plaintext of item id. Another user's item is
// rejected with ErrAuthorization before any decryption is attempted.
func (v *vaultService) RetrieveItem(ctx context.Context, claims *crypto.Claims, id int64) (models.DecryptedItem, error) {
	item, err := v.ownedItem(ctx, claims, id)
	if err != nil {
		return models.DecryptedItem{}, err
	}

	plaintext, err := v.open(ctx, item.Ciphertext, claims.MasterKey())
	if err != nil {
		return models.DecryptedItem{}, err
	}

	return models.DecryptedItem{ID: item.ID, Kind: item.Kind, Content: plaintext}, nil
}

func (v *vaultService) RetrieveNote(ctx context.Context, claims *crypto.Claims, ref string) (string, error) {
	return v.retrieveRef(ctx, claims, ref)
}

func (v *vaultService) RetrievePassword(ctx context.Context, claims *crypto.Claims, ref string) (string, error) {
	return v.retrieveRef(ctx, claims, ref)
}

// DeleteItem removes item id.
//
// The item is loaded first and its owner compared with the session owner;
// a mismatch is ErrAuthorization. The delete statement is scoped by owner
// as well.
func (v *vaultService) DeleteItem(ctx context.Context, claims *crypto.Claims, id int64) error {
	log := logger.FromContext(ctx)

	item, err := v.ownedItem(ctx, claims, id)
	if err != nil {
		return err
	}

	err = v.items.DeleteItem(ctx, item.ID, item.OwnerID)
	if errors.Is(err, store.ErrItemNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultService.DeleteItem").Int64("id", id).Msg("error deleting vault item")
		return fmt.Errorf("%w: error deleting vault item: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*vaultService.DeleteItem").Int64("id", id).Msg("vault item deleted")
	return nil
}

// ownedItem loads item id and checks that it belongs to the session owner.
func (v *vaultService) ownedItem(ctx context.Context, claims *crypto.Claims, id int64) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	owner, err := resolveOwner(ctx, v.credentials, v.profiles, claims)
	if err != nil {
		return models.VaultItem{}, err
	}

	item, err := v.items.FindItem(ctx, id)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultService.ownedItem").Int64("id", id).Msg("error loading vault item")
		return models.VaultItem{}, fmt.Errorf("%w: error loading vault item: %w", ErrInternal, err)
	}

	if item.OwnerID != owner.ID {
		log.Warn().
			Str("func", "*vaultService.ownedItem").
			Int64("id", id).
			Int64("owner_id", owner.ID).
			Msg("access to foreign vault item denied")
		return models.VaultItem{}, ErrAuthorization
	}

	return item, nil
}

func (v *vaultService) retrieveRef(ctx context.Context, claims *crypto.Claims, ref string) (string, error) {
	if claims == nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, ErrNilClaims)
	}

	ciphertext, err := base64.RawURLEncoding.DecodeString(ref)
	if err != nil || len(ciphertext) == 0 {
		return "", fmt.Errorf("%w: %w", ErrValidation, ErrInvalidRef)
	}

	return v.open(ctx, ciphertext, claims.MasterKey())
}

// open decrypts ciphertext. An integrity failure never yields partial
// plaintext and is reported as ErrAuthentication.
func (v *vaultService) open(ctx context.Context, ciphertext, masterKey []byte) (string, error) {
	plaintext, err := v.cipher.Decrypt(ciphertext, masterKey)
	if errors.Is(err, crypto.ErrIntegrity) {
		logger.FromContext(ctx).Warn().Str("func", "*vaultService.open").Msg("vault item failed integrity check")
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: error decrypting vault item: %w", ErrInternal, err)
	}

	return string(plaintext), nil
}

// resolveOwner maps session claims to the profile that owns vault items.
// A session of a deleted account fails with ErrAuthentication.
func resolveOwner(
	ctx context.Context,
	credentials store.CredentialRepository,
	profiles store.ProfileRepository,
	claims *crypto.Claims,
) (models.UserProfile, error) {
	log := logger.FromContext(ctx)
	if claims == nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrAuthentication, ErrNilClaims)
	}

	cred, err := credentials.FindCredentialByEmail(ctx, claims.Email())
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if err != nil {
		log.Err(err).Str("func", "service.resolveOwner").Msg("credential lookup failed")
		return models.UserProfile{}, fmt.Errorf("%w: credential lookup failed: %w", ErrInternal, err)
	}

	profile, err := profiles.FindProfileByLoginID(ctx, cred.ID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if err != nil {
		log.Err(err).Str("func", "service.resolveOwner").Int64("login_id", cred.ID).Msg("profile lookup failed")
		return models.UserProfile{}, fmt.Errorf("%w: profile lookup failed: %w", ErrInternal, err)
	}

	return profile, nil
}
