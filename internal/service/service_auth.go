// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/store"
	"github.com/MKhiriev/satu-password/internal/workers"
	"github.com/MKhiriev/satu-password/models"
	"github.com/awnumar/memguard"
	"github.com/pquerna/otp/totp"
)

// authService is the concrete implementation of [AuthService].
//
// Every Argon2id call (Hash, Verify, DeriveNew, DeriveExisting) is submitted
// to the KDF executor; AEAD and token work runs on the request goroutine.
type authService struct {
	accounts    store.AccountRepository
	credentials store.CredentialRepository
	profiles    store.ProfileRepository

	hasher     crypto.PasswordHasher
	kdf        crypto.KeyDerivation
	masterKeys crypto.MasterKeyManager
	tokens     crypto.SessionTokenCodec
	executor   workers.Executor

	// totpIssuer is shown by authenticator apps next to the account name.
	totpIssuer string

	// expect pins issuer and audience of accepted session tokens.
	expect crypto.Expectation

	// dummyHash and dummySalt feed the Verify that runs for unknown emails.
	dummyHash []byte
	dummySalt []byte

	logger *logger.Logger
}

// AuthDeps groups the collaborators of [NewAuthService].
type AuthDeps struct {
	Accounts    store.AccountRepository
	Credentials store.CredentialRepository
	Profiles    store.ProfileRepository

	Hasher     crypto.PasswordHasher
	KDF        crypto.KeyDerivation
	MasterKeys crypto.MasterKeyManager
	Tokens     crypto.SessionTokenCodec
	Executor   workers.Executor

	TOTPIssuer string
	Expect     crypto.Expectation
}

// NewAuthService constructs an [AuthService] from deps.
func NewAuthService(deps AuthDeps, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		accounts:    deps.Accounts,
		credentials: deps.Credentials,
		profiles:    deps.Profiles,
		hasher:      deps.Hasher,
		kdf:         deps.KDF,
		masterKeys:  deps.MasterKeys,
		tokens:      deps.Tokens,
		executor:    deps.Executor,
		totpIssuer:  deps.TOTPIssuer,
		expect:      deps.Expect,
		dummyHash:   make([]byte, crypto.KeySize),
		dummySalt:   make([]byte, crypto.SaltSize),
		logger:      logger,
	}
}

// Register creates a new account.
//
// Steps: password verifier, TOTP secret, wrapping key, master key, wrap,
// then one transactional insert of credential and profile. The plaintext
// master key and the wrapping key are wiped before returning.
//
// Returns the otpauth:// URL or an error wrapping:
//   - ErrConflict if the email is already registered.
//   - ErrInternal for any crypto or storage failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	hash, hashSalt, err := a.hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return "", fmt.Errorf("%w: error hashing password: %w", ErrInternal, err)
	}

	otpKey, err := totp.Generate(totp.GenerateOpts{
		Issuer:      a.totpIssuer,
		AccountName: req.Name,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error generating TOTP secret")
		return "", fmt.Errorf("%w: error generating TOTP secret: %w", ErrInternal, err)
	}

	wrappingKey, wrapSalt, err := a.deriveNew(ctx, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error deriving wrapping key")
		return "", fmt.Errorf("%w: error deriving wrapping key: %w", ErrInternal, err)
	}
	defer memguard.WipeBytes(wrappingKey)

	masterKey, err := a.masterKeys.Generate()
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error generating master key")
		return "", fmt.Errorf("%w: error generating master key: %w", ErrInternal, err)
	}
	defer memguard.WipeBytes(masterKey)

	wrapped, err := a.masterKeys.Wrap(masterKey, wrappingKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error wrapping master key")
		return "", fmt.Errorf("%w: error wrapping master key: %w", ErrInternal, err)
	}

	_, err = a.accounts.CreateAccount(ctx, models.Account{
		Credential: models.LoginCredential{
			Email:            email,
			PasswordHash:     hash,
			PasswordHashSalt: hashSalt,
			TOTPSecret:       otpKey.Secret(),
		},
		Profile: models.UserProfile{
			Name:               req.Name,
			EncryptedMasterKey: wrapped,
			WrappingKeySalt:    wrapSalt,
		},
	})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		log.Info().Str("func", "*authService.Register").Msg("email already registered")
		return "", fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("account creation ended with error")
		return "", fmt.Errorf("%w: account creation ended with error: %w", ErrInternal, err)
	}

	return otpKey.URL(), nil
}

// Login authenticates email and password and returns a sealed session.
//
// An unknown email, a wrong password and a wrapped key that fails to open
// all return the same ErrAuthentication. For an unknown email a dummy
// Verify still runs so response time does not reveal whether the account
// exists.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	cred, err := a.credentials.FindCredentialByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrCredentialNotFound) {
		_, _ = a.verify(ctx, req.Password, a.dummyHash, a.dummySalt)
		return models.Session{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("credential lookup failed")
		return models.Session{}, fmt.Errorf("%w: credential lookup failed: %w", ErrInternal, err)
	}

	ok, err := a.verify(ctx, req.Password, cred.PasswordHash, cred.PasswordHashSalt)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error verifying password")
		return models.Session{}, fmt.Errorf("%w: error verifying password: %w", ErrInternal, err)
	}
	if !ok {
		log.Info().Str("func", "*authService.Login").Int64("login_id", cred.ID).Msg("wrong password")
		return models.Session{}, ErrAuthentication
	}

	masterKey, err := a.unwrapMasterKey(ctx, cred.ID, req.Password)
	if err != nil {
		return models.Session{}, err
	}
	defer memguard.WipeBytes(masterKey)

	token, expiresAt, err := a.tokens.Encode(crypto.Identity{Email: cred.Email, MasterKey: masterKey})
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error encoding session token")
		return models.Session{}, fmt.Errorf("%w: error encoding session token: %w", ErrInternal, err)
	}

	return models.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// ParseSession opens token. Any failure, whether expiry, tampering or a
// foreign issuer or audience, wraps ErrAuthentication and keeps the precise
// crypto sentinel as the cause.
func (a *authService) ParseSession(ctx context.Context, token string) (*crypto.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, crypto.ErrTokenIntegrity)
	}

	claims, err := a.tokens.Decode(token, a.expect)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseSession").Msg("session rejected")
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return claims, nil
}

// ChangePassword checks the old password, recovers the master key with it
// and wraps the same key under a key derived from the new password. Vault
// items stay encrypted under the unchanged master key.
func (a *authService) ChangePassword(ctx context.Context, claims *crypto.Claims, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)
	if claims == nil {
		return fmt.Errorf("%w: %w", ErrAuthentication, ErrNilClaims)
	}

	cred, err := a.credentials.FindCredentialByEmail(ctx, claims.Email())
	if errors.Is(err, store.ErrCredentialNotFound) {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("credential lookup failed")
		return fmt.Errorf("%w: credential lookup failed: %w", ErrInternal, err)
	}

	ok, err := a.verify(ctx, req.OldPassword, cred.PasswordHash, cred.PasswordHashSalt)
	if err != nil {
		return fmt.Errorf("%w: error verifying password: %w", ErrInternal, err)
	}
	if !ok {
		return ErrAuthentication
	}

	masterKey, err := a.unwrapMasterKey(ctx, cred.ID, req.OldPassword)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(masterKey)

	hash, hashSalt, err := a.hash(ctx, req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: error hashing password: %w", ErrInternal, err)
	}

	wrappingKey, wrapSalt, err := a.deriveNew(ctx, req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: error deriving wrapping key: %w", ErrInternal, err)
	}
	defer memguard.WipeBytes(wrappingKey)

	wrapped, err := a.masterKeys.Wrap(masterKey, wrappingKey)
	if err != nil {
		return fmt.Errorf("%w: error wrapping master key: %w", ErrInternal, err)
	}

	err = a.accounts.UpdatePassword(ctx, models.PasswordUpdate{
		LoginID:            cred.ID,
		PasswordHash:       hash,
		PasswordHashSalt:   hashSalt,
		EncryptedMasterKey: wrapped,
		WrappingKeySalt:    wrapSalt,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("error storing new key material")
		return fmt.Errorf("%w: error storing new key material: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.ChangePassword").Int64("login_id", cred.ID).Msg("password changed")
	return nil
}

// unwrapMasterKey loads the profile of loginID, re-derives the wrapping key
// from password and opens the master key. A missing profile and an integrity
// failure are both reported as ErrAuthentication.
func (a *authService) unwrapMasterKey(ctx context.Context, loginID int64, password string) ([]byte, error) {
	log := logger.FromContext(ctx)

	profile, err := a.profiles.FindProfileByLoginID(ctx, loginID)
	if errors.Is(err, store.ErrProfileNotFound) {
		log.Warn().Str("func", "*authService.unwrapMasterKey").Int64("login_id", loginID).Msg("credential has no profile")
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.unwrapMasterKey").Int64("login_id", loginID).Msg("profile lookup failed")
		return nil, fmt.Errorf("%w: profile lookup failed: %w", ErrInternal, err)
	}

	wrappingKey, err := a.deriveExisting(ctx, password, profile.WrappingKeySalt)
	if err != nil {
		log.Err(err).Str("func", "*authService.unwrapMasterKey").Msg("error deriving wrapping key")
		return nil, fmt.Errorf("%w: error deriving wrapping key: %w", ErrInternal, err)
	}
	defer memguard.WipeBytes(wrappingKey)

	masterKey, err := a.masterKeys.Unwrap(profile.EncryptedMasterKey, wrappingKey)
	if errors.Is(err, crypto.ErrIntegrity) {
		log.Warn().Str("func", "*authService.unwrapMasterKey").Int64("login_id", loginID).Msg("wrapped master key failed to open")
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error unwrapping master key: %w", ErrInternal, err)
	}

	return masterKey, nil
}

// The helpers below read results only after Do succeeded: a cancelled
// caller may return while its job is still running.

func (a *authService) hash(ctx context.Context, password string) ([]byte, []byte, error) {
	var hash, salt []byte
	err := a.executor.Do(ctx, func() error {
		var hashErr error
		hash, salt, hashErr = a.hasher.Hash(password)
		return hashErr
	})
	if err != nil {
		return nil, nil, err
	}
	return hash, salt, nil
}

func (a *authService) verify(ctx context.Context, password string, hash, salt []byte) (bool, error) {
	var ok bool
	err := a.executor.Do(ctx, func() error {
		ok = a.hasher.Verify(password, hash, salt)
		return nil
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (a *authService) deriveNew(ctx context.Context, password string) ([]byte, []byte, error) {
	var key, salt []byte
	err := a.executor.Do(ctx, func() error {
		var kdfErr error
		key, salt, kdfErr = a.kdf.DeriveNew(password)
		return kdfErr
	})
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

func (a *authService) deriveExisting(ctx context.Context, password string, salt []byte) ([]byte, error) {
	var key []byte
	err := a.executor.Do(ctx, func() error {
		var kdfErr error
		key, kdfErr = a.kdf.DeriveExisting(password, salt)
		return kdfErr
	})
	if err != nil {
		return nil, err
	}
	return key, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
