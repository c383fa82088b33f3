// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is what a session token asserts about its bearer.
type Identity struct {
	Email     string
	MasterKey []byte
}

// Expectation pins the issuer and audience a token must carry. Empty fields
// fall back to the values the codec was configured with.
type Expectation struct {
	Issuer   string
	Audience string
}

// Claims is the verified content of a session token. Only
// [SessionTokenCodec.Decode] produces it.
type Claims struct {
	email     string
	masterKey []byte
	issuer    string
	audience  string
	tokenID   string
	expiresAt time.Time
}

func (c *Claims) Email() string        { return c.email }
func (c *Claims) MasterKey() []byte    { return c.masterKey }
func (c *Claims) Issuer() string       { return c.issuer }
func (c *Claims) Audience() string     { return c.audience }
func (c *Claims) TokenID() string      { return c.tokenID }
func (c *Claims) ExpiresAt() time.Time { return c.expiresAt }

// SessionConfig configures a [SessionTokenCodec].
type SessionConfig struct {
	Issuer   string
	Audience string
	TTL      time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// sessionClaims is the signed JWT payload inside the sealed token.
type sessionClaims struct {
	jwt.RegisteredClaims
	MasterKey []byte `json:"mk"`
}

type sessionTokenCodec struct {
	secret *ServerSecret
	cipher EnvelopeCipher
	cfg    SessionConfig
}

// NewSessionTokenCodec returns a [SessionTokenCodec] that signs claims as an
// HS256 JWT and seals the result with AES-256-GCM, both under subkeys of
// secret.
func NewSessionTokenCodec(secret *ServerSecret, cfg SessionConfig) (SessionTokenCodec, error) {
	if secret == nil {
		return nil, ErrInvalidServerSecret
	}
	if cfg.Issuer == "" || cfg.Audience == "" || cfg.TTL <= 0 {
		return nil, ErrInvalidSessionConfig
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &sessionTokenCodec{
		secret: secret,
		cipher: NewEnvelopeCipher(PurposeSessionToken),
		cfg:    cfg,
	}, nil
}

func (c *sessionTokenCodec) Encode(identity Identity) (string, time.Time, error) {
	if len(identity.MasterKey) != KeySize {
		return "", time.Time{}, ErrInvalidKey
	}

	now := c.cfg.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.cfg.Issuer,
			Subject:   identity.Email,
			Audience:  jwt.ClaimStrings{c.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		MasterKey: identity.MasterKey,
	}

	var signed string
	err := c.secret.withSignKey(func(key []byte) error {
		var err error
		signed, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		return err
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	var sealed []byte
	err = c.secret.withSealKey(func(key []byte) error {
		var err error
		sealed, err = c.cipher.Encrypt([]byte(signed), key)
		return err
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("seal session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(sealed), claims.ExpiresAt.Time, nil
}

func (c *sessionTokenCodec) Decode(token string, expect Expectation) (*Claims, error) {
	if expect.Issuer == "" {
		expect.Issuer = c.cfg.Issuer
	}
	if expect.Audience == "" {
		expect.Audience = c.cfg.Audience
	}

	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrTokenIntegrity
	}

	var signed []byte
	err = c.secret.withSealKey(func(key []byte) error {
		var err error
		signed, err = c.cipher.Decrypt(sealed, key)
		return err
	})
	if err != nil {
		return nil, ErrTokenIntegrity
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(expect.Issuer),
		jwt.WithAudience(expect.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.cfg.Now),
	)

	var claims sessionClaims
	err = c.secret.withSignKey(func(key []byte) error {
		_, err := parser.ParseWithClaims(string(signed), &claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		return err
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if len(claims.MasterKey) != KeySize || claims.Subject == "" {
		return nil, ErrTokenIntegrity
	}

	return &Claims{
		email:     claims.Subject,
		masterKey: claims.MasterKey,
		issuer:    claims.Issuer,
		audience:  expect.Audience,
		tokenID:   claims.ID,
		expiresAt: claims.ExpiresAt.Time,
	}, nil
}

// classifyTokenError reduces a jwt parse error to one codec error.
// The signature is checked before the claims, so a forged token never
// reaches the expiry, issuer or audience branches.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenIntegrity
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudienceMismatch
	default:
		return ErrTokenIntegrity
	}
}
