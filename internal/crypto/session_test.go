// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://satupassword.com"
	testAudience = "https://satupassword.com"
)

// fakeClock is a settable whole-second clock; JWT dates have second precision.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestSecret(t *testing.T, b byte) *ServerSecret {
	t.Helper()
	s, err := NewServerSecret(bytes.Repeat([]byte{b}, KeySize))
	require.NoError(t, err)
	return s
}

func newTestCodec(t *testing.T, secret *ServerSecret, clock *fakeClock, iss, aud string) SessionTokenCodec {
	t.Helper()
	c, err := NewSessionTokenCodec(secret, SessionConfig{
		Issuer:   iss,
		Audience: aud,
		TTL:      15 * time.Minute,
		Now:      clock.Now,
	})
	require.NoError(t, err)
	return c
}

func TestSessionTokenCodec_RoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	codec := newTestCodec(t, newTestSecret(t, 7), clock, testIssuer, testAudience)
	mk := testKey(3)

	token, exp, err := codec.Encode(Identity{Email: "a@b.com", MasterKey: mk})
	require.NoError(t, err)
	assert.True(t, clock.now.Add(15*time.Minute).Equal(exp))
	assert.NotContains(t, token, "a@b.com")
	assert.NotContains(t, token, ".", "token must not be a readable compact JWT")

	claims, err := codec.Decode(token, Expectation{Issuer: testIssuer, Audience: testAudience})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email())
	assert.Equal(t, mk, claims.MasterKey())
	assert.Equal(t, testIssuer, claims.Issuer())
	assert.Equal(t, testAudience, claims.Audience())
	assert.True(t, exp.Equal(claims.ExpiresAt()))
	assert.NotEmpty(t, claims.TokenID())
}

func TestSessionTokenCodec_EmptyExpectationUsesConfig(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	codec := newTestCodec(t, newTestSecret(t, 7), clock, testIssuer, testAudience)

	token, _, err := codec.Encode(Identity{Email: "a@b.com", MasterKey: testKey(3)})
	require.NoError(t, err)

	_, err = codec.Decode(token, Expectation{})
	assert.NoError(t, err)
}

func TestSessionTokenCodec_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	codec := newTestCodec(t, newTestSecret(t, 7), clock, testIssuer, testAudience)

	token, exp, err := codec.Encode(Identity{Email: "a@b.com", MasterKey: testKey(3)})
	require.NoError(t, err)

	clock.now = exp.Add(-time.Second)
	_, err = codec.Decode(token, Expectation{})
	require.NoError(t, err)

	clock.now = exp
	_, err = codec.Decode(token, Expectation{})
	assert.ErrorIs(t, err, ErrTokenExpired)

	clock.now = exp.Add(time.Hour)
	_, err = codec.Decode(token, Expectation{})
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSessionTokenCodec_DecodeErrors(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	secret := newTestSecret(t, 7)
	codec := newTestCodec(t, secret, clock, testIssuer, testAudience)

	token, _, err := codec.Encode(Identity{Email: "a@b.com", MasterKey: testKey(3)})
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	flipped := bytes.Clone(raw)
	flipped[len(flipped)/2] ^= 0x80

	otherSecretToken, _, err := newTestCodec(t, newTestSecret(t, 8), clock, testIssuer, testAudience).
		Encode(Identity{Email: "a@b.com", MasterKey: testKey(3)})
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		expect Expectation
		want   error
	}{
		{
			name:   "issuer mismatch",
			token:  token,
			expect: Expectation{Issuer: "https://evil.example", Audience: testAudience},
			want:   ErrIssuerMismatch,
		},
		{
			name:   "audience mismatch",
			token:  token,
			expect: Expectation{Issuer: testIssuer, Audience: "https://evil.example"},
			want:   ErrAudienceMismatch,
		},
		{
			name:  "flipped byte",
			token: base64.RawURLEncoding.EncodeToString(flipped),
			want:  ErrTokenIntegrity,
		},
		{
			name:  "not base64",
			token: "!!!not-a-token!!!",
			want:  ErrTokenIntegrity,
		},
		{
			name:  "empty",
			token: "",
			want:  ErrTokenIntegrity,
		},
		{
			name:  "other server secret",
			token: otherSecretToken,
			want:  ErrTokenIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := codec.Decode(tt.token, tt.expect)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSessionTokenCodec_ExpiryTakesPrecedenceOverIssuer(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	codec := newTestCodec(t, newTestSecret(t, 7), clock, testIssuer, testAudience)

	token, exp, err := codec.Encode(Identity{Email: "a@b.com", MasterKey: testKey(3)})
	require.NoError(t, err)

	clock.now = exp.Add(time.Minute)
	_, err = codec.Decode(token, Expectation{Issuer: "other", Audience: "other"})
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrIssuerMismatch)
}

func TestSessionTokenCodec_EncodeRejectsBadMasterKey(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	codec := newTestCodec(t, newTestSecret(t, 7), clock, testIssuer, testAudience)

	_, _, err := codec.Encode(Identity{Email: "a@b.com", MasterKey: []byte("short")})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewSessionTokenCodec_Validation(t *testing.T) {
	secret := newTestSecret(t, 7)

	_, err := NewSessionTokenCodec(nil, SessionConfig{Issuer: "i", Audience: "a", TTL: time.Minute})
	assert.ErrorIs(t, err, ErrInvalidServerSecret)

	_, err = NewSessionTokenCodec(secret, SessionConfig{Audience: "a", TTL: time.Minute})
	assert.ErrorIs(t, err, ErrInvalidSessionConfig)

	_, err = NewSessionTokenCodec(secret, SessionConfig{Issuer: "i", TTL: time.Minute})
	assert.ErrorIs(t, err, ErrInvalidSessionConfig)

	_, err = NewSessionTokenCodec(secret, SessionConfig{Issuer: "i", Audience: "a"})
	assert.ErrorIs(t, err, ErrInvalidSessionConfig)
}
