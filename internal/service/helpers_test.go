// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://satupassword.com"

// inlineExecutor runs KDF jobs on the calling goroutine.
type inlineExecutor struct{}

func (inlineExecutor) Do(ctx context.Context, job func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return job()
}

var testArgon = crypto.ArgonParams{Time: 1, MemoryKiB: 1024, Threads: 1}

func newTestCodec(t *testing.T) crypto.SessionTokenCodec {
	t.Helper()

	encoded, err := crypto.GenerateServerSecret()
	require.NoError(t, err)
	secret, err := crypto.ParseServerSecret(encoded)
	require.NoError(t, err)

	codec, err := crypto.NewSessionTokenCodec(secret, crypto.SessionConfig{
		Issuer:   testOrigin,
		Audience: testOrigin,
		TTL:      time.Minute,
	})
	require.NoError(t, err)
	return codec
}

// newClaims produces verified claims the only supported way: through a
// codec round trip.
func newClaims(t *testing.T, email string, masterKey []byte) *crypto.Claims {
	t.Helper()

	codec := newTestCodec(t)
	token, _, err := codec.Encode(crypto.Identity{Email: email, MasterKey: masterKey})
	require.NoError(t, err)
	claims, err := codec.Decode(token, crypto.Expectation{})
	require.NoError(t, err)
	return claims
}

func testMasterKey() []byte {
	mk := make([]byte, crypto.KeySize)
	for i := range mk {
		mk[i] = byte(i + 1)
	}
	return mk
}
