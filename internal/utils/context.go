// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport layer:
// typed context keys for the verified session and JSON response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/satu-password/internal/crypto"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth middleware stores the
// verified session claims.
var ClaimsCtxKey = contextKey("sessionClaims")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *crypto.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified session claims.
//
// ok is false when the value is missing, nil or of an unexpected type.
func GetClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*crypto.Claims)
	return claims, ok && claims != nil
}
