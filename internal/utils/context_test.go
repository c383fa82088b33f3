// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/satu-password/internal/crypto"
)

func TestContextKeyString(t *testing.T) {
	if ClaimsCtxKey.String() != "sessionClaims" {
		t.Errorf("expected 'sessionClaims', got '%s'", ClaimsCtxKey.String())
	}
}

func TestGetClaimsFromContext(t *testing.T) {
	claims := &crypto.Claims{}

	tests := []struct {
		name   string
		ctx    context.Context
		wantOK bool
	}{
		{name: "stored", ctx: WithClaims(context.Background(), claims), wantOK: true},
		{name: "missing", ctx: context.Background(), wantOK: false},
		{name: "nil claims", ctx: WithClaims(context.Background(), nil), wantOK: false},
		{name: "wrong type", ctx: context.WithValue(context.Background(), ClaimsCtxKey, "token"), wantOK: false},
		{name: "foreign key type", ctx: context.WithValue(context.Background(), "sessionClaims", claims), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetClaimsFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && got != claims {
				t.Errorf("expected the stored claims pointer")
			}
		})
	}
}
