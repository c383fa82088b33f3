// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/MKhiriev/satu-password/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: bad email", service.ErrValidation), want: http.StatusBadRequest},
		{name: "authentication", err: fmt.Errorf("%w: %w", service.ErrAuthentication, crypto.ErrIntegrity), want: http.StatusUnauthorized},
		{name: "authorization", err: fmt.Errorf("%w: not owner", service.ErrAuthorization), want: http.StatusForbidden},
		{name: "conflict", err: fmt.Errorf("%w: %w", service.ErrConflict, store.ErrLoginAlreadyExists), want: http.StatusConflict},
		{name: "not found", err: fmt.Errorf("%w: %w", service.ErrNotFound, store.ErrItemNotFound), want: http.StatusNotFound},
		{name: "internal", err: fmt.Errorf("%w: %w", service.ErrInternal, store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "bare store error is not leaked as 404", err: store.ErrItemNotFound, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.want, status)
			assert.NotContains(t, message, "boom")
			assert.NotEmpty(t, message)
		})
	}
}
