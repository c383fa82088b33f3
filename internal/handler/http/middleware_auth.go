// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/MKhiriev/satu-password/internal/utils"
)

// auth is an HTTP middleware that enforces cookie sessions.
//
// It reads the session cookie, opens it via
// [service.AuthService.ParseSession] and stores the verified claims in the
// request context under [utils.ClaimsCtxKey]. A missing, empty, expired,
// tampered or foreign token is rejected with 401 and the same generic body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.sessionToken(r)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrAuthentication, err), "*Handler.auth")
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseSession(ctx, token)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		logger.FromRequest(r).Debug().Str("func", "*Handler.auth").Str("token_id", claims.TokenID()).Msg("session accepted")

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

func (h *Handler) sessionToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(h.settings.CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrNoSessionCookie
	}
	if err != nil {
		return "", err
	}
	if cookie.Value == "" {
		return "", ErrEmptySessionCookie
	}
	return cookie.Value, nil
}
