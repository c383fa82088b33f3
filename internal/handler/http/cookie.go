// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/satu-password/models"
)

// setSessionCookie stores the sealed token in an http-only cookie that
// expires together with the token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.settings.CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   !h.settings.CookieInsecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.settings.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !h.settings.CookieInsecure,
		SameSite: http.SameSiteStrictMode,
	})
}
