// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/satu-password/internal/app"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/utils"
	"github.com/MKhiriev/satu-password/models"
)

// register creates an account and answers with the TOTP provisioning URL.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	otpURL, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{OTPURL: otpURL}, http.StatusOK)
}

// login verifies the password and sets the session cookie.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	session, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	h.setSessionCookie(w, session)
	log.Debug().Str("func", "*Handler.login").Time("expires_at", session.ExpiresAt).Msg("session cookie issued")

	utils.WriteMessage(w, app.MsgLoggedIn, http.StatusOK)
}

// logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side session to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}
