// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/satu-password/internal/app"
	"github.com/MKhiriev/satu-password/internal/utils"
	"github.com/MKhiriev/satu-password/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getProfile")
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), claims)
	if err != nil {
		writeError(w, r, err, "*Handler.getProfile")
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Profile: profile}, http.StatusOK)
}

// changePassword re-wraps the master key. The current session stays valid
// because the master key it carries is unchanged.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.changePassword")
		return
	}

	var req models.ChangePasswordRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.changePassword")
		return
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), claims, req); err != nil {
		writeError(w, r, err, "*Handler.changePassword")
		return
	}

	utils.WriteMessage(w, app.MsgPasswordChanged, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteAccount")
		return
	}

	if err = h.services.ProfileService.DeleteAccount(r.Context(), claims); err != nil {
		writeError(w, r, err, "*Handler.deleteAccount")
		return
	}

	h.clearSessionCookie(w)
	utils.WriteMessage(w, app.MsgAccountDeleted, http.StatusOK)
}
