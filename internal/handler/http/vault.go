// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"net/http"

	"github.com/MKhiriev/satu-password/internal/app"
	"github.com/MKhiriev/satu-password/internal/utils"
	"github.com/MKhiriev/satu-password/models"
)

func itemResponse(item models.VaultItem) models.ItemResponse {
	return models.ItemResponse{
		ID:         item.ID,
		Kind:       item.Kind,
		Ciphertext: base64.RawURLEncoding.EncodeToString(item.Ciphertext),
	}
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createItem")
		return
	}

	var req models.CreateItemRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.createItem")
		return
	}

	item, err := h.services.VaultService.CreateItem(r.Context(), claims, req)
	if err != nil {
		writeError(w, r, err, "*Handler.createItem")
		return
	}

	utils.WriteJSON(w, itemResponse(item), http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listItems")
		return
	}

	items, err := h.services.VaultService.ListItems(r.Context(), claims)
	if err != nil {
		writeError(w, r, err, "*Handler.listItems")
		return
	}

	resp := models.ItemsResponse{Items: make([]models.ItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, itemResponse(item))
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

// getItem decrypts one stored item of the session owner.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getItem")
		return
	}

	id, err := itemIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getItem")
		return
	}

	item, err := h.services.VaultService.RetrieveItem(r.Context(), claims, id)
	if err != nil {
		writeError(w, r, err, "*Handler.getItem")
		return
	}

	utils.WriteJSON(w, models.DecryptedItemResponse{
		Message: app.MsgItemDecrypted,
		Kind:    item.Kind,
		Content: item.Content,
	}, http.StatusOK)
}

// getNote decrypts the ciphertext passed in the ref query parameter with
// the master key of the session.
func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getNote")
		return
	}

	note, err := h.services.VaultService.RetrieveNote(r.Context(), claims, r.URL.Query().Get("ref"))
	if err != nil {
		writeError(w, r, err, "*Handler.getNote")
		return
	}

	utils.WriteJSON(w, models.NoteResponse{Message: app.MsgNoteDecrypted, Note: note}, http.StatusOK)
}

func (h *Handler) getPassword(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getPassword")
		return
	}

	password, err := h.services.VaultService.RetrievePassword(r.Context(), claims, r.URL.Query().Get("ref"))
	if err != nil {
		writeError(w, r, err, "*Handler.getPassword")
		return
	}

	utils.WriteJSON(w, models.PasswordResponse{Message: app.MsgPasswordDecrypted, Password: password}, http.StatusOK)
}

// deleteItem removes an item after the ownership check in the vault
// service. A foreign item yields 403.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteItem")
		return
	}

	var req models.DeleteItemRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.deleteItem")
		return
	}

	if err = h.services.VaultService.DeleteItem(r.Context(), claims, req.ID); err != nil {
		writeError(w, r, err, "*Handler.deleteItem")
		return
	}

	utils.WriteMessage(w, app.MsgItemDeleted, http.StatusOK)
}
