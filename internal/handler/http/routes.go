// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/satu-password/internal/app"
	"github.com/MKhiriev/satu-password/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/vault/items", h.createItem)
		r.Get("/vault/items", h.listItems)
		r.Get("/vault/items/note", h.getNote)
		r.Get("/vault/items/password", h.getPassword)
		r.Post("/vault/items/delete", h.deleteItem)
		r.Get("/vault/items/{id}", h.getItem)

		r.Get("/profile", h.getProfile)
		r.Delete("/profile", h.deleteAccount)
		r.Post("/profile/password", h.changePassword)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
