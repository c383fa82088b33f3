// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/MKhiriev/satu-password/internal/utils"
	"github.com/go-chi/chi/v5"
)

// maxBodySize bounds every JSON request body.
const maxBodySize = 1 << 20

// decodeJSON reads the request body into dst. Failures are validation
// errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w: %w", service.ErrValidation, ErrInvalidJSON, err)
	}
	return nil
}

// claimsFromRequest returns the claims stored by the auth middleware.
func claimsFromRequest(r *http.Request) (*crypto.Claims, error) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return nil, fmt.Errorf("%w: %w", service.ErrAuthentication, ErrNoClaimsInContext)
	}
	return claims, nil
}

func itemIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrValidation, ErrInvalidItemID)
	}
	return id, nil
}
