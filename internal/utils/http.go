// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/satu-password/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails it responds with 500 Internal Server Error and
// returns a wrapped error.
//
//	WriteJSON(w, models.RegisterResponse{OTPURL: url}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes the generic {message} body used by every outcome that
// carries no data.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
