// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/satu-password/internal/app"
	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/internal/service"
	"github.com/MKhiriev/satu-password/internal/utils"
)

type errorKind struct {
	target  error
	status  int
	message string
}

// errorKinds is checked in order. Service errors wrap exactly one kind.
var errorKinds = []errorKind{
	{target: service.ErrValidation, status: http.StatusBadRequest, message: app.MsgInvalidRequest},
	{target: service.ErrAuthentication, status: http.StatusUnauthorized, message: app.MsgAuthenticationFailed},
	{target: service.ErrAuthorization, status: http.StatusForbidden, message: app.MsgForbidden},
	{target: service.ErrConflict, status: http.StatusConflict, message: app.MsgConflict},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: app.MsgNotFound},
	{target: service.ErrInternal, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
}

// statusFromError returns the response status and the generic message of
// err's kind. Unclassified errors are internal.
func statusFromError(err error) (int, string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind.status, kind.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request logger and writes the generic body
// of its kind. The cause never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteMessage(w, message, status)
}
