// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSessionCookie is logged by the auth middleware when the request
	// carries no session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrEmptySessionCookie is logged when the session cookie is present but
	// empty.
	ErrEmptySessionCookie = errors.New("empty session cookie")

	// ErrInvalidJSON wraps request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidItemID is returned for a non-numeric {id} path segment.
	ErrInvalidItemID = errors.New("invalid item id")

	// ErrNoClaimsInContext means a protected handler ran without the auth
	// middleware.
	ErrNoClaimsInContext = errors.New("no session claims in request context")
)
