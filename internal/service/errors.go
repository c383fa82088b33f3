// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Error kinds. Every error returned by a service wraps exactly one of them,
// so transports can map a failure to a response with [errors.Is] alone.
var (
	// ErrValidation marks malformed or policy-violating input.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication marks a wrong password, an integrity failure of a
	// wrapped key or vault item, or an unusable session. The three are
	// deliberately indistinguishable to the caller.
	ErrAuthentication = errors.New("authentication failed")

	// ErrAuthorization marks an authenticated caller touching a resource it
	// does not own.
	ErrAuthorization = errors.New("not authorized")

	// ErrConflict marks a uniqueness collision such as a taken email.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks a missing resource.
	ErrNotFound = errors.New("not found")

	// ErrInternal marks everything the caller cannot fix.
	ErrInternal = errors.New("internal error")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilClaims             = errors.New("no session claims")
	ErrInvalidRef            = errors.New("invalid ciphertext reference")
)
