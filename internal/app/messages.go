// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages written by the satu-password
// HTTP handlers.
//
// Failure messages are generic on purpose: one per error kind, so a client
// never learns which check failed.
package app

// Failure messages, one per error kind.
const (
	// MsgInvalidRequest answers malformed or policy-violating input.
	MsgInvalidRequest = "invalid request"

	// MsgAuthenticationFailed answers a wrong password, an unusable session
	// and a failed integrity check alike.
	MsgAuthenticationFailed = "authentication failed"

	// MsgForbidden answers an attempt to touch another account's item.
	MsgForbidden = "forbidden"

	// MsgConflict answers a registration with a taken email.
	MsgConflict = "conflict"

	MsgNotFound            = "not found"
	MsgInternalServerError = "internal server error"
)

// Success messages.
const (
	MsgLoggedIn          = "logged in"
	MsgLoggedOut         = "logged out"
	MsgItemDecrypted     = "item decrypted"
	MsgNoteDecrypted     = "note decrypted"
	MsgPasswordDecrypted = "password decrypted"
	MsgItemDeleted       = "item deleted"
	MsgPasswordChanged   = "password changed"
	MsgAccountDeleted    = "account deleted"
)
