// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of satu-password.
//
// It exposes route wiring, request handlers and middleware. The session
// travels in an http-only cookie that the auth middleware opens through
// the auth service; handlers never see the raw token. Every service error
// is turned into exactly one status code and a generic message, and the
// cause is logged server-side only.
package http
