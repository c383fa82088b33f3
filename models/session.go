// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the outcome of a successful login: the sealed token that is
// set as the session cookie and the instant it stops being accepted.
type Session struct {
	Token     string
	ExpiresAt time.Time
}
