// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	ErrPoolClosed     = errors.New("worker pool is closed")
	ErrPoolNotStarted = errors.New("worker pool is not started")
	ErrJobPanicked    = errors.New("worker job panicked")
)
