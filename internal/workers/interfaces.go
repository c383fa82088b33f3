// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs CPU-bound work, such as Argon2id derivations, on a
// bounded set of goroutines so that request handlers never hash inline.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is a background component with an explicit lifecycle.
//
// Run starts the worker and returns immediately. Stop blocks until every
// goroutine started by Run has returned.
type Worker interface {
	Run()
	Stop() error
}

// Executor runs a job on a worker goroutine and waits for its result.
//
// Do returns the job's error, ctx.Err() if the caller gives up first, or
// [ErrPoolClosed] once the executor has been stopped.
type Executor interface {
	Do(ctx context.Context, job func() error) error
}
