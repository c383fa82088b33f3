// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"

	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/logger"
)

// Workers aggregates the background workers of the server.
type Workers struct {
	// KDF runs every Argon2id computation.
	KDF *Pool

	workers []Worker
}

// NewWorkers builds the worker set described by cfg.
func NewWorkers(cfg config.Workers, log *logger.Logger) *Workers {
	kdf := NewPool(cfg.KDFConcurrency, cfg.KDFQueueSize, log)

	return &Workers{
		KDF:     kdf,
		workers: []Worker{kdf},
	}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker in reverse order and joins their errors.
func (w *Workers) Stop() error {
	var errs []error
	for i := len(w.workers) - 1; i >= 0; i-- {
		errs = append(errs, w.workers[i].Stop())
	}
	return errors.Join(errs...)
}
