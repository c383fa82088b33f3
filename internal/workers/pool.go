// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/satu-password/internal/logger"
	"golang.org/x/sync/errgroup"
)

type task struct {
	job  func() error
	done chan error
}

// Pool is a fixed-size [Executor]. Jobs queue in a bounded channel; a full
// queue makes Do wait until a slot frees or the caller's context ends.
type Pool struct {
	size   int
	jobs   chan task
	group  errgroup.Group
	logger *logger.Logger

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewPool returns a stopped pool of size goroutines with room for queue
// waiting jobs. Sizes below one are raised to one.
func NewPool(size, queue int, log *logger.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	if queue < 0 {
		queue = 0
	}

	return &Pool{
		size:   size,
		jobs:   make(chan task, queue),
		logger: log,
	}
}

// Run starts the worker goroutines. Calling it more than once is a no-op.
func (p *Pool) Run() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.closed {
		return
	}
	p.started = true

	for i := 0; i < p.size; i++ {
		p.group.Go(p.loop)
	}
	p.logger.Info().Int("size", p.size).Int("queue", cap(p.jobs)).Msg("worker pool started")
}

// Stop refuses new jobs, lets queued jobs finish and waits for the workers.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	started := p.started
	p.mu.Unlock()

	if !started {
		return nil
	}

	err := p.group.Wait()
	p.logger.Info().Msg("worker pool stopped")
	return err
}

// Do implements [Executor].
func (p *Pool) Do(ctx context.Context, job func() error) error {
	t := task{job: job, done: make(chan error, 1)}

	if err := p.enqueue(ctx, t); err != nil {
		return err
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// enqueue holds the read lock while sending so Stop cannot close the
// channel underneath a pending send.
func (p *Pool) enqueue(ctx context.Context, t task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}
	if !p.started {
		return ErrPoolNotStarted
	}

	select {
	case p.jobs <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) loop() error {
	for t := range p.jobs {
		t.done <- p.run(t.job)
	}
	return nil
}

func (p *Pool) run(job func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Interface("panic", r).Msg("worker job panicked")
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	return job()
}
