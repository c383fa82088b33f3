// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/satu-password/internal/config"
	"github.com/MKhiriev/satu-password/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks Run and Stop calls.
type mockWorker struct {
	runCount  int
	stopCount int
	stopErr   error
	order     *[]string
	name      string
}

func (m *mockWorker) Run() {
	m.runCount++
	if m.order != nil {
		*m.order = append(*m.order, "run:"+m.name)
	}
}

func (m *mockWorker) Stop() error {
	m.stopCount++
	if m.order != nil {
		*m.order = append(*m.order, "stop:"+m.name)
	}
	return m.stopErr
}

func TestWorkers_RunAndStopOrder(t *testing.T) {
	var order []string
	w1 := &mockWorker{name: "a", order: &order}
	w2 := &mockWorker{name: "b", order: &order}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run()
	if err := ws.Stop(); err != nil {
		t.Fatalf("unexpected Stop error: %v", err)
	}

	expected := []string{"run:a", "run:b", "stop:b", "stop:a"}
	if len(order) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%s, got %s", i, v, order[i])
		}
	}
}

func TestWorkers_StopJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	ws := &Workers{workers: []Worker{&mockWorker{stopErr: errA}, &mockWorker{stopErr: errB}}}

	err := ws.Stop()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected joined errors, got %v", err)
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
	if err := ws.Stop(); err != nil {
		t.Fatalf("unexpected Stop error: %v", err)
	}
}

func TestNewWorkers_StartsKDFPool(t *testing.T) {
	ws := NewWorkers(config.Workers{KDFConcurrency: 2, KDFQueueSize: 4}, logger.Nop())
	ws.Run()
	defer ws.Stop()

	called := false
	if err := ws.KDF.Do(context.Background(), func() error { called = true; return nil }); err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if !called {
		t.Fatalf("job was not executed")
	}
}

func TestPool_ReturnsJobError(t *testing.T) {
	p := NewPool(1, 0, logger.Nop())
	p.Run()
	defer p.Stop()

	want := errors.New("boom")
	if err := p.Do(context.Background(), func() error { return want }); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const size = 3
	p := NewPool(size, 16, logger.Nop())
	p.Run()
	defer p.Stop()

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func() error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	if got := peak.Load(); got > size {
		t.Fatalf("peak concurrency %d exceeds pool size %d", got, size)
	}
}

func TestPool_CallerContextCancelled(t *testing.T) {
	p := NewPool(1, 0, logger.Nop())
	p.Run()
	defer p.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Do(ctx, func() error { return nil })
	close(release)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestPool_RecoversPanics(t *testing.T) {
	p := NewPool(1, 0, logger.Nop())
	p.Run()
	defer p.Stop()

	err := p.Do(context.Background(), func() error { panic("kaboom") })
	if !errors.Is(err, ErrJobPanicked) {
		t.Fatalf("expected ErrJobPanicked, got %v", err)
	}

	// the worker survives the panic
	if err := p.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("pool unusable after panic: %v", err)
	}
}

func TestPool_Lifecycle(t *testing.T) {
	p := NewPool(2, 1, logger.Nop())

	if err := p.Do(context.Background(), func() error { return nil }); !errors.Is(err, ErrPoolNotStarted) {
		t.Fatalf("expected ErrPoolNotStarted, got %v", err)
	}

	p.Run()
	p.Run()

	if err := p.Stop(); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("second Stop error: %v", err)
	}

	if err := p.Do(context.Background(), func() error { return nil }); !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}
