// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestActorPoolSerializesPerTenant(t *testing.T) {
	pool := newActorPool()

	var running int32
	var overlaps int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		err := pool.submit("tenant-1", func(st *actorState) {
			defer wg.Done()
			if atomic.AddInt32(&running, 1) > 1 {
				atomic.AddInt32(&overlaps, 1)
			}
			atomic.AddInt32(&running, -1)
		})
		if err != nil {
			t.Fatalf("unexpected submit error: %v", err)
		}
	}

	wg.Wait()

	if overlaps != 0 {
		t.Errorf("observed %d overlapping operations on the same actor", overlaps)
	}
}

func TestActorPoolIsolatesState(t *testing.T) {
	pool := newActorPool()

	var wg sync.WaitGroup
	states := make(map[string]*actorState)
	var mu sync.Mutex

	for _, tenantID := range []string{"tenant-1", "tenant-2"} {
		wg.Add(1)
		err := pool.submit(tenantID, func(st *actorState) {
			defer wg.Done()
			mu.Lock()
			states[tenantID] = st
			mu.Unlock()
		})
		if err != nil {
			t.Fatalf("unexpected submit error: %v", err)
		}
	}

	wg.Wait()

	if states["tenant-1"] == states["tenant-2"] {
		t.Error("different tenants share actor state")
	}

	// The same tenant gets the same state back.
	wg.Add(1)
	if err := pool.submit("tenant-1", func(st *actorState) {
		defer wg.Done()
		mu.Lock()
		same := states["tenant-1"] == st
		mu.Unlock()
		if !same {
			t.Error("same tenant mapped to a different actor state")
		}
	}); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	wg.Wait()
}

func TestActorPoolDrain(t *testing.T) {
	pool := newActorPool()

	done := make(chan struct{})
	if err := pool.submit("tenant-1", func(st *actorState) {
		close(done)
	}); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	if err := pool.drain(context.Background()); err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}

	select {
	case <-done:
	default:
		t.Error("drain returned before the queued operation ran")
	}

	if err := pool.submit("tenant-1", func(st *actorState) {}); !errors.Is(err, ErrShuttingDown) {
		t.Errorf("expected ErrShuttingDown, got %v", err)
	}

	// Draining twice is a no-op.
	if err := pool.drain(context.Background()); err != nil {
		t.Errorf("unexpected error on second drain: %v", err)
	}
}

func TestActorPoolDrainTimeoutStopsActors(t *testing.T) {
	pool := newActorPool()

	gate := make(chan struct{})
	if err := pool.submit("tenant-1", func(st *actorState) {
		<-gate
	}); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := pool.drain(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	// The abandoned drain must still stop the actor goroutines once the
	// queued operation finishes.
	close(gate)

	select {
	case <-pool.quit:
	case <-time.After(2 * time.Second):
		t.Fatal("actor stop signal never fired after the queue emptied")
	}
}
