// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"context"
	"sync"

	"github.com/canonical/onboarding-service/internal/types"
)

const mailboxSize = 16

// actorState is the resident view of one tenant's draft. It is only ever
// touched from that tenant's actor goroutine.
type actorState struct {
	draft  *types.InstitutionDraft
	loaded bool
	// stale is set when a write outcome is unknown. The next operation must
	// re-read from the store instead of trusting the cached draft.
	stale bool
}

// actor serializes all operations for a single tenant. Operations are run in
// mailbox order by a dedicated goroutine, so no two mutations for the same
// tenant ever observe the same state.
type actor struct {
	tenantID string
	mailbox  chan func()
	state    actorState
}

func (a *actor) run(quit <-chan struct{}) {
	for {
		select {
		case op := <-a.mailbox:
			op()
		case <-quit:
			return
		}
	}
}

// actorPool owns one actor per tenant, spawned lazily on first use. Actors
// for different tenants run fully in parallel.
type actorPool struct {
	mu       sync.Mutex
	actors   map[string]*actor
	inFlight sync.WaitGroup
	quit     chan struct{}
	closed   bool
}

func newActorPool() *actorPool {
	return &actorPool{
		actors: make(map[string]*actor),
		quit:   make(chan struct{}),
	}
}

// submit enqueues op on the tenant's actor. The op receives the actor's state
// and runs to completion even if the submitting caller goes away. Returns
// ErrShuttingDown once the pool is draining.
func (p *actorPool) submit(tenantID string, op func(st *actorState)) error {
	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()
		return ErrShuttingDown
	}

	a, ok := p.actors[tenantID]
	if !ok {
		a = &actor{
			tenantID: tenantID,
			mailbox:  make(chan func(), mailboxSize),
		}
		p.actors[tenantID] = a

		go a.run(p.quit)
	}

	p.inFlight.Add(1)
	p.mu.Unlock()

	a.mailbox <- func() {
		defer p.inFlight.Done()
		op(&a.state)
	}

	return nil
}

// drain rejects new submissions and waits for every queued operation to
// finish. Actor goroutines are stopped only after the mailboxes are empty.
func (p *actorPool) drain(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	// quit closes once the queue empties even when the caller stops
	// waiting, so actor goroutines never outlive an abandoned drain.
	done := make(chan struct{})
	go func() {
		p.inFlight.Wait()
		close(p.quit)
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
