// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/ffind/internal/findex"
)

// =============================================================================
// RESULTS
// =============================================================================

// Result is the outcome of one completed match: the query it answered, the
// request ID Submit handed back for it, and the capped, ordered entries.
type Result struct {
	ID      string
	Query   string
	Entries []findex.Entry
}

// =============================================================================
// COORDINATOR
// =============================================================================

// Coordinator serializes query matching onto a single background worker with
// latest-query-wins semantics. Submitting while a match is in flight does not
// preempt it, but overwrites any query waiting behind it, so the worker never
// does wasted work on superseded intermediate queries and only the most
// recently submitted query's result is guaranteed delivery.
//
// The index snapshot is swapped atomically by SetIndex; a match already in
// flight keeps using the snapshot it started with.
type Coordinator struct {
	matcher *Matcher
	index   atomic.Pointer[findex.Index]

	// pending is the one-deep query slot. A new deposit overwrites an
	// uninspected one rather than queueing behind it.
	mu      sync.Mutex
	pending *pendingQuery

	wake    chan struct{}
	results chan Result
	cancel  context.CancelFunc
	done    chan struct{}
}

type pendingQuery struct {
	id    string
	query string
}

// NewCoordinator starts the background worker against the given snapshot.
// ix may be nil until the first SetIndex.
func NewCoordinator(matcher *Matcher, ix *findex.Index) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		matcher: matcher,
		wake:    make(chan struct{}, 1),
		results: make(chan Result, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	if ix != nil {
		c.index.Store(ix)
	}
	go c.run(ctx)
	return c
}

// Submit deposits query as the pending query, overwriting any uninspected
// predecessor, and returns the request ID its Result will carry. Submit
// never blocks beyond the deposit itself.
func (c *Coordinator) Submit(query string) string {
	id := uuid.NewString()

	c.mu.Lock()
	c.pending = &pendingQuery{id: id, query: query}
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
	return id
}

// Poll waits up to timeout for the latest result. When no new result arrives
// in time it returns false; callers keep displaying their previous result
// rather than blocking.
func (c *Coordinator) Poll(timeout time.Duration) (Result, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-c.results:
		return r, true
	case <-timer.C:
		return Result{}, false
	}
}

// SetIndex atomically publishes a new snapshot for subsequent queries. Any
// match in flight finishes against the snapshot it started with.
func (c *Coordinator) SetIndex(ix *findex.Index) {
	c.index.Store(ix)
}

// Close stops the worker and waits up to timeout for it to finish. A worker
// that does not acknowledge in time is abandoned; Close returns false then
// and shutdown proceeds anyway.
func (c *Coordinator) Close(timeout time.Duration) bool {
	c.cancel()
	select {
	case <-c.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// =============================================================================
// WORKER
// =============================================================================

func (c *Coordinator) run(ctx context.Context) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.wake:
		}

		// Drain the pending slot until it stays empty: a query submitted
		// while we were matching is picked up immediately.
		for {
			c.mu.Lock()
			req := c.pending
			c.pending = nil
			c.mu.Unlock()
			if req == nil {
				break
			}

			entries := c.matcher.Match(req.query, c.index.Load())
			c.publish(Result{ID: req.id, Query: req.query, Entries: entries})

			if ctx.Err() != nil {
				return
			}
		}
	}
}

// publish replaces any unconsumed result with r, so the channel always holds
// the most recently completed result and publishing never blocks the worker.
func (c *Coordinator) publish(r Result) {
	for {
		select {
		case c.results <- r:
			return
		default:
			select {
			case <-c.results:
			default:
			}
		}
	}
}
