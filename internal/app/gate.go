package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// gate serializes every mutating engine operation. A weight-1 semaphore
// grants the gate to waiters in the order they called acquire, so operations
// run in arrival order. The gate also remembers its current holder so a
// health check can spot an operation that never returns.
type gate struct {
	sem *semaphore.Weighted
	now func() time.Time

	mu     sync.Mutex
	holder string
	since  time.Time
}

func newGate() *gate {
	return &gate{sem: semaphore.NewWeighted(1), now: time.Now}
}

// acquire blocks until the gate is free or ctx is done. On success the
// returned release func frees the gate; calls after the first do nothing.
func (g *gate) acquire(ctx context.Context, op string) (release func(), err error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.holder, g.since = op, g.now()
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.holder, g.since = "", time.Time{}
			g.mu.Unlock()
			g.sem.Release(1)
		})
	}, nil
}

// held reports the operation holding the gate and for how long.
func (g *gate) held() (op string, d time.Duration, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.holder == "" {
		return "", 0, false
	}
	return g.holder, g.now().Sub(g.since), true
}
