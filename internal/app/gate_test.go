package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGate_HeldTracksHolder(t *testing.T) {
	t.Parallel()

	g := newGate()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }

	if _, _, ok := g.held(); ok {
		t.Fatal("held() ok = true on a free gate")
	}

	release, err := g.acquire(context.Background(), opUndo)
	if err != nil {
		t.Fatalf("acquire() error = %v", err)
	}

	clock = clock.Add(3 * time.Second)
	op, d, ok := g.held()
	if !ok || op != opUndo || d != 3*time.Second {
		t.Errorf("held() = (%q, %s, %v), want (undo, 3s, true)", op, d, ok)
	}

	release()
	release()

	if _, _, ok := g.held(); ok {
		t.Error("held() ok = true after release")
	}
}

func TestGate_AcquireRespectsContext(t *testing.T) {
	t.Parallel()

	g := newGate()
	release, err := g.acquire(context.Background(), opExecute)
	if err != nil {
		t.Fatalf("acquire() error = %v", err)
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.acquire(ctx, opRedo); !errors.Is(err, context.Canceled) {
		t.Errorf("acquire() error = %v, want context.Canceled", err)
	}

	// The failed waiter must not have replaced the holder.
	if op, _, _ := g.held(); op != opExecute {
		t.Errorf("holder = %q, want execute", op)
	}
}

func TestGate_SecondReleaseDoesNotFreeAnotherHolder(t *testing.T) {
	t.Parallel()

	g := newGate()
	first, _ := g.acquire(context.Background(), opExecute)
	first()

	second, err := g.acquire(context.Background(), opClear)
	if err != nil {
		t.Fatalf("acquire() error = %v", err)
	}
	defer second()

	first()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := g.acquire(ctx, opUndo); err == nil {
		t.Error("acquire() succeeded while the gate was held")
	}
}
