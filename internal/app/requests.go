package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/command-engine/internal/ports"
)

// requestSignals are the navigation requests the engine subscribes to.
var requestSignals = []ports.Signal{
	ports.SignalUndoRequest,
	ports.SignalRedoRequest,
	ports.SignalUndoToIndexRequest,
	ports.SignalRedoToIndexRequest,
}

// requestQueue is an unbounded FIFO of navigation requests. push never
// blocks, so a subscriber callback can enqueue while the engine holds the
// gate and is itself publishing.
type requestQueue struct {
	mu    sync.Mutex
	items []ports.Notification
	size  int
	wake  chan struct{}
}

func newRequestQueue(size int) *requestQueue {
	return &requestQueue{
		items: make([]ports.Notification, 0, size),
		size:  size,
		wake:  make(chan struct{}, 1),
	}
}

func (q *requestQueue) push(n ports.Notification) {
	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// drain removes and returns everything queued, oldest first.
func (q *requestQueue) drain() []ports.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = make([]ports.Notification, 0, q.size)
	return out
}

// Init subscribes the engine to the request signals and starts the goroutine
// that serves them. Calling Init again is a no-op. The pump outlives ctx; it
// stops on Dispose.
func (e *Engine) Init(ctx context.Context) error {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	if e.disposed.Load() {
		return ErrEngineDisposed
	}
	if e.pumpDone != nil {
		return nil
	}

	for _, signal := range requestSignals {
		unsubscribe, err := e.notifier.Subscribe(signal, e.enqueue)
		if err != nil {
			e.unsubscribeAll()
			return fmt.Errorf("subscribing to %s: %w", signal, err)
		}
		e.unsubscribe = append(e.unsubscribe, unsubscribe)
	}

	pumpCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.stopPump = cancel
	e.pumpDone = make(chan struct{})
	go e.pump(pumpCtx)

	e.logger.InfoContext(ctx, "command engine started",
		slog.Int("history_capacity", e.undo.Capacity()),
	)
	return nil
}

// Dispose unsubscribes from request signals and stops the pump, dropping any
// requests still queued. Later mutating calls return ErrEngineDisposed. If a
// command is mid-flight, Dispose waits for it until ctx is done.
func (e *Engine) Dispose(ctx context.Context) error {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	if !e.disposed.CompareAndSwap(false, true) {
		return nil
	}

	e.unsubscribeAll()
	if e.stopPump == nil {
		return nil
	}
	e.stopPump()

	select {
	case <-e.pumpDone:
		e.logger.InfoContext(ctx, "command engine stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for request pump: %w", ctx.Err())
	}
}

// Shutdown lets the DI container dispose the engine.
func (e *Engine) Shutdown(ctx context.Context) error {
	return e.Dispose(ctx)
}

func (e *Engine) unsubscribeAll() {
	for _, unsubscribe := range e.unsubscribe {
		unsubscribe()
	}
	e.unsubscribe = nil
}

// enqueue is the NotificationHandler for every request signal.
func (e *Engine) enqueue(_ context.Context, n ports.Notification) error {
	if e.disposed.Load() {
		return ErrEngineDisposed
	}
	e.requests.push(n)
	return nil
}

func (e *Engine) pump(ctx context.Context) {
	defer close(e.pumpDone)

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.requests.wake:
		}

		for _, n := range e.requests.drain() {
			if ctx.Err() != nil {
				return
			}
			e.serve(ctx, n)
		}
	}
}

// serve runs one request through the same gate as direct calls. Step
// failures are already published as SignalError; here they are only logged.
func (e *Engine) serve(ctx context.Context, n ports.Notification) {
	var err error
	switch n.Signal {
	case ports.SignalUndoRequest:
		err = e.Undo(ctx)
	case ports.SignalRedoRequest:
		err = e.Redo(ctx)
	case ports.SignalUndoToIndexRequest:
		err = e.UndoToIndex(ctx, n.Index)
	case ports.SignalRedoToIndexRequest:
		err = e.RedoToIndex(ctx, n.Index)
	default:
		e.logger.WarnContext(ctx, "ignoring unknown request signal", slog.String("signal", string(n.Signal)))
		return
	}

	if err == nil || errors.Is(err, ErrEngineDisposed) || ctx.Err() != nil {
		return
	}
	e.logger.ErrorContext(ctx, "requested history navigation failed",
		slog.String("operation", "serve"),
		slog.String("signal", string(n.Signal)),
		slog.Int("index", n.Index),
		slog.Any("error", err),
	)
}
