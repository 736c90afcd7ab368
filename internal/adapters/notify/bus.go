// Package notify provides the in-process implementation of
// ports.NotificationChannel used to connect the command engine to the rest
// of the host application.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/jsamuelsen11/command-engine/internal/app/fanout"
	"github.com/jsamuelsen11/command-engine/internal/platform/config"
	"github.com/jsamuelsen11/command-engine/internal/ports"
)

// Sentinel errors returned by Subscribe.
var (
	ErrNilHandler  = errors.New("nil notification handler")
	ErrEmptySignal = errors.New("empty signal")
)

// Compile-time interface check.
var _ ports.NotificationChannel = (*Bus)(nil)

type subscription struct {
	id      uint64
	handler ports.NotificationHandler
}

// Bus is a synchronous, in-process publish/subscribe channel. Publish hands a
// notification to every subscriber of its signal, at most maxWorkers at a
// time, and returns when they have all finished. Consecutive publishes are
// therefore observed in order by every subscriber.
//
// A failing or panicking handler is logged and does not affect the others.
type Bus struct {
	mu   sync.RWMutex
	subs map[ports.Signal][]subscription

	nextID     atomic.Uint64
	maxWorkers int
	logger     *slog.Logger
}

// NewBus creates an empty Bus. A nil logger discards logs.
func NewBus(cfg *config.NotifyConfig, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bus{
		subs:       make(map[ports.Signal][]subscription),
		maxWorkers: cfg.MaxWorkers,
		logger:     logger,
	}
}

// Subscribe registers handler for signal and returns a function that removes
// it. The returned function is idempotent.
func (b *Bus) Subscribe(signal ports.Signal, handler ports.NotificationHandler) (func(), error) {
	if signal == "" {
		return nil, ErrEmptySignal
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	sub := subscription{id: b.nextID.Add(1), handler: handler}

	b.mu.Lock()
	b.subs[signal] = append(b.subs[signal], sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(signal, sub.id) })
	}, nil
}

// Subscribers returns the number of handlers registered for signal.
func (b *Bus) Subscribers(signal ports.Signal) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[signal])
}

// Publish delivers n to the current subscribers of n.Signal. Cancellation of
// ctx does not stop delivery: a notification describes something that has
// already happened.
func (b *Bus) Publish(ctx context.Context, n ports.Notification) {
	b.mu.RLock()
	subs := slices.Clone(b.subs[n.Signal])
	b.mu.RUnlock()

	if len(subs) == 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)
	errs := fanout.Each(ctx, b.maxWorkers, subs, func(ctx context.Context, s subscription) error {
		return s.handler(ctx, n)
	})

	for i, err := range errs {
		if err == nil {
			continue
		}
		b.logger.ErrorContext(ctx, "notification handler failed",
			slog.String("operation", "Publish"),
			slog.String("signal", string(n.Signal)),
			slog.Uint64("subscription_id", subs[i].id),
			slog.Any("error", err),
		)
	}
}

func (b *Bus) remove(signal ports.Signal, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs[signal] = slices.DeleteFunc(b.subs[signal], func(s subscription) bool { return s.id == id })
	if len(b.subs[signal]) == 0 {
		delete(b.subs, signal)
	}
}
