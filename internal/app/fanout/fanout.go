// Package fanout runs a function across a slice of items with a fixed number
// of worker goroutines and collects per-item outcomes in input order. The
// notification bus uses it to deliver one notification to every subscriber
// of a signal without letting one slow or panicking subscriber affect the
// others.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
)

// ErrPanicked wraps the value recovered from a panicking fn.
var ErrPanicked = errors.New("fanout: fn panicked")

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and returns results in input order. A maxWorkers below 1 is
// treated as 1.
//
// If ctx is canceled while an item is waiting for a worker slot, that item
// records ctx.Err() and fn is not called for it. Items already running finish
// normally. A panic in fn is recovered and recorded as an error wrapping
// ErrPanicked, with the stack attached.
//
// Run blocks until every item has settled. Empty input returns an empty,
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			results[idx] = call(ctx, it, fn)
		}(i, item)
	}

	wg.Wait()
	return results
}

// Each is Run for functions with no result value. It returns one error slot
// per item, nil on success.
func Each[T any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) error) []error {
	results := Run(ctx, maxWorkers, items, func(ctx context.Context, it T) (struct{}, error) {
		return struct{}{}, fn(ctx, it)
	})

	errs := make([]error, len(results))
	for i, r := range results {
		errs[i] = r.Err
	}
	return errs
}

func call[T, R any](ctx context.Context, it T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v\n%s", ErrPanicked, v, debug.Stack())}
		}
	}()

	val, err := fn(ctx, it)
	return Result[R]{Value: val, Err: err}
}
