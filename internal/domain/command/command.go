// Package command defines the unit of work routed through the command engine.
//
// A Command applies one state mutation. Commands that can be reversed also
// implement Reverser; the engine only records reversible, trackable commands
// in its undo/redo history:
//
//	cmd := (&command.Func{
//	    Kind:      "resolution:set",
//	    Label:     "Set resolution to 1920x1080",
//	    Track:     true,
//	    ApplyFn:   func(ctx context.Context) error { ... },
//	    ReverseFn: func(ctx context.Context) error { ... },
//	}).Build()
//
// Concrete host actions live next to the state they mutate (see domain/canvas).
package command

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrPanicked is wrapped by the error returned from Invoke when the
// invoked operation panics.
var ErrPanicked = errors.New("command panicked")

// Command is a self-contained unit of work.
type Command interface {
	// Type identifies the logical action kind (e.g. "effect:add"). It is the
	// same for every instance of the kind.
	Type() string

	// Description is a human-readable label for history UIs.
	Description() string

	// Apply performs the forward operation. It is invoked once per
	// successful execute and again on every redo.
	Apply(ctx context.Context) error

	// Trackable reports whether the command participates in the undo/redo
	// history. Non-trackable commands still run but leave no undo trail.
	Trackable() bool
}

// Reverser is implemented by commands that can be undone.
type Reverser interface {
	// Reverse undoes the effect of a previous successful Apply.
	Reverse(ctx context.Context) error
}

// Reversible reports whether cmd implements Reverser.
func Reversible(cmd Command) bool {
	_, ok := cmd.(Reverser)
	return ok
}

// Recordable reports whether the engine keeps cmd in its history: the
// command must be trackable and reversible.
func Recordable(cmd Command) bool {
	return cmd.Trackable() && Reversible(cmd)
}

// Descriptor is the read-only view of a command shown in history listings.
type Descriptor struct {
	Type        string
	Description string
}

// Describe returns the descriptor of cmd.
func Describe(cmd Command) Descriptor {
	return Descriptor{Type: cmd.Type(), Description: cmd.Description()}
}

// Invoke calls fn and converts a panic into an error wrapping ErrPanicked,
// so that callers holding locks always get control back.
func Invoke(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrPanicked, v, debug.Stack())
		}
	}()
	return fn(ctx)
}
