package command

import "context"

// Func is a Command assembled from functions. It is handy for one-off
// commands and tests. Use Build to obtain the Command: it satisfies Reverser
// only when ReverseFn is set, so a nil ReverseFn yields an execute-and-forget
// command.
type Func struct {
	Kind      string
	Label     string
	Track     bool
	ApplyFn   func(ctx context.Context) error
	ReverseFn func(ctx context.Context) error
}

// Type implements Command.
func (f *Func) Type() string { return f.Kind }

// Description implements Command.
func (f *Func) Description() string { return f.Label }

// Trackable implements Command.
func (f *Func) Trackable() bool { return f.Track }

// Apply implements Command. A nil ApplyFn is a no-op.
func (f *Func) Apply(ctx context.Context) error {
	if f.ApplyFn == nil {
		return nil
	}
	return f.ApplyFn(ctx)
}

// Build returns f as a Command, adding Reverser only when ReverseFn is set.
func (f *Func) Build() Command {
	if f.ReverseFn == nil {
		return f
	}
	return &reversibleFunc{Func: f}
}

type reversibleFunc struct {
	*Func
}

func (r *reversibleFunc) Reverse(ctx context.Context) error {
	return r.ReverseFn(ctx)
}
