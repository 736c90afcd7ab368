package ports

import (
	"context"

	"github.com/jsamuelsen11/command-engine/internal/domain/command"
)

// CommandEngine defines the service port for the command execution engine.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// Every mutating method is serialized through a single execution gate: calls
// that arrive while another is in flight wait their turn and are applied in
// arrival order. Read methods never wait for the gate and may be momentarily
// stale.
type CommandEngine interface {
	// Execute applies cmd. If Apply fails, the error is returned wrapped and
	// neither history stack changes. On success a trackable, reversible
	// command is pushed onto the undo stack and the redo stack is cleared.
	Execute(ctx context.Context, cmd command.Command) error

	// Undo reverses the most recent command. A no-op when nothing can be
	// undone. If Reverse fails the command is restored to the undo stack.
	Undo(ctx context.Context) error

	// Redo re-applies the most recently undone command. A no-op when nothing
	// can be redone. If Apply fails the command is restored to the redo stack.
	Redo(ctx context.Context) error

	// UndoToIndex undoes until the undo stack holds n entries. Ignored when
	// n is negative or larger than the current undo stack.
	UndoToIndex(ctx context.Context, n int) error

	// RedoToIndex redoes until the redo stack holds n entries. Ignored when
	// n is negative or larger than the current redo stack.
	RedoToIndex(ctx context.Context, n int) error

	// Clear empties both stacks.
	Clear(ctx context.Context) error

	// State returns an advisory snapshot of the history.
	State() EngineState

	// UndoHistory lists the undo stack, most recent first.
	UndoHistory() []command.Descriptor

	// RedoHistory lists the redo stack, most recent first.
	RedoHistory() []command.Descriptor
}

// EngineState is derived from the two history stacks. LastCommand is the type
// of the undo stack's top entry, or empty when the stack is empty.
type EngineState struct {
	CanUndo       bool
	CanRedo       bool
	UndoStackSize int
	RedoStackSize int
	LastCommand   string
}
