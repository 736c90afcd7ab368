package ports

import "context"

// Signal names a notification published on the NotificationChannel.
type Signal string

// Lifecycle signals published by the command engine.
const (
	SignalExecuted Signal = "command:executed"
	SignalUndone   Signal = "command:undone"
	SignalRedone   Signal = "command:redone"
	SignalError    Signal = "command:error"
	SignalCleared  Signal = "command:cleared"
)

// Request signals the command engine subscribes to. Any part of the host can
// publish them to navigate history without a reference to the engine.
const (
	SignalUndoRequest        Signal = "command:undo"
	SignalRedoRequest        Signal = "command:redo"
	SignalUndoToIndexRequest Signal = "command:undo-to-index"
	SignalRedoToIndexRequest Signal = "command:redo-to-index"
)

// Notification is the payload carried by every signal. Lifecycle signals fill
// Command, Description, CanUndo and CanRedo; Err is set only on
// SignalError. Index is read only by the *-to-index request signals.
type Notification struct {
	Signal      Signal
	Command     string
	Description string
	CanUndo     bool
	CanRedo     bool
	Err         error
	Index       int
}

// NotificationHandler receives a notification. A returned error is logged by
// the channel and does not affect other handlers or the publisher.
type NotificationHandler func(ctx context.Context, n Notification) error

// NotificationChannel is the publish/subscribe surface between the command
// engine and the rest of the host application.
type NotificationChannel interface {
	// Publish delivers n to every handler subscribed to n.Signal and returns
	// once they have all returned.
	Publish(ctx context.Context, n Notification)

	// Subscribe registers handler for signal. The returned function removes
	// the subscription and is safe to call more than once.
	Subscribe(signal Signal, handler NotificationHandler) (func(), error)
}
