// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/command-engine/internal/domain"
	"github.com/jsamuelsen11/command-engine/internal/domain/command"
	"github.com/jsamuelsen11/command-engine/internal/domain/history"
	"github.com/jsamuelsen11/command-engine/internal/platform/config"
	"github.com/jsamuelsen11/command-engine/internal/platform/telemetry"
	"github.com/jsamuelsen11/command-engine/internal/ports"
)

// Sentinel errors returned by the Engine. Each wraps the domain sentinel that
// inbound adapters map to a status code.
var (
	ErrNilCommand     = fmt.Errorf("nil command: %w", domain.ErrValidation)
	ErrEngineDisposed = fmt.Errorf("command engine disposed: %w", domain.ErrShutdown)
	ErrGateStalled    = fmt.Errorf("execution gate stalled: %w", domain.ErrUnavailable)
)

// Operation names. They label the gate holder, spans, metrics and logs.
const (
	opExecute     = "execute"
	opUndo        = "undo"
	opRedo        = "redo"
	opUndoToIndex = "undo_to_index"
	opRedoToIndex = "redo_to_index"
	opClear       = "clear"
)

const engineCheckName = "command-engine"

// Compile-time interface checks.
var (
	_ ports.CommandEngine = (*Engine)(nil)
	_ ports.HealthChecker = (*Engine)(nil)
)

// Engine implements ports.CommandEngine. It owns the undo and redo stacks and
// is the only writer to them; every write happens while holding the
// execution gate. Lifecycle notifications are published before the gate is
// released, so subscribers observe transitions in the order they happened.
//
// Subscribers must not call the Engine's mutating methods from inside a
// notification handler: the publishing operation still holds the gate. To
// navigate history from elsewhere in the host, publish one of the request
// signals instead; the Engine queues those and serves them after Init.
type Engine struct {
	undo *history.Stack
	redo *history.Stack
	gate *gate

	notifier       ports.NotificationChannel
	metrics        *telemetry.Metrics
	tracer         trace.Tracer
	logger         *slog.Logger
	stallThreshold time.Duration

	requests *requestQueue

	lifecycle   sync.Mutex
	unsubscribe []func()
	stopPump    context.CancelFunc
	pumpDone    chan struct{}
	disposed    atomic.Bool
}

// NewEngine creates an Engine with empty history. Nothing is subscribed until
// Init is called. A nil metrics disables metric recording; a nil logger
// discards logs.
func NewEngine(cfg *config.EngineConfig, notifier ports.NotificationChannel, metrics *telemetry.Metrics, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		undo:           history.NewStack(cfg.HistoryCapacity),
		redo:           history.NewStack(cfg.HistoryCapacity),
		gate:           newGate(),
		notifier:       notifier,
		metrics:        metrics,
		tracer:         otel.GetTracerProvider().Tracer("github.com/jsamuelsen11/command-engine/internal/app"),
		logger:         logger,
		stallThreshold: cfg.StallThreshold,
		requests:       newRequestQueue(cfg.RequestQueueSize),
	}
}

// Execute applies cmd under the gate. See ports.CommandEngine.
func (e *Engine) Execute(ctx context.Context, cmd command.Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	return e.run(ctx, opExecute, func(ctx context.Context) (string, error) {
		return cmd.Type(), e.execute(ctx, cmd)
	})
}

// Undo reverses the top of the undo stack. See ports.CommandEngine.
func (e *Engine) Undo(ctx context.Context) error {
	return e.run(ctx, opUndo, e.undoStep)
}

// Redo re-applies the top of the redo stack. See ports.CommandEngine.
func (e *Engine) Redo(ctx context.Context) error {
	return e.run(ctx, opRedo, e.redoStep)
}

// UndoToIndex undoes single steps until the undo stack holds n entries. The
// whole walk runs under one acquisition of the gate. It stops at the first
// failing step and returns that step's error.
func (e *Engine) UndoToIndex(ctx context.Context, n int) error {
	return e.run(ctx, opUndoToIndex, func(ctx context.Context) (string, error) {
		return "", e.walk(ctx, opUndoToIndex, e.undo, n, e.undoStep)
	})
}

// RedoToIndex redoes single steps until the redo stack holds n entries.
func (e *Engine) RedoToIndex(ctx context.Context, n int) error {
	return e.run(ctx, opRedoToIndex, func(ctx context.Context) (string, error) {
		return "", e.walk(ctx, opRedoToIndex, e.redo, n, e.redoStep)
	})
}

// Clear empties both stacks and publishes SignalCleared.
func (e *Engine) Clear(ctx context.Context) error {
	return e.run(ctx, opClear, func(ctx context.Context) (string, error) {
		e.undo.Clear()
		e.redo.Clear()
		e.logger.DebugContext(ctx, "history cleared")
		e.publish(ctx, ports.SignalCleared, nil, nil)
		return "", nil
	})
}

// State returns an advisory snapshot. It never waits for the gate.
func (e *Engine) State() ports.EngineState {
	s := ports.EngineState{
		UndoStackSize: e.undo.Size(),
		RedoStackSize: e.redo.Size(),
	}
	s.CanUndo = s.UndoStackSize > 0
	s.CanRedo = s.RedoStackSize > 0
	if top, ok := e.undo.Peek(); ok {
		s.LastCommand = top.Type()
	}
	return s
}

// UndoHistory lists the undo stack, most recent first.
func (e *Engine) UndoHistory() []command.Descriptor { return e.undo.Descriptors() }

// RedoHistory lists the redo stack, most recent first.
func (e *Engine) RedoHistory() []command.Descriptor { return e.redo.Descriptors() }

// Name implements ports.HealthChecker.
func (e *Engine) Name() string { return engineCheckName }

// HealthCheck fails when the engine is disposed or when one operation has
// held the gate longer than the configured stall threshold. The engine never
// interrupts a running command; this only makes a hung one visible.
func (e *Engine) HealthCheck(_ context.Context) error {
	if e.disposed.Load() {
		return ErrEngineDisposed
	}
	if op, held, ok := e.gate.held(); ok && e.stallThreshold > 0 && held > e.stallThreshold {
		return fmt.Errorf("%s has held the gate for %s: %w", op, held.Round(time.Millisecond), ErrGateStalled)
	}
	return nil
}

// run acquires the gate for op, runs fn and records the outcome. fn returns
// the command type it acted on, or "" when there was none.
//
// A ctx that ends while the call is still waiting for the gate aborts the
// call with no side effect. Once fn starts it runs to completion.
func (e *Engine) run(ctx context.Context, op string, fn func(context.Context) (string, error)) error {
	ctx, span := e.tracer.Start(ctx, "engine."+op,
		trace.WithAttributes(telemetry.AttrOperation.String(op)),
	)
	defer span.End()

	queued := time.Now()
	release, err := e.gate.acquire(ctx, op)
	if err != nil {
		span.SetStatus(codes.Error, "gate not acquired")
		return fmt.Errorf("waiting for execution gate: %w", err)
	}
	defer release()
	if e.metrics != nil {
		e.metrics.EngineGateWait.Record(ctx, time.Since(queued).Seconds(),
			metric.WithAttributes(telemetry.AttrOperation.String(op)))
	}

	if e.disposed.Load() {
		span.SetStatus(codes.Error, ErrEngineDisposed.Error())
		return ErrEngineDisposed
	}

	start := time.Now()
	cmdType, err := fn(ctx)

	span.SetAttributes(telemetry.AttrCommandType.String(cmdType))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	e.record(ctx, op, cmdType, start, err)

	return err
}

func (e *Engine) execute(ctx context.Context, cmd command.Command) error {
	e.logger.DebugContext(ctx, "applying command",
		slog.String("command_type", cmd.Type()),
		slog.String("description", cmd.Description()),
	)

	if err := command.Invoke(ctx, cmd.Apply); err != nil {
		err = fmt.Errorf("executing %s: %w", cmd.Type(), err)
		e.fail(ctx, opExecute, cmd, err)
		return err
	}

	// Commands without an inverse are execute-and-forget, as are those that
	// opt out of tracking: neither touches history.
	if command.Recordable(cmd) {
		if oldest, evicted := e.undo.Push(cmd); evicted {
			e.logger.DebugContext(ctx, "undo history full, dropped oldest command",
				slog.String("command_type", oldest.Type()),
				slog.Int("capacity", e.undo.Capacity()),
			)
		}
		e.redo.Clear()
	}

	e.publish(ctx, ports.SignalExecuted, cmd, nil)
	return nil
}

// undoStep pops, reverses and moves one command to the redo stack. On
// failure the command goes back on top of the undo stack. An empty undo
// stack is a no-op.
func (e *Engine) undoStep(ctx context.Context) (string, error) {
	cmd, ok := e.undo.Pop()
	if !ok {
		return "", nil
	}

	// Only recordable commands are ever pushed, so the assertion holds.
	reverse := cmd.(command.Reverser).Reverse
	if err := command.Invoke(ctx, reverse); err != nil {
		e.undo.Push(cmd)
		err = fmt.Errorf("undoing %s: %w", cmd.Type(), err)
		e.fail(ctx, opUndo, cmd, err)
		return cmd.Type(), err
	}

	e.redo.Push(cmd)
	e.logger.DebugContext(ctx, "command undone", slog.String("command_type", cmd.Type()))
	e.publish(ctx, ports.SignalUndone, cmd, nil)
	return cmd.Type(), nil
}

// redoStep mirrors undoStep: it re-applies the top of the redo stack.
func (e *Engine) redoStep(ctx context.Context) (string, error) {
	cmd, ok := e.redo.Pop()
	if !ok {
		return "", nil
	}

	if err := command.Invoke(ctx, cmd.Apply); err != nil {
		e.redo.Push(cmd)
		err = fmt.Errorf("redoing %s: %w", cmd.Type(), err)
		e.fail(ctx, opRedo, cmd, err)
		return cmd.Type(), err
	}

	e.undo.Push(cmd)
	e.logger.DebugContext(ctx, "command redone", slog.String("command_type", cmd.Type()))
	e.publish(ctx, ports.SignalRedone, cmd, nil)
	return cmd.Type(), nil
}

// walk repeats step until stack holds n entries. A target outside
// [0, stack.Size()] is ignored: callers such as history scrubbers may hold a
// stale index.
func (e *Engine) walk(ctx context.Context, op string, stack *history.Stack, n int,
	step func(context.Context) (string, error),
) error {
	if n < 0 || n > stack.Size() {
		e.logger.DebugContext(ctx, "ignoring out-of-range history target",
			slog.String("operation", op),
			slog.Int("index", n),
			slog.Int("size", stack.Size()),
		)
		return nil
	}

	for stack.Size() > n {
		if _, err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) fail(ctx context.Context, op string, cmd command.Command, err error) {
	e.logger.ErrorContext(ctx, "command failed",
		slog.String("operation", op),
		slog.String("command_type", cmd.Type()),
		slog.Any("error", err),
	)
	e.publish(ctx, ports.SignalError, cmd, err)
}

func (e *Engine) publish(ctx context.Context, signal ports.Signal, cmd command.Command, err error) {
	n := ports.Notification{
		Signal:  signal,
		CanUndo: e.undo.Size() > 0,
		CanRedo: e.redo.Size() > 0,
		Err:     err,
	}
	if cmd != nil {
		n.Command = cmd.Type()
		n.Description = cmd.Description()
	}
	e.notifier.Publish(ctx, n)
}

// record emits engine metrics. Safe to call with nil metrics.
func (e *Engine) record(ctx context.Context, op, cmdType string, start time.Time, err error) {
	if e.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrCommandType.String(cmdType),
		telemetry.AttrResult.String(result),
	)
	e.metrics.EngineCommandDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	e.metrics.EngineCommandTotal.Add(ctx, 1, attrs)

	e.metrics.EngineHistoryDepth.Record(ctx, int64(e.undo.Size()), metric.WithAttributes(telemetry.AttrStack.String("undo")))
	e.metrics.EngineHistoryDepth.Record(ctx, int64(e.redo.Size()), metric.WithAttributes(telemetry.AttrStack.String("redo")))
}
