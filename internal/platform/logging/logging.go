// Package logging builds the service logger and carries request-scoped
// loggers through a context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	engineLog := logging.Component(logger, "engine")
//
// HTTP middleware stores a logger enriched with request_id and
// correlation_id; code below it recovers that logger with FromContext.
//
// Failures are logged once, where they are handled, with the operation and
// the full chain:
//
//	logger.ErrorContext(ctx, "command failed",
//	    slog.String("operation", "undo"),
//	    slog.String("command_type", cmd.Type()),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing to w. level accepts anything
// slog.Level.UnmarshalText does ("debug", "WARN", "info+2"); anything else
// means info. format "text" selects the logfmt-style handler, every other
// value JSON. Debug loggers also record the call site.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts a configured level name, falling back to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Component tags every record from the returned logger with the component
// that emitted it.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(slog.String("component", name))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
