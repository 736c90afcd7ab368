package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/command-engine/internal/platform/logging"
)

const redacted = "[REDACTED]"

// Logging stores a request-scoped logger carrying the request and correlation
// IDs in the context (see logging.FromContext) and logs each request's
// outcome. Completion is logged at error for 5xx, warn for 4xx and info
// otherwise; the start line and the redacted headers are debug only.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("headers", RedactHeaders(r.Header)),
				)
			}

			ww := wrap(w, r)
			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			status := statusOf(ww)
			child.LogAttrs(ctx, completionLevel(status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routeOf(r)),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// RedactHeaders renders headers as a slog group, sorted by name, with
// credential-bearing values replaced. Multi-value headers are joined with
// a comma.
func RedactHeaders(headers http.Header) slog.Value {
	names := slices.Sorted(maps.Keys(headers))
	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if logging.IsSensitiveHeader(name) {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.GroupValue(attrs...)
}
