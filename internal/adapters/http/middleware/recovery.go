package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/command-engine/internal/adapters/http/dto"
)

var errHandlerPanicked = errors.New("handler panicked")

// Recovery turns a handler panic into a logged error and, if nothing was
// written yet, an RFC 9457 500 response. http.ErrAbortHandler is re-raised
// so net/http can abort the connection as intended.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := wrap(w, r)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("operation", "serve_http"),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)

				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errHandlerPanicked)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
