package middleware

import (
	"context"
	"net/http"
	"time"
)

// Deadline attaches a deadline of d to each request context. It never
// answers on the handler's behalf: a command already applying when the
// deadline passes finishes and its real outcome is returned, while a call
// still queued for the execution gate gives up and maps to 503.
// A d of zero or less leaves the context untouched.
func Deadline(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
