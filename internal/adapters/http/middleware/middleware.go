// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs them in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Deadline → Handler
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// unmatchedRoute labels spans and metrics for requests no route matched, so
// unknown paths do not become distinct series.
const unmatchedRoute = "unmatched"

// wrap returns w as a chi WrapResponseWriter so status and size can be read
// after the handler returns. A writer wrapped further out is reused.
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the status sent through ww. A handler that wrote nothing
// produced an implicit 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// routeOf returns the chi route pattern that served r, for example
// "/api/v1/history/undo-to/{index}". Only meaningful after the router ran.
func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
