// Package http is the inbound HTTP adapter: routes, server lifecycle and the
// handlers and middleware beneath it.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/command-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/command-engine/internal/adapters/http/handlers"
)

// NewRouter mounts the engine API under /api/v1 and the probes under
// /health. middlewares wrap every route, outermost first. Unknown paths and
// methods get problem documents like any other error.
func NewRouter(
	commands *handlers.CommandHandler,
	history *handlers.HistoryHandler,
	canvas *handlers.CanvasHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, dto.ErrNoRoute)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, dto.ErrMethodNotAllowed)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Liveness)
		r.Get("/ready", health.Readiness)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/commands", commands.Execute)
		r.Get("/canvas", canvas.Get)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", history.History)
			r.Delete("/", history.Clear)
			r.Post("/undo", history.Undo)
			r.Post("/redo", history.Redo)
			r.Post("/undo-to/{index}", history.UndoTo)
			r.Post("/redo-to/{index}", history.RedoTo)
		})
	})

	return r
}
