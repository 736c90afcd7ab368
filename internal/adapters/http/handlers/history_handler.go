package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/command-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/command-engine/internal/ports"
)

// HistoryHandler exposes undo/redo navigation and history inspection.
// Navigation endpoints answer with the state after the call; a request
// that had nothing to do still answers 200.
type HistoryHandler struct {
	engine ports.CommandEngine
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(engine ports.CommandEngine) *HistoryHandler {
	return &HistoryHandler{engine: engine}
}

// Undo handles POST /api/v1/history/undo.
func (h *HistoryHandler) Undo(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, h.engine.Undo)
}

// Redo handles POST /api/v1/history/redo.
func (h *HistoryHandler) Redo(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, h.engine.Redo)
}

// UndoTo handles POST /api/v1/history/undo-to/{index}.
func (h *HistoryHandler) UndoTo(w http.ResponseWriter, r *http.Request) {
	n, err := parseIndex(r, "index")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.navigate(w, r, func(ctx context.Context) error { return h.engine.UndoToIndex(ctx, n) })
}

// RedoTo handles POST /api/v1/history/redo-to/{index}.
func (h *HistoryHandler) RedoTo(w http.ResponseWriter, r *http.Request) {
	n, err := parseIndex(r, "index")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.navigate(w, r, func(ctx context.Context) error { return h.engine.RedoToIndex(ctx, n) })
}

// Clear handles DELETE /api/v1/history.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Clear(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/v1/history.
func (h *HistoryHandler) History(w http.ResponseWriter, _ *http.Request) {
	resp := dto.ToHistoryResponse(h.engine.State(), h.engine.UndoHistory(), h.engine.RedoHistory())
	writeJSON(w, http.StatusOK, resp)
}

func (h *HistoryHandler) navigate(w http.ResponseWriter, r *http.Request, fn func(context.Context) error) {
	if err := fn(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToStateResponse(h.engine.State()))
}
