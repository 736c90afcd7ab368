package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/command-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
)

// CanvasHandler serves the current document.
type CanvasHandler struct {
	store *canvas.Store
}

// NewCanvasHandler creates a new CanvasHandler.
func NewCanvasHandler(store *canvas.Store) *CanvasHandler {
	return &CanvasHandler{store: store}
}

// Get handles GET /api/v1/canvas.
func (h *CanvasHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToCanvasResponse(h.store.Snapshot()))
}
