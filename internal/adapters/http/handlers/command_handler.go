package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/command-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
	"github.com/jsamuelsen11/command-engine/internal/ports"
)

// CommandHandler turns JSON command requests into canvas commands and runs
// them through the engine.
type CommandHandler struct {
	engine   ports.CommandEngine
	store    *canvas.Store
	exporter canvas.Exporter
}

// NewCommandHandler creates a CommandHandler. Commands it builds mutate store;
// document:export sends snapshots to exporter.
func NewCommandHandler(engine ports.CommandEngine, store *canvas.Store, exporter canvas.Exporter) *CommandHandler {
	return &CommandHandler{engine: engine, store: store, exporter: exporter}
}

// Execute handles POST /api/v1/commands.
func (h *CommandHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req dto.CommandRequest
	if !decodeCommand(w, r, &req) {
		return
	}

	cmd, err := buildCommand(&req, h.store, h.exporter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.engine.Execute(r.Context(), cmd); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.CommandResponse{
		Type:        cmd.Type(),
		Description: cmd.Description(),
		State:       dto.ToStateResponse(h.engine.State()),
	}
	switch c := cmd.(type) {
	case *canvas.AddEffect:
		resp.EffectID = c.Effect().ID
	case *canvas.Export:
		resp.ExportID = c.ExportID()
	}

	writeJSON(w, http.StatusOK, resp)
}
