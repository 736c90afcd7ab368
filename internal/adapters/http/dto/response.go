// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
	"github.com/jsamuelsen11/command-engine/internal/domain/command"
	"github.com/jsamuelsen11/command-engine/internal/ports"
)

// StateResponse mirrors ports.EngineState.
type StateResponse struct {
	CanUndo       bool   `json:"can_undo"`
	CanRedo       bool   `json:"can_redo"`
	UndoStackSize int    `json:"undo_stack_size"`
	RedoStackSize int    `json:"redo_stack_size"`
	LastCommand   string `json:"last_command,omitempty"`
}

// ToStateResponse converts an engine state snapshot to an HTTP response DTO.
func ToStateResponse(s ports.EngineState) StateResponse {
	return StateResponse{
		CanUndo:       s.CanUndo,
		CanRedo:       s.CanRedo,
		UndoStackSize: s.UndoStackSize,
		RedoStackSize: s.RedoStackSize,
		LastCommand:   s.LastCommand,
	}
}

// CommandDescriptorResponse is one entry in a history listing.
type CommandDescriptorResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// HistoryResponse is the body of GET /api/v1/history. Both listings are most
// recent first.
type HistoryResponse struct {
	State StateResponse               `json:"state"`
	Undo  []CommandDescriptorResponse `json:"undo"`
	Redo  []CommandDescriptorResponse `json:"redo"`
}

// ToHistoryResponse builds a HistoryResponse. The state and listings are read
// separately and may be momentarily inconsistent under concurrent writes.
func ToHistoryResponse(s ports.EngineState, undo, redo []command.Descriptor) HistoryResponse {
	return HistoryResponse{
		State: ToStateResponse(s),
		Undo:  toDescriptorResponses(undo),
		Redo:  toDescriptorResponses(redo),
	}
}

func toDescriptorResponses(descs []command.Descriptor) []CommandDescriptorResponse {
	out := make([]CommandDescriptorResponse, len(descs))
	for i, d := range descs {
		out[i] = CommandDescriptorResponse{Type: d.Type, Description: d.Description}
	}
	return out
}

// CommandResponse is the body returned after a command was executed.
// EffectID is set for effect:add; ExportID for document:export.
type CommandResponse struct {
	Type        string        `json:"type"`
	Description string        `json:"description"`
	EffectID    string        `json:"effect_id,omitempty"`
	ExportID    string        `json:"export_id,omitempty"`
	State       StateResponse `json:"state"`
}

// EffectResponse represents one effect layer in HTTP responses.
type EffectResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Intensity float64 `json:"intensity"`
}

// CanvasResponse is the body of GET /api/v1/canvas.
type CanvasResponse struct {
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Effects  []EffectResponse `json:"effects"`
	Revision int64            `json:"revision"`
}

// ToCanvasResponse converts a document snapshot to an HTTP response DTO.
func ToCanvasResponse(doc canvas.Document) CanvasResponse {
	effects := make([]EffectResponse, len(doc.Effects))
	for i, e := range doc.Effects {
		effects[i] = EffectResponse{ID: e.ID, Name: e.Name, Intensity: e.Intensity}
	}
	return CanvasResponse{
		Width:    doc.Resolution.Width,
		Height:   doc.Resolution.Height,
		Effects:  effects,
		Revision: doc.Revision,
	}
}

// Health check status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the /health endpoints. Checks maps each
// component (for example "command-engine" or "render-api") to "ok" or its
// failure message; liveness omits it.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse folds health check results into a HealthResponse and
// reports whether every check passed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthNotReady
			continue
		}
		resp.Checks[name] = HealthOK
	}
	return resp, resp.Status == HealthReady
}
