package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/command-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/command-engine/internal/domain"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
	"github.com/jsamuelsen11/command-engine/internal/domain/command"
)

// parseIndex extracts an int path parameter from the chi URL params.
// Negative values parse fine; the engine ignores them.
func parseIndex(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidField(param, "must be a valid integer")
	}
	return n, nil
}

// buildCommand maps a validated CommandRequest onto the canvas command it
// names. Constructor validation errors are returned as-is.
func buildCommand(req *dto.CommandRequest, store *canvas.Store, exporter canvas.Exporter) (command.Command, error) {
	switch req.Type {
	case canvas.TypeAddEffect:
		return canvas.NewAddEffect(store, req.Name, req.IntensityOrDefault(), req.IndexOrTop())
	case canvas.TypeRemoveEffect:
		return canvas.NewRemoveEffect(store, req.EffectID), nil
	case canvas.TypeMoveEffect:
		return canvas.NewMoveEffect(store, req.EffectID, *req.To), nil
	case canvas.TypeSetResolution:
		return canvas.NewSetResolution(store, canvas.Resolution{Width: req.Width, Height: req.Height})
	case canvas.TypeExport:
		return canvas.NewExport(store, exporter), nil
	default:
		return nil, domain.InvalidField("type", "unsupported")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxCommandBytes caps a command request body.
const maxCommandBytes = 1 << 20

type validatable interface {
	Validate() error
}

// decodeCommand reads exactly one JSON object into dst and validates it.
// Unknown fields and trailing data are rejected, since a misspelled field
// would otherwise silently apply a default. On failure the problem response
// is already written and false is returned.
func decodeCommand[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCommandBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("trailing data")
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.InvalidField("body", bodyProblem(err)))
		return false
	}

	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	case errors.Is(err, io.EOF):
		return domain.MsgRequired
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		return strings.TrimPrefix(err.Error(), "json: ")
	}
	return "invalid JSON"
}
