package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/command-engine/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document. Code is an extension
// member clients can switch on without parsing Detail.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid field. Location is "path.<param>" for URL
// parameters, "body" when the body as a whole is unreadable and
// "body.<field>" otherwise.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// Problem codes.
const (
	CodeInvalid      = "invalid"
	CodeNotFound     = "not_found"
	CodeForbidden    = "forbidden"
	CodeConflict     = "conflict"
	CodeBusy         = "engine_busy"
	CodeShuttingDown = "shutting_down"
	CodeUpstream     = "render_unavailable"
	CodeInternal     = "internal"
	CodeNoRoute      = "no_route"
	CodeBadMethod    = "method_not_allowed"
)

// Routing failures, raised by the router rather than a handler.
var (
	ErrNoRoute          = errors.New("no such route")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// problemKinds is checked in order; the first sentinel err matches wins.
var problemKinds = []struct {
	sentinel error
	status   int
	code     string
}{
	{domain.ErrShutdown, http.StatusServiceUnavailable, CodeShuttingDown},
	// The caller gave up while the command was still queued for the gate.
	{context.DeadlineExceeded, http.StatusServiceUnavailable, CodeBusy},
	{context.Canceled, http.StatusServiceUnavailable, CodeBusy},
	{domain.ErrValidation, http.StatusBadRequest, CodeInvalid},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{domain.ErrConflict, http.StatusConflict, CodeConflict},
	{domain.ErrUnavailable, http.StatusBadGateway, CodeUpstream},
	{ErrNoRoute, http.StatusNotFound, CodeNoRoute},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, CodeBadMethod},
}

// internalErrorDetail replaces the detail of 500 responses. Unclassified
// errors may carry a recovered panic and its stack.
const internalErrorDetail = "the command failed unexpectedly"

// NewErrorResponse builds the problem document for err. r supplies the
// instance URI and tells path parameters apart from body fields.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = internalErrorDetail
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(r, verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

func classify(err error) (int, string) {
	for _, k := range problemKinds {
		if errors.Is(err, k.sentinel) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

func fieldDetails(r *http.Request, fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		var location string
		switch {
		case isPathParam(r, field):
			location = "path." + field
		case field == "body":
			location = field
		default:
			location = "body." + field
		}
		details = append(details, ErrorDetail{Location: location, Message: fields[field]})
	}
	return details
}

func isPathParam(r *http.Request, name string) bool {
	rctx := chi.RouteContext(r.Context())
	return rctx != nil && slices.Contains(rctx.URLParams.Keys, name)
}
