package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/command-engine/internal/adapters/http/dto"
	"github.com/jsamuelsen11/command-engine/internal/ports"
)

// HealthHandler serves liveness and readiness. Readiness runs every
// registered check, which includes the engine's stalled-gate check and the
// render API's circuit breaker.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every check passes, 503
// otherwise. The checks are reported either way.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
