package acl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/command-engine/internal/adapters/clients/acl/export"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
	"github.com/jsamuelsen11/command-engine/internal/platform/httpclient"
	"github.com/jsamuelsen11/command-engine/internal/ports"
)

// ServiceName identifies the downstream render API in traces, metrics and
// the readiness report.
const ServiceName = "render-api"

const exportsPath = "/api/v1/exports"

// Compile-time interface checks.
var (
	_ ports.ExportClient  = (*ExportClient)(nil)
	_ ports.HealthChecker = (*ExportClient)(nil)
)

// ExportClient is the outbound adapter for the downstream render API. It
// implements [ports.ExportClient]: a document snapshot is translated into a
// render job by the [export] translators and submitted with
// POST /api/v1/exports.
//
// Each submission carries a fresh Idempotency-Key so the underlying
// [httpclient.Client] may retry it. HTTP errors are mapped to domain errors
// by [TranslateHTTPError].
type ExportClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewExportClient creates an ExportClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the render
// API root (e.g. "https://render.example.com").
func NewExportClient(client *httpclient.Client, logger *slog.Logger) *ExportClient {
	return &ExportClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Export submits doc as a render job and returns the downstream export ID.
// Returns [domain.ErrValidation] if the render API rejects the job and
// [domain.ErrUnavailable] if it cannot be reached or refuses to start it.
func (c *ExportClient) Export(ctx context.Context, doc canvas.Document) (string, error) {
	job := export.ToRenderJob(doc)

	// One key per submission: retries of this call are deduplicated by the
	// render API, a second Export of the same revision is a new job.
	ctx = httpclient.WithIdempotencyKey(ctx, uuid.NewString())

	var resp export.ExportDTO
	if err := c.req.PostJSON(ctx, exportsPath, job, &resp); err != nil {
		return "", fmt.Errorf("submitting export of revision %d: %w", doc.Revision, err)
	}

	id, err := export.ToExportID(resp)
	if err != nil {
		return "", err
	}

	c.logger.InfoContext(ctx, "export submitted",
		slog.String("export_id", id),
		slog.String("status", resp.Status),
		slog.Int64("revision", doc.Revision),
		slog.Int("layers", len(job.Layers)),
	)
	return id, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *ExportClient) Name() string {
	return ServiceName
}

// HealthCheck reports the render API's availability from the circuit
// breaker state; no network call is made.
func (c *ExportClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
