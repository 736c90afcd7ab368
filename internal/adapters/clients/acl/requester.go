package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/command-engine/internal/domain"
	"github.com/jsamuelsen11/command-engine/internal/platform/httpclient"
)

// Requester sends JSON requests to the render API and turns every outcome
// into either a decoded body or a domain error. It always closes the
// response body.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// PostJSON marshals in, posts it to path and decodes a 2xx response into
// out. A nil out skips decoding. Non-2xx responses go through
// [TranslateHTTPError].
func (r *Requester) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshaling body for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.client.BaseURL()+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, application/problem+json")

	return r.execute(ctx, req, out)
}

// HealthCheck reports the underlying client's circuit breaker state.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) execute(ctx context.Context, req *http.Request, out any) error {
	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	// Exhausted retries return both a response and an error; the status
	// carries more meaning than the retry error.
	if resp != nil && !successful(resp.StatusCode) {
		translated := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "render api rejected request",
			slog.String("operation", "request"),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", translated),
		)
		return translated
	}

	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
		}
		r.logger.ErrorContext(ctx, "render api unreachable",
			slog.String("operation", "request"),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

func successful(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
