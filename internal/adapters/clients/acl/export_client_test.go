package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/command-engine/internal/adapters/clients/acl/export"
	"github.com/jsamuelsen11/command-engine/internal/domain"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
	"github.com/jsamuelsen11/command-engine/internal/platform/config"
	"github.com/jsamuelsen11/command-engine/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, ServiceName, nil, slog.New(slog.DiscardHandler))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func testDocument() canvas.Document {
	return canvas.Document{
		Resolution: canvas.Resolution{Width: 3840, Height: 2160},
		Effects:    []canvas.Effect{{ID: "e1", Name: "vignette", Intensity: 0.25}},
		Revision:   3,
	}
}

func TestExportClient_Export(t *testing.T) {
	t.Parallel()

	var got export.RenderJobDTO
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/exports" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if r.Header.Get(httpclient.HeaderIdempotencyKey) == "" {
			t.Errorf("missing %s header", httpclient.HeaderIdempotencyKey)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(t, w, map[string]any{"id": "exp-42", "status": "queued", "created_at": "2026-01-01T00:00:00Z"})
	}))
	defer ts.Close()

	client := NewExportClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
	id, err := client.Export(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if id != "exp-42" {
		t.Errorf("Export() = %q, want exp-42", id)
	}
	if got.Output.Width != 3840 || got.Revision != 3 || len(got.Layers) != 1 || got.Layers[0].Effect != "vignette" {
		t.Errorf("request body = %+v", got)
	}
}

func TestExportClient_Export_RetriesWithSameKey(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		keys []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		keys = append(keys, r.Header.Get(httpclient.HeaderIdempotencyKey))
		n := len(keys)
		mu.Unlock()

		// The first submission fails once; the second succeeds outright.
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(t, w, map[string]any{"id": "exp-" + strconv.Itoa(n), "status": "queued"})
	}))
	defer ts.Close()

	hc := httpclient.New(&config.ClientConfig{
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}, ServiceName, nil, slog.New(slog.DiscardHandler))
	client := NewExportClient(hc, slog.New(slog.DiscardHandler))

	if _, err := client.Export(context.Background(), testDocument()); err != nil {
		t.Fatalf("first Export() error = %v", err)
	}
	if _, err := client.Export(context.Background(), testDocument()); err != nil {
		t.Fatalf("second Export() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(keys) != 3 {
		t.Fatalf("requests = %d, want 3", len(keys))
	}
	if keys[0] == "" || keys[0] != keys[1] {
		t.Errorf("retry keys = %q, %q, want the same non-empty key", keys[0], keys[1])
	}
	if keys[2] == keys[0] {
		t.Errorf("second submission reused key %q", keys[2])
	}
}

func TestExportClient_Export_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "rejected job maps to ErrValidation",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":"invalid job","errors":[{"location":"body.layers[0].strength","message":"must be <= 1"}]}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "render farm down maps to ErrUnavailable",
			status:  http.StatusServiceUnavailable,
			body:    `{"detail":"no workers"}`,
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "accepted without id maps to ErrUnavailable",
			status:  http.StatusAccepted,
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.status >= http.StatusBadRequest {
					w.Header().Set("Content-Type", "application/problem+json")
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				writeJSON(t, w, map[string]any{"status": "queued"})
			}))
			defer ts.Close()

			client := NewExportClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
			_, err := client.Export(context.Background(), testDocument())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Export() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExportClient_Export_ValidationFieldsUseDocumentNames(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"location":"body.layers[0].strength","message":"out of range"}]}`))
	}))
	defer ts.Close()

	client := NewExportClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
	_, err := client.Export(context.Background(), testDocument())

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Export() error = %v, want *ValidationError", err)
	}
	if verr.Fields["effects[0].strength"] != "out of range" {
		t.Errorf("Fields = %v, want effects[0].strength", verr.Fields)
	}
}

func TestExportClient_Export_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := NewExportClient(newTestClient(t, url), slog.New(slog.DiscardHandler))
	_, err := client.Export(context.Background(), testDocument())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Export() error = %v, want ErrUnavailable", err)
	}
}

func TestExportClient_HealthCheck(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewExportClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))

	if client.Name() != "render-api" {
		t.Errorf("Name() = %q, want render-api", client.Name())
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() before failures = %v, want nil", err)
	}

	// Two consecutive failures trip the breaker (MaxFailures: 2).
	for range 2 {
		_, _ = client.Export(context.Background(), testDocument())
	}

	if err := client.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil after breaker opened, want error")
	}

	_, err := client.Export(context.Background(), testDocument())
	if err == nil {
		t.Fatal("Export() with open breaker error = nil")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server hits = %d, want 2 (open breaker must short-circuit)", got)
	}
}
