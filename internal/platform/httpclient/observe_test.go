package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sony/gobreaker/v2"
)

func TestOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		err    error
		want   string
	}{
		{name: "accepted", status: http.StatusAccepted, want: "success"},
		{name: "client error", status: http.StatusUnprocessableEntity, want: "error"},
		{name: "retries exhausted", status: http.StatusBadGateway, err: errors.New("HTTP 502 from render-api"), want: "error"},
		{name: "transport error", err: errors.New("connection reset"), want: "error"},
		{name: "breaker open", err: gobreaker.ErrOpenState, want: "circuit_open"},
		{name: "half-open full", err: gobreaker.ErrTooManyRequests, want: "circuit_open"},
		{name: "caller gone", err: fmt.Errorf("Post: %w", context.Canceled), want: "canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := outcome(tt.status, tt.err); got != tt.want {
				t.Errorf("outcome(%d, %v) = %q, want %q", tt.status, tt.err, got, tt.want)
			}
		})
	}
}

func TestSetContextHeaders(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithIdempotencyKey(ctx, "")

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, "http://render.internal/v1/exports", http.NoBody)
	req.Header.Set(HeaderCorrelationID, "preset")
	setContextHeaders(ctx, req)

	if got := req.Header.Get(HeaderRequestID); got != "req-1" {
		t.Errorf("%s = %q, want req-1", HeaderRequestID, got)
	}
	if got := req.Header.Get(HeaderCorrelationID); got != "preset" {
		t.Errorf("%s = %q, want the caller's value kept", HeaderCorrelationID, got)
	}
	if _, ok := req.Header[HeaderIdempotencyKey]; ok {
		t.Errorf("empty idempotency key was sent")
	}
}
