package httpclient

import (
	"context"
	"net/http"
)

// Outbound headers set from the context.
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderCorrelationID  = "X-Correlation-ID"
	HeaderIdempotencyKey = "Idempotency-Key"
)

// ctxHeader is a context key whose value is copied onto outbound requests
// under the header it names.
type ctxHeader string

// WithRequestID stores the inbound request ID for propagation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxHeader(HeaderRequestID), id)
}

// WithCorrelationID stores the inbound correlation ID for propagation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxHeader(HeaderCorrelationID), id)
}

// WithIdempotencyKey marks calls made with ctx as safe to replay: the key is
// sent as the Idempotency-Key header and non-idempotent methods become
// eligible for retry.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ctxHeader(HeaderIdempotencyKey), key)
}

func setContextHeaders(ctx context.Context, req *http.Request) {
	for _, h := range []string{HeaderRequestID, HeaderCorrelationID, HeaderIdempotencyKey} {
		if v, _ := ctx.Value(ctxHeader(h)).(string); v != "" {
			req.Header.Set(h, v)
		}
	}
}
