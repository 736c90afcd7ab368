// Package httpclient is the outbound HTTP client used by the export adapter.
// A call to Do passes through the circuit breaker, then the rate limiter,
// and only then opens a client span around the retry loop.
//
// Retries only replay requests that are safe to repeat: idempotent methods,
// or any request carrying an Idempotency-Key (see WithIdempotencyKey). A
// render job POST without a key is sent once.
//
//	ctx = httpclient.WithIdempotencyKey(ctx, uuid.NewString())
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/command-engine/internal/platform/config"
	"github.com/jsamuelsen11/command-engine/internal/platform/telemetry"
)

// Client talks to a single downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	service string
	retry   config.RetryConfig
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil: unlimited
	metrics *telemetry.Metrics
}

// New builds a Client for service, which names the breaker and labels spans
// and metrics. A nil metrics disables metric recording.
func New(cfg *config.ClientConfig, service string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		service: service,
		retry:   cfg.Retry,
		breaker: newBreaker(service, cfg.CircuitBreaker, logger),
		metrics: metrics,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

func newBreaker(service string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        service,
		MaxRequests: uint32(min(max(cfg.HalfOpenLimit, 0), math.MaxUint32)), //nolint:gosec // clamped above
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A caller giving up says nothing about the downstream's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req through the breaker, limiter and retry loop.
//
// A non-retryable status returns resp with an open body. If retries run out
// on a retryable status, both resp and err are non-nil and the caller still
// closes resp.Body. Breaker rejections and transport errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		setContextHeaders(ctx, req)
		return c.traced(ctx, req)
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

// BaseURL is the downstream root every request path is joined to.
func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the downstream, e.g. "render-api".
func (c *Client) Name() string { return c.service }

// HealthCheck reads the breaker state without touching the network.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded, circuit breaker half-open", c.service)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing, circuit breaker open", c.service)
	default:
		return fmt.Errorf("%s: circuit breaker in unknown state %v", c.service, state)
	}
}
