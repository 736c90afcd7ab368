package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/command-engine/internal/platform/config"
	"github.com/jsamuelsen11/command-engine/internal/platform/logging"
)

// jitterFraction bounds jitter to ±25% of the computed delay.
const jitterFraction = 0.25

// doWithRetry sends req, replaying it with backoff while the outcome is
// transient and the request may be repeated (see replayable). When the last
// attempt still gets a retryable status, that response is returned with the
// error and the caller owns its body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.MaxAttempts <= 0 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.MaxAttempts)
	}

	attempts := c.retry.MaxAttempts
	if !replayable(req) {
		attempts = 1
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return nil, err
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return nil, err
			}
		}
		resetRequestBody(req, body)

		resp, err := c.http.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, err
			}
			lastErr, retryAfter = err, 0
			continue
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.service)
		if attempt == attempts-1 {
			return resp, lastErr
		}
		retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		drainResponseBody(resp)
	}

	return nil, lastErr
}

// replayable reports whether sending req twice has the same effect as
// sending it once.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(HeaderIdempotencyKey) != ""
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return body, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody lets the connection be reused by the next attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry sleeps before the given attempt. A server-supplied
// Retry-After wins over the computed backoff but never exceeds maxInterval.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retry)
	if retryAfter > 0 {
		delay = min(retryAfter, c.retry.MaxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.service),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.MaxAttempts),
		slog.Duration("backoff", delay),
		slog.Bool("retry_after", retryAfter > 0),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1 is the first
// retry): exponential growth capped at maxInterval, then ±25% jitter.
func backoff(attempt int, cfg config.RetryConfig) time.Duration {
	delay := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt-1))
	delay = min(delay, float64(cfg.MaxInterval))
	delay += delay * jitterFraction * (2*rand.Float64() - 1)

	return time.Duration(max(delay, 0))
}

// parseRetryAfter reads a Retry-After value in either delta-seconds or
// HTTP-date form. Anything unparsable, or a date in the past, yields 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Only the caller giving up is final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus: 429 and every 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
