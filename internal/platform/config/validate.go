package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// problems collects every invalid setting so one failed start reports all of
// them.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Engine.validate(&p)
	c.Notify.validate(&p)
	return errors.Join(p...)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.IdleTimeout >= 0, "server.idle_timeout must not be negative")
}

func (l *LogConfig) validate(p *problems) {
	var lvl slog.Level
	p.check(lvl.UnmarshalText([]byte(l.Level)) == nil,
		"log.level must be one of: debug, info, warn, error; got %q", l.Level)
	p.check(slices.Contains([]string{"json", "text"}, l.Format),
		"log.format must be one of: json, text; got %q", l.Format)
}

func (cl *ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")

	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.Retry.InitialInterval <= cl.Retry.MaxInterval,
		"client.retry.initial_interval (%s) must not exceed max_interval (%s)",
		cl.Retry.InitialInterval, cl.Retry.MaxInterval)

	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", cl.RateLimit.BurstSize)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.check(slices.Contains([]string{"stdout", "otlp"}, t.Exporter),
		"telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "",
		"telemetry.endpoint must not be empty when exporter is otlp")
}

func (e *EngineConfig) validate(p *problems) {
	p.check(e.HistoryCapacity >= 1, "engine.history_capacity must be >= 1, got %d", e.HistoryCapacity)
	p.check(e.StallThreshold > 0, "engine.stall_threshold must be positive")
	p.check(e.RequestQueueSize >= 0, "engine.request_queue_size must not be negative, got %d", e.RequestQueueSize)
}

func (n *NotifyConfig) validate(p *problems) {
	p.check(n.MaxWorkers >= 1, "notify.max_workers must be >= 1, got %d", n.MaxWorkers)
}
