// Package config loads the command engine's settings with koanf. See Load
// for the layering; every field has a default so a profile only states what
// differs.
package config

import "time"

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Engine    EngineConfig    `koanf:"engine"`
	Notify    NotifyConfig    `koanf:"notify"`
}

// ServerConfig controls the inbound HTTP API. WriteTimeout also bounds how
// long a request may wait for the execution gate.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig controls the outbound render API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig applies only to requests that are safe to replay.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A RequestsPerSecond of zero disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// EngineConfig holds command engine settings.
type EngineConfig struct {
	// HistoryCapacity bounds each of the undo and redo stacks.
	HistoryCapacity int `koanf:"history_capacity"`
	// StallThreshold is how long one operation may hold the execution gate
	// before the engine health check reports it.
	StallThreshold time.Duration `koanf:"stall_threshold"`
	// RequestQueueSize preallocates the queue for externally requested
	// undo/redo signals. The queue grows past it.
	RequestQueueSize int `koanf:"request_queue_size"`
}

// NotifyConfig holds notification bus settings.
type NotifyConfig struct {
	MaxWorkers int `koanf:"max_workers"`
}
