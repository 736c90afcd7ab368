package ports

import "context"

// HealthChecker reports whether one component can serve traffic. The engine
// reports a stalled execution gate; the export client reports its breaker.
type HealthChecker interface {
	// Name keys the checker's entry in the readiness report.
	Name() string

	// HealthCheck returns nil when healthy. It must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per readiness
// probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker's name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
