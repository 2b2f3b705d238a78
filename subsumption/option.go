package subsumption

import "log/slog"

// Option configures Index construction behavior.
type Option[K comparable, G any, V comparable, T comparable] func(*config[K, G, V, T])

// config holds internal configuration for an Index.
type config[K comparable, G any, V comparable, T comparable] struct {
	logger *slog.Logger
}

// WithLogger enables structured logging for index operations.
//
// When set, the index logs at Debug level:
//   - Put/Remove/Lookup operation boundaries and durations
//   - Skipped candidate edges (map-domain-via / map-range-via collisions)
//
// Individual rewiring decisions (edges added or moved during insertion)
// are not logged.
//
// Pass nil to disable logging (the default).
func WithLogger[K comparable, G any, V comparable, T comparable](logger *slog.Logger) Option[K, G, V, T] {
	return func(cfg *config[K, G, V, T]) {
		cfg.logger = logger
	}
}
