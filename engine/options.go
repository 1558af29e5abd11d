package engine

import (
	"log/slog"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for the evaluator
// ============================================================================

// Option configures evaluation behavior.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger routes the evaluator's progress logging through the given
// structured logger. Detectors themselves never log.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
