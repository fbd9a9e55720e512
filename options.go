package riskengine

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures the Engine.
type Option func(*engineConfig)

// engineConfig holds configuration for an Engine instance.
type engineConfig struct {
	logger      *slog.Logger
	tracer      trace.Tracer
	parallelism int
}

// WithLogger sets a custom logger for the engine.
// If not provided, a default JSON logger writing to stderr is created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for the engine.
// Scoring and gap-analysis operations record spans on this tracer.
// If not provided, a no-op tracer is used.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *engineConfig) {
		c.tracer = tracer
	}
}

// WithParallelism sets the number of workers used for batch scoring and
// multi-framework analysis. Values below 1 fall back to the default
// (the number of available CPUs).
func WithParallelism(n int) Option {
	return func(c *engineConfig) {
		c.parallelism = n
	}
}
