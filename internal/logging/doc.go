// Package logging assembles structured slog loggers used across qkay.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so commands can tag log lines with the
// dataset, rater and plan they operate on. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
