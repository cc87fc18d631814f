// Package logging assembles structured slog loggers and formatting helpers used
// across chordstage commands.
//
// It owns the console and JSON handlers, routes file output through a rotating
// writer, and exposes context-aware helpers so each CLI invocation tags its
// log lines with a run identifier. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
