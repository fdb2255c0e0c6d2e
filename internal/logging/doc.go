// Package logging constructs the slog loggers used across docshelf.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for machine consumption. Components receive a
// logger by injection and tag themselves with a component attribute;
// NewNop returns a discard logger for tests.
package logging
