// Package logging assembles the structured slog loggers used by fuzip.
//
// It owns the console and JSON handlers, level parsing, output routing and
// the run_id tagging that lets every line of one invocation be correlated.
// Loggers write to stderr by default so stdout stays reserved for records.
// NewNop provides a silent logger for tests and library callers.
package logging
