// Package config loads, normalizes, and validates fuzip configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours the FUZIP_LOG environment override. The
// Config type centralizes the knobs for key derivation, output rendering,
// command execution and logging so the CLI resolves them in one pass.
//
// Always obtain settings through this package so downstream code receives
// canonical lower-case enum values and clear validation errors.
package config
