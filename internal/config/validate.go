package config

import (
	"fmt"
	"slices"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"logging.level", c.Logging.Level, []string{"trace", "debug", "info", "warn", "warning", "error"}},
		{"logging.format", c.Logging.Format, []string{"console", "json"}},
		{"match.key_unit", c.Match.KeyUnit, []string{KeyUnitByte, KeyUnitRune, KeyUnitGrapheme}},
		{"output.format", c.Output.Format, []string{OutputPlain, OutputTable, OutputJSON, OutputYAML}},
		{"output.color", c.Output.Color, []string{ColorAuto, ColorAlways, ColorNever}},
		{"exec.missing", c.Exec.Missing, []string{MissingError, MissingSkip, MissingEmpty}},
	}
	for _, check := range checks {
		if !slices.Contains(check.allowed, check.value) {
			return fmt.Errorf("%s: unsupported value %q (expected one of %v)", check.key, check.value, check.allowed)
		}
	}
	if c.Exec.Lock && c.Exec.LockPath == "" {
		return fmt.Errorf("exec.lock_path must be set when exec.lock is true")
	}
	return nil
}
