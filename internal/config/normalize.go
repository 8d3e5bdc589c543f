package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeMatch()
	c.normalizeOutput()
	return c.normalizeExec()
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(LogEnvVar); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = lowerOr(c.Logging.Level, defaultLogLevel)
	c.Logging.Format = lowerOr(c.Logging.Format, defaultLogFormat)
	file, err := expandPath(strings.TrimSpace(c.Logging.File))
	if err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	c.Logging.File = file
	return nil
}

func (c *Config) normalizeMatch() {
	c.Match.KeyUnit = lowerOr(c.Match.KeyUnit, defaultKeyUnit)
}

func (c *Config) normalizeOutput() {
	c.Output.Format = lowerOr(c.Output.Format, defaultOutputFormat)
	c.Output.Color = lowerOr(c.Output.Color, defaultColor)
}

func (c *Config) normalizeExec() error {
	c.Exec.Missing = lowerOr(c.Exec.Missing, defaultMissing)
	if strings.TrimSpace(c.Exec.LockPath) == "" {
		c.Exec.LockPath = defaultLockPath
	}
	var err error
	if c.Exec.LockPath, err = expandPath(strings.TrimSpace(c.Exec.LockPath)); err != nil {
		return fmt.Errorf("exec.lock_path: %w", err)
	}
	return nil
}

// Normalize re-applies defaults and canonical casing, for callers that edit
// a loaded Config (for example from command-line flags).
func (c *Config) Normalize() error {
	return c.normalize()
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
