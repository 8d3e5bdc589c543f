package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"fuzip/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// WithOutputFormat sets output.format.
func WithOutputFormat(format string) ConfigOption {
	return func(cfg *config.Config) { cfg.Output.Format = format }
}

// WithCompleteOnly sets output.complete_only.
func WithCompleteOnly() ConfigOption {
	return func(cfg *config.Config) { cfg.Output.CompleteOnly = true }
}

// WithMissing sets exec.missing.
func WithMissing(policy string) ConfigOption {
	return func(cfg *config.Config) { cfg.Exec.Missing = policy }
}

// NewConfig produces a default config whose exec lock lives in a per-test
// temp directory, with opts applied on top.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Exec.LockPath = filepath.Join(t.TempDir(), "exec.lock")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
}
