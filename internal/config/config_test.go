package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"fuzip/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "fuzip", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Match.KeyUnit != config.KeyUnitByte {
		t.Fatalf("unexpected key unit: %q", cfg.Match.KeyUnit)
	}
	if !cfg.Match.StripExtension {
		t.Fatal("expected strip_extension enabled by default")
	}
	if cfg.Output.Format != config.OutputPlain || cfg.Output.Color != config.ColorAuto {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Exec.Missing != config.MissingError {
		t.Fatalf("unexpected missing policy: %q", cfg.Exec.Missing)
	}
	if want := filepath.Join(tempHome, ".local", "state", "fuzip", "exec.lock"); cfg.Exec.LockPath != want {
		t.Fatalf("unexpected lock path: got %q want %q", cfg.Exec.LockPath, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "fuzip.toml")

	type payload struct {
		Match struct {
			KeyUnit  string `toml:"key_unit"`
			FoldCase bool   `toml:"fold_case"`
		} `toml:"match"`
		Output struct {
			Format string `toml:"format"`
		} `toml:"output"`
		Exec struct {
			Missing string `toml:"missing"`
		} `toml:"exec"`
	}
	custom := payload{}
	custom.Match.KeyUnit = " Grapheme "
	custom.Match.FoldCase = true
	custom.Output.Format = "TABLE"
	custom.Exec.Missing = "skip"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Match.KeyUnit != config.KeyUnitGrapheme {
		t.Fatalf("expected normalized key unit, got %q", cfg.Match.KeyUnit)
	}
	if !cfg.Match.FoldCase {
		t.Fatal("expected fold_case from file")
	}
	if cfg.Output.Format != config.OutputTable {
		t.Fatalf("expected normalized output format, got %q", cfg.Output.Format)
	}
	if cfg.Exec.Missing != config.MissingSkip {
		t.Fatalf("expected missing policy from file, got %q", cfg.Exec.Missing)
	}
	// Untouched sections keep their defaults.
	if !cfg.Match.StripExtension || !cfg.Exec.Lock {
		t.Fatalf("expected defaults for unset keys, got %+v", cfg)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)
	if err := os.WriteFile("fuzip.toml", []byte("[output]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "fuzip.toml" {
		t.Fatalf("expected project config, got exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Output.Format != config.OutputJSON {
		t.Fatalf("expected json output, got %q", cfg.Output.Format)
	}
}

func TestEnvOverridesLogLevel(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "fuzip.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.LogEnvVar, "DEBUG")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected env override, got %q", cfg.Logging.Level)
	}
}

func TestLogFileExpandsHome(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "fuzip.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nfile = \"~/logs/fuzip.log\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(tempHome, "logs", "fuzip.log"); cfg.Logging.File != want {
		t.Fatalf("unexpected log file: got %q want %q", cfg.Logging.File, want)
	}

	cfg.Logging.File = ""
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if cfg.Logging.File != "" {
		t.Fatalf("empty log file should stay empty, got %q", cfg.Logging.File)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "absent.toml"), "does not exist"},
		{"directory", dir, "is a directory"},
		{"bad unit", write("unit.toml", "[match]\nkey_unit = \"word\"\n"), "match.key_unit"},
		{"bad format", write("format.toml", "[output]\nformat = \"csv\"\n"), "output.format"},
		{"bad color", write("color.toml", "[output]\ncolor = \"rainbow\"\n"), "output.color"},
		{"bad missing", write("missing.toml", "[exec]\nmissing = \"ignore\"\n"), "exec.missing"},
		{"bad level", write("level.toml", "[logging]\nlevel = \"loud\"\n"), "logging.level"},
		{"unknown key", write("unknown.toml", "[match]\nthreshold = 3\n"), "parse config"},
		{"syntax", write("syntax.toml", "[match\n"), "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSampleConfigLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	def := config.Default()
	if cfg.Match != def.Match || cfg.Output != def.Output || cfg.Exec.Missing != def.Exec.Missing {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "a", "b") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
