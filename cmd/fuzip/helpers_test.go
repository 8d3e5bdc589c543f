package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"fuzip/internal/testsupport"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// fixtureDirs creates the two input directories used by most tests.
func fixtureDirs(t *testing.T) (string, string) {
	t.Helper()
	base := t.TempDir()
	left := filepath.Join(base, "left")
	right := filepath.Join(base, "right")
	testsupport.WriteFiles(t, left, "alpha.txt", "beta.txt")
	testsupport.WriteFiles(t, right, "alpha.mkv", "betta.mkv", "gamma.mkv")
	return left, right
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
