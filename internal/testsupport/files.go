package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFiles creates dir and one small file per name inside it. Each file
// holds its own name.
func WriteFiles(t testing.TB, dir string, names ...string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// IsolateHome points HOME at a fresh temp dir so default config and state
// paths resolve inside the test, and pins FUZIP_LOG to error.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("FUZIP_LOG", "error")
	return home
}
