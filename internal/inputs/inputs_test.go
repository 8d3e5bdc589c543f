package inputs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func names(paths []*Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.Name()
	}
	return out
}

func TestListFiltersEntries(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "a.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	touch(t, filepath.Join(dir, "subdir", "nested.txt"))
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "link-file")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "subdir"), filepath.Join(dir, "link-dir")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "link-dangling")))
	require.NoError(t, unix.Mkfifo(filepath.Join(dir, "pipe"), 0o644))

	paths, err := List(dir, KeyOptions{StripExtension: true})
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "b.txt", "link-file"}, names(paths))
	require.Equal(t, filepath.Join(dir, "a.txt"), paths[0].Display())
	require.Equal(t, []string{"a"}, paths[0].Key())
}

func TestListErrors(t *testing.T) {
	empty := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(empty, "only-dir"), 0o755))
	_, err := List(empty, KeyOptions{})
	require.True(t, errors.Is(err, ErrEmpty))
	require.Contains(t, err.Error(), empty)

	_, err = List(filepath.Join(empty, "absent"), KeyOptions{})
	require.ErrorContains(t, err, "does not exist")

	file := filepath.Join(empty, "file")
	touch(t, file)
	_, err = List(file, KeyOptions{})
	require.ErrorContains(t, err, "not a directory")
}

func TestCheckDirPermissions(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })
	require.ErrorContains(t, CheckDir(dir), "not readable")
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		path  string
		strip bool
		want  string
	}{
		{"/x/episode01.mkv", true, "episode01"},
		{"/x/episode01.mkv", false, "episode01.mkv"},
		{"/x/archive.tar.gz", true, "archive.tar"},
		{"/x/.bashrc", true, ".bashrc"},
		{"/x/README", true, "README"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, keyName(tt.path, tt.strip), tt.path)
	}
}

func TestSegmentUnits(t *testing.T) {
	// "é" written as e + combining acute (two runes, one grapheme).
	decomposed := "Cafe\u0301"

	bytes := KeyOptions{Unit: UnitByte}.Segment(decomposed)
	require.Len(t, bytes, len(decomposed))
	require.Equal(t, decomposed, strings.Join(bytes, ""))

	// NFC composes the accent into a single rune.
	runes := KeyOptions{Unit: UnitRune}.Segment(decomposed)
	require.Equal(t, []string{"C", "a", "f", "\u00e9"}, runes)

	graphemes := KeyOptions{Unit: UnitGrapheme}.Segment("\U0001F1E9\U0001F1EAx")
	require.Equal(t, []string{"\U0001F1E9\U0001F1EA", "x"}, graphemes)

	folded := KeyOptions{Unit: UnitRune, FoldCase: true}.Segment("ABC")
	require.Equal(t, []string{"a", "b", "c"}, folded)

	foldedBytes := KeyOptions{Unit: UnitByte, FoldCase: true}.Segment("Ab")
	require.Equal(t, []string{"a", "b"}, foldedBytes)
}

func TestParseUnit(t *testing.T) {
	for _, name := range []string{"byte", "rune", "grapheme"} {
		unit, err := ParseUnit(name)
		require.NoError(t, err)
		require.Equal(t, name, unit.String())
	}
	unit, err := ParseUnit("")
	require.NoError(t, err)
	require.Equal(t, UnitByte, unit)

	_, err = ParseUnit("word")
	require.Error(t, err)
}
