package fuzip

import (
	"bytes"
	"go/parser"
	"go/token"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLoggerReportsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	seq := ZipStrings([]string{"abc", "abd"}, []string{"abc"}, WithLogger(logger))
	require.Equal(t, 2, seq.Len())

	out := buf.String()
	require.Contains(t, out, "component=fuzip")
	require.Contains(t, out, "swapping lefts and rights")
	require.Contains(t, out, "built cost matrix")
	require.Contains(t, out, "total_distance=0")
}

func TestWithNilLoggerKeepsDiscard(t *testing.T) {
	seq := ZipStrings([]string{"a"}, []string{"a"}, WithLogger(nil))
	require.Equal(t, 1, seq.Len())
}

func TestEngineImportsNoInternalPackages(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err, name)
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			require.NoError(t, err)
			require.False(t, strings.HasPrefix(path, "fuzip/"), "%s imports %s", name, path)
		}
	}
}
