package execute

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fuzip/internal/fuzip"
)

func records(t *testing.T, lefts, rights []string) []fuzip.Record[fuzip.Text] {
	t.Helper()
	return fuzip.ZipStrings(lefts, rights).Collect()
}

func TestParseTemplate(t *testing.T) {
	_, err := ParseTemplate(nil, MissingError)
	require.Error(t, err)

	_, err = ParseTemplate([]string{"echo", "{3}"}, MissingError)
	require.ErrorContains(t, err, "out of range")

	_, err = ParseTemplate([]string{"echo", "{0}"}, MissingError)
	require.Error(t, err)

	tmpl, err := ParseTemplate([]string{"cp", "{1}", "{2}"}, MissingError)
	require.NoError(t, err)
	require.Equal(t, [fuzip.Width]bool{true, true}, tmpl.Placeholders())

	tmpl, err = ParseTemplate([]string{"echo", "{x}", "{}"}, MissingError)
	require.NoError(t, err)
	require.Equal(t, [fuzip.Width]bool{}, tmpl.Placeholders())
}

func TestRenderComplete(t *testing.T) {
	recs := records(t, []string{"abc"}, []string{"abd"})
	require.Len(t, recs, 1)

	tmpl, err := ParseTemplate([]string{"diff", "{1}", "--label={2}.txt", "{{1}}", "", "{"}, MissingError)
	require.NoError(t, err)

	argv, err := Render(tmpl, recs[0])
	require.NoError(t, err)
	require.Equal(t, []string{"diff", "abc", "--label=abd.txt", "{1}", "", "{"}, argv)
}

func TestRenderMissingPolicies(t *testing.T) {
	recs := records(t, []string{"abc"}, []string{"abc", "zzzzzz"})
	require.Len(t, recs, 2)
	straggler := recs[1]
	require.False(t, straggler.Complete())

	argv := []string{"echo", "[{1}]", "{2}"}

	tmpl, err := ParseTemplate(argv, MissingError)
	require.NoError(t, err)
	_, err = Render(tmpl, straggler)
	require.ErrorIs(t, err, fuzip.ErrNoMatch)

	tmpl, err = ParseTemplate(argv, MissingSkip)
	require.NoError(t, err)
	_, err = Render(tmpl, straggler)
	require.True(t, errors.Is(err, ErrSkipped))

	tmpl, err = ParseTemplate(argv, MissingEmpty)
	require.NoError(t, err)
	out, err := Render(tmpl, straggler)
	require.NoError(t, err)
	require.Equal(t, []string{"echo", "[]", "zzzzzz"}, out)
}

func TestParseMissingPolicy(t *testing.T) {
	for value, want := range map[string]MissingPolicy{
		"":      MissingError,
		"error": MissingError,
		"Skip":  MissingSkip,
		"empty": MissingEmpty,
	} {
		got, err := ParseMissingPolicy(value)
		require.NoError(t, err, value)
		require.Equal(t, want, got, value)
	}
	_, err := ParseMissingPolicy("ignore")
	require.Error(t, err)
}

func TestCheckProgram(t *testing.T) {
	tmpl, err := ParseTemplate([]string{"sh", "-c", "true"}, MissingError)
	require.NoError(t, err)
	require.Equal(t, "sh", tmpl.Program())
	require.NoError(t, CheckProgram(tmpl))

	tmpl, err = ParseTemplate([]string{"fuzip-no-such-program-xyz", "{1}"}, MissingError)
	require.NoError(t, err)
	require.ErrorContains(t, CheckProgram(tmpl), "not found")

	tmpl, err = ParseTemplate([]string{"{1}", "--help"}, MissingError)
	require.NoError(t, err)
	require.Empty(t, tmpl.Program())
	require.NoError(t, CheckProgram(tmpl))
}
