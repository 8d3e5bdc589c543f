package fuzip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func byteKeys(values ...string) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte(v)
	}
	return out
}

func TestBuildMatrix(t *testing.T) {
	m := BuildMatrix(byteKeys("ab", "bb"), byteKeys("aa", "bb", "cc"))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	want := [][]int64{
		{1, 1, 2},
		{2, 0, 2},
	}
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], m.At(i, j), "cell (%d,%d)", i, j)
		}
	}
	require.Equal(t, int64(2), m.Max())
}

func TestBuildMatrixPreconditions(t *testing.T) {
	require.Panics(t, func() { BuildMatrix(byteKeys(), byteKeys("a")) })
	require.Panics(t, func() { BuildMatrix(byteKeys("a"), byteKeys()) })
	require.Panics(t, func() { BuildMatrix(byteKeys("a", "b"), byteKeys("a")) })
}

func TestMatrixFromRowsRejectsRagged(t *testing.T) {
	require.Panics(t, func() { MatrixFromRows([][]int64{{1, 2}, {3}}) })
	require.Panics(t, func() { MatrixFromRows(nil) })
}

func TestOrient(t *testing.T) {
	rows, cols, swapped := orient([]int{1, 2, 3}, []int{4, 5})
	require.True(t, swapped)
	require.Equal(t, []int{4, 5}, rows)
	require.Equal(t, []int{1, 2, 3}, cols)

	rows, cols, swapped = orient([]int{1, 2}, []int{3, 4})
	require.False(t, swapped)
	require.Equal(t, []int{1, 2}, rows)
	require.Equal(t, []int{3, 4}, cols)
}
