package fuzip

import (
	"fmt"
	"math"
)

// Solve finds the minimum-cost assignment of every row of m to a distinct
// column using the Hungarian algorithm with row and column potentials.
// assignment[i] is the column chosen for row i and total is the sum of the
// chosen weights. Among several optimal assignments the one returned is
// deterministic for a given matrix but otherwise unspecified.
//
// Solve panics when m has more rows than columns or when its weights are
// large enough for the potentials to overflow int64.
func Solve(m *Matrix) (total int64, assignment []int) {
	n, cols := m.Rows(), m.Cols()
	if n > cols {
		panic(fmt.Sprintf("fuzip: assignment needs rows <= cols, got %d > %d", n, cols))
	}
	if limit := math.MaxInt64 / int64(4*(n+cols+1)); m.Max() > limit {
		panic(fmt.Sprintf("fuzip: weight %d exceeds solver limit %d", m.Max(), limit))
	}

	// Index 0 is a virtual column/row; real indices are 1-based.
	u := make([]int64, n+1)
	v := make([]int64, cols+1)
	p := make([]int, cols+1) // p[j] = row matched to column j, 0 if free
	way := make([]int, cols+1)
	minv := make([]int64, cols+1)
	used := make([]bool, cols+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.MaxInt64
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := int64(math.MaxInt64)
			j1 := 0
			for j := 1; j <= cols; j++ {
				if used[j] {
					continue
				}
				cur := m.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= cols; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		// Flip the augmenting path.
		for {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
			if j0 == 0 {
				break
			}
		}
	}

	assignment = make([]int, n)
	for j := 1; j <= cols; j++ {
		if p[j] > 0 {
			assignment[p[j]-1] = j - 1
		}
	}
	for i, j := range assignment {
		total += m.At(i, j)
	}
	return total, assignment
}
