package fuzip

// Distance returns the generalized Damerau-Levenshtein distance between a and
// b: the minimum number of single-element insertions, deletions,
// substitutions and adjacent transpositions needed to turn a into b.
//
// Unlike the optimal string alignment variant, a transposed pair may be
// edited again afterwards, so Distance("ca", "abc") is 2, not 3.
//
// Time complexity: O(len(a) * len(b)).
// Space complexity: O(len(a) * len(b)) plus one entry per distinct element of a.
func Distance[K comparable](a, b []K) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// d is a (la+2) x (lb+2) table; row/column 0 hold the sentinel maxDist
	// and row/column 1 the distance from the empty prefix.
	width := lb + 2
	d := make([]int, (la+2)*width)
	at := func(i, j int) *int { return &d[i*width+j] }

	maxDist := la + lb
	*at(0, 0) = maxDist
	for i := 0; i <= la; i++ {
		*at(i+1, 0) = maxDist
		*at(i+1, 1) = i
	}
	for j := 0; j <= lb; j++ {
		*at(0, j+1) = maxDist
		*at(1, j+1) = j
	}

	// lastRow records, per element, the last row of a it appeared on.
	lastRow := make(map[K]int, la)
	for i := 1; i <= la; i++ {
		lastCol := 0
		for j := 1; j <= lb; j++ {
			k := lastRow[b[j-1]]
			l := lastCol
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
				lastCol = j
			}
			*at(i+1, j+1) = min(
				*at(i, j)+cost,              // substitution
				*at(i+1, j)+1,               // insertion
				*at(i, j+1)+1,               // deletion
				*at(k, l)+(i-k-1)+1+(j-l-1), // transposition
			)
		}
		lastRow[a[i-1]] = i
	}
	return *at(la+1, lb+1)
}
