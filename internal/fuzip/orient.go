package fuzip

// orient returns the shorter-or-equal side as rows. swapped reports whether
// left and right traded places to get there.
func orient[T any](left, right []T) (rows, cols []T, swapped bool) {
	if len(left) > len(right) {
		return right, left, true
	}
	return left, right, false
}
