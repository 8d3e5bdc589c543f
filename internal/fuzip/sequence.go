package fuzip

import "iter"

// Sequence replays the records of one Zip call in order: every solved pair
// first, then every straggler. It is finite and single-pass; once exhausted
// Next keeps reporting false. A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	records []Record[T]
	pos     int
	total   int64
}

// newSequence lays out the records for a solved assignment. rows and cols are
// in matrix orientation; swapped restores the caller's left/right order.
func newSequence[T any](rows, cols []T, m *Matrix, assignment []int, swapped bool) *Sequence[T] {
	rowSlot, colSlot := 0, 1
	if swapped {
		rowSlot, colSlot = 1, 0
	}

	seq := &Sequence[T]{records: make([]Record[T], 0, len(cols))}
	consumed := make([]bool, len(cols))
	for i, j := range assignment {
		if consumed[j] {
			panic("fuzip: assignment reuses a column")
		}
		consumed[j] = true
		var pair [Width]T
		pair[rowSlot] = rows[i]
		pair[colSlot] = cols[j]
		w := m.At(i, j)
		seq.total += w
		seq.records = append(seq.records, pairRecord(pair[0], pair[1], w))
	}
	for j, done := range consumed {
		if !done {
			seq.records = append(seq.records, stragglerRecord(cols[j], colSlot))
		}
	}
	return seq
}

// Next returns the next record, or false once the sequence is exhausted.
func (s *Sequence[T]) Next() (Record[T], bool) {
	if s.pos >= len(s.records) {
		var zero Record[T]
		return zero, false
	}
	r := s.records[s.pos]
	s.pos++
	return r, true
}

// Len returns the total number of records, which equals the size of the
// larger input.
func (s *Sequence[T]) Len() int { return len(s.records) }

// Remaining returns how many records Next has yet to produce.
func (s *Sequence[T]) Remaining() int { return len(s.records) - s.pos }

// TotalDistance returns the summed distance of all complete records.
func (s *Sequence[T]) TotalDistance() int64 { return s.total }

// All yields the remaining records, advancing the sequence as it goes.
// Breaking out of the loop leaves the rest available to Next.
func (s *Sequence[T]) All() iter.Seq[Record[T]] {
	return func(yield func(Record[T]) bool) {
		for {
			r, ok := s.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Collect drains the remaining records into a slice.
func (s *Sequence[T]) Collect() []Record[T] {
	out := make([]Record[T], 0, s.Remaining())
	for r := range s.All() {
		out = append(out, r)
	}
	return out
}
