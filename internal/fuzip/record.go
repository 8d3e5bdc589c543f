package fuzip

import (
	"errors"
	"fmt"
	"strings"
)

// Width is the number of slots in every Record produced by Zip.
const Width = 2

var (
	// ErrNoMatch is returned when reading the absent slot of a straggler.
	ErrNoMatch = errors.New("no matching value")
	// ErrOutOfBounds is returned for a slot index outside [0, Width).
	ErrOutOfBounds = errors.New("index out of bounds")
)

// Record is one output row: a left and a right slot, either of which may be
// absent. Complete records carry the edit distance between both elements.
type Record[T any] struct {
	slots    [Width]T
	present  [Width]bool
	distance int64
}

func pairRecord[T any](left, right T, distance int64) Record[T] {
	return Record[T]{
		slots:    [Width]T{left, right},
		present:  [Width]bool{true, true},
		distance: distance,
	}
}

func stragglerRecord[T any](value T, slot int) Record[T] {
	var r Record[T]
	r.slots[slot] = value
	r.present[slot] = true
	r.distance = -1
	return r
}

// Get returns the element in slot index.
func (r Record[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= Width {
		return zero, ErrOutOfBounds
	}
	if !r.present[index] {
		return zero, ErrNoMatch
	}
	return r.slots[index], nil
}

// Width returns the number of slots.
func (r Record[T]) Width() int { return Width }

// Left returns the left element and whether it is present.
func (r Record[T]) Left() (T, bool) { return r.slots[0], r.present[0] }

// Right returns the right element and whether it is present.
func (r Record[T]) Right() (T, bool) { return r.slots[1], r.present[1] }

// Complete reports whether every slot holds an element.
func (r Record[T]) Complete() bool {
	for _, ok := range r.present {
		if !ok {
			return false
		}
	}
	return true
}

// Distance returns the edit distance of a complete record and -1 for a
// straggler.
func (r Record[T]) Distance() int64 { return r.distance }

// String joins the displays of the present slots with a single space.
// Elements that do not implement Display are formatted with fmt.Sprint.
func (r Record[T]) String() string {
	parts := make([]string, 0, Width)
	for i, ok := range r.present {
		if !ok {
			continue
		}
		if d, isDisplay := any(r.slots[i]).(interface{ Display() string }); isDisplay {
			parts = append(parts, d.Display())
		} else {
			parts = append(parts, fmt.Sprint(r.slots[i]))
		}
	}
	return strings.Join(parts, " ")
}
