package fuzip

// Keyed is implemented by every element that can be zipped.
//
// Key returns the sequence used for distance scoring. It must be
// deterministic for the lifetime of a Zip call. Display returns the form
// written to output.
type Keyed[K comparable] interface {
	Key() []K
	Display() string
}

// Text adapts a plain string to Keyed by scoring its bytes.
type Text string

// Key returns the raw bytes of the string.
func (t Text) Key() []byte { return []byte(t) }

// Display returns the string unchanged.
func (t Text) Display() string { return string(t) }

// Texts converts values to a Text slice.
func Texts(values ...string) []Text {
	out := make([]Text, len(values))
	for i, v := range values {
		out[i] = Text(v)
	}
	return out
}
