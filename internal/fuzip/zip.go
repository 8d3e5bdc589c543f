package fuzip

import (
	"log/slog"
	"time"
)

// Option customizes a Zip call.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes orientation and timing diagnostics to logger at debug
// level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Zip pairs lefts with rights so that the total edit distance between paired
// keys is minimal and returns the resulting records in left/right order.
// The returned Sequence yields exactly max(len(lefts), len(rights)) records.
//
// Zip panics if either side is empty.
func Zip[K comparable, T Keyed[K]](lefts, rights []T, opts ...Option) *Sequence[T] {
	if len(lefts) == 0 {
		panic("fuzip: lefts empty")
	}
	if len(rights) == 0 {
		panic("fuzip: rights empty")
	}
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With(slog.String("component", "fuzip"))

	rows, cols, swapped := orient(lefts, rights)
	if swapped {
		logger.Debug("swapping lefts and rights",
			slog.Int("lefts", len(lefts)),
			slog.Int("rights", len(rights)),
		)
	}

	start := time.Now()
	m := BuildMatrix(keys[K](rows), keys[K](cols))
	logger.Debug("built cost matrix",
		slog.Int("rows", m.Rows()),
		slog.Int("cols", m.Cols()),
		slog.Duration("elapsed", time.Since(start)),
	)

	start = time.Now()
	total, assignment := Solve(m)
	logger.Debug("solved assignment",
		slog.Int64("total_distance", total),
		slog.Duration("elapsed", time.Since(start)),
	)

	return newSequence(rows, cols, m, assignment, swapped)
}

// ZipStrings is Zip for plain strings scored byte by byte.
func ZipStrings(lefts, rights []string, opts ...Option) *Sequence[Text] {
	return Zip[byte](Texts(lefts...), Texts(rights...), opts...)
}

func keys[K comparable, T Keyed[K]](items []T) [][]K {
	out := make([][]K, len(items))
	for i, item := range items {
		out[i] = item.Key()
	}
	return out
}
