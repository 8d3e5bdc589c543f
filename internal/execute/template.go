package execute

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fuzip/internal/config"
	"fuzip/internal/fuzip"
)

// ErrSkipped is returned by Render when the missing policy skips a record.
var ErrSkipped = errors.New("record skipped")

// MissingPolicy decides how a placeholder for an absent slot is rendered.
type MissingPolicy int

const (
	MissingError MissingPolicy = iota
	MissingSkip
	MissingEmpty
)

// ParseMissingPolicy converts an exec.missing value.
func ParseMissingPolicy(value string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case config.MissingError, "":
		return MissingError, nil
	case config.MissingSkip:
		return MissingSkip, nil
	case config.MissingEmpty:
		return MissingEmpty, nil
	default:
		return MissingError, fmt.Errorf("unsupported missing policy %q", value)
	}
}

// segment is a literal run of text or, when slot >= 0, a placeholder.
type segment struct {
	literal string
	slot    int
}

// Template is a parsed command line.
type Template struct {
	args    [][]segment
	missing MissingPolicy
}

// ParseTemplate parses argv. "{N}" is replaced with the display of slot N
// (1-based); "{{" and "}}" produce literal braces. Any other brace is kept
// as written.
func ParseTemplate(argv []string, missing MissingPolicy) (*Template, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, errors.New("command template is empty")
	}
	t := &Template{args: make([][]segment, 0, len(argv)), missing: missing}
	for i, arg := range argv {
		segs, err := parseArg(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", i, arg, err)
		}
		t.args = append(t.args, segs)
	}
	return t, nil
}

func parseArg(arg string) ([]segment, error) {
	var segs []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String(), slot: -1})
			lit.Reset()
		}
	}
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch {
		case c == '{' && i+1 < len(arg) && arg[i+1] == '{':
			lit.WriteByte('{')
			i++
		case c == '}' && i+1 < len(arg) && arg[i+1] == '}':
			lit.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(arg[i+1:], '}')
			if end <= 0 {
				lit.WriteByte(c)
				continue
			}
			n, err := strconv.Atoi(arg[i+1 : i+1+end])
			if err != nil {
				lit.WriteByte(c)
				continue
			}
			if n < 1 || n > fuzip.Width {
				return nil, fmt.Errorf("placeholder {%d} out of range 1..%d", n, fuzip.Width)
			}
			flush()
			segs = append(segs, segment{slot: n - 1})
			i += end + 1
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	if len(segs) == 0 {
		segs = append(segs, segment{slot: -1})
	}
	return segs, nil
}

// Placeholders reports which slots the template references.
func (t *Template) Placeholders() [fuzip.Width]bool {
	var used [fuzip.Width]bool
	for _, segs := range t.args {
		for _, s := range segs {
			if s.slot >= 0 {
				used[s.slot] = true
			}
		}
	}
	return used
}

type displayer interface {
	Display() string
}

// Render substitutes the record's displays into the template. With
// MissingError an absent slot yields an error wrapping fuzip.ErrNoMatch;
// with MissingSkip it yields ErrSkipped.
func Render[T displayer](t *Template, rec fuzip.Record[T]) ([]string, error) {
	argv := make([]string, 0, len(t.args))
	for _, segs := range t.args {
		var b strings.Builder
		for _, s := range segs {
			if s.slot < 0 {
				b.WriteString(s.literal)
				continue
			}
			value, err := rec.Get(s.slot)
			if err != nil {
				if !errors.Is(err, fuzip.ErrNoMatch) {
					return nil, err
				}
				switch t.missing {
				case MissingSkip:
					return nil, ErrSkipped
				case MissingEmpty:
					continue
				default:
					return nil, fmt.Errorf("placeholder {%d}: %w", s.slot+1, err)
				}
			}
			b.WriteString(value.Display())
		}
		argv = append(argv, b.String())
	}
	return argv, nil
}
