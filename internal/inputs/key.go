package inputs

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"fuzip/internal/config"
)

// Unit is the granularity of one edit when comparing keys.
type Unit int

const (
	UnitByte Unit = iota
	UnitRune
	UnitGrapheme
)

// String returns the configuration name of the unit.
func (u Unit) String() string {
	switch u {
	case UnitRune:
		return config.KeyUnitRune
	case UnitGrapheme:
		return config.KeyUnitGrapheme
	default:
		return config.KeyUnitByte
	}
}

// ParseUnit converts a match.key_unit value into a Unit.
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case config.KeyUnitByte, "":
		return UnitByte, nil
	case config.KeyUnitRune:
		return UnitRune, nil
	case config.KeyUnitGrapheme:
		return UnitGrapheme, nil
	default:
		return UnitByte, fmt.Errorf("unsupported key unit %q", value)
	}
}

// KeyOptions controls how a file name becomes a comparison key.
type KeyOptions struct {
	Unit           Unit
	FoldCase       bool
	StripExtension bool
}

// KeyOptionsFromConfig builds KeyOptions from the [match] section.
func KeyOptionsFromConfig(m config.Match) (KeyOptions, error) {
	unit, err := ParseUnit(m.KeyUnit)
	if err != nil {
		return KeyOptions{}, fmt.Errorf("match.key_unit: %w", err)
	}
	return KeyOptions{Unit: unit, FoldCase: m.FoldCase, StripExtension: m.StripExtension}, nil
}

// Segment splits name into key elements of the configured unit. Rune and
// grapheme keys are NFC-normalized first; FoldCase also applies Unicode case
// folding. Byte keys without folding are left exactly as named on disk.
func (o KeyOptions) Segment(name string) []string {
	if o.FoldCase {
		name = cases.Fold().String(norm.NFC.String(name))
	} else if o.Unit != UnitByte {
		name = norm.NFC.String(name)
	}

	switch o.Unit {
	case UnitRune:
		out := make([]string, 0, len(name))
		for _, r := range name {
			out = append(out, string(r))
		}
		return out
	case UnitGrapheme:
		out := make([]string, 0, len(name))
		state := -1
		rest := name
		var cluster string
		for len(rest) > 0 {
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			out = append(out, cluster)
		}
		return out
	default:
		out := make([]string, len(name))
		for i := 0; i < len(name); i++ {
			out[i] = name[i : i+1]
		}
		return out
	}
}
