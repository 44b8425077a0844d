package textproc

import (
	"strconv"
	"strings"
)

// Kind declares the target type of a coerced field.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindBool
	KindIP
	KindMAC
	KindDurationShort
	KindDurationLong
)

// Value is the tagged result of coercing one raw field. Only the member
// matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Text  string
}

// FieldSpec declares how one raw field is coerced: the source field
// name, the target kind, and the fallback that replaces unparsable
// input. The fallback is part of each field's contract; it is commonly
// the -1/-1.0 sentinel but 0 for fields where absence means zero.
type FieldSpec struct {
	Name          string
	Kind          Kind
	IntFallback   int64
	FloatFallback float64
	// TrueToken is the exact raw text that makes a KindBool field true.
	TrueToken string
}

// IntOr parses s as a base-10 integer, returning fallback when the text
// does not parse.
func IntOr(s string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// FloatOr parses s as a float, returning fallback when the text does
// not parse.
func FloatOr(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return f
}

// BoolIs reports whether the raw text equals the expected token. It
// never fails; anything but an exact match is false.
func BoolIs(s, token string) bool {
	return s == token
}

// Apply coerces the named fields of a raw record according to their
// specs. It returns the coerced values keyed by field name together
// with the number of fields that fell back to their declared default,
// so callers can account for degraded records.
func Apply(specs []FieldSpec, record map[string]string) (map[string]Value, int) {
	out := make(map[string]Value, len(specs))
	fallbacks := 0

	for _, spec := range specs {
		raw := record[spec.Name]
		v := Value{Kind: spec.Kind}

		switch spec.Kind {
		case KindInt:
			n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				n = spec.IntFallback
				fallbacks++
			}
			v.Int = n
		case KindFloat:
			f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				f = spec.FloatFallback
				fallbacks++
			}
			v.Float = f
		case KindBool:
			v.Bool = BoolIs(raw, spec.TrueToken)
		case KindDurationShort:
			v.Int = ParseUptime(raw, true)
		case KindDurationLong:
			v.Int = ParseUptime(raw, false)
		default:
			v.Text = raw
		}

		out[spec.Name] = v
	}

	return out, fallbacks
}
