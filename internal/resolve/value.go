package resolve

import "strconv"

// Value is a tagged variant over the shapes the literal sublanguage can
// produce. Only the field selected by Kind is meaningful. Values are
// immutable once returned by the resolver.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Seq   []Value
	Map   []MapEntry
}

// MapEntry is one key/value pair of a Mapping, in source order.
type MapEntry struct {
	Key   string
	Value Value
}

// StringVal returns a string Value.
func StringVal(s string) Value { return Value{Kind: KindString, Str: s} }

// IntVal returns an integer Value.
func IntVal(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatVal returns a float Value.
func FloatVal(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// BoolVal returns a boolean Value.
func BoolVal(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NoneVal returns the None Value.
func NoneVal() Value { return Value{Kind: KindNone} }

// SequenceVal returns a sequence Value over the given elements.
func SequenceVal(elems ...Value) Value { return Value{Kind: KindSequence, Seq: elems} }

// MappingVal returns a mapping Value over the given entries.
func MappingVal(entries ...MapEntry) Value { return Value{Kind: KindMapping, Map: entries} }

// IsScalar returns true for string, integer, float, and boolean values.
// None is not a scalar: it has no declarative rendering.
func (v Value) IsScalar() bool {
	switch v.Kind {
	case KindString, KindInt, KindFloat, KindBool:
		return true
	default:
		return false
	}
}

// Render returns the declarative-format text for a scalar value. Booleans
// render as True/False, the dialect setuptools itself reads back.
func (v Value) Render() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// Interface converts the value to plain Go data: string, int64, float64,
// bool, nil, []any, or map-preserving [] of pairs flattened to map[string]any.
func (v Value) Interface() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindNone:
		return nil
	case KindSequence:
		out := make([]any, len(v.Seq))
		for i, e := range v.Seq {
			out[i] = e.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.Map))
		for _, e := range v.Map {
			out[e.Key] = e.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// ContainsNone reports whether the value is None or has None anywhere inside
// a sequence or mapping.
func (v Value) ContainsNone() bool {
	switch v.Kind {
	case KindNone:
		return true
	case KindSequence:
		for _, e := range v.Seq {
			if e.ContainsNone() {
				return true
			}
		}
	case KindMapping:
		for _, e := range v.Map {
			if e.Value.ContainsNone() {
				return true
			}
		}
	}

	return false
}
