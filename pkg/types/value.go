/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: value.go
Description: Scalar cell values for statust tables. A Value is a small tagged union
over absent, boolean, integer, float and text cells, with per-kind equality and display.
*/

package types

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// IsNumeric reports whether the kind aggregates as a number
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// MarshalText lets kinds appear by name in JSON reports
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Value is one typed cell. The zero Value is Absent.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float32
	s    string
}

// Absent returns the empty value
func Absent() Value { return Value{} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer. Callers keep it inside the int32 range.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a single precision float
func Float(f float32) Value { return Value{kind: KindFloat, f: f} }

// Text wraps a string
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind returns the variant of v
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v holds no value
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsBool returns the boolean payload and whether v is a boolean
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload and whether v is an integer
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload and whether v is a float
func (v Value) AsFloat() (float32, bool) { return v.f, v.kind == KindFloat }

// AsText returns the text payload and whether v is text
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// Numeric projects v onto a float32. Integers are converted, floats pass
// through and every other kind becomes NaN.
func (v Value) Numeric() float32 {
	switch v.kind {
	case KindInt:
		return float32(v.i)
	case KindFloat:
		return v.f
	default:
		return float32(math.NaN())
	}
}

// Equal compares kind and payload
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindText:
		return v.s == other.s
	default:
		return true
	}
}

// String renders the value the way reports and table prints show it
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return FormatFloat(v.f)
	case KindText:
		return v.s
	default:
		return "None"
	}
}

// FormatFloat prints the shortest decimal that round-trips as a float32
func FormatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
