package sqlpart

import (
	"strconv"
)

// Kind is a type tag of a Value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindText
	KindInt
	KindFloat
	KindBool
)

var kindNames = [...]string{
	KindNull:  "null",
	KindText:  "text",
	KindInt:   "integer",
	KindFloat: "number",
	KindBool:  "boolean",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a scalar to be bound to a query placeholder.
//
// The zero Value is NULL.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// Null returns a NULL value.
func Null() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the type tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the string held by v and true if v is a text value.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindText }

// Int returns the integer held by v and true if v is an integer value.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the number held by v. Integers are converted.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// Bool returns the boolean held by v and true if v is a boolean value.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Arg returns v as a database/sql driver value:
// nil, string, int64, float64 or bool.
func (v Value) Arg() interface{} {
	switch v.kind {
	case KindText:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	}
	return nil
}

// String formats v for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return strconv.Quote(v.s)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return "NULL"
}

// ParseValue converts a raw string, typically a query parameter,
// into a Value of the given kind.
func ParseValue(raw string, kind Kind) (Value, error) {
	switch kind {
	case KindText:
		return Text(raw), nil
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case KindNull:
		if raw == "" || raw == "null" {
			return Null(), nil
		}
	}
	return Value{}, strconv.ErrSyntax
}
