// Package value implements the tagged-union runtime value used by the
// expression evaluator: a typed, nullable scalar with the arithmetic,
// comparison, and coercion rules the filter expression grammar needs.
package value

import (
	"fmt"
	"math/big"
	"time"

	"github.com/delkyd/gsf/guid"
)

// Type identifies which payload a Value carries.
type Type int

const (
	Boolean Type = iota
	Int32
	Int64
	Decimal
	Single
	Double
	String
	DateTime
	Guid
	Undefined
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "Boolean"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Decimal:
		return "Decimal"
	case Single:
		return "Single"
	case Double:
		return "Double"
	case String:
		return "String"
	case DateTime:
		return "DateTime"
	case Guid:
		return "Guid"
	default:
		return "Undefined"
	}
}

// isNumeric reports whether t participates in the numeric widening join.
func (t Type) isNumeric() bool {
	switch t {
	case Boolean, Int32, Int64, Decimal, Single, Double:
		return true
	default:
		return false
	}
}

// Value is a typed, nullable scalar. The zero Value carries the
// Boolean tag with no payload and is not null; build Values with the
// New* constructors or Null.
type Value struct {
	typ  Type
	null bool
	v    interface{}
}

// Type returns the Value's type tag, regardless of nullness.
func (v Value) Type() Type { return v.typ }

// IsNull reports whether the Value carries no payload.
func (v Value) IsNull() bool { return v.null }

// Null returns a null Value of the given type. A typed null
// participates in widening/comparison the same way a non-null Value of
// that type would, but every operation involving it yields a null
// result per spec null-propagation.
func Null(t Type) Value { return Value{typ: t, null: true} }

func NewBoolean(b bool) Value       { return Value{typ: Boolean, v: b} }
func NewInt32(i int32) Value        { return Value{typ: Int32, v: i} }
func NewInt64(i int64) Value        { return Value{typ: Int64, v: i} }
func NewDecimal(d *big.Float) Value { return Value{typ: Decimal, v: d} }
func NewSingle(f float32) Value     { return Value{typ: Single, v: f} }
func NewDouble(f float64) Value     { return Value{typ: Double, v: f} }
func NewString(s string) Value      { return Value{typ: String, v: s} }
func NewDateTime(t time.Time) Value { return Value{typ: DateTime, v: t} }
func NewGuid(g guid.Guid) Value     { return Value{typ: Guid, v: g} }

// Bool returns the Boolean payload and true, or false/false if v is
// not a non-null Boolean.
func (v Value) Bool() (bool, bool) {
	if v.null || v.typ != Boolean {
		return false, false
	}
	return v.v.(bool), true
}

func (v Value) Int32() (int32, bool) {
	if v.null || v.typ != Int32 {
		return 0, false
	}
	return v.v.(int32), true
}

func (v Value) Int64() (int64, bool) {
	if v.null || v.typ != Int64 {
		return 0, false
	}
	return v.v.(int64), true
}

func (v Value) DecimalValue() (*big.Float, bool) {
	if v.null || v.typ != Decimal {
		return nil, false
	}
	return v.v.(*big.Float), true
}

func (v Value) Single() (float32, bool) {
	if v.null || v.typ != Single {
		return 0, false
	}
	return v.v.(float32), true
}

func (v Value) Double() (float64, bool) {
	if v.null || v.typ != Double {
		return 0, false
	}
	return v.v.(float64), true
}

func (v Value) StringValue() (string, bool) {
	if v.null || v.typ != String {
		return "", false
	}
	return v.v.(string), true
}

func (v Value) DateTimeValue() (time.Time, bool) {
	if v.null || v.typ != DateTime {
		return time.Time{}, false
	}
	return v.v.(time.Time), true
}

func (v Value) GuidValue() (guid.Guid, bool) {
	if v.null || v.typ != Guid {
		return guid.Zero, false
	}
	return v.v.(guid.Guid), true
}

// AsFloat64 widens any numeric, non-null Value to a float64. It is used
// internally for the numeric operators after the widening join has
// picked a result Type.
func (v Value) AsFloat64() (float64, bool) {
	if v.null {
		return 0, false
	}
	switch v.typ {
	case Boolean:
		if v.v.(bool) {
			return 1, true
		}
		return 0, true
	case Int32:
		return float64(v.v.(int32)), true
	case Int64:
		return float64(v.v.(int64)), true
	case Single:
		return float64(v.v.(float32)), true
	case Double:
		return v.v.(float64), true
	case Decimal:
		f, _ := v.v.(*big.Float).Float64()
		return f, true
	default:
		return 0, false
	}
}

// AsInt64 widens any integral, non-null Value to an int64.
func (v Value) AsInt64() (int64, bool) {
	if v.null {
		return 0, false
	}
	switch v.typ {
	case Boolean:
		if v.v.(bool) {
			return 1, true
		}
		return 0, true
	case Int32:
		return int64(v.v.(int32)), true
	case Int64:
		return v.v.(int64), true
	default:
		return 0, false
	}
}

// String renders the Value as text. It is used for diagnostics and is
// also the result of Convert(x, 'String').
func (v Value) String() string {
	if v.null {
		return "NULL"
	}
	switch v.typ {
	case Boolean:
		return fmt.Sprintf("%v", v.v.(bool))
	case Int32:
		return fmt.Sprintf("%d", v.v.(int32))
	case Int64:
		return fmt.Sprintf("%d", v.v.(int64))
	case Single:
		return fmt.Sprintf("%v", v.v.(float32))
	case Double:
		return fmt.Sprintf("%v", v.v.(float64))
	case Decimal:
		return v.v.(*big.Float).Text('f', -1)
	case String:
		return v.v.(string)
	case DateTime:
		return v.v.(time.Time).Format(time.RFC3339Nano)
	case Guid:
		return v.v.(guid.Guid).String()
	default:
		return "Undefined"
	}
}
