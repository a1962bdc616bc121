package value

import (
	"math/big"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/delkyd/gsf/guid"
)

// Convert implements the Convert(expression, typeName) built-in. It
// never returns an error: an unconvertible source yields a typed null
// rather than an evaluation fault.
func Convert(v Value, typeName string) Value {
	target := normalizeTypeName(typeName)

	if v.IsNull() {
		return Null(target)
	}

	switch target {
	case Boolean:
		if b, err := cast.ToBoolE(rawPayload(v)); err == nil {
			return NewBoolean(b)
		}
		return Null(Boolean)
	case Int32:
		if i, err := cast.ToInt32E(rawPayload(v)); err == nil {
			return NewInt32(i)
		}
		return Null(Int32)
	case Int64:
		if i, err := cast.ToInt64E(rawPayload(v)); err == nil {
			return NewInt64(i)
		}
		return Null(Int64)
	case Single:
		if f, err := cast.ToFloat32E(rawPayload(v)); err == nil {
			return NewSingle(f)
		}
		return Null(Single)
	case Double:
		if f, err := cast.ToFloat64E(rawPayload(v)); err == nil {
			return NewDouble(f)
		}
		return Null(Double)
	case Decimal:
		if f, err := cast.ToFloat64E(rawPayload(v)); err == nil {
			return NewDecimal(big.NewFloat(f))
		}
		return Null(Decimal)
	case String:
		return NewString(v.String())
	case DateTime:
		if s, ok := v.StringValue(); ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return NewDateTime(t)
			}
		}
		if t, ok := v.DateTimeValue(); ok {
			return NewDateTime(t)
		}
		return Null(DateTime)
	case Guid:
		if s, ok := v.StringValue(); ok {
			if g, err := guid.Parse(s); err == nil {
				return NewGuid(g)
			}
		}
		if g, ok := v.GuidValue(); ok {
			return NewGuid(g)
		}
		return Null(Guid)
	default:
		return Null(Undefined)
	}
}

// rawPayload unwraps a Value to the bare Go value spf13/cast expects.
func rawPayload(v Value) interface{} {
	switch v.typ {
	case Boolean:
		b, _ := v.Bool()
		return b
	case Int32:
		i, _ := v.Int32()
		return i
	case Int64:
		i, _ := v.Int64()
		return i
	case Single:
		f, _ := v.Single()
		return f
	case Double:
		f, _ := v.Double()
		return f
	case Decimal:
		d, _ := v.DecimalValue()
		f, _ := d.Float64()
		return f
	case String:
		s, _ := v.StringValue()
		return s
	default:
		return v.String()
	}
}

// normalizeTypeName accepts case-insensitive, alias-tolerant target
// type names for Convert().
func normalizeTypeName(typeName string) Type {
	switch strings.ToLower(strings.TrimSpace(typeName)) {
	case "boolean", "bool":
		return Boolean
	case "int32", "int", "integer":
		return Int32
	case "int64", "long", "bigint":
		return Int64
	case "decimal":
		return Decimal
	case "single", "float", "float32":
		return Single
	case "double", "float64":
		return Double
	case "string", "varchar", "text":
		return String
	case "datetime", "date", "timestamp":
		return DateTime
	case "guid", "uuid":
		return Guid
	default:
		return Undefined
	}
}
