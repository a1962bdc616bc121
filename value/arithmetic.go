package value

import (
	"fmt"
	"math"
	"math/big"
)

// widenOrder ranks each numeric type's widening precedence:
// Double > Single > Decimal > Int64 > Int32 > Boolean.
var widenOrder = map[Type]int{
	Double:  5,
	Single:  4,
	Decimal: 3,
	Int64:   2,
	Int32:   1,
	Boolean: 0,
}

// Widen picks the result Type of a binary numeric operator applied to
// operands of type a and b, following the widening join above.
// Non-numeric types cannot be widened.
func Widen(a, b Type) (Type, error) {
	ra, ok := widenOrder[a]
	if !ok {
		return Undefined, fmt.Errorf("value: %s is not numeric", a)
	}
	rb, ok := widenOrder[b]
	if !ok {
		return Undefined, fmt.Errorf("value: %s is not numeric", b)
	}
	if ra >= rb {
		return a, nil
	}
	return b, nil
}

// arith applies a pair of float64/decimal operations depending on the
// widened result type, propagating null if either operand is null.
func arith(a, b Value, floatOp func(x, y float64) (float64, error), decOp func(x, y *big.Float) (*big.Float, error)) (Value, error) {
	if !a.typ.isNumeric() || !b.typ.isNumeric() {
		return Value{}, fmt.Errorf("value: operands must be numeric, got %s and %s", a.typ, b.typ)
	}
	result, err := Widen(a.typ, b.typ)
	if err != nil {
		return Value{}, err
	}
	if a.IsNull() || b.IsNull() {
		return Null(result), nil
	}
	if result == Decimal {
		da := toBigFloat(a)
		db := toBigFloat(b)
		r, err := decOp(da, db)
		if err != nil {
			return Value{}, err
		}
		return NewDecimal(r), nil
	}
	fa, _ := a.AsFloat64()
	fb, _ := b.AsFloat64()
	f, err := floatOp(fa, fb)
	if err != nil {
		return Value{}, err
	}
	return fromFloat64(result, f), nil
}

func toBigFloat(v Value) *big.Float {
	if d, ok := v.DecimalValue(); ok {
		return d
	}
	f, _ := v.AsFloat64()
	return big.NewFloat(f)
}

func fromFloat64(t Type, f float64) Value {
	switch t {
	case Double:
		return NewDouble(f)
	case Single:
		return NewSingle(float32(f))
	case Decimal:
		return NewDecimal(big.NewFloat(f))
	case Int64:
		return NewInt64(int64(f))
	case Int32:
		return NewInt32(int32(f))
	case Boolean:
		return NewBoolean(f != 0)
	default:
		return NewDouble(f)
	}
}

// Add implements the '+' operator.
func Add(a, b Value) (Value, error) {
	return arith(a, b,
		func(x, y float64) (float64, error) { return x + y, nil },
		func(x, y *big.Float) (*big.Float, error) { return new(big.Float).Add(x, y), nil })
}

// Subtract implements the '-' binary operator.
func Subtract(a, b Value) (Value, error) {
	return arith(a, b,
		func(x, y float64) (float64, error) { return x - y, nil },
		func(x, y *big.Float) (*big.Float, error) { return new(big.Float).Sub(x, y), nil })
}

// Multiply implements the '*' operator.
func Multiply(a, b Value) (Value, error) {
	return arith(a, b,
		func(x, y float64) (float64, error) { return x * y, nil },
		func(x, y *big.Float) (*big.Float, error) { return new(big.Float).Mul(x, y), nil })
}

// Divide implements the '/' operator. Division by zero is an
// evaluation error rather than a null result.
func Divide(a, b Value) (Value, error) {
	return arith(a, b,
		func(x, y float64) (float64, error) {
			if y == 0 {
				return 0, fmt.Errorf("value: division by zero")
			}
			return x / y, nil
		},
		func(x, y *big.Float) (*big.Float, error) {
			if y.Sign() == 0 {
				return nil, fmt.Errorf("value: division by zero")
			}
			return new(big.Float).Quo(x, y), nil
		})
}

// Modulus implements the '%' operator: integer remainder when both
// operands widen to an integer type, floating-point remainder
// (math.Mod) otherwise.
func Modulus(a, b Value) (Value, error) {
	if a.IsNull() || b.IsNull() {
		result, err := Widen(a.typ, b.typ)
		if err != nil {
			return Value{}, err
		}
		return Null(result), nil
	}
	ia, ok1 := a.AsInt64()
	ib, ok2 := b.AsInt64()
	if !ok1 || !ok2 {
		fa, _ := a.AsFloat64()
		fb, _ := b.AsFloat64()
		if fb == 0 {
			return Value{}, fmt.Errorf("value: modulus by zero")
		}
		result, err := Widen(a.typ, b.typ)
		if err != nil {
			return Value{}, err
		}
		return fromFloat64(result, math.Mod(fa, fb)), nil
	}
	if ib == 0 {
		return Value{}, fmt.Errorf("value: modulus by zero")
	}
	result, err := Widen(a.typ, b.typ)
	if err != nil {
		return Value{}, err
	}
	return fromFloat64(result, float64(ia%ib)), nil
}

func intArith(a, b Value, op func(x, y int64) int64, opName string) (Value, error) {
	if a.IsNull() || b.IsNull() {
		result, err := Widen(a.typ, b.typ)
		if err != nil {
			return Value{}, err
		}
		return Null(result), nil
	}
	ia, ok1 := a.AsInt64()
	ib, ok2 := b.AsInt64()
	if !ok1 || !ok2 {
		return Value{}, fmt.Errorf("value: %s requires integer operands, got %s and %s", opName, a.typ, b.typ)
	}
	result, err := Widen(a.typ, b.typ)
	if err != nil {
		return Value{}, err
	}
	return fromFloat64(result, float64(op(ia, ib))), nil
}

func BitwiseAnd(a, b Value) (Value, error) { return intArith(a, b, func(x, y int64) int64 { return x & y }, "&") }
func BitwiseOr(a, b Value) (Value, error)  { return intArith(a, b, func(x, y int64) int64 { return x | y }, "|") }
func BitShiftLeft(a, b Value) (Value, error) {
	return intArith(a, b, func(x, y int64) int64 { return x << uint64(y) }, "<<")
}
func BitShiftRight(a, b Value) (Value, error) {
	return intArith(a, b, func(x, y int64) int64 { return x >> uint64(y) }, ">>")
}

// Negate implements unary '-'.
func Negate(v Value) (Value, error) {
	if !v.typ.isNumeric() {
		return Value{}, fmt.Errorf("value: cannot negate %s", v.typ)
	}
	if v.IsNull() {
		return Null(v.typ), nil
	}
	if v.typ == Decimal {
		d, _ := v.DecimalValue()
		return NewDecimal(new(big.Float).Neg(d)), nil
	}
	f, _ := v.AsFloat64()
	return fromFloat64(v.typ, -f), nil
}

// Identity implements unary '+'.
func Identity(v Value) (Value, error) {
	if !v.typ.isNumeric() {
		return Value{}, fmt.Errorf("value: unary '+' requires a numeric operand, got %s", v.typ)
	}
	return v, nil
}

// Not implements the boolean NOT operator; a null operand yields a
// null Boolean (three-valued logic).
func Not(v Value) (Value, error) {
	if v.typ != Boolean {
		return Value{}, fmt.Errorf("value: NOT requires a Boolean operand, got %s", v.typ)
	}
	if v.IsNull() {
		return Null(Boolean), nil
	}
	b, _ := v.Bool()
	return NewBoolean(!b), nil
}

// And implements three-valued AND: a null operand yields null unless
// the other operand is already known false.
func And(a, b Value) (Value, error) {
	if a.typ != Boolean || b.typ != Boolean {
		return Value{}, fmt.Errorf("value: AND requires Boolean operands, got %s and %s", a.typ, b.typ)
	}
	ab, aok := a.Bool()
	bb, bok := b.Bool()
	if aok && !ab {
		return NewBoolean(false), nil
	}
	if bok && !bb {
		return NewBoolean(false), nil
	}
	if !aok || !bok {
		return Null(Boolean), nil
	}
	return NewBoolean(ab && bb), nil
}

// Or implements three-valued OR: a null operand yields null unless the
// other operand is already known true.
func Or(a, b Value) (Value, error) {
	if a.typ != Boolean || b.typ != Boolean {
		return Value{}, fmt.Errorf("value: OR requires Boolean operands, got %s and %s", a.typ, b.typ)
	}
	ab, aok := a.Bool()
	bb, bok := b.Bool()
	if aok && ab {
		return NewBoolean(true), nil
	}
	if bok && bb {
		return NewBoolean(true), nil
	}
	if !aok || !bok {
		return Null(Boolean), nil
	}
	return NewBoolean(ab || bb), nil
}
