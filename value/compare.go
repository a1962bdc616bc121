package value

import (
	"fmt"
	"strings"
)

// Compare orders two non-null Values of compatible category, returning
// -1/0/1. Strings compare case-sensitively (lexicographically); Guids
// compare byte-wise; DateTimes compare chronologically; numeric
// operands are widened first.
func Compare(a, b Value) (int, error) {
	if a.typ.isNumeric() && b.typ.isNumeric() {
		fa, _ := a.AsFloat64()
		fb, _ := b.AsFloat64()
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.typ == String && b.typ == String {
		sa, _ := a.StringValue()
		sb, _ := b.StringValue()
		return strings.Compare(sa, sb), nil
	}
	if a.typ == DateTime && b.typ == DateTime {
		ta, _ := a.DateTimeValue()
		tb, _ := b.DateTimeValue()
		switch {
		case ta.Before(tb):
			return -1, nil
		case ta.After(tb):
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.typ == Guid && b.typ == Guid {
		ga, _ := a.GuidValue()
		gb, _ := b.GuidValue()
		for i := range ga {
			if ga[i] != gb[i] {
				if ga[i] < gb[i] {
					return -1, nil
				}
				return 1, nil
			}
		}
		return 0, nil
	}
	return 0, fmt.Errorf("value: cannot compare %s to %s", a.typ, b.typ)
}

// CompareNullable is used by the statement executor's ORDER BY
// comparator: a null sorts before any non-null value.
func CompareNullable(a, b Value) (int, error) {
	if a.IsNull() && b.IsNull() {
		return 0, nil
	}
	if a.IsNull() {
		return -1, nil
	}
	if b.IsNull() {
		return 1, nil
	}
	return Compare(a, b)
}

func comparisonResult(a, b Value, want func(c int) bool) (Value, error) {
	if a.IsNull() || b.IsNull() {
		return Null(Boolean), nil
	}
	c, err := Compare(a, b)
	if err != nil {
		return Value{}, err
	}
	return NewBoolean(want(c)), nil
}

func Less(a, b Value) (Value, error)         { return comparisonResult(a, b, func(c int) bool { return c < 0 }) }
func LessOrEqual(a, b Value) (Value, error)  { return comparisonResult(a, b, func(c int) bool { return c <= 0 }) }
func Greater(a, b Value) (Value, error)      { return comparisonResult(a, b, func(c int) bool { return c > 0 }) }
func GreaterOrEqual(a, b Value) (Value, error) {
	return comparisonResult(a, b, func(c int) bool { return c >= 0 })
}

// Equal implements '=' / '=='. Strings compare case-insensitively;
// equality across incompatible categories (e.g. String vs. Guid) is
// false rather than an error.
func Equal(a, b Value) (Value, error) {
	if a.IsNull() || b.IsNull() {
		return Null(Boolean), nil
	}
	if a.typ == String && b.typ == String {
		sa, _ := a.StringValue()
		sb, _ := b.StringValue()
		return NewBoolean(strings.EqualFold(sa, sb)), nil
	}
	c, err := Compare(a, b)
	if err != nil {
		return NewBoolean(false), nil
	}
	return NewBoolean(c == 0), nil
}

// NotEqual implements '<>' / '!='.
func NotEqual(a, b Value) (Value, error) {
	eq, err := Equal(a, b)
	if err != nil {
		return Value{}, err
	}
	if eq.IsNull() {
		return eq, nil
	}
	b2, _ := eq.Bool()
	return NewBoolean(!b2), nil
}
