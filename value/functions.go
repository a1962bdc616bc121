package value

import (
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// Coalesce returns the first non-null argument. If every argument is
// null it returns a null of the first argument's type (a null String
// when there are no arguments).
func Coalesce(args []Value) Value {
	for _, a := range args {
		if !a.IsNull() {
			return a
		}
	}
	if len(args) > 0 {
		return Null(args[0].typ)
	}
	return Null(String)
}

// IIf implements the ternary IIf(condition, whenTrue, whenFalse)
// function. A null or false condition selects whenFalse.
func IIf(condition, whenTrue, whenFalse Value) (Value, error) {
	if condition.typ != Boolean {
		return Value{}, errNotBoolean(condition.typ)
	}
	b, ok := condition.Bool()
	if ok && b {
		return whenTrue, nil
	}
	return whenFalse, nil
}

func errNotBoolean(t Type) error {
	return &TypeError{Want: Boolean, Got: t, Context: "IIf condition"}
}

// TypeError reports a built-in function call whose argument type
// didn't match what the function requires.
type TypeError struct {
	Want, Got Type
	Context   string
}

func (e *TypeError) Error() string {
	return "value: " + e.Context + " requires " + e.Want.String() + ", got " + e.Got.String()
}

// IsRegExMatch implements IsRegExMatch(pattern, expression): true if
// expression matches the regular expression pattern anywhere in the
// string.
func IsRegExMatch(pattern, s Value) (Value, error) {
	if pattern.IsNull() || s.IsNull() {
		return Null(Boolean), nil
	}
	p, err := cast.ToStringE(rawPayload(pattern))
	if err != nil {
		return Value{}, err
	}
	str, err := cast.ToStringE(rawPayload(s))
	if err != nil {
		return Value{}, err
	}
	matched, err := regexp.MatchString(p, str)
	if err != nil {
		return Value{}, err
	}
	return NewBoolean(matched), nil
}

// RegExVal implements RegExVal(pattern, expression): the first
// matching substring, or a null String if there is no match.
func RegExVal(pattern, s Value) (Value, error) {
	if pattern.IsNull() || s.IsNull() {
		return Null(String), nil
	}
	p, err := cast.ToStringE(rawPayload(pattern))
	if err != nil {
		return Value{}, err
	}
	str, err := cast.ToStringE(rawPayload(s))
	if err != nil {
		return Value{}, err
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return Value{}, err
	}
	m := re.FindString(str)
	if m == "" && !re.MatchString(str) {
		return Null(String), nil
	}
	return NewString(m), nil
}

// Len implements Len(expression): the rune length of its string
// argument.
func Len(s Value) (Value, error) {
	if s.IsNull() {
		return Null(Int32), nil
	}
	str, err := cast.ToStringE(rawPayload(s))
	if err != nil {
		return Value{}, err
	}
	return NewInt32(int32(len([]rune(str)))), nil
}

// SubString implements SubString(expression, start, length?): 0-based,
// clamped to bounds; an omitted length means "to end".
func SubString(s, start Value, length *Value) (Value, error) {
	if s.IsNull() || start.IsNull() {
		return Null(String), nil
	}
	str, err := cast.ToStringE(rawPayload(s))
	if err != nil {
		return Value{}, err
	}
	startIdx, err := cast.ToInt64E(rawPayload(start))
	if err != nil {
		return Value{}, err
	}
	runes := []rune(str)
	strLen := int64(len(runes))
	if startIdx < 0 || startIdx >= strLen {
		return NewString(""), nil
	}
	end := strLen
	if length != nil {
		if length.IsNull() {
			return Null(String), nil
		}
		l, err := cast.ToInt64E(rawPayload(*length))
		if err != nil {
			return Value{}, err
		}
		end = startIdx + l
		if end > strLen {
			end = strLen
		}
		if end < startIdx {
			end = startIdx
		}
	}
	return NewString(string(runes[startIdx:end])), nil
}

// Trim implements Trim(expression): leading/trailing ASCII whitespace
// removal (space, tab, CR, LF).
func Trim(s Value) (Value, error) {
	if s.IsNull() {
		return Null(String), nil
	}
	str, err := cast.ToStringE(rawPayload(s))
	if err != nil {
		return Value{}, err
	}
	return NewString(strings.Trim(str, " \t\r\n")), nil
}
