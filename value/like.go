package value

import (
	"regexp"
	"strings"
)

// likePattern compiles a SQL LIKE pattern ('%' = any run, '_' = any
// single char) into an anchored, case-insensitive regular expression.
func likePattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

// Like implements the LIKE operator.
func Like(a, b Value) (Value, error) {
	if a.IsNull() || b.IsNull() {
		return Null(Boolean), nil
	}
	s, ok := a.StringValue()
	if !ok {
		return Null(Boolean), nil
	}
	pattern, ok := b.StringValue()
	if !ok {
		return Null(Boolean), nil
	}
	re, err := likePattern(pattern)
	if err != nil {
		return Value{}, err
	}
	return NewBoolean(re.MatchString(s)), nil
}

// NotLike implements NOT LIKE.
func NotLike(a, b Value) (Value, error) {
	like, err := Like(a, b)
	if err != nil {
		return Value{}, err
	}
	if like.IsNull() {
		return like, nil
	}
	v, _ := like.Bool()
	return NewBoolean(!v), nil
}

// likeMatchLiteral is an unexported recursive backtracking matcher kept
// as a reference implementation for testing likePattern's regex
// translation against: same wildcard semantics, computed without
// regexp. It is not used on any evaluation path.
func likeMatchLiteral(s, pattern string) bool {
	if pattern == "" {
		return s == ""
	}
	switch pattern[0] {
	case '%':
		for i := 0; i <= len(s); i++ {
			if likeMatchLiteral(s[i:], pattern[1:]) {
				return true
			}
		}
		return false
	case '_':
		if len(s) == 0 {
			return false
		}
		return likeMatchLiteral(s[1:], pattern[1:])
	default:
		if len(s) == 0 || strings.ToUpper(s[:1]) != strings.ToUpper(pattern[:1]) {
			return false
		}
		return likeMatchLiteral(s[1:], pattern[1:])
	}
}
