package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(input string) []TokenType {
	l := New(input)
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	return types
}

func TestKeywords(t *testing.T) {
	types := tokenTypes("FILTER TOP WHERE ORDER BY ASC DESC AND OR NOT IN IS NULL LIKE")
	want := []TokenType{FILTER, TOP, WHERE, ORDER, BY, ASC, DESC, AND, OR, NOT, IN, IS, NULLKW, LIKE, EOF}
	assert.Equal(t, want, types)
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	types := tokenTypes("filter Where and Or")
	want := []TokenType{FILTER, WHERE, AND, OR, EOF}
	assert.Equal(t, want, types)
}

func TestStringLiteral(t *testing.T) {
	l := New("'hello world'")
	tok := l.NextToken()
	assert.Equal(t, STRING_LITERAL, tok.Type)
	assert.Equal(t, "hello world", tok.Literal)
}

func TestPointTagLiteral(t *testing.T) {
	l := New(`"PMU1-FREQ"`)
	tok := l.NextToken()
	assert.Equal(t, POINT_TAG_LITERAL, tok.Type)
	assert.Equal(t, "PMU1-FREQ", tok.Literal)
}

func TestDateTimeLiteral(t *testing.T) {
	l := New("#2026-08-06 12:00:00#")
	tok := l.NextToken()
	assert.Equal(t, DATETIME_LITERAL, tok.Type)
	assert.Equal(t, "2026-08-06 12:00:00", tok.Literal)
}

func TestBracedGuidLiteral(t *testing.T) {
	l := New("{7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb}")
	tok := l.NextToken()
	assert.Equal(t, GUID_LITERAL, tok.Type)
	assert.Equal(t, "7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb", tok.Literal)
}

func TestBareGuidLiteral(t *testing.T) {
	l := New("7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb = SignalID")
	tok := l.NextToken()
	assert.Equal(t, GUID_LITERAL, tok.Type)
	assert.Equal(t, "7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb", tok.Literal)
}

func TestMeasurementKeyLiteral(t *testing.T) {
	l := New("PPA:42")
	tok := l.NextToken()
	assert.Equal(t, MEASUREMENT_KEY_LITERAL, tok.Type)
	assert.Equal(t, "PPA:42", tok.Literal)
}

func TestNumbers(t *testing.T) {
	l := New("42 3.14 1e10 2.5e-3")
	tok := l.NextToken()
	assert.Equal(t, INTEGER_LITERAL, tok.Type)
	assert.Equal(t, "42", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, NUMERIC_LITERAL, tok.Type)
	assert.Equal(t, "3.14", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, NUMERIC_LITERAL, tok.Type)
	assert.Equal(t, "1e10", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, NUMERIC_LITERAL, tok.Type)
	assert.Equal(t, "2.5e-3", tok.Literal)
}

func TestOperators(t *testing.T) {
	types := tokenTypes("<= >= <> != == << >> && ||")
	want := []TokenType{LE, GE, NE, NE, EQ, SHL, SHR, AND, OR, EOF}
	assert.Equal(t, want, types)
}

func TestBooleanLiteral(t *testing.T) {
	l := New("TRUE false")
	tok := l.NextToken()
	assert.Equal(t, BOOLEAN_LITERAL, tok.Type)
	tok = l.NextToken()
	assert.Equal(t, BOOLEAN_LITERAL, tok.Type)
}
