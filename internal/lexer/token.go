// Package lexer tokenizes filter-statement text for the parser
// package: a byte-scanner with readChar/peekChar/skipWhitespace and a
// canonical-cased keyword table, covering the filter-statement
// grammar's literal and keyword set, including scientific-notation
// numeric literals.
package lexer

import "fmt"

// TokenType identifies the lexical category of a Token.
type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL

	IDENT // bare identifier: table/column name, or a bare function name

	INTEGER_LITERAL
	NUMERIC_LITERAL // has a '.' or exponent
	STRING_LITERAL
	DATETIME_LITERAL       // #...#
	GUID_LITERAL           // {...}, quoted hex-with-dashes, or bare hex-with-dashes
	POINT_TAG_LITERAL      // "..."
	MEASUREMENT_KEY_LITERAL // bare NAME:NUMBER token, e.g. PPA:42
	BOOLEAN_LITERAL

	// keywords
	FILTER
	TOP
	WHERE
	ORDER
	BY
	ASC
	DESC
	AND
	OR
	NOT
	IN
	IS
	NULLKW
	LIKE

	// punctuation / operators
	LPAREN
	RPAREN
	COMMA
	DOT
	SEMICOLON

	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT

	EQ
	NE
	LT
	LE
	GT
	GE

	SHL
	SHR
	BAND
	BOR
	BNOT
)

var keywords = map[string]TokenType{
	"FILTER": FILTER,
	"TOP":    TOP,
	"WHERE":  WHERE,
	"ORDER":  ORDER,
	"BY":     BY,
	"ASC":    ASC,
	"DESC":   DESC,
	"AND":    AND,
	"OR":     OR,
	"NOT":    NOT,
	"IN":     IN,
	"IS":     IS,
	"NULL":   NULLKW,
	"LIKE":   LIKE,
	"TRUE":   BOOLEAN_LITERAL,
	"FALSE":  BOOLEAN_LITERAL,
}

// Token is one lexical unit: its type, literal text, and byte offset
// into the source for error reporting.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

func (t Token) String() string {
	return fmt.Sprintf("%v(%q)@%d", t.Type, t.Literal, t.Pos)
}
