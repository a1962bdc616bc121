// Package parser turns filter-statement text into typed ExpressionTrees
// and resolved identifier statements.
//
// It is a hand-written recursive-descent / precedence-climbing parser
// that builds expr.Expression nodes directly as it descends, rather
// than building a separate parse tree first: each parse function
// returns its built Expression straight up the call stack, so there is
// no parse-tree-node memoization map to maintain.
package parser

import (
	"strings"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/internal/lexer"
)

// Parser parses one filter-statement-list string against a bound
// DataSet.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
	nxt lexer.Token

	text string

	dataSet           *dataset.DataSet
	primaryTable      string
	tableIDFields     map[string]dataset.MeasurementTableIDFields
	maxIterations     int
}

const defaultMaxIterations = 10000

// New creates a Parser over filterText. Call SetDataSet and
// SetPrimaryMeasurementTableName before Parse if the text contains
// bare identifier statements or unqualified column references that
// need resolving against a table.
func New(filterText string) *Parser {
	p := &Parser{
		text:          filterText,
		tableIDFields: make(map[string]dataset.MeasurementTableIDFields),
		maxIterations: defaultMaxIterations,
	}
	p.lex = lexer.New(filterText)
	p.advance()
	p.advance()
	return p
}

// SetDataSet binds the DataSet table names resolve against.
func (p *Parser) SetDataSet(ds *dataset.DataSet) {
	p.dataSet = ds
}

// SetPrimaryMeasurementTableName names the table bare identifier
// statements resolve against.
func (p *Parser) SetPrimaryMeasurementTableName(name string) {
	p.primaryTable = name
}

// SetMeasurementTableIDFields records which columns of table carry
// signal identity, used by identifier-statement resolution.
func (p *Parser) SetMeasurementTableIDFields(table string, fields dataset.MeasurementTableIDFields) {
	p.tableIDFields[strings.ToUpper(table)] = fields
}

func (p *Parser) idFieldsFor(table string) dataset.MeasurementTableIDFields {
	if f, ok := p.tableIDFields[strings.ToUpper(table)]; ok {
		return f
	}
	return dataset.DefaultMeasurementTableIDFields()
}

func (p *Parser) advance() {
	p.cur = p.nxt
	p.nxt = p.lex.NextToken()
}

func (p *Parser) curIsKeyword(kw string) bool {
	return strings.EqualFold(p.cur.Literal, kw)
}

// Parse parses the bound filter text into a Result: zero or more
// FILTER statements and zero or more bare identifier statements,
// separated by ';'.
func (p *Parser) Parse() (*Result, error) {
	result := &Result{}
	iterations := 0
	for p.cur.Type != lexer.EOF {
		iterations++
		if iterations > p.maxIterations {
			return nil, structuralError(p.text, p.cur.Pos, "exceeded maximum statement count while parsing")
		}
		switch p.cur.Type {
		case lexer.FILTER:
			tree, err := p.parseFilterStatement()
			if err != nil {
				return nil, err
			}
			result.ExpressionTrees = append(result.ExpressionTrees, tree)
		case lexer.GUID_LITERAL, lexer.MEASUREMENT_KEY_LITERAL, lexer.POINT_TAG_LITERAL:
			match, err := p.parseIdentifierStatement()
			if err != nil {
				return nil, err
			}
			result.IdentifierIDs = append(result.IdentifierIDs, match)
		default:
			return nil, structuralError(p.text, p.cur.Pos,
				"expected FILTER or an identifier statement (Guid/measurement key/point tag), got %q", p.cur.Literal)
		}
		if p.cur.Type == lexer.ILLEGAL {
			return nil, structuralError(p.text, p.cur.Pos, "unrecognized token %q", p.cur.Literal)
		}
		for p.cur.Type == lexer.SEMICOLON {
			p.advance()
		}
	}
	return result, nil
}
