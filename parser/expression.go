package parser

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/expr"
	"github.com/delkyd/gsf/guid"
	"github.com/delkyd/gsf/internal/lexer"
	"github.com/delkyd/gsf/value"
)

type precedence int

const (
	precLowest precedence = iota
	precOr
	precAnd
	precLikeInIs
	precComparison
	precBitOr
	precBitAnd
	precShift
	precAdditive
	precMultiplicative
	precUnary
)

// parseExpression is the precedence-climbing entry point: each layer
// below handles exactly one level of the operator precedence table
// (unary highest, OR lowest).
func (p *Parser) parseExpression(table *dataset.DataTable, min precedence) (expr.Expression, error) {
	return p.parseOr(table)
}

func (p *Parser) parseOr(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseAnd(table)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.OR {
		p.advance()
		right, err := p.parseAnd(table)
		if err != nil {
			return nil, err
		}
		left = &expr.Operator{Op: expr.OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseLikeInIs(table)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.AND {
		p.advance()
		right, err := p.parseLikeInIs(table)
		if err != nil {
			return nil, err
		}
		left = &expr.Operator{Op: expr.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseLikeInIs(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseComparison(table)
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.cur.Type == lexer.LIKE:
			p.advance()
			right, err := p.parseComparison(table)
			if err != nil {
				return nil, err
			}
			left = &expr.Operator{Op: expr.OpLike, Left: left, Right: right}
		case p.cur.Type == lexer.NOT && p.nxt.Type == lexer.LIKE:
			p.advance()
			p.advance()
			right, err := p.parseComparison(table)
			if err != nil {
				return nil, err
			}
			left = &expr.Operator{Op: expr.OpNotLike, Left: left, Right: right}
		case p.cur.Type == lexer.IS:
			p.advance()
			negated := false
			if p.cur.Type == lexer.NOT {
				negated = true
				p.advance()
			}
			if p.cur.Type != lexer.NULLKW {
				return nil, structuralError(p.text, p.cur.Pos, "expected NULL after IS, got %q", p.cur.Literal)
			}
			p.advance()
			op := expr.UnaryIsNull
			if negated {
				op = expr.UnaryIsNotNull
			}
			left = &expr.Unary{Op: op, Operand: left}
		case p.cur.Type == lexer.IN:
			p.advance()
			args, err := p.parseArgList(table)
			if err != nil {
				return nil, err
			}
			left = &expr.InList{Value: left, Arguments: args}
		case p.cur.Type == lexer.NOT && p.nxt.Type == lexer.IN:
			p.advance()
			p.advance()
			args, err := p.parseArgList(table)
			if err != nil {
				return nil, err
			}
			left = &expr.InList{Value: left, Arguments: args, Negated: true}
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseComparison(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseBitOr(table)
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOp(p.cur.Type)
	if !ok {
		return left, nil
	}
	p.advance()
	right, err := p.parseBitOr(table)
	if err != nil {
		return nil, err
	}
	return &expr.Operator{Op: op, Left: left, Right: right}, nil
}

func comparisonOp(t lexer.TokenType) (expr.OperatorOp, bool) {
	switch t {
	case lexer.EQ:
		return expr.OpEqual, true
	case lexer.NE:
		return expr.OpNotEqual, true
	case lexer.LT:
		return expr.OpLess, true
	case lexer.LE:
		return expr.OpLessOrEqual, true
	case lexer.GT:
		return expr.OpGreater, true
	case lexer.GE:
		return expr.OpGreaterOrEqual, true
	default:
		return 0, false
	}
}

func (p *Parser) parseBitOr(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseBitAnd(table)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.BOR {
		p.advance()
		right, err := p.parseBitAnd(table)
		if err != nil {
			return nil, err
		}
		left = &expr.Operator{Op: expr.OpBitwiseOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseBitAnd(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseShift(table)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.BAND {
		p.advance()
		right, err := p.parseShift(table)
		if err != nil {
			return nil, err
		}
		left = &expr.Operator{Op: expr.OpBitwiseAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseShift(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseAdditive(table)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.SHL || p.cur.Type == lexer.SHR {
		op := expr.OpShiftLeft
		if p.cur.Type == lexer.SHR {
			op = expr.OpShiftRight
		}
		p.advance()
		right, err := p.parseAdditive(table)
		if err != nil {
			return nil, err
		}
		left = &expr.Operator{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseMultiplicative(table)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op := expr.OpAdd
		if p.cur.Type == lexer.MINUS {
			op = expr.OpSubtract
		}
		p.advance()
		right, err := p.parseMultiplicative(table)
		if err != nil {
			return nil, err
		}
		left = &expr.Operator{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative(table *dataset.DataTable) (expr.Expression, error) {
	left, err := p.parseUnary(table)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.ASTERISK || p.cur.Type == lexer.SLASH || p.cur.Type == lexer.PERCENT {
		var op expr.OperatorOp
		switch p.cur.Type {
		case lexer.ASTERISK:
			op = expr.OpMultiply
		case lexer.SLASH:
			op = expr.OpDivide
		default:
			op = expr.OpModulus
		}
		p.advance()
		right, err := p.parseUnary(table)
		if err != nil {
			return nil, err
		}
		left = &expr.Operator{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary(table *dataset.DataTable) (expr.Expression, error) {
	switch p.cur.Type {
	case lexer.PLUS:
		p.advance()
		operand, err := p.parseUnary(table)
		if err != nil {
			return nil, err
		}
		return &expr.Unary{Op: expr.UnaryPlus, Operand: operand}, nil
	case lexer.MINUS:
		p.advance()
		operand, err := p.parseUnary(table)
		if err != nil {
			return nil, err
		}
		return &expr.Unary{Op: expr.UnaryMinus, Operand: operand}, nil
	case lexer.NOT:
		p.advance()
		operand, err := p.parseUnary(table)
		if err != nil {
			return nil, err
		}
		return &expr.Unary{Op: expr.UnaryNot, Operand: operand}, nil
	case lexer.BNOT:
		p.advance()
		operand, err := p.parseUnary(table)
		if err != nil {
			return nil, err
		}
		return &expr.Unary{Op: expr.UnaryBitwiseNot, Operand: operand}, nil
	default:
		return p.parsePrimary(table)
	}
}

func (p *Parser) parsePrimary(table *dataset.DataTable) (expr.Expression, error) {
	tok := p.cur

	switch tok.Type {
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseExpression(table, precLowest)
		if err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.RPAREN {
			return nil, structuralError(p.text, p.cur.Pos, "expected ')', got %q", p.cur.Literal)
		}
		p.advance()
		return inner, nil

	case lexer.INTEGER_LITERAL:
		p.advance()
		return &expr.Literal{Value: lowerIntegerLiteral(tok.Literal)}, nil

	case lexer.NUMERIC_LITERAL:
		p.advance()
		lit, err := lowerNumericLiteral(tok.Literal)
		if err != nil {
			return nil, structuralError(p.text, tok.Pos, "invalid numeric literal %q", tok.Literal)
		}
		return &expr.Literal{Value: lit}, nil

	case lexer.STRING_LITERAL, lexer.POINT_TAG_LITERAL, lexer.MEASUREMENT_KEY_LITERAL:
		p.advance()
		return &expr.Literal{Value: value.NewString(tok.Literal)}, nil

	case lexer.BOOLEAN_LITERAL:
		p.advance()
		return &expr.Literal{Value: value.NewBoolean(strings.EqualFold(tok.Literal, "TRUE"))}, nil

	case lexer.DATETIME_LITERAL:
		p.advance()
		t, err := parseDateTimeLiteral(tok.Literal)
		if err != nil {
			return nil, structuralError(p.text, tok.Pos, "invalid DateTime literal %q: %v", tok.Literal, err)
		}
		return &expr.Literal{Value: value.NewDateTime(t)}, nil

	case lexer.GUID_LITERAL:
		p.advance()
		g, err := guid.Parse(tok.Literal)
		if err != nil {
			return nil, structuralError(p.text, tok.Pos, "invalid Guid literal %q: %v", tok.Literal, err)
		}
		return &expr.Literal{Value: value.NewGuid(g)}, nil

	case lexer.NULLKW:
		p.advance()
		return &expr.Literal{Value: value.Null(value.Undefined)}, nil

	case lexer.IDENT:
		p.advance()
		if p.cur.Type == lexer.LPAREN {
			return p.parseFunctionCall(table, tok.Literal)
		}
		col := table.Column(tok.Literal)
		if col == nil {
			return nil, resolutionError(p.text, tok.Pos, "unknown column %q in table %q", tok.Literal, table.Name())
		}
		return &expr.Column{Column: col}, nil
	}

	return nil, structuralError(p.text, tok.Pos, "unexpected token %q", tok.Literal)
}

// parseArgList parses a parenthesized, comma-separated expression
// list, used both by function calls and by IN (...).
func (p *Parser) parseArgList(table *dataset.DataTable) ([]expr.Expression, error) {
	if p.cur.Type != lexer.LPAREN {
		return nil, structuralError(p.text, p.cur.Pos, "expected '(', got %q", p.cur.Literal)
	}
	p.advance()
	var args []expr.Expression
	if p.cur.Type == lexer.RPAREN {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseExpression(table, precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if p.cur.Type != lexer.RPAREN {
		return nil, structuralError(p.text, p.cur.Pos, "expected ')', got %q", p.cur.Literal)
	}
	p.advance()
	return args, nil
}

// lowerIntegerLiteral widens an integer literal: parse as a double,
// then pick the narrowest of Int32/Int64/Double that can hold the
// value without loss, comparing against the Int64/Int32 max.
func lowerIntegerLiteral(text string) value.Value {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value.Null(value.Double)
	}
	const int32Max = float64(1<<31 - 1)
	const int64Max = float64(1<<63 - 1)
	switch {
	case f > int64Max:
		return value.NewDouble(f)
	case f > int32Max:
		return value.NewInt64(int64(f))
	default:
		return value.NewInt32(int32(f))
	}
}

// lowerNumericLiteral lowers a NUMERIC_LITERAL lexeme (one containing
// a '.' or an exponent) to a Value: Double if the lexeme carries an
// exponent, otherwise Decimal, falling back to Double if the lexeme
// doesn't parse as a decimal.
func lowerNumericLiteral(text string) (value.Value, error) {
	if strings.ContainsAny(text, "eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewDouble(f), nil
	}
	d, _, err := big.ParseFloat(text, 10, 64, big.ToNearestEven)
	if err != nil {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return value.Value{}, ferr
		}
		return value.NewDouble(f), nil
	}
	return value.NewDecimal(d), nil
}

// parseDateTimeLiteral accepts RFC3339 and the common "2006-01-02
// 15:04:05" form.
func parseDateTimeLiteral(text string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
