package parser

import (
	"strconv"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/internal/lexer"
)

// parseFilterStatement parses:
//
//	FILTER (TOP topNumber)? tableName WHERE expression (orderByClause)?
func (p *Parser) parseFilterStatement() (*ExpressionTree, error) {
	p.advance() // consume FILTER

	topLimit := -1
	if p.cur.Type == lexer.TOP {
		p.advance()
		if p.cur.Type != lexer.INTEGER_LITERAL {
			return nil, structuralError(p.text, p.cur.Pos, "expected an integer after TOP, got %q", p.cur.Literal)
		}
		n, err := strconv.Atoi(p.cur.Literal)
		if err != nil {
			return nil, structuralError(p.text, p.cur.Pos, "invalid TOP value %q", p.cur.Literal)
		}
		topLimit = n
		p.advance()
	}

	if p.cur.Type != lexer.IDENT {
		return nil, structuralError(p.text, p.cur.Pos, "expected a table name, got %q", p.cur.Literal)
	}
	tableName := p.cur.Literal
	p.advance()

	table, err := p.resolveTable(tableName)
	if err != nil {
		return nil, err
	}

	if p.cur.Type != lexer.WHERE {
		return nil, structuralError(p.text, p.cur.Pos, "expected WHERE, got %q", p.cur.Literal)
	}
	p.advance()

	root, err := p.parseExpression(table, precLowest)
	if err != nil {
		return nil, err
	}

	tree := &ExpressionTree{Table: table, Root: root, TopLimit: topLimit}

	if p.cur.Type == lexer.ORDER {
		p.advance()
		if p.cur.Type != lexer.BY {
			return nil, structuralError(p.text, p.cur.Pos, "expected BY after ORDER, got %q", p.cur.Literal)
		}
		p.advance()
		terms, err := p.parseOrderByTerms(table)
		if err != nil {
			return nil, err
		}
		tree.OrderByTerms = terms
	}

	return tree, nil
}

func (p *Parser) resolveTable(name string) (*dataset.DataTable, error) {
	if p.dataSet == nil {
		return nil, resolutionError(p.text, p.cur.Pos, "no DataSet bound; cannot resolve table %q", name)
	}
	table, ok := p.dataSet.Table(name)
	if !ok {
		return nil, resolutionError(p.text, p.cur.Pos, "unknown table %q", name)
	}
	return table, nil
}

func (p *Parser) parseOrderByTerms(table *dataset.DataTable) ([]OrderByTerm, error) {
	var terms []OrderByTerm
	for {
		if p.cur.Type != lexer.IDENT {
			return nil, structuralError(p.text, p.cur.Pos, "expected a column name in ORDER BY, got %q", p.cur.Literal)
		}
		col := table.Column(p.cur.Literal)
		if col == nil {
			return nil, resolutionError(p.text, p.cur.Pos, "unknown column %q in ORDER BY", p.cur.Literal)
		}
		p.advance()

		descending := false
		switch p.cur.Type {
		case lexer.ASC:
			p.advance()
		case lexer.DESC:
			descending = true
			p.advance()
		}

		terms = append(terms, OrderByTerm{Column: col, Descending: descending})

		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	return terms, nil
}
