package parser

import (
	"strings"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/guid"
	"github.com/delkyd/gsf/internal/lexer"
)

// parseIdentifierStatement resolves a bare GUID/measurement-key/
// point-tag literal against the bound primary measurement table: a
// linear scan of the primary table that stops at the first row whose
// field equals the target (case-insensitively for point tags).
func (p *Parser) parseIdentifierStatement() (IdentifierMatch, error) {
	tok := p.cur
	p.advance()

	if p.dataSet == nil || p.primaryTable == "" {
		return IdentifierMatch{}, resolutionError(p.text, tok.Pos,
			"no primary measurement table bound; cannot resolve identifier statement %q", tok.Literal)
	}
	table, ok := p.dataSet.Table(p.primaryTable)
	if !ok {
		return IdentifierMatch{}, resolutionError(p.text, tok.Pos, "unknown primary measurement table %q", p.primaryTable)
	}

	fields := p.idFieldsFor(p.primaryTable)

	switch tok.Type {
	case lexer.GUID_LITERAL:
		target, err := guid.Parse(tok.Literal)
		if err != nil {
			return IdentifierMatch{}, structuralError(p.text, tok.Pos, "invalid Guid literal %q: %v", tok.Literal, err)
		}
		if target.IsZero() {
			return IdentifierMatch{}, nil
		}
		row := mapMeasurement(table, fields.SignalIDFieldName, func(v string) bool {
			g, err := guid.Parse(v)
			return err == nil && g == target
		})
		return IdentifierMatch{Row: row, Guid: target}, nil

	case lexer.MEASUREMENT_KEY_LITERAL:
		row := mapMeasurement(table, fields.MeasurementKeyFieldName, func(v string) bool {
			return v == tok.Literal
		})
		return IdentifierMatch{Row: row}, nil

	case lexer.POINT_TAG_LITERAL:
		row := mapMeasurement(table, fields.PointTagFieldName, func(v string) bool {
			return strings.EqualFold(v, tok.Literal)
		})
		return IdentifierMatch{Row: row}, nil
	}

	return IdentifierMatch{}, structuralError(p.text, tok.Pos, "unsupported identifier statement token %q", tok.Literal)
}

// mapMeasurement performs the first-match linear scan of table's rows
// for the column named fieldName, stopping at the first row whose
// stringified cell satisfies match.
func mapMeasurement(table *dataset.DataTable, fieldName string, match func(string) bool) *dataset.DataRow {
	col := table.Column(fieldName)
	if col == nil {
		return nil
	}
	for i := 0; i < table.RowCount(); i++ {
		row := table.Row(i)
		v := row.Value(col.Index())
		if v.IsNull() {
			continue
		}
		if match(v.String()) {
			return row
		}
	}
	return nil
}
