package filterexpr

import (
	"fmt"
	"sort"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/guid"
	"github.com/delkyd/gsf/parser"
	"github.com/delkyd/gsf/value"
)

// runTree executes one ExpressionTree against its table. TopLimit gates
// the scan against the deduplicated match count (checked before each
// row is evaluated, so it bounds how many distinct matches are
// collected, not how many rows are visited after a null/false
// evaluation or a duplicate signal ID), dedup happens inline in the
// scan against seen when trackSignalIDs is set, and ORDER BY sorts
// only the rows the scan already collected — TOP is applied before
// ORDER BY, not after.
func runTree(tree *parser.ExpressionTree, trackSignalIDs bool, fields dataset.MeasurementTableIDFields, seen map[guid.Guid]struct{}) ([]*dataset.DataRow, error) {
	if trackSignalIDs && tree.Table.Column(fields.SignalIDFieldName) == nil {
		return nil, fmt.Errorf("filterexpr: table %q has no %q column to resolve signal IDs", tree.Table.Name(), fields.SignalIDFieldName)
	}

	var matched []*dataset.DataRow

	for i := 0; i < tree.Table.RowCount(); i++ {
		if tree.TopLimit >= 0 && len(matched) >= tree.TopLimit {
			break
		}
		row := tree.Table.Row(i)
		v, err := evaluate(tree.Root, row)
		if err != nil {
			return nil, err
		}
		isMatch, err := rootMatches(v)
		if err != nil {
			return nil, err
		}
		if !isMatch {
			continue
		}
		if trackSignalIDs {
			if id, ok := signalIDFor(row, fields); ok && !id.IsZero() {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
			}
		}
		matched = append(matched, row)
	}

	if len(tree.OrderByTerms) > 0 {
		sortRows(matched, tree.OrderByTerms)
	}

	return matched, nil
}

// rootMatches interprets a WHERE root's Value as the executor's match
// condition: a null root is simply "no match"; a genuinely non-Boolean
// root is an evaluation error.
func rootMatches(v value.Value) (bool, error) {
	if v.IsNull() {
		return false, nil
	}
	if v.Type() != value.Boolean {
		return false, fmt.Errorf("filterexpr: WHERE root evaluated to %s, expected Boolean", v.Type())
	}
	b, _ := v.Bool()
	return b, nil
}

// sortRows performs a stable multi-key sort, comparing each
// subsequent ORDER BY term only when every earlier term compared
// equal. Null sorts before any non-null value under ASC; a DESC term
// reverses the comparison, so nulls sort last under DESC.
func sortRows(rows []*dataset.DataRow, terms []parser.OrderByTerm) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, term := range terms {
			a := rows[i].Value(term.Column.Index())
			b := rows[j].Value(term.Column.Index())
			c, err := value.CompareNullable(a, b)
			if err != nil || c == 0 {
				continue
			}
			if term.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// signalIDFor extracts the signal Guid a row identifies, per the
// measurement table's configured SignalID field. Returns ok=false if
// the table has no such field, the cell is null, or the cell doesn't
// parse as a Guid.
func signalIDFor(row *dataset.DataRow, fields dataset.MeasurementTableIDFields) (guid.Guid, bool) {
	col := row.Table().Column(fields.SignalIDFieldName)
	if col == nil {
		return guid.Zero, false
	}
	v := row.Value(col.Index())
	if v.IsNull() {
		return guid.Zero, false
	}
	if g, ok := v.GuidValue(); ok {
		return g, true
	}
	s, ok := v.StringValue()
	if !ok {
		return guid.Zero, false
	}
	g, err := guid.Parse(s)
	if err != nil {
		return guid.Zero, false
	}
	return g, true
}
