package dataset

import (
	"github.com/delkyd/gsf/value"
)

// DataRow is one row of a DataTable: a fixed-width slice of Values, one
// per column, addressed positionally. Adapted from the group-keyed
// map[GroupValues]*Row aggregation row used by the corpus's streaming
// engine into a column-indexed, nullable-cell row, since the filter
// expression grammar needs positional/typed access rather than
// map-keyed access.
type DataRow struct {
	table *DataTable
	cells []value.Value
}

func newRow(t *DataTable) *DataRow {
	cells := make([]value.Value, len(t.columns))
	for i, c := range t.columns {
		cells[i] = value.Null(columnValueType(c.typ))
	}
	return &DataRow{table: t, cells: cells}
}

// Table returns the DataTable this row belongs to.
func (r *DataRow) Table() *DataTable { return r.table }

// Value returns the cell at column index i.
func (r *DataRow) Value(i int) value.Value {
	if i < 0 || i >= len(r.cells) {
		return value.Null(value.Undefined)
	}
	return r.cells[i]
}

// SetValue sets the cell at column index i. Used by dataset builders
// (tests, CSV loading) — the evaluator itself never mutates a row.
func (r *DataRow) SetValue(i int, v value.Value) {
	if i < 0 || i >= len(r.cells) {
		return
	}
	r.cells[i] = v
}

// ValueByName returns the cell for the named column (case-insensitive).
func (r *DataRow) ValueByName(name string) (value.Value, bool) {
	col := r.table.Column(name)
	if col == nil {
		return value.Value{}, false
	}
	return r.Value(col.Index()), true
}

// columnValueType maps a DataColumn's DataType to the value.Type its
// cells carry.
func columnValueType(t DataType) value.Type {
	switch t {
	case Boolean:
		return value.Boolean
	case DateTime:
		return value.DateTime
	case Single:
		return value.Single
	case Double:
		return value.Double
	case Decimal:
		return value.Decimal
	case GuidType:
		return value.Guid
	case Int8, Int16, Int32:
		return value.Int32
	case Int64, UInt8, UInt16, UInt32, UInt64:
		return value.Int64
	default:
		return value.String
	}
}
