package dataset

import "strings"

// DataTable is a named, column-typed, row-oriented in-memory table —
// the unit a FILTER statement's table name resolves to.
type DataTable struct {
	name    string
	columns []*DataColumn
	byName  map[string]*DataColumn
	rows    []*DataRow
}

// NewDataTable creates an empty table with the given name.
func NewDataTable(name string) *DataTable {
	return &DataTable{
		name:   name,
		byName: make(map[string]*DataColumn),
	}
}

// Name returns the table's name.
func (t *DataTable) Name() string { return t.name }

// AddColumn appends a new column of the given type and returns it.
// Columns must be added before any rows, since AddRow sizes each row
// to the table's current column count.
func (t *DataTable) AddColumn(name string, typ DataType) *DataColumn {
	col := &DataColumn{name: name, index: len(t.columns), typ: typ}
	t.columns = append(t.columns, col)
	t.byName[strings.ToUpper(name)] = col
	return col
}

// Column looks up a column by name, case-insensitively. Returns nil if
// no such column exists.
func (t *DataTable) Column(name string) *DataColumn {
	return t.byName[strings.ToUpper(name)]
}

// Columns returns the table's columns in declaration order.
func (t *DataTable) Columns() []*DataColumn {
	return t.columns
}

// RowCount returns the number of rows in the table.
func (t *DataTable) RowCount() int { return len(t.rows) }

// Row returns the row at index i.
func (t *DataTable) Row(i int) *DataRow { return t.rows[i] }

// Rows returns all rows in the table, in insertion order.
func (t *DataTable) Rows() []*DataRow { return t.rows }

// AddRow appends and returns a new, all-null row sized to the table's
// current columns.
func (t *DataTable) AddRow() *DataRow {
	r := newRow(t)
	t.rows = append(t.rows, r)
	return r
}
