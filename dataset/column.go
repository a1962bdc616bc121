package dataset

// DataColumn describes one column of a DataTable: its name, its
// position, and the DataType every cell in that position must use.
type DataColumn struct {
	name  string
	index int
	typ   DataType
}

// Name returns the column's name.
func (c *DataColumn) Name() string { return c.name }

// Index returns the column's zero-based position within its table.
func (c *DataColumn) Index() int { return c.index }

// Type returns the column's declared DataType.
func (c *DataColumn) Type() DataType { return c.typ }
