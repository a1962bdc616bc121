package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddColumnAndLookupIsCaseInsensitive(t *testing.T) {
	table := NewDataTable("ActiveMeasurements")
	col := table.AddColumn("PointTag", String)
	assert.Equal(t, 0, col.Index())
	assert.Equal(t, String, col.Type())

	assert.Same(t, col, table.Column("pointtag"))
	assert.Same(t, col, table.Column("POINTTAG"))
	assert.Nil(t, table.Column("NoSuchColumn"))
}

func TestAddRowSizesCellsToColumnCountWithTypedNulls(t *testing.T) {
	table := NewDataTable("ActiveMeasurements")
	table.AddColumn("SignalID", GuidType)
	table.AddColumn("Enabled", Boolean)
	table.AddColumn("Frequency", Double)

	row := table.AddRow()
	require.Equal(t, 1, table.RowCount())

	for i := 0; i < 3; i++ {
		assert.True(t, row.Value(i).IsNull())
	}
	assert.Equal(t, "Guid", row.Value(0).Type().String())
	assert.Equal(t, "Boolean", row.Value(1).Type().String())
	assert.Equal(t, "Double", row.Value(2).Type().String())
}

func TestValueByNameResolvesThroughTheTableColumns(t *testing.T) {
	table := NewDataTable("ActiveMeasurements")
	table.AddColumn("PointTag", String)
	row := table.AddRow()

	_, ok := row.ValueByName("NoSuchColumn")
	assert.False(t, ok)

	_, ok = row.ValueByName("PointTag")
	assert.True(t, ok)
}

func TestAddTableReplacesExistingByCaseInsensitiveName(t *testing.T) {
	ds := NewDataSet()
	first := NewDataTable("ActiveMeasurements")
	ds.AddTable(first)

	second := NewDataTable("activemeasurements")
	ds.AddTable(second)

	require.Len(t, ds.Tables(), 1)
	got, ok := ds.Table("ACTIVEMEASUREMENTS")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestTableLookupMissReturnsFalse(t *testing.T) {
	ds := NewDataSet()
	_, ok := ds.Table("Missing")
	assert.False(t, ok)
}

func TestDefaultMeasurementTableIDFields(t *testing.T) {
	fields := DefaultMeasurementTableIDFields()
	assert.Equal(t, "SignalID", fields.SignalIDFieldName)
	assert.Equal(t, "ID", fields.MeasurementKeyFieldName)
	assert.Equal(t, "PointTag", fields.PointTagFieldName)
}
