package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/expr"
	"github.com/delkyd/gsf/guid"
	"github.com/delkyd/gsf/value"
)

// newActiveMeasurements builds the four-row worked example table used
// throughout the concrete scenarios.
func newActiveMeasurements() *dataset.DataTable {
	table := dataset.NewDataTable("ActiveMeasurements")
	table.AddColumn("SignalID", dataset.GuidType)
	table.AddColumn("ID", dataset.String)
	table.AddColumn("PointTag", dataset.String)
	table.AddColumn("SignalType", dataset.String)
	table.AddColumn("Enabled", dataset.Boolean)

	type row struct {
		id, key, tag, sigType string
		enabled                bool
	}
	rows := []row{
		{"7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb", "PPA:1", "PMU1-FREQ", "FREQ", true},
		{"8cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb", "PPA:2", "PMU1-VPHM", "VPHM", true},
		{"9cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb", "PPA:3", "PMU2-FREQ", "FREQ", false},
		{"acec1db1-dcee-4ef5-adc2-6bf2b45a1bcb", "PPA:4", "PMU2-STAT", "STAT", true},
	}
	for _, r := range rows {
		dr := table.AddRow()
		dr.SetValue(0, value.NewGuid(guid.MustParse(r.id)))
		dr.SetValue(1, value.NewString(r.key))
		dr.SetValue(2, value.NewString(r.tag))
		dr.SetValue(3, value.NewString(r.sigType))
		dr.SetValue(4, value.NewBoolean(r.enabled))
	}
	return table
}

func newBoundDataSet() (*dataset.DataSet, *dataset.DataTable) {
	table := newActiveMeasurements()
	ds := dataset.NewDataSet()
	ds.AddTable(table)
	return ds, table
}

func TestParseSimpleFilterStatement(t *testing.T) {
	ds, _ := newBoundDataSet()
	p := New("FILTER ActiveMeasurements WHERE SignalType = 'FREQ'")
	p.SetDataSet(ds)

	result, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, result.ExpressionTrees, 1)

	tree := result.ExpressionTrees[0]
	assert.Equal(t, "ActiveMeasurements", tree.Table.Name())
	assert.Equal(t, -1, tree.TopLimit)
	_, ok := tree.Root.(*expr.Operator)
	assert.True(t, ok)
}

func TestParseTopLimit(t *testing.T) {
	ds, _ := newBoundDataSet()
	p := New("FILTER TOP 2 ActiveMeasurements WHERE Enabled = true")
	p.SetDataSet(ds)

	result, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, result.ExpressionTrees, 1)
	assert.Equal(t, 2, result.ExpressionTrees[0].TopLimit)
}

func TestParseOrderBy(t *testing.T) {
	ds, _ := newBoundDataSet()
	p := New("FILTER ActiveMeasurements WHERE Enabled = true ORDER BY PointTag DESC")
	p.SetDataSet(ds)

	result, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, result.ExpressionTrees[0].OrderByTerms, 1)
	term := result.ExpressionTrees[0].OrderByTerms[0]
	assert.Equal(t, "PointTag", term.Column.Name())
	assert.True(t, term.Descending)
}

func TestParseFunctionCallWithAliasAndPrefixRule(t *testing.T) {
	ds, _ := newBoundDataSet()
	p := New("FILTER ActiveMeasurements WHERE ISNULL(PointTag, '') <> '' AND SUBSTR(PointTag, 0, 4) = 'PMU1'")
	p.SetDataSet(ds)

	result, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, result.ExpressionTrees, 1)
}

func TestParseUnknownColumnIsResolutionError(t *testing.T) {
	ds, _ := newBoundDataSet()
	p := New("FILTER ActiveMeasurements WHERE NoSuchColumn = 1")
	p.SetDataSet(ds)

	_, err := p.Parse()
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, Resolution, perr.Category)
}

func TestParseIdentifierStatementByGuid(t *testing.T) {
	ds, table := newBoundDataSet()
	p := New("7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb")
	p.SetDataSet(ds)
	p.SetPrimaryMeasurementTableName(table.Name())

	result, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, result.IdentifierIDs, 1)
	require.NotNil(t, result.IdentifierIDs[0].Row)

	s, _ := result.IdentifierIDs[0].Row.ValueByName("ID")
	key, _ := s.StringValue()
	assert.Equal(t, "PPA:1", key)
}

func TestParseIdentifierStatementByMeasurementKey(t *testing.T) {
	ds, table := newBoundDataSet()
	p := New("PPA:3")
	p.SetDataSet(ds)
	p.SetPrimaryMeasurementTableName(table.Name())

	result, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, result.IdentifierIDs, 1)
	require.NotNil(t, result.IdentifierIDs[0].Row)
	tagVal, _ := result.IdentifierIDs[0].Row.ValueByName("PointTag")
	tag, _ := tagVal.StringValue()
	assert.Equal(t, "PMU2-FREQ", tag)
}

func TestParseIdentifierStatementByPointTag(t *testing.T) {
	ds, table := newBoundDataSet()
	p := New(`"PMU2-STAT"`)
	p.SetDataSet(ds)
	p.SetPrimaryMeasurementTableName(table.Name())

	result, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, result.IdentifierIDs, 1)
	require.NotNil(t, result.IdentifierIDs[0].Row)
}

func TestParseZeroGuidIdentifierStatementResolvesToNoRow(t *testing.T) {
	ds, table := newBoundDataSet()
	p := New("00000000-0000-0000-0000-000000000000")
	p.SetDataSet(ds)
	p.SetPrimaryMeasurementTableName(table.Name())

	result, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, result.IdentifierIDs, 1)
	assert.Nil(t, result.IdentifierIDs[0].Row)
}

func TestParseMultipleStatements(t *testing.T) {
	ds, table := newBoundDataSet()
	p := New("PPA:1; FILTER ActiveMeasurements WHERE Enabled = true")
	p.SetDataSet(ds)
	p.SetPrimaryMeasurementTableName(table.Name())

	result, err := p.Parse()
	require.NoError(t, err)
	assert.Len(t, result.IdentifierIDs, 1)
	assert.Len(t, result.ExpressionTrees, 1)
}

func TestIntegerLiteralWidening(t *testing.T) {
	tests := []struct {
		text string
		typ  value.Type
	}{
		{"42", value.Int32},
		{"5000000000", value.Int64},
	}
	for _, tt := range tests {
		v := lowerIntegerLiteral(tt.text)
		assert.Equal(t, tt.typ, v.Type())
	}
}

func TestNumericLiteralLowering(t *testing.T) {
	tests := []struct {
		text string
		typ  value.Type
	}{
		{"60.0", value.Decimal},
		{"1.5e3", value.Double},
		{"1.5E-3", value.Double},
	}
	for _, tt := range tests {
		v, err := lowerNumericLiteral(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.typ, v.Type())
	}
}
