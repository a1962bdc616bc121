package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/guid"
	"github.com/delkyd/gsf/value"
)

// setCell parses raw text into the Value a column's DataType expects
// and sets it on row. An unparseable or empty cell is left null.
func setCell(row *dataset.DataRow, index int, typ dataset.DataType, raw string) {
	if raw == "" {
		return
	}
	switch typ {
	case dataset.Boolean:
		if b, err := strconv.ParseBool(raw); err == nil {
			row.SetValue(index, value.NewBoolean(b))
		}
	case dataset.Int64, dataset.UInt8, dataset.UInt16, dataset.UInt32, dataset.UInt64:
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			row.SetValue(index, value.NewInt64(i))
		}
	case dataset.Int8, dataset.Int16, dataset.Int32:
		if i, err := strconv.ParseInt(raw, 10, 32); err == nil {
			row.SetValue(index, value.NewInt32(int32(i)))
		}
	case dataset.Double:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			row.SetValue(index, value.NewDouble(f))
		}
	case dataset.Single:
		if f, err := strconv.ParseFloat(raw, 32); err == nil {
			row.SetValue(index, value.NewSingle(float32(f)))
		}
	case dataset.GuidType:
		if g, err := guid.Parse(raw); err == nil {
			row.SetValue(index, value.NewGuid(g))
		}
	case dataset.DateTime:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			row.SetValue(index, value.NewDateTime(t))
		}
	default:
		row.SetValue(index, value.NewString(raw))
	}
}

// writeCSV prints rows as CSV with a header line drawn from table's
// columns.
func writeCSV(w io.Writer, table *dataset.DataTable, rows []*dataset.DataRow) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, len(table.Columns()))
	for i, c := range table.Columns() {
		header[i] = c.Name()
	}
	cw.Write(header)

	for _, row := range rows {
		record := make([]string, len(table.Columns()))
		for i, c := range table.Columns() {
			v := row.Value(c.Index())
			if v.IsNull() {
				record[i] = ""
			} else {
				record[i] = v.String()
			}
		}
		cw.Write(record)
	}
}
