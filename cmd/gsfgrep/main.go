// Command gsfgrep runs a filter expression against CSV-backed tables
// and prints the matching rows. It exists to give the filter
// expression engine a runnable entry point; the engine itself is a
// library.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/filterexpr"
)

func main() {
	csvDir := flag.String("csv", "", "directory of CSV files, one per table, first row is the header")
	flag.Parse()

	args := flag.Args()
	if *csvDir == "" || len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: gsfgrep -csv <dir> <filter text>")
		os.Exit(2)
	}
	filterText := strings.Join(args, " ")

	ds, firstTable, err := loadDataSet(*csvDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gsfgrep:", err)
		os.Exit(1)
	}

	tableName := firstTable
	if name := tableNameFromFilterText(filterText); name != "" {
		tableName = name
	}
	table, ok := ds.Table(tableName)
	if !ok {
		fmt.Fprintf(os.Stderr, "gsfgrep: no such table %q\n", tableName)
		os.Exit(1)
	}

	p := filterexpr.New(filterText,
		filterexpr.WithDataSet(ds),
		filterexpr.WithPrimaryMeasurementTableName(table.Name()),
		filterexpr.WithTrackFilteredSignalIDs(false),
		filterexpr.WithTrackFilteredRows(true))

	if err := p.Evaluate(); err != nil {
		fmt.Fprintln(os.Stderr, "gsfgrep:", err)
		os.Exit(1)
	}

	writeCSV(os.Stdout, table, p.FilteredRows())
}

// tableNameFromFilterText extracts the table name from a full FILTER
// statement, returning "" if filterText contains no FILTER keyword
// (e.g. a list of identifier statements). The text itself is passed to
// the parser as given; it is never wrapped in a FILTER statement.
func tableNameFromFilterText(filterText string) string {
	fields := strings.Fields(filterText)
	for i, f := range fields {
		if strings.EqualFold(f, "FILTER") && i+1 < len(fields) {
			if strings.EqualFold(fields[i+1], "TOP") && i+3 < len(fields) {
				return fields[i+3]
			}
			return fields[i+1]
		}
	}
	return ""
}

func loadDataSet(dir string) (*dataset.DataSet, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", err
	}
	ds := dataset.NewDataSet()
	first := ""
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		table, err := loadCSVTable(filepath.Join(dir, e.Name()), name)
		if err != nil {
			return nil, "", err
		}
		ds.AddTable(table)
		if first == "" {
			first = name
		}
	}
	return ds, first, nil
}

func loadCSVTable(path, name string) (*dataset.DataTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return dataset.NewDataTable(name), nil
	}

	header := records[0]
	body := records[1:]
	types := sniffColumnTypes(header, body)

	table := dataset.NewDataTable(name)
	for i, col := range header {
		table.AddColumn(col, types[i])
	}
	for _, rec := range body {
		row := table.AddRow()
		for i, col := range table.Columns() {
			if i >= len(rec) {
				continue
			}
			setCell(row, col.Index(), col.Type(), rec[i])
		}
	}
	return table, nil
}

// sniffColumnTypes picks a DataType per column from the first non-empty
// cell in that column, trying in preference order Boolean, Int64,
// Double, Guid, String. Later cells are not consulted; a later cell
// that does not parse as the chosen type is left null.
func sniffColumnTypes(header []string, rows [][]string) []dataset.DataType {
	types := make([]dataset.DataType, len(header))
	for i := range header {
		types[i] = dataset.String
		for _, rec := range rows {
			if i >= len(rec) || rec[i] == "" {
				continue
			}
			types[i] = sniffType(rec[i])
			break
		}
	}
	return types
}

func sniffType(s string) dataset.DataType {
	if _, err := strconv.ParseBool(s); err == nil {
		return dataset.Boolean
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return dataset.Int64
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return dataset.Double
	}
	if len(s) == 36 && strings.Count(s, "-") == 4 {
		return dataset.GuidType
	}
	return dataset.String
}
