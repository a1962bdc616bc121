package filterexpr

import (
	"fmt"
	"strings"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/parser"
	"github.com/delkyd/gsf/value"
)

// wrapAsFilterStatement auto-wraps a bare WHERE-clause expression into
// a full FILTER statement against table, if it isn't one already.
func wrapAsFilterStatement(table *dataset.DataTable, filterExpression string) string {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(filterExpression)), "FILTER ") {
		return filterExpression
	}
	return fmt.Sprintf("FILTER %s WHERE %s", table.Name(), filterExpression)
}

// GenerateExpressionTree parses a single FILTER statement (or bare
// WHERE-clause expression, auto-wrapped against table) into its
// ExpressionTree, resolving columns against table. It also sets table
// as the primary measurement table, so that any identifier statement
// embedded in filterText resolves against it.
func GenerateExpressionTree(table *dataset.DataTable, filterText string) (*parser.ExpressionTree, error) {
	text := wrapAsFilterStatement(table, filterText)

	ds := dataset.NewDataSet()
	ds.AddTable(table)

	pp := parser.New(text)
	pp.SetDataSet(ds)
	pp.SetPrimaryMeasurementTableName(table.Name())

	result, err := pp.Parse()
	if err != nil {
		return nil, err
	}
	if len(result.ExpressionTrees) == 0 {
		return nil, fmt.Errorf("filterexpr: %q did not contain a FILTER statement", filterText)
	}
	return result.ExpressionTrees[0], nil
}

// EvaluateRow evaluates filterText (a bare WHERE-clause expression or
// a full FILTER statement) against a single row of table, returning
// the Boolean (or other typed) result of its root expression without
// running the Statement Executor's scan/TOP/ORDER BY machinery.
func EvaluateRow(row *dataset.DataRow, table *dataset.DataTable, filterText string) (value.Value, error) {
	tree, err := GenerateExpressionTree(table, filterText)
	if err != nil {
		return value.Value{}, err
	}
	return evaluate(tree.Root, row)
}

// Select runs filterText as a full Statement Executor pass (TOP,
// ORDER BY, and all) against table and returns the matching rows. It
// sets row tracking on and signal-ID tracking off, per the convenience
// surface's contract.
func Select(table *dataset.DataTable, filterText string) ([]*dataset.DataRow, error) {
	tree, err := GenerateExpressionTree(table, filterText)
	if err != nil {
		return nil, err
	}
	return runTree(tree, false, dataset.MeasurementTableIDFields{}, nil)
}
