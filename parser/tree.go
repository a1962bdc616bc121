package parser

import (
	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/expr"
	"github.com/delkyd/gsf/guid"
)

// OrderByTerm is one key of an ORDER BY clause.
type OrderByTerm struct {
	Column     *dataset.DataColumn
	Descending bool
}

// ExpressionTree is one parsed FILTER statement: the table it scans,
// its typed WHERE-clause Expression, an optional row cap applied
// before sorting, and optional multi-key ORDER BY terms. Built bottom-up
// via direct recursive return values rather than a parse-tree-node memo
// map, so there is no parent-pointer bookkeeping to thread through.
type ExpressionTree struct {
	Table        *dataset.DataTable
	Root         expr.Expression
	TopLimit     int // -1 means unlimited
	OrderByTerms []OrderByTerm
}

// Result bundles everything a parse of filter-statement text produces:
// zero or more FILTER statements (ExpressionTrees) and zero or more
// bare identifier statements, each resolved to an IdentifierMatch.
type Result struct {
	ExpressionTrees []*ExpressionTree
	IdentifierIDs   []IdentifierMatch
}

// IdentifierMatch is what a bare identifier statement (a GUID literal,
// a measurement-key literal, or a point-tag literal) resolved to: the
// row it matched in the relevant measurement table, if any, and, for a
// bare GUID literal, the GUID itself — which contributes directly to
// the result even when no row carries it.
type IdentifierMatch struct {
	Row  *dataset.DataRow
	Guid guid.Guid
}
