// Package filterexpr is the library surface of the filter expression
// engine: FilterExpressionParser, a set of one-shot convenience
// functions, the Evaluator, and the Statement Executor.
package filterexpr

import (
	"strings"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/guid"
	"github.com/delkyd/gsf/logger"
	"github.com/delkyd/gsf/parser"
)

// FilterExpressionParser parses and evaluates one filter-statement-list
// against a bound DataSet, accumulating matched signal IDs and/or rows.
// Construction uses explicit setters for every input, an Evaluate()
// that does the work, and accessors for the accumulated results.
type FilterExpressionParser struct {
	filterText    string
	dataSet       *dataset.DataSet
	primaryTable  string
	tableIDFields map[string]dataset.MeasurementTableIDFields
	trackSignalIDs bool
	trackRows      bool
	log            logger.Logger

	filteredSignalIDs   []guid.Guid
	filteredSignalIDSet map[guid.Guid]struct{}
	filteredRows        []*dataset.DataRow
}

// Option configures a FilterExpressionParser at construction time,
// layered over the mandatory setter methods below.
type Option func(*FilterExpressionParser)

func WithDataSet(ds *dataset.DataSet) Option {
	return func(p *FilterExpressionParser) { p.SetDataSet(ds) }
}

func WithPrimaryMeasurementTableName(name string) Option {
	return func(p *FilterExpressionParser) { p.SetPrimaryMeasurementTableName(name) }
}

func WithMeasurementTableIDFields(table string, fields dataset.MeasurementTableIDFields) Option {
	return func(p *FilterExpressionParser) { p.SetMeasurementTableIDFields(table, fields) }
}

func WithTrackFilteredSignalIDs(track bool) Option {
	return func(p *FilterExpressionParser) { p.SetTrackFilteredSignalIDs(track) }
}

func WithTrackFilteredRows(track bool) Option {
	return func(p *FilterExpressionParser) { p.SetTrackFilteredRows(track) }
}

func WithLogger(l logger.Logger) Option {
	return func(p *FilterExpressionParser) { p.log = l }
}

// New constructs a FilterExpressionParser over filterText.
func New(filterText string, opts ...Option) *FilterExpressionParser {
	p := &FilterExpressionParser{
		filterText:     filterText,
		tableIDFields:  make(map[string]dataset.MeasurementTableIDFields),
		trackSignalIDs: true,
		trackRows:      false,
		log:            logger.GetDefault(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *FilterExpressionParser) SetDataSet(ds *dataset.DataSet) { p.dataSet = ds }

func (p *FilterExpressionParser) SetPrimaryMeasurementTableName(name string) {
	p.primaryTable = name
}

func (p *FilterExpressionParser) SetMeasurementTableIDFields(table string, fields dataset.MeasurementTableIDFields) {
	p.tableIDFields[strings.ToUpper(table)] = fields
}

func (p *FilterExpressionParser) SetTrackFilteredSignalIDs(track bool) { p.trackSignalIDs = track }

func (p *FilterExpressionParser) SetTrackFilteredRows(track bool) { p.trackRows = track }

// Evaluate parses the bound filter text and runs every FILTER
// statement and identifier statement it contains, populating
// FilteredSignalIDs/FilteredRows. It clears all accumulators on entry,
// so calling Evaluate again re-parses and re-runs from scratch rather
// than accumulating across calls.
func (p *FilterExpressionParser) Evaluate() error {
	p.filteredSignalIDs = nil
	p.filteredSignalIDSet = make(map[guid.Guid]struct{})
	p.filteredRows = nil

	pp := parser.New(p.filterText)
	pp.SetDataSet(p.dataSet)
	pp.SetPrimaryMeasurementTableName(p.primaryTable)
	for table, fields := range p.tableIDFields {
		pp.SetMeasurementTableIDFields(table, fields)
	}

	result, err := pp.Parse()
	if err != nil {
		p.log.Error("failed to parse filter expression: %v", err)
		return err
	}

	for _, match := range result.IdentifierIDs {
		if !match.Guid.IsZero() {
			p.considerSignalID(match.Guid)
		}
		if match.Row == nil {
			if match.Guid.IsZero() {
				p.log.Warn("identifier statement did not resolve to a row")
			}
			continue
		}
		p.addMatch(match.Row)
	}

	for _, tree := range result.ExpressionTrees {
		p.log.Debug("evaluating expression tree against table %q", tree.Table.Name())
		fields := p.idFieldsFor(tree.Table.Name())
		rows, err := runTree(tree, p.trackSignalIDs, fields, p.filteredSignalIDSet)
		if err != nil {
			p.log.Error("failed to evaluate expression tree: %v", err)
			return err
		}
		for _, row := range rows {
			p.recordMatchedRow(row, fields)
		}
	}

	return nil
}

// considerSignalID records id directly if it hasn't already been
// accumulated in this Evaluate() call, and reports whether it was new.
// Used for a bare GUID identifier statement, which contributes its
// signal ID independent of whether it matched a row in the bound
// measurement table.
func (p *FilterExpressionParser) considerSignalID(id guid.Guid) bool {
	if _, seen := p.filteredSignalIDSet[id]; seen {
		return false
	}
	p.filteredSignalIDSet[id] = struct{}{}
	if p.trackSignalIDs {
		p.filteredSignalIDs = append(p.filteredSignalIDs, id)
	}
	return true
}

// addMatch records an identifier-statement row match: its signal ID
// (if any, and not the zero Guid, deduplicating against everything
// accumulated so far) and the row itself.
func (p *FilterExpressionParser) addMatch(row *dataset.DataRow) {
	fields := p.idFieldsFor(row.Table().Name())
	if id, ok := signalIDFor(row, fields); ok && !id.IsZero() {
		if !p.considerSignalID(id) {
			return
		}
	}
	if p.trackRows {
		p.filteredRows = append(p.filteredRows, row)
	}
}

// recordMatchedRow transcribes one row the statement executor's scan
// already matched and deduplicated into the accumulators, in the
// scan's final (post-sort) order. No further dedup check is needed:
// runTree's scan loop already guaranteed uniqueness against
// filteredSignalIDSet before row entered its matched set.
func (p *FilterExpressionParser) recordMatchedRow(row *dataset.DataRow, fields dataset.MeasurementTableIDFields) {
	if p.trackSignalIDs {
		if id, ok := signalIDFor(row, fields); ok && !id.IsZero() {
			p.filteredSignalIDs = append(p.filteredSignalIDs, id)
		}
	}
	if p.trackRows {
		p.filteredRows = append(p.filteredRows, row)
	}
}

func (p *FilterExpressionParser) idFieldsFor(table string) dataset.MeasurementTableIDFields {
	if f, ok := p.tableIDFields[strings.ToUpper(table)]; ok {
		return f
	}
	return dataset.DefaultMeasurementTableIDFields()
}

// FilteredSignalIDs returns the deduplicated signal IDs matched by the
// most recent Evaluate() call, in first-match order.
func (p *FilterExpressionParser) FilteredSignalIDs() []guid.Guid {
	return p.filteredSignalIDs
}

// FilteredSignalIDSet returns the same signal IDs as a set, for O(1)
// membership testing.
func (p *FilterExpressionParser) FilteredSignalIDSet() map[guid.Guid]struct{} {
	return p.filteredSignalIDSet
}

// FilteredRows returns the matched rows from the most recent
// Evaluate() call, present only if SetTrackFilteredRows(true) was
// called before Evaluate.
func (p *FilterExpressionParser) FilteredRows() []*dataset.DataRow {
	return p.filteredRows
}
