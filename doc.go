/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package gsf implements a SQL-like filter expression engine for an
in-memory, multi-table tabular dataset.

A filter statement selects rows from a named table by a WHERE clause,
optionally bounded by TOP and sorted by ORDER BY:

	FILTER TOP 10 ActiveMeasurements WHERE SignalType = 'FREQ' ORDER BY PointTag ASC

A statement list may instead (or additionally) name signals directly
by GUID, measurement key, or point tag, separated by semicolons:

	7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb; PPA:2; "PMU2-STAT"

# Basic usage

	table := dataset.NewDataTable("ActiveMeasurements")
	table.AddColumn("SignalID", dataset.GuidType)
	table.AddColumn("PointTag", dataset.String)
	table.AddColumn("SignalType", dataset.String)
	// ... populate rows ...

	rows, err := filterexpr.Select(table, "FILTER ActiveMeasurements WHERE SignalType = 'FREQ'")

For repeated evaluation against the same dataset, or to also collect
deduplicated signal IDs, construct a FilterExpressionParser directly:

	p := filterexpr.New(filterText,
		filterexpr.WithDataSet(ds),
		filterexpr.WithPrimaryMeasurementTableName("ActiveMeasurements"),
		filterexpr.WithTrackFilteredRows(true),
	)
	if err := p.Evaluate(); err != nil {
		// ...
	}
	rows := p.FilteredRows()
	ids := p.FilteredSignalIDs()

# Packages

  - guid: fixed 16-byte signal identifier
  - dataset: in-memory DataSet/DataTable/DataRow model
  - value: the tagged-union runtime value and its arithmetic/comparison/
    coercion rules
  - internal/lexer: the filter statement tokenizer
  - expr: the typed expression tree produced by parsing a WHERE clause
  - parser: the recursive-descent parser building expr.Expression trees
    and resolving identifiers against a DataSet
  - filterexpr: the evaluator, the statement executor (TOP/ORDER BY/
    dedup), and the FilterExpressionParser library surface
  - logger: leveled logging used by FilterExpressionParser.Evaluate
  - cmd/gsfgrep: a small CLI front end loading CSV tables and running a
    filter statement against them

See the package docs of parser and filterexpr for the filter statement
grammar and evaluation semantics in detail.
*/
package gsf
