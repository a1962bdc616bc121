package parser

import (
	"strings"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/expr"
)

// parseFunctionCall lowers an IDENT immediately followed by '(' into a
// Function node, applying the function-name lowering rules: a
// case-insensitive match against the closed built-in set, the
// COALESCE/ISNULL alias, and the SUBSTR* prefix rule (SUBSTRING and
// SUBSTR both lower to SubString). p.cur is the '(' on entry.
func (p *Parser) parseFunctionCall(table *dataset.DataTable, name string) (expr.Expression, error) {
	pos := p.cur.Pos
	args, err := p.parseArgList(table)
	if err != nil {
		return nil, err
	}

	kind, minArgs, maxArgs, ok := lookupFunction(name)
	if !ok {
		return nil, resolutionError(p.text, pos, "unknown function %q", name)
	}
	if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
		return nil, structuralError(p.text, pos, "%s expects between %d and %d arguments, got %d", name, minArgs, maxArgs, len(args))
	}

	return &expr.Function{Kind: kind, Arguments: args}, nil
}

// lookupFunction returns the FunctionKind for name along with its
// [min,max] argument-count bounds (-1 max means unbounded), or ok=false
// if name isn't one of the eight built-ins.
func lookupFunction(name string) (kind expr.FunctionKind, min, max int, ok bool) {
	upper := strings.ToUpper(name)
	switch {
	case upper == "COALESCE" || upper == "ISNULL":
		return expr.FuncCoalesce, 1, -1, true
	case upper == "CONVERT":
		return expr.FuncConvert, 2, 2, true
	case upper == "IIF":
		return expr.FuncIIf, 3, 3, true
	case upper == "ISREGEXMATCH":
		return expr.FuncIsRegExMatch, 2, 2, true
	case upper == "LEN":
		return expr.FuncLen, 1, 1, true
	case upper == "REGEXVAL":
		return expr.FuncRegExVal, 2, 2, true
	case strings.HasPrefix(upper, "SUBSTR"):
		return expr.FuncSubString, 2, 3, true
	case upper == "TRIM":
		return expr.FuncTrim, 1, 1, true
	default:
		return 0, 0, 0, false
	}
}
