package filterexpr

import (
	"fmt"

	"github.com/delkyd/gsf/dataset"
	"github.com/delkyd/gsf/expr"
	"github.com/delkyd/gsf/value"
)

// evaluate reduces an Expression to a Value against a single row: a
// pure post-order tree reduction with null-propagation handled by the
// value package's operators.
func evaluate(e expr.Expression, row *dataset.DataRow) (value.Value, error) {
	switch n := e.(type) {
	case *expr.Literal:
		return n.Value, nil

	case *expr.Column:
		return row.Value(n.Column.Index()), nil

	case *expr.Unary:
		return evaluateUnary(n, row)

	case *expr.Operator:
		return evaluateOperator(n, row)

	case *expr.InList:
		return evaluateInList(n, row)

	case *expr.Function:
		return evaluateFunction(n, row)
	}
	return value.Value{}, fmt.Errorf("filterexpr: unsupported expression node %T", e)
}

func evaluateUnary(n *expr.Unary, row *dataset.DataRow) (value.Value, error) {
	if n.Op == expr.UnaryIsNull || n.Op == expr.UnaryIsNotNull {
		v, err := evaluate(n.Operand, row)
		if err != nil {
			return value.Value{}, err
		}
		isNull := v.IsNull()
		if n.Op == expr.UnaryIsNotNull {
			isNull = !isNull
		}
		return value.NewBoolean(isNull), nil
	}

	v, err := evaluate(n.Operand, row)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Op {
	case expr.UnaryPlus:
		return value.Identity(v)
	case expr.UnaryMinus:
		return value.Negate(v)
	case expr.UnaryNot:
		return value.Not(v)
	case expr.UnaryBitwiseNot:
		return bitwiseNot(v)
	}
	return value.Value{}, fmt.Errorf("filterexpr: unsupported unary operator %v", n.Op)
}

func bitwiseNot(v value.Value) (value.Value, error) {
	if v.IsNull() {
		return value.Null(v.Type()), nil
	}
	i, ok := v.AsInt64()
	if !ok {
		return value.Value{}, fmt.Errorf("filterexpr: ~ requires an integer operand, got %s", v.Type())
	}
	return value.NewInt64(^i), nil
}

func evaluateOperator(n *expr.Operator, row *dataset.DataRow) (value.Value, error) {
	left, err := evaluate(n.Left, row)
	if err != nil {
		return value.Value{}, err
	}
	right, err := evaluate(n.Right, row)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Op {
	case expr.OpAdd:
		return value.Add(left, right)
	case expr.OpSubtract:
		return value.Subtract(left, right)
	case expr.OpMultiply:
		return value.Multiply(left, right)
	case expr.OpDivide:
		return value.Divide(left, right)
	case expr.OpModulus:
		return value.Modulus(left, right)
	case expr.OpBitwiseAnd:
		return value.BitwiseAnd(left, right)
	case expr.OpBitwiseOr:
		return value.BitwiseOr(left, right)
	case expr.OpShiftLeft:
		return value.BitShiftLeft(left, right)
	case expr.OpShiftRight:
		return value.BitShiftRight(left, right)
	case expr.OpEqual:
		return value.Equal(left, right)
	case expr.OpNotEqual:
		return value.NotEqual(left, right)
	case expr.OpLess:
		return value.Less(left, right)
	case expr.OpLessOrEqual:
		return value.LessOrEqual(left, right)
	case expr.OpGreater:
		return value.Greater(left, right)
	case expr.OpGreaterOrEqual:
		return value.GreaterOrEqual(left, right)
	case expr.OpLike:
		return value.Like(left, right)
	case expr.OpNotLike:
		return value.NotLike(left, right)
	case expr.OpAnd:
		return value.And(left, right)
	case expr.OpOr:
		return value.Or(left, right)
	}
	return value.Value{}, fmt.Errorf("filterexpr: unsupported operator %v", n.Op)
}

// evaluateInList implements [NOT] IN (...) with SQL-style null
// propagation: a null subject, or a null comparison when no argument
// compares equal, yields a null result.
func evaluateInList(n *expr.InList, row *dataset.DataRow) (value.Value, error) {
	subject, err := evaluate(n.Value, row)
	if err != nil {
		return value.Value{}, err
	}
	if subject.IsNull() {
		return value.Null(value.Boolean), nil
	}

	sawNull := false
	for _, argExpr := range n.Arguments {
		arg, err := evaluate(argExpr, row)
		if err != nil {
			return value.Value{}, err
		}
		eq, err := value.Equal(subject, arg)
		if err != nil {
			return value.Value{}, err
		}
		if eq.IsNull() {
			sawNull = true
			continue
		}
		if b, _ := eq.Bool(); b {
			return value.NewBoolean(!n.Negated), nil
		}
	}
	if sawNull {
		return value.Null(value.Boolean), nil
	}
	return value.NewBoolean(n.Negated), nil
}

func evaluateFunction(n *expr.Function, row *dataset.DataRow) (value.Value, error) {
	args := make([]value.Value, len(n.Arguments))
	for i, a := range n.Arguments {
		v, err := evaluate(a, row)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	switch n.Kind {
	case expr.FuncCoalesce:
		return value.Coalesce(args), nil
	case expr.FuncConvert:
		typeName, _ := args[1].StringValue()
		return value.Convert(args[0], typeName), nil
	case expr.FuncIIf:
		return value.IIf(args[0], args[1], args[2])
	case expr.FuncIsRegExMatch:
		return value.IsRegExMatch(args[0], args[1])
	case expr.FuncLen:
		return value.Len(args[0])
	case expr.FuncRegExVal:
		return value.RegExVal(args[0], args[1])
	case expr.FuncSubString:
		if len(args) == 3 {
			return value.SubString(args[0], args[1], &args[2])
		}
		return value.SubString(args[0], args[1], nil)
	case expr.FuncTrim:
		return value.Trim(args[0])
	}
	return value.Value{}, fmt.Errorf("filterexpr: unsupported function kind %v", n.Kind)
}
