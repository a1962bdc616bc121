package expr

// Visitor is invoked once per node during Walk, in a single pre-order
// pass. Returning false stops descent into the current node's
// children (but Walk continues with siblings already queued).
type Visitor interface {
	Visit(e Expression) (descend bool)
}

// Walk visits e and, if the Visitor asks to descend, each of its
// children, depth-first.
func Walk(v Visitor, e Expression) {
	if e == nil || !v.Visit(e) {
		return
	}
	switch n := e.(type) {
	case *Literal, *Column:
		// leaves
	case *Unary:
		Walk(v, n.Operand)
	case *Operator:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *InList:
		Walk(v, n.Value)
		for _, arg := range n.Arguments {
			Walk(v, arg)
		}
	case *Function:
		for _, arg := range n.Arguments {
			Walk(v, arg)
		}
	}
}

// visitFunc adapts a plain function to the Visitor interface.
type visitFunc func(Expression) bool

func (f visitFunc) Visit(e Expression) bool { return f(e) }

// Inspect walks e calling fn at each node; a common convenience over
// Walk for diagnostics and tests that don't need a named Visitor type.
func Inspect(e Expression, fn func(Expression) bool) {
	Walk(visitFunc(fn), e)
}

// CountColumns returns the number of Column references in e.
func CountColumns(e Expression) int {
	n := 0
	Inspect(e, func(node Expression) bool {
		if _, ok := node.(*Column); ok {
			n++
		}
		return true
	})
	return n
}
