package planner

import (
	"fmt"
	"strings"

	"github.com/xwb1989/sqlparser"
)

// PlanExpr folds a WHERE expression into a Value, bottom-up. It is purely
// structural: it inspects each node and its immediate children only and never
// needs cluster state, so concurrent calls on independent expressions are safe.
//
// The legal shapes are a single comparison (result Query), a two-comparison
// chain (result Queries of length 2) and a longer left-associative chain
// (result Queries); everything else fails with a typed error.
func PlanExpr(expr sqlparser.Expr) (Value, error) {
	switch e := expr.(type) {
	case *sqlparser.ColName:
		return planColName(e), nil
	case *sqlparser.SQLVal:
		return planSQLVal(e)
	case *sqlparser.ComparisonExpr:
		return planBinaryOp(e.Left, e.Operator, e.Right)
	case *sqlparser.AndExpr:
		return planBinaryOp(e.Left, ChainAnd, e.Right)
	case *sqlparser.OrExpr:
		return planBinaryOp(e.Left, ChainOr, e.Right)
	default:
		return nil, &UnsupportedError{Feature: fmt.Sprintf("expression type %T", expr)}
	}
}

// planColName collects the identifier segments in source order. The grammar
// carries at most three: qualifier-of-qualifier, qualifier, name.
func planColName(col *sqlparser.ColName) Value {
	segments := make(Strings, 0, 3)
	if !col.Qualifier.Qualifier.IsEmpty() {
		segments = append(segments, col.Qualifier.Qualifier.String())
	}
	if !col.Qualifier.IsEmpty() {
		segments = append(segments, col.Qualifier.Name.String())
	}
	return append(segments, col.Name.String())
}

func planSQLVal(val *sqlparser.SQLVal) (Value, error) {
	if val.Type != sqlparser.StrVal {
		return nil, &UnsupportedError{Feature: fmt.Sprintf("literal %s", sqlparser.String(val))}
	}
	return String(val.Val), nil
}

func planBinaryOp(left sqlparser.Expr, op string, right sqlparser.Expr) (Value, error) {
	l, err := PlanExpr(left)
	if err != nil {
		return nil, err
	}
	r, err := PlanExpr(right)
	if err != nil {
		return nil, err
	}

	switch l := l.(type) {
	case Strings:
		if s, ok := r.(String); ok {
			return newQuery(l, s, op)
		}
	case Query:
		if q, ok := r.(Query); ok {
			q.ChainOp = op
			return Queries{l, q}, nil
		}
	case Queries:
		if q, ok := r.(Query); ok {
			q.ChainOp = op
			return append(l, q), nil
		}
	}
	return nil, &TypeMismatchError{Left: l, Right: r}
}

func newQuery(segments Strings, literal String, op string) (Value, error) {
	if len(segments) != 3 {
		return nil, &ArityError{Segments: segments}
	}
	return Query{
		Kind:   segments[0],
		Field1: segments[1],
		Field2: segments[2],
		Op:     op,
		Value:  strings.ReplaceAll(string(literal), "_", "-"),
	}, nil
}
