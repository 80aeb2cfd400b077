package executor

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xwb1989/sqlparser"
	"k8s.io/apimachinery/pkg/fields"

	"kubesql/parser"
	"kubesql/planner"
)

// CompileSelectors compiles the clauses addressing one resource kind into
// field-selector strings, one per OR-group: clauses joined by AND share a
// selector, an OR starts a new one. The executor issues one list call per
// selector and unions the results.
func CompileSelectors(queries []planner.Query, kind parser.ResourceType) ([]string, error) {
	var selectors []string
	var group []fields.Selector

	flush := func() {
		if len(group) > 0 {
			selectors = append(selectors, fields.AndSelectors(group...).String())
			group = nil
		}
	}

	for _, q := range queries {
		if !strings.EqualFold(q.Kind, kind.String()) {
			continue
		}
		if q.ChainOp == planner.ChainOr {
			flush()
		}
		term, err := selectorTerm(q)
		if err != nil {
			return nil, err
		}
		group = append(group, term)
	}
	flush()

	return selectors, nil
}

// selectorTerm maps one clause to a field-selector term. Field selectors only
// know equality and inequality; the planner is permissive about comparators,
// so everything else is rejected here.
func selectorTerm(q planner.Query) (fields.Selector, error) {
	key := q.Field1 + "." + q.Field2
	switch q.Op {
	case sqlparser.EqualStr:
		return fields.OneTermEqualSelector(key, q.Value), nil
	case sqlparser.NotEqualStr:
		return fields.OneTermNotEqualSelector(key, q.Value), nil
	default:
		return nil, errors.Errorf("not supported operator for field selector: %s", q.Op)
	}
}
