package parser

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xwb1989/sqlparser"

	"kubesql/planner"
)

// Statement clauses that must be present before a plan can be built.
var (
	ErrSelectProjectionsRequired = errors.New("SELECT statement is required to call the given namespace(s)")
	ErrSelectFromRequired        = errors.New("FROM statement is required to call the given context(s)")
	ErrWhereRequired             = errors.New("WHERE statement is required in order to set --field-selector")
)

// UnsupportedError reports a statement shape outside the supported subset.
// Each refused shape carries its own description so callers can present an
// actionable diagnostic.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("not supported: %s", e.Feature)
}

// QueryPlan is the translation result: which namespaces to list, in which
// contexts, filtered by which clause chain. It is built fresh per Parse call
// and never mutated afterwards.
type QueryPlan struct {
	Namespaces []string
	Contexts   []string
	Queries    []planner.Query
}

// Parse translates a restricted SQL sentence into a QueryPlan.
//
// Hyphen is not a legal identifier character in the grammar, so every '-' is
// rewritten to '_' before parsing and rewritten back in every produced
// namespace, context and literal. The round trip cannot tell a literal
// underscore from an escaped hyphen; underscores always come back as hyphens.
//
// Reserved SQL words used as names (e.g. a namespace called "default") must be
// backquoted in the query text; the backquotes never reach the plan.
func Parse(sql string) (*QueryPlan, error) {
	stmt, err := sqlparser.Parse(strings.ReplaceAll(sql, "-", "_"))
	if err != nil {
		return nil, errors.Wrap(err, "parse sql")
	}

	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, &UnsupportedError{Feature: fmt.Sprintf("statement type %T", stmt)}
	}

	namespaces, err := extractNamespaces(sel.SelectExprs)
	if err != nil {
		return nil, err
	}

	contexts, err := extractContexts(sel.From)
	if err != nil {
		return nil, err
	}

	queries, err := extractQueries(sel.Where)
	if err != nil {
		return nil, err
	}

	return &QueryPlan{
		Namespaces: namespaces,
		Contexts:   contexts,
		Queries:    queries,
	}, nil
}

func extractNamespaces(exprs sqlparser.SelectExprs) ([]string, error) {
	if len(exprs) == 0 {
		return nil, ErrSelectProjectionsRequired
	}

	namespaces := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		switch e := expr.(type) {
		case *sqlparser.AliasedExpr:
			if !e.As.IsEmpty() {
				return nil, &UnsupportedError{Feature: "SELECT statement does not support aliased selector"}
			}
			col, ok := e.Expr.(*sqlparser.ColName)
			if !ok {
				return nil, &UnsupportedError{Feature: fmt.Sprintf("SELECT expression type %T", e.Expr)}
			}
			namespaces = append(namespaces, unescape(colNameString(col)))
		case *sqlparser.StarExpr:
			if !e.TableName.IsEmpty() {
				return nil, &UnsupportedError{Feature: "SELECT statement does not support qualified wildcard selector"}
			}
			return nil, &UnsupportedError{Feature: "SELECT statement does not support wildcard selector"}
		default:
			return nil, &UnsupportedError{Feature: fmt.Sprintf("SELECT expression type %T", expr)}
		}
	}
	return namespaces, nil
}

func extractContexts(from sqlparser.TableExprs) ([]string, error) {
	if len(from) == 0 || isImplicitFrom(from) {
		return nil, ErrSelectFromRequired
	}

	contexts := make([]string, 0, len(from))
	for _, expr := range from {
		switch t := expr.(type) {
		case *sqlparser.AliasedTableExpr:
			name, ok := t.Expr.(sqlparser.TableName)
			if !ok {
				return nil, &UnsupportedError{Feature: "FROM statement does not support derived tables"}
			}
			if !t.As.IsEmpty() {
				return nil, &UnsupportedError{Feature: "FROM statement does not support table aliases"}
			}
			if t.Hints != nil {
				return nil, &UnsupportedError{Feature: "FROM statement does not support index hints"}
			}
			contexts = append(contexts, unescape(tableNameString(name)))
		case *sqlparser.JoinTableExpr:
			return nil, &UnsupportedError{Feature: "FROM statement does not support JOIN"}
		case *sqlparser.ParenTableExpr:
			return nil, &UnsupportedError{Feature: "FROM statement does not support nested table expressions"}
		default:
			return nil, &UnsupportedError{Feature: fmt.Sprintf("FROM expression type %T", expr)}
		}
	}
	return contexts, nil
}

func extractQueries(where *sqlparser.Where) ([]planner.Query, error) {
	if where == nil {
		return nil, ErrWhereRequired
	}

	value, err := planner.PlanExpr(where.Expr)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case planner.Query:
		return []planner.Query{v}, nil
	case planner.Queries:
		return v, nil
	default:
		return nil, &UnsupportedError{Feature: fmt.Sprintf("query plan %T", value)}
	}
}

// isImplicitFrom reports whether the FROM clause is the grammar's synthetic
// "dual" table, which is what a SELECT without FROM parses to.
func isImplicitFrom(from sqlparser.TableExprs) bool {
	if len(from) != 1 {
		return false
	}
	aliased, ok := from[0].(*sqlparser.AliasedTableExpr)
	if !ok {
		return false
	}
	name, ok := aliased.Expr.(sqlparser.TableName)
	return ok && name.Qualifier.IsEmpty() && name.Name.String() == "dual"
}

// colNameString renders a column identifier from its raw parts, so backquoted
// reserved words come out bare.
func colNameString(col *sqlparser.ColName) string {
	var parts []string
	if !col.Qualifier.Qualifier.IsEmpty() {
		parts = append(parts, col.Qualifier.Qualifier.String())
	}
	if !col.Qualifier.IsEmpty() {
		parts = append(parts, col.Qualifier.Name.String())
	}
	return strings.Join(append(parts, col.Name.String()), ".")
}

func tableNameString(name sqlparser.TableName) string {
	if !name.Qualifier.IsEmpty() {
		return name.Qualifier.String() + "." + name.Name.String()
	}
	return name.Name.String()
}

func unescape(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}
