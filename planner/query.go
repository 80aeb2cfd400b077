package planner

// Chain operators joining consecutive queries of a chain.
const (
	ChainAnd = "AND"
	ChainOr  = "OR"
)

// Query is a single field-selector comparison,
// e.g. pod.status.phase = 'Running'.
type Query struct {
	// ChainOp joins this query to the previous query in its chain.
	// It is empty exactly when this query is the head of its chain.
	ChainOp string

	// Kind, Field1 and Field2 are the three segments of the compound
	// identifier on the left side of the comparison.
	Kind   string
	Field1 string
	Field2 string

	// Op is the comparison operator as the grammar spells it, e.g. "=", "!=".
	Op string

	// Value is the right-hand literal, with the underscore escape reversed.
	Value string
}
