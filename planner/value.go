package planner

// Value is the intermediate result produced while folding a WHERE expression.
// It is a closed set: the combination rules in PlanExpr type-switch over the
// concrete kinds below, and any pairing without a rule is a TypeMismatchError
// rather than a panic.
type Value interface {
	value()
}

// Strings holds the segments of a compound identifier,
// e.g. ["pod", "status", "phase"].
type Strings []string

// String holds the text of a quoted string literal.
type String string

// Queries is an ordered clause chain. Order follows left-to-right parse order
// of the WHERE expression.
type Queries []Query

func (Strings) value() {}
func (String) value()  {}
func (Query) value()   {}
func (Queries) value() {}
