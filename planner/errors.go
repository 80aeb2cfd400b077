package planner

import (
	"fmt"
	"strings"
)

// UnsupportedError reports an expression construct outside the supported
// WHERE subset.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("not supported: %s", e.Feature)
}

// TypeMismatchError reports an operand pairing the combination rules have no
// entry for.
type TypeMismatchError struct {
	Left  Value
	Right Value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch L: %T, R: %T", e.Left, e.Right)
}

// ArityError reports a compound identifier that does not have exactly three
// segments where a resource field path is required.
type ArityError struct {
	Segments []string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf(
		"WHERE only supports three segment compound identifiers like 'pod.status.phase', got %q",
		strings.Join(e.Segments, "."),
	)
}
