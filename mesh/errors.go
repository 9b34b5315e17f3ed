package mesh

import (
	"fmt"

	"github.com/wrenfield/trimesh/types"
)

// ErrorKind classifies the failures a mesh operation can report.
type ErrorKind int

const (
	// BadInput marks a request the mesh refuses outright: a degenerate
	// bootstrap triangle, a point outside the super-triangle, or a
	// malformed vertex pair.
	BadInput ErrorKind = iota
	// BudgetExhausted marks an operation that ran out of step budget
	// before it could finish legalizing or carving. The mesh is left in
	// an invariant-preserving but possibly not fully Delaunay state.
	BudgetExhausted
	// InvariantViolation marks a defensive check failing: a neighbor
	// back-pointer that doesn't round-trip or a post-cut triangle count
	// mismatch. It indicates a bug, not a bad caller input.
	InvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case BadInput:
		return "bad input"
	case BudgetExhausted:
		return "budget exhausted"
	case InvariantViolation:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every mesh operation. Tris names
// the triangles involved, when known, to help a caller dump the
// relevant neighborhood when debugging.
type Error struct {
	Kind ErrorKind
	Msg  string
	Tris []types.T
}

func (e *Error) Error() string {
	return fmt.Sprintf("mesh: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, &Error{Kind: BudgetExhausted}) matches any budget
// failure regardless of Msg and Tris. A bare ErrorKind is not an error
// value and cannot be passed to errors.Is.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func badInput(format string, args ...any) *Error {
	return &Error{Kind: BadInput, Msg: fmt.Sprintf(format, args...)}
}

func budgetExhausted(format string, args ...any) *Error {
	return &Error{Kind: BudgetExhausted, Msg: fmt.Sprintf(format, args...)}
}

func invariantViolation(tris []types.T, format string, args ...any) *Error {
	return &Error{Kind: InvariantViolation, Msg: fmt.Sprintf(format, args...), Tris: tris}
}
