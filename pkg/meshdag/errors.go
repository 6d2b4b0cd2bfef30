package meshdag

import "fmt"

// MalformedInputErrorKind distinguishes the ways a RawMesh can fail
// precondition checks (spec.md §7).
type MalformedInputErrorKind int

const (
	// IndexCountNotTriangular means len(Indices) is not a multiple of 3.
	IndexCountNotTriangular MalformedInputErrorKind = iota
	// IndexOutOfRange means an index references a vertex that does not exist.
	IndexOutOfRange
	// NonFiniteComponent means a position or normal component is NaN or ±Inf.
	NonFiniteComponent
	// InvalidBounds means the supplied AABB is neither valid nor empty.
	InvalidBounds
)

func (k MalformedInputErrorKind) String() string {
	switch k {
	case IndexCountNotTriangular:
		return "index count not a multiple of 3"
	case IndexOutOfRange:
		return "index out of range"
	case NonFiniteComponent:
		return "non-finite vertex component"
	case InvalidBounds:
		return "invalid bounds"
	default:
		return fmt.Sprintf("MalformedInputErrorKind(%d)", int(k))
	}
}

// MalformedInputError reports a precondition violation on the raw mesh
// handed to Build. The build aborts without publishing a partial DAG.
type MalformedInputError struct {
	Kind  MalformedInputErrorKind
	Index int // triangle, vertex, or index-array position, whichever applies
	Msg   string
}

func (e *MalformedInputError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("meshdag: malformed input at index %d: %s (%s)", e.Index, e.Kind, e.Msg)
	}
	return fmt.Sprintf("meshdag: malformed input at index %d: %s", e.Index, e.Kind)
}
