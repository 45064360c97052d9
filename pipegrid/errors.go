package pipegrid

import "errors"

var (
	// ErrMalformedGrid indicates the input has no rows, no columns, or rows of differing lengths.
	ErrMalformedGrid = errors.New("pipegrid: grid must be non-empty and rectangular")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("pipegrid: coordinate out of bounds")
	// ErrNoStart indicates the grid holds no start symbol.
	ErrNoStart = errors.New("pipegrid: no start cell")
	// ErrAmbiguousStart indicates more than two neighbors connect back to the start cell.
	ErrAmbiguousStart = errors.New("pipegrid: start connects in more than two directions")
	// ErrInvalidTraversal indicates a symbol was entered from a side it does not connect to.
	ErrInvalidTraversal = errors.New("pipegrid: invalid traversal")
	// ErrNotAdjacent indicates two coordinates are not neighbors (orthogonal or diagonal).
	ErrNotAdjacent = errors.New("pipegrid: coordinates are not adjacent")
)
