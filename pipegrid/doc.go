// Package pipegrid treats a 2D grid of pipe connector symbols as an
// immutable lookup table, answering the adjacency and transition queries
// needed to follow the closed loop that passes through the start cell.
//
// What:
//
//   - PipeGrid wraps a rectangular grid of Symbols ('|', '-', 'L', 'J', '7', 'F', 'S', '.').
//   - Locates the start cell and the (at most two) pipes that connect back to it.
//   - Encodes the six pipe transition rules as a closed lookup table (NextDirection).
//   - Relates two adjacent or diagonal coordinates by compass Direction (RelativeDirection).
//   - Traces the loop sequentially from the start cell (TraceLoop).
//
// Why:
//
//   - The grid is shared read-only by several concurrent walkers; all methods
//     are pure queries once Load returns, so no locking is needed.
//   - The connector set is closed and known at compile time, so lookups are
//     table-driven rather than dispatched through interfaces.
//
// Coordinates:
//
//	X grows eastwards (column index), Y grows southwards (row index).
//	North is therefore (0,-1) and South is (0,+1).
//
// Complexity:
//
//   - Load / Parse:   O(W×H) time and memory (deep copy).
//   - FindStart:      O(W×H) row-major scan.
//   - SymbolAt, NextDirection, RelativeDirection, Advance: O(1).
//   - TraceLoop:      O(L) where L is the loop length.
//
// Errors:
//
//   - ErrMalformedGrid: input has no rows, no columns, or ragged rows.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrNoStart: no cell holds the start symbol.
//   - ErrAmbiguousStart: more than two neighbors connect back to the start.
//   - ErrInvalidTraversal: a symbol cannot be entered from the given side.
//   - ErrNotAdjacent: two coordinates are identical or farther than one cell apart.
package pipegrid
