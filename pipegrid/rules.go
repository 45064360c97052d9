package pipegrid

import "fmt"

// NextDirection returns the side a walker leaves sym through, given the
// side it arrived from (the position of the previous cell relative to
// the current one). Each pipe has exactly two valid arrival sides; the
// walker always leaves through the other one, so a pipe never sends a
// walker back the way it came.
//
// Ground, Start and any arrival side the pipe does not open to yield
// ErrInvalidTraversal: the walker has left the loop or the grid is corrupt.
// Complexity: O(1).
func NextDirection(sym Symbol, arrival Direction) (Direction, error) {
	sides, ok := sym.Connections()
	if !ok {
		return NoDirection, fmt.Errorf("%w: %v is not a pipe", ErrInvalidTraversal, sym)
	}
	switch arrival {
	case sides[0]:
		return sides[1], nil
	case sides[1]:
		return sides[0], nil
	default:
		return NoDirection, fmt.Errorf("%w: %v entered from %v", ErrInvalidTraversal, sym, arrival)
	}
}

// RelativeDirection returns where a lies relative to b.
// It is defined for the eight orthogonal and diagonal neighbors of b and
// satisfies RelativeDirection(a, b) == RelativeDirection(b, a).Opposite().
// Identical or distant pairs yield ErrNotAdjacent.
// Complexity: O(1).
func RelativeDirection(a, b Coordinate) (Direction, error) {
	dx, dy := a.X-b.X, a.Y-b.Y
	for d := North; d <= NorthWest; d++ {
		o := directionOffsets[d]
		if o[0] == dx && o[1] == dy {
			return d, nil
		}
	}
	return NoDirection, fmt.Errorf("%w: %v relative to %v", ErrNotAdjacent, a, b)
}

// Advance computes the cell after current for a walker that came from
// previous, applying NextDirection to the symbol under current.
// Returns ErrOutOfBounds if current or the departure cell lies outside g.
// Complexity: O(1).
func Advance(g *PipeGrid, previous, current Coordinate) (Coordinate, error) {
	sym, err := g.SymbolAt(current)
	if err != nil {
		return current, err
	}
	arrival, err := RelativeDirection(previous, current)
	if err != nil {
		return current, err
	}
	departure, err := NextDirection(sym, arrival)
	if err != nil {
		return current, fmt.Errorf("at %v: %w", current, err)
	}
	next := current.Step(departure)
	if !g.InBounds(next) {
		return current, fmt.Errorf("%w: %v leaves %v towards %v", ErrOutOfBounds, sym, current, departure)
	}

	return next, nil
}
