package pipegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PipeGrid is an immutable grid of Symbols. Width and Height define
// dimensions; cells[y][x] holds the symbol at Coordinate{x, y}.
// Once built it is safe for concurrent readers without synchronization.
type PipeGrid struct {
	Width, Height int
	cells         [][]Symbol
}

// Load constructs a PipeGrid from a non-empty, rectangular slice of rune rows.
// It copies the input so later mutation of rows has no effect.
// Returns ErrMalformedGrid if there are no rows, no columns, or any row
// length differs from the first.
// Complexity: O(W×H) time and memory.
func Load(rows [][]rune) (*PipeGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]Symbol, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedGrid, y, len(row), w)
		}
		cells[y] = make([]Symbol, w)
		for x, r := range row {
			cells[y][x] = ParseSymbol(r)
		}
	}

	return &PipeGrid{Width: w, Height: h, cells: cells}, nil
}

// Parse reads one grid row per line from r and builds a PipeGrid with Load.
// Carriage returns are trimmed and trailing blank lines are ignored.
func Parse(r io.Reader) (*PipeGrid, error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipegrid: read input: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return Load(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*PipeGrid, error) {
	return Parse(strings.NewReader(s))
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *PipeGrid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// SymbolAt returns the symbol stored at c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *PipeGrid) SymbolAt(c Coordinate) (Symbol, error) {
	if !g.InBounds(c) {
		return Ground, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}
	return g.cells[c.Y][c.X], nil
}

// FindStart scans the grid in row-major order and returns the first
// cell holding Start, or ErrNoStart.
// Complexity: O(W×H).
func (g *PipeGrid) FindStart() (Coordinate, error) {
	for y, row := range g.cells {
		for x, s := range row {
			if s == Start {
				return Coordinate{X: x, Y: y}, nil
			}
		}
	}
	return Coordinate{}, ErrNoStart
}

// NeighborsConnectingToStart examines the four cardinal neighbors of start
// (N, S, E, W) and returns those that lie in bounds and open back towards it.
// The result holds zero, one or two neighbors; a third yields ErrAmbiguousStart.
// Complexity: O(1).
func (g *PipeGrid) NeighborsConnectingToStart(start Coordinate) ([]Neighbor, error) {
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	found := make([]Neighbor, 0, 2)
	for _, d := range cardinals {
		c := start.Step(d)
		if !g.InBounds(c) {
			continue
		}
		s := g.cells[c.Y][c.X]
		if !s.Connects(d.Opposite()) {
			continue
		}
		found = append(found, Neighbor{Symbol: s, Position: c, Direction: d})
	}
	if len(found) > 2 {
		return nil, fmt.Errorf("%w: %d neighbors of %v", ErrAmbiguousStart, len(found), start)
	}

	return found, nil
}

// TraceLoop follows the loop from start through its first connecting
// neighbor until it steps back onto start, and returns the loop length
// (the number of cells on the loop, start included).
// It is the sequential counterpart of the concurrent walkers and is used
// to cross-check their result.
// Complexity: O(L) time, O(1) memory.
func (g *PipeGrid) TraceLoop(start Coordinate) (int, error) {
	nbrs, err := g.NeighborsConnectingToStart(start)
	if err != nil {
		return 0, err
	}
	if len(nbrs) == 0 {
		return 0, fmt.Errorf("%w: nothing connects to start %v", ErrInvalidTraversal, start)
	}

	prev, cur := start, nbrs[0].Position
	limit := g.Width * g.Height
	for length := 1; length <= limit; length++ {
		next, err := Advance(g, prev, cur)
		if err != nil {
			return 0, err
		}
		if next == start {
			return length + 1, nil
		}
		prev, cur = cur, next
	}
	// A path through pipes never revisits a cell, so this is unreachable
	// unless the loop misses start entirely.
	return 0, fmt.Errorf("%w: loop from %v never returns", ErrInvalidTraversal, start)
}

// String renders the grid back to its textual form, one row per line.
func (g *PipeGrid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, s := range row {
			b.WriteRune(s.Rune())
		}
	}
	return b.String()
}
