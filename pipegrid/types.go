// Package pipegrid defines the value types shared by the grid, the
// connector rules and the concurrent walkers built on top of them.
package pipegrid

import "fmt"

// Direction is one of the eight compass directions.
// Only the four cardinal directions are used for movement; the
// intercardinal ones appear when relating diagonal coordinates.
type Direction int

const (
	// NoDirection is the zero value and never a valid move.
	NoDirection Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// directionOffsets maps each Direction to its (dx, dy) step.
var directionOffsets = [...][2]int{
	NoDirection: {0, 0},
	North:       {0, -1},
	NorthEast:   {1, -1},
	East:        {1, 0},
	SouthEast:   {1, 1},
	South:       {0, 1},
	SouthWest:   {-1, 1},
	West:        {-1, 0},
	NorthWest:   {-1, -1},
}

var directionNames = [...]string{
	NoDirection: "None",
	North:       "N",
	NorthEast:   "NE",
	East:        "E",
	SouthEast:   "SE",
	South:       "S",
	SouthWest:   "SW",
	West:        "W",
	NorthWest:   "NW",
}

// cardinals lists the movement directions in the order the start
// neighbors are examined.
var cardinals = [4]Direction{North, South, East, West}

func (d Direction) valid() bool { return d > NoDirection && d <= NorthWest }

// Offset returns the (dx, dy) step of d. NoDirection and unknown values yield (0,0).
func (d Direction) Offset() (dx, dy int) {
	if !d.valid() {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

// Opposite returns the direction pointing the other way.
// Opposite(NoDirection) is NoDirection.
func (d Direction) Opposite() Direction {
	if !d.valid() {
		return NoDirection
	}
	// The eight directions are laid out clockwise, so the opposite is four steps on.
	return (d-1+4)%8 + 1
}

// IsCardinal reports whether d is one of N, E, S, W.
func (d Direction) IsCardinal() bool {
	return d == North || d == East || d == South || d == West
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Coordinate is a cell position: X is the column, Y is the row.
// Coordinates compare and hash by value.
type Coordinate struct {
	X, Y int
}

// Step returns the coordinate one cell away in direction d.
// The result may lie outside the grid; check it with PipeGrid.InBounds.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Symbol is a grid cell content. Anything that is not a pipe or the
// start marker is Ground.
type Symbol uint8

const (
	// Ground is any cell without a pipe ('.' and unknown runes).
	Ground Symbol = iota
	// Vertical '|' connects North and South.
	Vertical
	// Horizontal '-' connects East and West.
	Horizontal
	// NE 'L' connects North and East.
	NE
	// NW 'J' connects North and West.
	NW
	// SW '7' connects South and West.
	SW
	// SE 'F' connects South and East.
	SE
	// Start 'S' marks the start cell; its shape is inferred from its neighbors.
	Start
)

var symbolRunes = [...]rune{
	Ground:     '.',
	Vertical:   '|',
	Horizontal: '-',
	NE:         'L',
	NW:         'J',
	SW:         '7',
	SE:         'F',
	Start:      'S',
}

var symbolNames = [...]string{
	Ground:     "Ground",
	Vertical:   "Vertical",
	Horizontal: "Horizontal",
	NE:         "NE",
	NW:         "NW",
	SW:         "SW",
	SE:         "SE",
	Start:      "Start",
}

// connections holds the two sides each pipe opens to.
var connections = [...][2]Direction{
	Vertical:   {North, South},
	Horizontal: {East, West},
	NE:         {North, East},
	NW:         {North, West},
	SW:         {South, West},
	SE:         {South, East},
}

// ParseSymbol maps a grid rune to its Symbol. Unknown runes are Ground.
func ParseSymbol(r rune) Symbol {
	switch r {
	case '|':
		return Vertical
	case '-':
		return Horizontal
	case 'L':
		return NE
	case 'J':
		return NW
	case '7':
		return SW
	case 'F':
		return SE
	case 'S':
		return Start
	default:
		return Ground
	}
}

// Rune returns the grid character of s.
func (s Symbol) Rune() rune {
	if int(s) >= len(symbolRunes) {
		return '?'
	}
	return symbolRunes[s]
}

func (s Symbol) String() string {
	if int(s) >= len(symbolNames) {
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
	return symbolNames[s]
}

// IsPipe reports whether s is one of the six pipe shapes.
func (s Symbol) IsPipe() bool {
	return s >= Vertical && s <= SE
}

// Connections returns the two sides a pipe opens to.
// ok is false for Ground and Start.
func (s Symbol) Connections() (sides [2]Direction, ok bool) {
	if !s.IsPipe() {
		return [2]Direction{}, false
	}
	return connections[s], true
}

// Connects reports whether pipe s opens towards d.
func (s Symbol) Connects(d Direction) bool {
	sides, ok := s.Connections()
	return ok && (sides[0] == d || sides[1] == d)
}

// Neighbor is a cell adjacent to the start that connects back to it.
type Neighbor struct {
	Symbol   Symbol
	Position Coordinate
	// Direction is the side of the start cell the neighbor lies on.
	Direction Direction
}
