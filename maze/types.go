// Package maze defines the geometry primitives and sentinel errors shared by
// every other package in the module: cardinal and diagonal directions, cell
// positions, wall orientations, and boundary exits.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrInvalidDimension indicates rows or cols below 1 at construction.
	ErrInvalidDimension = errors.New("maze: rows and cols must be at least 1")
	// ErrExitOutOfRange indicates an exit index outside [0, wall length).
	ErrExitOutOfRange = errors.New("maze: exit index outside its wall")
	// ErrExitConflict indicates two exit requests at the same boundary location.
	// Duplicate exits are rejected, never silently deduplicated.
	ErrExitConflict = errors.New("maze: duplicate exit at the same boundary location")
)

// Direction is one of the four cardinal directions.
// The zero value is North.
type Direction uint8

const (
	// North points toward decreasing row indices.
	North Direction = iota
	// West points toward decreasing column indices.
	West
	// South points toward increasing row indices.
	South
	// East points toward increasing column indices.
	East
)

// Directions lists the cardinal directions in the canonical scan order
// (north, west, south, east). Every deterministic iteration over directions
// in this module uses this order.
var Directions = [4]Direction{North, West, South, East}

var directionNames = [4]string{"north", "west", "south", "east"}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a lowercase direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return North, fmt.Errorf("maze: unknown direction %q", s)
}

// Opposite returns the direction rotated a half turn.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Left returns the direction rotated a quarter turn counterclockwise in
// screen coordinates (y grows downward): North→West→South→East→North.
func (d Direction) Left() Direction { return (d + 1) % 4 }

// Right returns the direction rotated a quarter turn clockwise in screen
// coordinates: North→East→South→West→North.
func (d Direction) Right() Direction { return (d + 3) % 4 }

// Delta returns the (row, col) step taken when moving one cell in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case West:
		return 0, -1
	case South:
		return 1, 0
	default:
		return 0, 1
	}
}

// IsVerticalAxis reports whether d runs along the row axis (north or south).
func (d Direction) IsVerticalAxis() bool { return d == North || d == South }

// Position is the (row, col) location of a cell in the grid.
type Position struct {
	Row, Col int
}

// Neighbor returns the position one cell away in direction d. The result may
// lie outside the grid; callers check bounds via Maze.InBounds.
func (p Position) Neighbor(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// DiagDirection identifies one of the four corners around a cell as an
// ordered pair of perpendicular directions, e.g. {North, East} is the
// northeast corner.
type DiagDirection struct {
	NS Direction // North or South
	EW Direction // East or West
}

// Opposite returns the diagonally opposite corner.
func (dd DiagDirection) Opposite() DiagDirection {
	return DiagDirection{NS: dd.NS.Opposite(), EW: dd.EW.Opposite()}
}

// CornerOffset returns the lattice offset of the corner relative to the
// cell's northwest lattice point: 0 or 1 for each of row and column.
func (dd DiagDirection) CornerOffset() (rowOff, colOff int) {
	if dd.NS == South {
		rowOff = 1
	}
	if dd.EW == East {
		colOff = 1
	}
	return rowOff, colOff
}

// WallCorners returns the two corners that are the endpoints of a cell's
// wall on side d, ordered so that walking start→end keeps the cell interior
// on the walker's left.
func WallCorners(d Direction) (start, end DiagDirection) {
	if d.IsVerticalAxis() {
		return DiagDirection{NS: d, EW: d.Left().Opposite()}, DiagDirection{NS: d, EW: d.Left()}
	}
	return DiagDirection{NS: d.Left().Opposite(), EW: d}, DiagDirection{NS: d.Left(), EW: d}
}

// Orientation distinguishes the two families of wall lines.
type Orientation uint8

const (
	// NS denotes vertical wall segments lying on lattice columns.
	NS Orientation = iota
	// EW denotes horizontal wall segments lying on lattice rows.
	EW
)

// String returns "NS" or "EW".
func (o Orientation) String() string {
	if o == NS {
		return "NS"
	}
	return "EW"
}

// Exit marks a removed boundary-wall segment. Wall names the side of the
// maze; Index counts cells from the west (north/south walls) or from the
// north (east/west walls).
type Exit struct {
	Wall  Direction
	Index int
}

// Step pairs a direction with the neighboring position it leads to.
type Step struct {
	Dir Direction
	Pos Position
}
