package contour

import (
	"errors"
	"fmt"
)

// ErrSizing indicates an unusable sizing configuration: a non-positive or
// cell-relative cell size, a non-positive wall size, or a negative border.
var ErrSizing = errors.New("contour: invalid sizing configuration")

// Unit selects how a Measure is interpreted.
type Unit uint8

const (
	// Absolute measures are taken as-is, in output units.
	Absolute Unit = iota
	// CellRelative measures are multiplied by the resolved cell size.
	CellRelative
)

// Measure is a length expressed either in absolute output units or as a
// fraction of the cell size.
type Measure struct {
	Value float64
	Unit  Unit
}

// Abs returns an absolute Measure.
func Abs(v float64) Measure { return Measure{Value: v} }

// Rel returns a cell-relative Measure.
func Rel(v float64) Measure { return Measure{Value: v, Unit: CellRelative} }

// Sizing configures the geometry of traced output: the side length of a
// cell, the thickness of a wall, and the blank border around the maze.
// WallSize and BorderSize may be cell-relative; CellSize must be absolute.
type Sizing struct {
	CellSize   Measure
	WallSize   Measure
	BorderSize Measure
}

// DefaultSizing returns 10-unit cells, walls a tenth of a cell thick, and no
// border.
func DefaultSizing() Sizing {
	return Sizing{
		CellSize:   Abs(10),
		WallSize:   Rel(0.1),
		BorderSize: Abs(0),
	}
}

// Resolve converts the sizing to absolute cell, wall and border lengths.
func (s Sizing) Resolve() (cell, wall, border float64, err error) {
	if s.CellSize.Unit != Absolute {
		return 0, 0, 0, fmt.Errorf("%w: cell size must be absolute", ErrSizing)
	}
	cell = s.CellSize.Value
	if cell <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: cell size %v", ErrSizing, cell)
	}
	wall = s.WallSize.Value
	if s.WallSize.Unit == CellRelative {
		wall *= cell
	}
	if wall <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: wall size %v", ErrSizing, wall)
	}
	border = s.BorderSize.Value
	if s.BorderSize.Unit == CellRelative {
		border *= cell
	}
	if border < 0 {
		return 0, 0, 0, fmt.Errorf("%w: border size %v", ErrSizing, border)
	}
	return cell, wall, border, nil
}

// CanvasSize returns the total output dimensions for a rows×cols maze under
// s: border on both sides, cols cells and cols+1 wall thicknesses across,
// and likewise down.
func CanvasSize(rows, cols int, s Sizing) (width, height float64, err error) {
	cell, wall, border, err := s.Resolve()
	if err != nil {
		return 0, 0, err
	}
	width = 2*border + float64(cols)*cell + float64(cols+1)*wall
	height = 2*border + float64(rows)*cell + float64(rows+1)*wall
	return width, height, nil
}

// Coord is a real-valued point in output coordinates; x grows east, y grows
// south.
type Coord struct {
	X, Y float64
}

// Polyline is one traced contour: an ordered run of wall-centerline
// coordinates. A closed polyline's final segment from the last point back to
// the first is implicit.
type Polyline struct {
	Points []Coord
	Closed bool
}

// Segments returns the number of unit wall segments the polyline covers.
func (p Polyline) Segments() int {
	if len(p.Points) < 2 {
		return 0
	}
	if p.Closed {
		return len(p.Points)
	}
	return len(p.Points) - 1
}

// Clockwise reports the winding direction of a closed polyline in screen
// coordinates (y down). Renderers use it to tell outer wall outlines from
// enclosed holes when applying fill rules. For open polylines it reports
// false.
func (p Polyline) Clockwise() bool {
	if !p.Closed || len(p.Points) < 3 {
		return false
	}
	// Shoelace. With y growing downward a positive doubled area means the
	// walk runs clockwise on screen.
	area2 := 0.0
	for i, a := range p.Points {
		b := p.Points[(i+1)%len(p.Points)]
		area2 += a.X*b.Y - b.X*a.Y
	}
	return area2 > 0
}
