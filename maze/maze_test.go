package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mazeforge/mazeforge/maze"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_InvalidDimensions verifies dimension validation before any carving.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"NegativeRows", -1, 5},
		{"BothZero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.rows, tc.cols)
			require.ErrorIs(t, err, maze.ErrInvalidDimension)
		})
	}
}

// TestNew_AllWallsPresent checks that a fresh maze is fully walled.
func TestNew_AllWallsPresent(t *testing.T) {
	m, err := maze.New(3, 4)
	require.NoError(t, err)

	// (rows+1)*cols horizontal + rows*(cols+1) vertical segments.
	require.Equal(t, 4*4+3*5, m.WallCount())
	require.Zero(t, m.OpenInteriorEdges())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			for _, d := range maze.Directions {
				require.True(t, m.HasWall(maze.Position{Row: r, Col: c}, d))
			}
		}
	}
}

// TestNew_ExitValidation covers out-of-range and duplicate exit requests.
func TestNew_ExitValidation(t *testing.T) {
	// 5×25 maze: a north exit at 30 is outside the 25-wide wall.
	_, err := maze.New(5, 25, maze.Exit{Wall: maze.North, Index: 30})
	require.ErrorIs(t, err, maze.ErrExitOutOfRange)

	// The east wall of a 5-row maze is five cells long: 4 is its last index.
	_, err = maze.New(5, 25, maze.Exit{Wall: maze.East, Index: 4})
	require.NoError(t, err)
	_, err = maze.New(5, 25, maze.Exit{Wall: maze.East, Index: 5})
	require.ErrorIs(t, err, maze.ErrExitOutOfRange)
	_, err = maze.New(5, 25, maze.Exit{Wall: maze.East, Index: 25})
	require.ErrorIs(t, err, maze.ErrExitOutOfRange)
	_, err = maze.New(5, 25, maze.Exit{Wall: maze.West, Index: -1})
	require.ErrorIs(t, err, maze.ErrExitOutOfRange)

	_, err = maze.New(5, 25,
		maze.Exit{Wall: maze.North, Index: 3},
		maze.Exit{Wall: maze.North, Index: 3},
	)
	require.ErrorIs(t, err, maze.ErrExitConflict)
}

// TestNew_OneByOneExit: in a 1×1 maze one carved exit leaves
// exactly three boundary walls.
func TestNew_OneByOneExit(t *testing.T) {
	m, err := maze.New(1, 1, maze.Exit{Wall: maze.North, Index: 0})
	require.NoError(t, err)
	require.Equal(t, 3, m.WallCount())
	require.Zero(t, m.OpenInteriorEdges())
	origin := maze.Position{}
	require.False(t, m.HasWall(origin, maze.North))
	require.True(t, m.HasWall(origin, maze.South))
	require.True(t, m.HasWall(origin, maze.East))
	require.True(t, m.HasWall(origin, maze.West))
}

//----------------------------------------------------------------------------//
// Wall Query Tests
//----------------------------------------------------------------------------//

// TestWallSymmetry verifies that both sides of a shared wall agree, before
// and after removal.
func TestWallSymmetry(t *testing.T) {
	m, err := maze.New(4, 4)
	require.NoError(t, err)

	p := maze.Position{Row: 1, Col: 1}
	for _, d := range maze.Directions {
		n := p.Neighbor(d)
		require.Equal(t, m.HasWall(p, d), m.HasWall(n, d.Opposite()))
	}

	m.RemoveWall(p, maze.East)
	require.False(t, m.HasWall(p, maze.East))
	require.False(t, m.HasWall(p.Neighbor(maze.East), maze.West))
	require.Equal(t, 1, m.OpenInteriorEdges())
}

// TestHasWall_OutsideGrid checks the implicit solid outside.
func TestHasWall_OutsideGrid(t *testing.T) {
	m, err := maze.New(2, 2)
	require.NoError(t, err)
	require.True(t, m.HasWall(maze.Position{Row: -1, Col: 0}, maze.South))
	require.True(t, m.HasWall(maze.Position{Row: 5, Col: 5}, maze.North))
}

// TestOpenNeighbors checks the canonical order and wall filtering.
func TestOpenNeighbors(t *testing.T) {
	m, err := maze.New(3, 3)
	require.NoError(t, err)
	center := maze.Position{Row: 1, Col: 1}
	require.Empty(t, m.OpenNeighbors(center))

	m.RemoveWall(center, maze.North)
	m.RemoveWall(center, maze.East)
	steps := m.OpenNeighbors(center)
	require.Len(t, steps, 2)
	require.Equal(t, maze.Step{Dir: maze.North, Pos: maze.Position{Row: 0, Col: 1}}, steps[0])
	require.Equal(t, maze.Step{Dir: maze.East, Pos: maze.Position{Row: 1, Col: 2}}, steps[1])

	// An opened boundary wall must not produce an out-of-bounds neighbor.
	corner := maze.Position{}
	m.RemoveWall(corner, maze.North)
	for _, s := range m.OpenNeighbors(corner) {
		require.True(t, m.InBounds(s.Pos))
	}
}

// TestIsBoundary distinguishes boundary from interior walls.
func TestIsBoundary(t *testing.T) {
	m, err := maze.New(3, 3)
	require.NoError(t, err)
	require.True(t, m.IsBoundary(maze.Position{}, maze.North))
	require.True(t, m.IsBoundary(maze.Position{Row: 2, Col: 1}, maze.South))
	require.True(t, m.IsBoundary(maze.Position{Row: 1, Col: 2}, maze.East))
	require.False(t, m.IsBoundary(maze.Position{}, maze.South))
	require.False(t, m.IsBoundary(maze.Position{Row: 1, Col: 1}, maze.East))
}

// TestExitCell maps each wall's exits onto adjacent cells.
func TestExitCell(t *testing.T) {
	m, err := maze.New(4, 6,
		maze.Exit{Wall: maze.North, Index: 2},
		maze.Exit{Wall: maze.South, Index: 5},
		maze.Exit{Wall: maze.West, Index: 1},
		maze.Exit{Wall: maze.East, Index: 3},
	)
	require.NoError(t, err)
	exits := m.Exits()
	require.Len(t, exits, 4)
	require.Equal(t, maze.Position{Row: 0, Col: 2}, m.ExitCell(exits[0]))
	require.Equal(t, maze.Position{Row: 3, Col: 5}, m.ExitCell(exits[1]))
	require.Equal(t, maze.Position{Row: 1, Col: 0}, m.ExitCell(exits[2]))
	require.Equal(t, maze.Position{Row: 3, Col: 5}, m.ExitCell(exits[3]))

	// Each exit clears exactly one boundary wall and no interior wall.
	require.Equal(t, 5*6+4*7-4, m.WallCount())
	require.Zero(t, m.OpenInteriorEdges())
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

// TestDirection_Rotations pins the rotation ring used by carver, solver and
// tracer alike.
func TestDirection_Rotations(t *testing.T) {
	require.Equal(t, maze.South, maze.North.Opposite())
	require.Equal(t, maze.East, maze.West.Opposite())
	require.Equal(t, maze.West, maze.North.Left())
	require.Equal(t, maze.East, maze.North.Right())
	for _, d := range maze.Directions {
		require.Equal(t, d, d.Left().Right())
		require.Equal(t, d, d.Opposite().Opposite())
	}
}

// TestParseDirection round-trips names and rejects garbage.
func TestParseDirection(t *testing.T) {
	for _, d := range maze.Directions {
		parsed, err := maze.ParseDirection(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}
	_, err := maze.ParseDirection("up")
	require.Error(t, err)
}

// TestWallCorners verifies corner endpoints keep the cell interior on the
// walker's left.
func TestWallCorners(t *testing.T) {
	cases := []struct {
		dir        maze.Direction
		start, end maze.DiagDirection
	}{
		{maze.North, maze.DiagDirection{NS: maze.North, EW: maze.East}, maze.DiagDirection{NS: maze.North, EW: maze.West}},
		{maze.South, maze.DiagDirection{NS: maze.South, EW: maze.West}, maze.DiagDirection{NS: maze.South, EW: maze.East}},
		{maze.East, maze.DiagDirection{NS: maze.South, EW: maze.East}, maze.DiagDirection{NS: maze.North, EW: maze.East}},
		{maze.West, maze.DiagDirection{NS: maze.North, EW: maze.West}, maze.DiagDirection{NS: maze.South, EW: maze.West}},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			start, end := maze.WallCorners(tc.dir)
			require.Equal(t, tc.start, start)
			require.Equal(t, tc.end, end)
		})
	}
}

// TestCornerWall maps every heading out of an interior lattice corner onto
// wall-line coordinates and checks the addressed segment actually joins the
// corner to the one stepped to.
func TestCornerWall(t *testing.T) {
	cases := []struct {
		dir      maze.Direction
		o        maze.Orientation
		row, col int
	}{
		// From lattice corner (2, 3): east and west walk the EW row, north
		// and south the NS column.
		{maze.East, maze.EW, 2, 3},
		{maze.West, maze.EW, 2, 2},
		{maze.South, maze.NS, 2, 3},
		{maze.North, maze.NS, 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			o, row, col := maze.CornerWall(2, 3, tc.dir)
			require.Equal(t, tc.o, o)
			require.Equal(t, tc.row, row)
			require.Equal(t, tc.col, col)
		})
	}

	// Opposite headings across the same edge address the same segment.
	for _, d := range maze.Directions {
		dr, dc := d.Delta()
		o1, r1, c1 := maze.CornerWall(2, 3, d)
		o2, r2, c2 := maze.CornerWall(2+dr, 3+dc, d.Opposite())
		require.Equal(t, o1, o2)
		require.Equal(t, r1, r2)
		require.Equal(t, c1, c2)
	}
}

// TestDiagDirection_CornerOffset checks the lattice offsets of all corners.
func TestDiagDirection_CornerOffset(t *testing.T) {
	offsets := map[maze.DiagDirection][2]int{
		{NS: maze.North, EW: maze.West}: {0, 0},
		{NS: maze.North, EW: maze.East}: {0, 1},
		{NS: maze.South, EW: maze.West}: {1, 0},
		{NS: maze.South, EW: maze.East}: {1, 1},
	}
	for dd, want := range offsets {
		r, c := dd.CornerOffset()
		require.Equal(t, want, [2]int{r, c})
		require.Equal(t, dd, dd.Opposite().Opposite())
	}
}
