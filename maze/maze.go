package maze

import "fmt"

// Maze is the wall-state model over a rows×cols cell lattice. Each physical
// wall segment is stored exactly once, grouped by line: EW lines hold the
// horizontal segments on each lattice row, NS lines the vertical segments on
// each lattice column. Direction-addressed queries derive from this single
// storage, so the two sides of a shared wall can never disagree.
//
// A Maze is built once (by New plus construction-time carving) and read-only
// afterwards. Distinct Maze values share no state; concurrent readers need
// no synchronization.
type Maze struct {
	rows, cols int
	ew         [][]bool // [rows+1][cols]: ew[r][c] is the wall north of cell (r,c)
	ns         [][]bool // [rows][cols+1]: ns[r][c] is the wall west of cell (r,c)
	exits      []Exit
}

// New constructs a maze with every wall present, then carves the requested
// exits out of the boundary. Returns ErrInvalidDimension if rows or cols is
// below 1, ErrExitOutOfRange for an exit index outside its wall, and
// ErrExitConflict for two exits at the same boundary location.
// Complexity: O(rows·cols) time and memory.
func New(rows, cols int, exits ...Exit) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, rows, cols)
	}
	ew := make([][]bool, rows+1)
	for r := range ew {
		ew[r] = make([]bool, cols)
		for c := range ew[r] {
			ew[r][c] = true
		}
	}
	ns := make([][]bool, rows)
	for r := range ns {
		ns[r] = make([]bool, cols+1)
		for c := range ns[r] {
			ns[r][c] = true
		}
	}
	m := &Maze{rows: rows, cols: cols, ew: ew, ns: ns}
	for _, e := range exits {
		if err := m.carveExit(e); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// carveExit validates e and clears its boundary wall.
func (m *Maze) carveExit(e Exit) error {
	limit := m.cols
	if !e.Wall.IsVerticalAxis() {
		limit = m.rows
	}
	if e.Index < 0 || e.Index >= limit {
		return fmt.Errorf("%w: %s exit at %d, wall length %d", ErrExitOutOfRange, e.Wall, e.Index, limit)
	}
	for _, prev := range m.exits {
		if prev == e {
			return fmt.Errorf("%w: %s exit at %d", ErrExitConflict, e.Wall, e.Index)
		}
	}
	o, row, col := exitWallCoords(e, m.rows, m.cols)
	m.setWall(o, row, col, false)
	m.exits = append(m.exits, e)
	return nil
}

// exitWallCoords maps an exit to its boundary wall segment.
func exitWallCoords(e Exit, rows, cols int) (Orientation, int, int) {
	switch e.Wall {
	case North:
		return EW, 0, e.Index
	case South:
		return EW, rows, e.Index
	case West:
		return NS, e.Index, 0
	default:
		return NS, e.Index, cols
	}
}

// Rows returns the number of cell rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of cell columns.
func (m *Maze) Cols() int { return m.cols }

// Exits returns a copy of the carved exits in carving order.
func (m *Maze) Exits() []Exit {
	out := make([]Exit, len(m.exits))
	copy(out, m.exits)
	return out
}

// InBounds reports whether p is a valid cell position.
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// validWall reports whether (o, row, col) addresses a wall segment on the
// lattice.
func (m *Maze) validWall(o Orientation, row, col int) bool {
	if o == EW {
		return row >= 0 && row <= m.rows && col >= 0 && col < m.cols
	}
	return row >= 0 && row < m.rows && col >= 0 && col <= m.cols
}

// Wall reports the presence of the wall segment addressed by line
// coordinates: for EW, lattice row `row` spanning cell column `col`; for NS,
// lattice column `col` spanning cell row `row`. Out-of-lattice coordinates
// report false.
func (m *Maze) Wall(o Orientation, row, col int) bool {
	if !m.validWall(o, row, col) {
		return false
	}
	if o == EW {
		return m.ew[row][col]
	}
	return m.ns[row][col]
}

func (m *Maze) setWall(o Orientation, row, col int, present bool) {
	if !m.validWall(o, row, col) {
		return
	}
	if o == EW {
		m.ew[row][col] = present
	} else {
		m.ns[row][col] = present
	}
}

// wallCoords maps a (cell, direction) pair to line coordinates.
func wallCoords(p Position, d Direction) (Orientation, int, int) {
	switch d {
	case North:
		return EW, p.Row, p.Col
	case South:
		return EW, p.Row + 1, p.Col
	case West:
		return NS, p.Row, p.Col
	default:
		return NS, p.Row, p.Col + 1
	}
}

// CornerWall returns the line coordinates of the wall segment walked when
// moving from lattice corner (row, col) one step toward d. The segment is
// addressed through the cell that keeps its interior on the walker's left:
// WallCorners orders that cell's wall so its start corner is (row, col), so
// subtracting the start corner's offset recovers the cell. The coordinates
// may lie outside the lattice; Wall reports false for those.
func CornerWall(row, col int, d Direction) (Orientation, int, int) {
	side := d.Left().Opposite()
	start, _ := WallCorners(side)
	ro, co := start.CornerOffset()
	return wallCoords(Position{Row: row - ro, Col: col - co}, side)
}

// HasWall reports whether the wall on side d of cell p is present. Walls of
// cells outside the grid report present, matching the implicit solid
// outside of the lattice.
func (m *Maze) HasWall(p Position, d Direction) bool {
	if !m.InBounds(p) {
		return true
	}
	o, row, col := wallCoords(p, d)
	return m.Wall(o, row, col)
}

// RemoveWall clears the wall on side d of cell p. Both sides of a shared
// wall open at once because each segment is stored exactly once. Intended
// for construction-time carving (generation and JSON import) only; a maze is
// immutable once handed to solvers and renderers. Out-of-bounds positions
// are ignored.
func (m *Maze) RemoveWall(p Position, d Direction) {
	if !m.InBounds(p) {
		return
	}
	o, row, col := wallCoords(p, d)
	m.setWall(o, row, col, false)
}

// IsBoundary reports whether the wall on side d of cell p lies on the outer
// boundary of the lattice.
func (m *Maze) IsBoundary(p Position, d Direction) bool {
	o, row, col := wallCoords(p, d)
	if o == EW {
		return row == 0 || row == m.rows
	}
	return col == 0 || col == m.cols
}

// OpenNeighbors returns the steps from p into adjacent in-bounds cells with
// no wall between, in canonical direction order. Complexity: O(1).
func (m *Maze) OpenNeighbors(p Position) []Step {
	var steps []Step
	for _, d := range Directions {
		n := p.Neighbor(d)
		if m.InBounds(n) && !m.HasWall(p, d) {
			steps = append(steps, Step{Dir: d, Pos: n})
		}
	}
	return steps
}

// ExitCell returns the in-bounds cell adjacent to exit e.
func (m *Maze) ExitCell(e Exit) Position {
	switch e.Wall {
	case North:
		return Position{Row: 0, Col: e.Index}
	case South:
		return Position{Row: m.rows - 1, Col: e.Index}
	case West:
		return Position{Row: e.Index, Col: 0}
	default:
		return Position{Row: e.Index, Col: m.cols - 1}
	}
}

// WallCount returns the number of present wall segments, boundary included.
// Complexity: O(rows·cols).
func (m *Maze) WallCount() int {
	count := 0
	for _, line := range m.ew {
		for _, present := range line {
			if present {
				count++
			}
		}
	}
	for _, line := range m.ns {
		for _, present := range line {
			if present {
				count++
			}
		}
	}
	return count
}

// OpenInteriorEdges returns the number of open adjacencies between in-bounds
// cells. A perfect maze has exactly rows·cols−1 of them.
func (m *Maze) OpenInteriorEdges() int {
	open := 0
	for r := 1; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !m.ew[r][c] {
				open++
			}
		}
	}
	for r := 0; r < m.rows; r++ {
		for c := 1; c < m.cols; c++ {
			if !m.ns[r][c] {
				open++
			}
		}
	}
	return open
}
