// Package mazejson serializes mazes and their solutions to a canonical JSON
// document and validates imported documents back into consistent mazes.
//
// Schema:
//
//	{
//	  "rows": 3, "cols": 3,
//	  "walls": ["1101", ...],
//	  "exits": [{"direction": "north", "index": 0}],
//	  "solutions": [[{"row": 0, "col": 0}, ...]]
//	}
//
// "walls" holds one four-character flag string per cell, row-major, in
// north/south/east/west order, '1' meaning the wall is present. The format
// is deliberately redundant: both cells sharing a wall record it, and exit
// openings appear both as an exit entry and as a '0' boundary flag.
// Unmarshal rejects documents where the two disagree, so a round trip
// through Marshal is exact and a hand-edited document cannot smuggle in an
// inconsistent wall state.
//
// Errors:
//
//   - ErrMalformedInput, wrapped with the offending field, for structural
//     and consistency problems.
//   - maze.ErrInvalidDimension, maze.ErrExitOutOfRange and
//     maze.ErrExitConflict pass through from maze construction.
package mazejson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/solve"
)

// ErrMalformedInput indicates a document that cannot be interpreted as a
// consistent maze.
var ErrMalformedInput = errors.New("mazejson: malformed input")

type document struct {
	Rows      *int        `json:"rows"`
	Cols      *int        `json:"cols"`
	Walls     []string    `json:"walls"`
	Exits     []exitEntry `json:"exits,omitempty"`
	Solutions [][]cellRef `json:"solutions,omitempty"`
}

type exitEntry struct {
	Direction string `json:"direction"`
	Index     int    `json:"index"`
}

type cellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// flagOrder fixes the character positions inside a wall flag string.
var flagOrder = [4]maze.Direction{maze.North, maze.South, maze.East, maze.West}

// Marshal serializes m and any solution paths.
func Marshal(m *maze.Maze, solutions []solve.Path) ([]byte, error) {
	rows, cols := m.Rows(), m.Cols()
	doc := document{Rows: &rows, Cols: &cols}

	doc.Walls = make([]string, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := maze.Position{Row: r, Col: c}
			flags := make([]byte, 4)
			for i, d := range flagOrder {
				if m.HasWall(p, d) {
					flags[i] = '1'
				} else {
					flags[i] = '0'
				}
			}
			doc.Walls = append(doc.Walls, string(flags))
		}
	}

	for _, e := range m.Exits() {
		doc.Exits = append(doc.Exits, exitEntry{Direction: e.Wall.String(), Index: e.Index})
	}
	for _, path := range solutions {
		cells := make([]cellRef, len(path))
		for i, p := range path {
			cells[i] = cellRef{Row: p.Row, Col: p.Col}
		}
		doc.Solutions = append(doc.Solutions, cells)
	}
	return json.Marshal(doc)
}

// Unmarshal parses and validates a document, returning the reconstructed
// maze and any solution paths it carries.
func Unmarshal(data []byte) (*maze.Maze, []solve.Path, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if doc.Rows == nil || doc.Cols == nil {
		return nil, nil, fmt.Errorf("%w: rows and cols are required", ErrMalformedInput)
	}
	rows, cols := *doc.Rows, *doc.Cols
	if rows < 1 || cols < 1 {
		return nil, nil, fmt.Errorf("%w: rows/cols %d×%d", ErrMalformedInput, rows, cols)
	}
	if len(doc.Walls) != rows*cols {
		return nil, nil, fmt.Errorf("%w: walls has %d entries, want %d",
			ErrMalformedInput, len(doc.Walls), rows*cols)
	}

	exits := make([]maze.Exit, len(doc.Exits))
	for i, e := range doc.Exits {
		d, err := maze.ParseDirection(e.Direction)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: exits[%d].direction %q", ErrMalformedInput, i, e.Direction)
		}
		exits[i] = maze.Exit{Wall: d, Index: e.Index}
	}

	// Validates dimensions and exits, and carves the exit openings.
	m, err := maze.New(rows, cols, exits...)
	if err != nil {
		return nil, nil, err
	}

	flags, err := parseFlags(doc.Walls, rows, cols)
	if err != nil {
		return nil, nil, err
	}
	if err := checkConsistency(m, flags, rows, cols); err != nil {
		return nil, nil, err
	}
	applyWalls(m, flags, rows, cols)

	paths, err := parseSolutions(m, doc.Solutions)
	if err != nil {
		return nil, nil, err
	}
	return m, paths, nil
}

// parseFlags turns the flag strings into per-cell wall booleans.
func parseFlags(walls []string, rows, cols int) ([][4]bool, error) {
	flags := make([][4]bool, rows*cols)
	for i, s := range walls {
		if len(s) != 4 {
			return nil, fmt.Errorf("%w: walls[%d] %q is not four flags", ErrMalformedInput, i, s)
		}
		for j := 0; j < 4; j++ {
			switch s[j] {
			case '1':
				flags[i][j] = true
			case '0':
			default:
				return nil, fmt.Errorf("%w: walls[%d] %q has flag %q", ErrMalformedInput, i, s, s[j])
			}
		}
	}
	return flags, nil
}

// checkConsistency rejects asymmetric interior flags and boundary flags that
// disagree with the declared exits. m already has its exits carved, so its
// boundary state is the authority on which openings are legitimate.
func checkConsistency(m *maze.Maze, flags [][4]bool, rows, cols int) error {
	flag := func(r, c int, d maze.Direction) bool {
		for i, fd := range flagOrder {
			if fd == d {
				return flags[r*cols+c][i]
			}
		}
		return false
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols && flag(r, c, maze.East) != flag(r, c+1, maze.West) {
				return fmt.Errorf("%w: walls[%d] east flag disagrees with walls[%d] west flag",
					ErrMalformedInput, r*cols+c, r*cols+c+1)
			}
			if r+1 < rows && flag(r, c, maze.South) != flag(r+1, c, maze.North) {
				return fmt.Errorf("%w: walls[%d] south flag disagrees with walls[%d] north flag",
					ErrMalformedInput, r*cols+c, (r+1)*cols+c)
			}
			p := maze.Position{Row: r, Col: c}
			for _, d := range maze.Directions {
				if !m.InBounds(p.Neighbor(d)) && flag(r, c, d) != m.HasWall(p, d) {
					return fmt.Errorf("%w: walls[%d] %s boundary flag disagrees with exits",
						ErrMalformedInput, r*cols+c, d)
				}
			}
		}
	}
	return nil
}

// applyWalls opens the interior walls the flags mark absent; boundary
// openings were already carved from the exit list.
func applyWalls(m *maze.Maze, flags [][4]bool, rows, cols int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := maze.Position{Row: r, Col: c}
			cell := flags[r*cols+c]
			for i, d := range flagOrder {
				if !cell[i] && m.InBounds(p.Neighbor(d)) {
					m.RemoveWall(p, d)
				}
			}
		}
	}
}

// parseSolutions validates each imported path against the reconstructed
// walls.
func parseSolutions(m *maze.Maze, raw [][]cellRef) ([]solve.Path, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	paths := make([]solve.Path, len(raw))
	for i, cells := range raw {
		path := make(solve.Path, len(cells))
		for j, c := range cells {
			path[j] = maze.Position{Row: c.Row, Col: c.Col}
			if !m.InBounds(path[j]) {
				return nil, fmt.Errorf("%w: solutions[%d][%d] outside the grid", ErrMalformedInput, i, j)
			}
		}
		if !path.Contiguous(m) {
			return nil, fmt.Errorf("%w: solutions[%d] is not a contiguous open path", ErrMalformedInput, i)
		}
		paths[i] = path
	}
	return paths, nil
}
