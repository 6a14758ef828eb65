// Package solve finds the unique simple path between two cells of a perfect
// maze.
//
// Because a generated maze's open-cell graph is a spanning tree, any two
// reachable cells are joined by exactly one simple path, so a depth-first
// walk with backtracking needs no shortest-path machinery. The walker keeps
// an orientation and scans directions clockwise starting from it, which
// makes the search order deterministic without changing the result.
//
// Complexity: O(rows·cols) time, O(rows·cols) memory for the visited matrix
// and path stack.
//
// Errors:
//
//   - ErrNoPath if either endpoint lies outside the grid, or if the search
//     exhausts without reaching the goal. For a correctly generated or
//     imported maze the latter cannot happen; it signals a violated
//     connectivity invariant, not a routine failure.
package solve

import (
	"errors"
	"fmt"

	"github.com/mazeforge/mazeforge/maze"
)

// ErrNoPath indicates the two requested positions cannot be connected.
var ErrNoPath = errors.New("solve: no path between the requested positions")

// Path is an ordered sequence of positions; consecutive entries are always
// adjacent cells with no wall between them.
type Path []maze.Position

// Contiguous reports whether every consecutive pair of entries is adjacent
// in m with the connecting wall open.
func (p Path) Contiguous(m *maze.Maze) bool {
	for i := 0; i+1 < len(p); i++ {
		if !stepOpen(m, p[i], p[i+1]) {
			return false
		}
	}
	return true
}

func stepOpen(m *maze.Maze, from, to maze.Position) bool {
	for _, s := range m.OpenNeighbors(from) {
		if s.Pos == to {
			return true
		}
	}
	return false
}

// Between returns the unique simple path from start to goal.
func Between(m *maze.Maze, start, goal maze.Position) (Path, error) {
	if !m.InBounds(start) || !m.InBounds(goal) {
		return nil, fmt.Errorf("%w: endpoint outside %d×%d grid", ErrNoPath, m.Rows(), m.Cols())
	}

	w := &walker{
		maze:        m,
		goal:        goal,
		orientation: maze.North,
		path:        Path{start},
		visited:     make([][]bool, m.Rows()),
	}
	for r := range w.visited {
		w.visited[r] = make([]bool, m.Cols())
	}
	w.visited[start.Row][start.Col] = true

	for len(w.path) > 0 {
		if w.current() == goal {
			out := make(Path, len(w.path))
			copy(out, w.path)
			return out, nil
		}
		w.step()
	}
	return nil, fmt.Errorf("%w: search exhausted, connectivity invariant violated", ErrNoPath)
}

// BetweenExits solves between the cells adjacent to two exits.
func BetweenExits(m *maze.Maze, a, b maze.Exit) (Path, error) {
	return Between(m, m.ExitCell(a), m.ExitCell(b))
}

// walker is the depth-first search state: the path stack holds the cells
// from start to the current position.
type walker struct {
	maze        *maze.Maze
	goal        maze.Position
	orientation maze.Direction
	path        Path
	visited     [][]bool
}

func (w *walker) current() maze.Position { return w.path[len(w.path)-1] }

// step advances into the first open unvisited neighbor, scanning clockwise
// from the current orientation, or backtracks when none remain.
func (w *walker) step() {
	cur := w.current()
	d := w.orientation
	for i := 0; i < 4; i++ {
		n := cur.Neighbor(d)
		if w.maze.InBounds(n) && !w.maze.HasWall(cur, d) && !w.visited[n.Row][n.Col] {
			w.orientation = d
			w.visited[n.Row][n.Col] = true
			w.path = append(w.path, n)
			return
		}
		d = d.Right()
	}
	// Dead end: drop the current cell and face back the way we came.
	w.path = w.path[:len(w.path)-1]
	w.orientation = w.orientation.Opposite()
}
