// Package contour converts a maze's wall state into the minimal ordered set
// of polylines needed to draw every wall segment exactly once.
//
// The walls form a planar graph: vertices are lattice corners, edges are
// unit wall segments. Trace walks this graph with a right-hand wall
// follower. At every corner the walk prefers the sharpest available right
// turn, then straight on, then left; the just-walked edge is never an
// option, so junctions where three or four segments meet hand the walk
// exactly one continuation per visit.
//
// Trails are started in two passes:
//
//  1. Every corner with an odd number of untraced incident segments starts
//     an open trail (a carved exit leaves such dangling ends, as does the
//     free end of any wall run inside the maze). Open trails always
//     terminate on another odd corner.
//  2. Remaining segments sit in components where every corner has even
//     degree; trails started there always return to their starting corner
//     and are emitted as closed loops with an implicit final segment.
//
// Together the two passes visit every present wall segment exactly once, so
// the summed segment count of all polylines equals Maze.WallCount — the
// completeness invariant renderers rely on.
//
// Complexity: O(rows·cols) time and memory (each lattice corner is scanned a
// constant number of times, each wall segment marked once).
package contour

import "github.com/mazeforge/mazeforge/maze"

// Trace follows every wall of m and returns the traced polylines in
// deterministic order, scaled per s: each lattice corner maps to the center
// of its wall intersection, offset by the border.
func Trace(m *maze.Maze, s Sizing) ([]Polyline, error) {
	cell, wall, border, err := s.Resolve()
	if err != nil {
		return nil, err
	}
	t := newTracer(m)
	trails := t.run()

	span := cell + wall
	origin := border + wall/2
	out := make([]Polyline, len(trails))
	for i, tr := range trails {
		pts := make([]Coord, len(tr.corners))
		for j, v := range tr.corners {
			pts[j] = Coord{
				X: origin + float64(v.c)*span,
				Y: origin + float64(v.r)*span,
			}
		}
		out[i] = Polyline{Points: pts, Closed: tr.closed}
	}
	return out, nil
}

// corner is a lattice intersection; (0,0) is the northwest corner of cell
// (0,0), (rows,cols) the southeast corner of the last cell.
type corner struct {
	r, c int
}

func (v corner) next(d maze.Direction) corner {
	dr, dc := d.Delta()
	return corner{r: v.r + dr, c: v.c + dc}
}

type trail struct {
	corners []corner
	closed  bool
}

// tracer tracks which wall segments have been emitted.
type tracer struct {
	m          *maze.Maze
	rows, cols int
	ewTraced   [][]bool // [rows+1][cols]
	nsTraced   [][]bool // [rows][cols+1]
}

func newTracer(m *maze.Maze) *tracer {
	t := &tracer{m: m, rows: m.Rows(), cols: m.Cols()}
	t.ewTraced = make([][]bool, t.rows+1)
	for r := range t.ewTraced {
		t.ewTraced[r] = make([]bool, t.cols)
	}
	t.nsTraced = make([][]bool, t.rows)
	for r := range t.nsTraced {
		t.nsTraced[r] = make([]bool, t.cols+1)
	}
	return t
}

// untraced reports whether the edge leaving v toward d carries a present,
// not-yet-emitted wall segment. maze.CornerWall maps the edge onto wall-line
// coordinates.
func (t *tracer) untraced(v corner, d maze.Direction) bool {
	o, row, col := maze.CornerWall(v.r, v.c, d)
	if !t.m.Wall(o, row, col) {
		return false
	}
	if o == maze.EW {
		return !t.ewTraced[row][col]
	}
	return !t.nsTraced[row][col]
}

func (t *tracer) mark(v corner, d maze.Direction) {
	o, row, col := maze.CornerWall(v.r, v.c, d)
	if o == maze.EW {
		t.ewTraced[row][col] = true
	} else {
		t.nsTraced[row][col] = true
	}
}

// untracedDegree counts the untraced segments incident to v.
func (t *tracer) untracedDegree(v corner) int {
	deg := 0
	for _, d := range maze.Directions {
		if t.untraced(v, d) {
			deg++
		}
	}
	return deg
}

// run performs the two scan passes. Both scans are monotone: trails only
// ever flip the parity of corners at or after the scan position, so a single
// row-major sweep per pass suffices.
func (t *tracer) run() []trail {
	var trails []trail
	for r := 0; r <= t.rows; r++ {
		for c := 0; c <= t.cols; c++ {
			v := corner{r: r, c: c}
			for t.untracedDegree(v)%2 == 1 {
				trails = append(trails, t.walk(v))
			}
		}
	}
	for r := 0; r <= t.rows; r++ {
		for c := 0; c <= t.cols; c++ {
			v := corner{r: r, c: c}
			for t.untracedDegree(v) > 0 {
				trails = append(trails, t.walk(v))
			}
		}
	}
	return trails
}

// walk emits one trail from start, following untraced segments until none
// continue. Arriving back at start means every corner on the way satisfied
// the turn rule and the trail is a closed loop; the duplicate endpoint is
// dropped and the closing segment left implicit.
func (t *tracer) walk(start corner) trail {
	dir, ok := t.firstUntraced(start)
	if !ok {
		return trail{corners: []corner{start}}
	}
	corners := []corner{start}
	cur := start
	for {
		t.mark(cur, dir)
		cur = cur.next(dir)
		corners = append(corners, cur)
		next, cont := t.turn(cur, dir)
		if !cont {
			break
		}
		dir = next
	}
	if cur == start {
		return trail{corners: corners[:len(corners)-1], closed: true}
	}
	return trail{corners: corners}
}

// firstUntraced picks the starting heading in canonical direction order.
func (t *tracer) firstUntraced(v corner) (maze.Direction, bool) {
	for _, d := range maze.Directions {
		if t.untraced(v, d) {
			return d, true
		}
	}
	return maze.North, false
}

// turn selects the continuation at v for a walk heading d: sharpest right
// turn first, then straight, then left. Reversing would re-walk the segment
// just marked, so it is never considered.
func (t *tracer) turn(v corner, d maze.Direction) (maze.Direction, bool) {
	for _, cand := range [3]maze.Direction{d.Right(), d, d.Left()} {
		if t.untraced(v, cand) {
			return cand, true
		}
	}
	return maze.North, false
}
