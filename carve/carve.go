// Package carve produces perfect mazes by randomized spanning-tree carving.
//
// One or more workers walk the grid knocking down walls into unvisited
// cells, backtracking along an explicit stack at dead ends. A worker may
// probabilistically fork at junctions (SpawnProbability), which changes the
// texture of the maze but not its invariants: generation always visits every
// cell exactly once and carves exactly rows·cols−1 interior walls, so the
// open-cell graph is a spanning tree.
//
// Determinism: identical rows, cols, exits, start, spawn probability and
// random seed produce an identical wall state.
//
// Complexity:
//
//   - Time:   O(rows·cols) — every cell is pushed and popped once across all
//     worker stacks.
//   - Memory: O(rows·cols) for the visited matrix and stacks.
//
// Errors:
//
//   - maze.ErrInvalidDimension, maze.ErrExitOutOfRange, maze.ErrExitConflict
//     from grid construction.
//   - ErrStartOutOfBounds if the starting cell lies outside the grid.
//   - ErrSpawnProbability if the spawn probability is outside [0, 1].
package carve

import (
	"math/rand"
	"time"

	"github.com/mazeforge/mazeforge/maze"
)

// Generate builds a rows×cols perfect maze with the given exits.
func Generate(rows, cols int, exits []maze.Exit, opts ...Option) (*maze.Maze, error) {
	// 1. Apply options.
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.SpawnProbability < 0 || cfg.SpawnProbability > 1 {
		return nil, ErrSpawnProbability
	}

	// 2. Build the fully-walled grid; dimension and exit validation happen
	// here, before any carving.
	m, err := maze.New(rows, cols, exits...)
	if err != nil {
		return nil, err
	}
	if !m.InBounds(cfg.Start) {
		return nil, ErrStartOutOfBounds
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 3. Carve.
	c := &carver{
		maze:    m,
		rng:     rng,
		spawn:   cfg.SpawnProbability,
		visited: make([][]bool, rows),
	}
	for r := range c.visited {
		c.visited[r] = make([]bool, cols)
	}
	c.addWorker(cfg.Start)
	c.run()

	return m, nil
}

// carver holds the shared generation state: the grid being carved, the
// visited matrix, and the worker pool.
type carver struct {
	maze    *maze.Maze
	rng     *rand.Rand
	spawn   float64
	visited [][]bool
	workers []*worker
}

// worker walks the grid along an explicit position stack. The stack top is
// the worker's current cell; popping it backtracks. A worker with an empty
// stack has retired.
type worker struct {
	stack []maze.Position
}

func (w *worker) alive() bool { return len(w.stack) > 0 }

func (w *worker) top() maze.Position { return w.stack[len(w.stack)-1] }

// addWorker registers a new worker at p and marks p visited.
func (c *carver) addWorker(p maze.Position) {
	c.visited[p.Row][p.Col] = true
	c.workers = append(c.workers, &worker{stack: []maze.Position{p}})
}

// run sweeps the worker pool until every worker has retired. Workers spawned
// mid-sweep take their first step within the same sweep, matching the order
// their walls were opened in.
func (c *carver) run() {
	for {
		anyAlive := false
		for i := 0; i < len(c.workers); i++ {
			if c.workers[i].alive() {
				anyAlive = true
				c.step(c.workers[i])
			}
		}
		if !anyAlive {
			return
		}
	}
}

// step advances one worker: backtrack past dead ends, then either fork and
// move or just move into a uniformly chosen unvisited neighbor.
func (c *carver) step(w *worker) {
	var dirs []maze.Direction
	for w.alive() {
		if dirs = c.unvisitedDirs(w.top()); len(dirs) > 0 {
			break
		}
		w.stack = w.stack[:len(w.stack)-1]
	}
	if !w.alive() {
		return
	}
	if c.spawn > 0 && len(dirs) >= 2 && c.rng.Float64() < c.spawn {
		i := c.rng.Intn(len(dirs))
		spawnDir := dirs[i]
		dirs = append(dirs[:i:i], dirs[i+1:]...)
		c.maze.RemoveWall(w.top(), spawnDir)
		c.addWorker(w.top().Neighbor(spawnDir))
	}
	c.move(w, dirs[c.rng.Intn(len(dirs))])
}

// move opens the wall toward d and pushes the revealed cell.
func (c *carver) move(w *worker, d maze.Direction) {
	next := w.top().Neighbor(d)
	c.maze.RemoveWall(w.top(), d)
	c.visited[next.Row][next.Col] = true
	w.stack = append(w.stack, next)
}

// unvisitedDirs lists the directions from p into unvisited in-bounds cells,
// in canonical direction order.
func (c *carver) unvisitedDirs(p maze.Position) []maze.Direction {
	var dirs []maze.Direction
	for _, d := range maze.Directions {
		n := p.Neighbor(d)
		if c.maze.InBounds(n) && !c.visited[n.Row][n.Col] {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
