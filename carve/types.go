package carve

import (
	"errors"
	"math/rand"

	"github.com/mazeforge/mazeforge/maze"
)

var (
	// ErrStartOutOfBounds indicates a starting cell outside the grid.
	ErrStartOutOfBounds = errors.New("carve: start position outside the grid")
	// ErrSpawnProbability indicates a spawn probability outside [0, 1].
	ErrSpawnProbability = errors.New("carve: spawn probability must be in [0, 1]")
)

// Option configures optional behavior of Generate.
// Use with Generate(rows, cols, exits, opts...).
type Option func(*Options)

// Options holds configurable parameters for maze generation. Every random
// choice is drawn from Rand, so identical options yield identical mazes.
type Options struct {
	// Start is the cell the first carving worker begins from.
	// Defaults to (0,0).
	Start maze.Position

	// Rand is the random source for neighbor and spawn decisions. When nil,
	// Generate seeds a fresh source from the wall clock; pass WithSeed or
	// WithRand for reproducible output.
	Rand *rand.Rand

	// SpawnProbability is the chance, per step, that a worker with at least
	// two unvisited neighbors forks a second worker instead of carving
	// alone. 0 disables spawning and reduces generation to a single
	// depth-first backtracker. Must lie in [0, 1].
	SpawnProbability float64
}

// DefaultOptions returns the default generation parameters: start at (0,0),
// wall-clock seeding, no worker spawning.
func DefaultOptions() Options {
	return Options{}
}

// WithStart sets the first worker's starting cell.
func WithStart(p maze.Position) Option {
	return func(o *Options) { o.Start = p }
}

// WithRand injects a random source. Overrides WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed seeds a fresh random source deterministically.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithSpawnProbability sets the per-step worker fork probability.
func WithSpawnProbability(p float64) Option {
	return func(o *Options) { o.SpawnProbability = p }
}
