package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mazeforge/mazeforge/carve"
	"github.com/mazeforge/mazeforge/contour"
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/mazejson"
	"github.com/mazeforge/mazeforge/render"
	"github.com/mazeforge/mazeforge/solve"
)

const (
	typeText  = "text"
	typeBlock = "block"
	typeSVG   = "svg"
	typePNG   = "png"
	typeJSON  = "json"
)

// svgDefaultCellSize applies when --cell-size is left at its default for SVG
// output, where one unit per cell is unusably small.
const svgDefaultCellSize = 19

type options struct {
	rows, cols int

	outputType string
	outputFile string

	cellSize   int
	wallSize   int
	borderSize int

	cellColor     string
	wallColor     string
	solutionColor string

	solutions bool

	northExit int
	southExit int
	eastExit  int
	westExit  int

	seed             int64
	spawnProbability float64

	importJSON string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "mazeforge",
		Short: "Generate, solve and render perfect mazes",
		Long: `Mazeforge carves a random perfect maze (every pair of cells joined by
exactly one path), optionally solves it between its exits, and renders the
result as a character grid, SVG, PNG or JSON.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.rows, "rows", "r", 10, "maze height in cells")
	f.IntVarP(&o.cols, "cols", "c", 10, "maze width in cells")
	f.StringVarP(&o.outputType, "output-type", "t", typeText, "one of text, block, svg, png, json")
	f.StringVarP(&o.outputFile, "output-file", "o", "", "write to this file instead of stdout")
	f.IntVar(&o.cellSize, "cell-size", 1, "cell side length in chars/px/units (svg default 19)")
	f.IntVar(&o.wallSize, "wall-size", 1, "wall thickness")
	f.IntVar(&o.borderSize, "border-size", 0, "blank border around the maze")
	f.StringVar(&o.cellColor, "cell-color", "ffffff", "cell colour as a hex triplet")
	f.StringVar(&o.wallColor, "wall-color", "000000", "wall colour as a hex triplet")
	f.StringVar(&o.solutionColor, "solution-color", "ff0000", "solution colour as a hex triplet")
	f.BoolVarP(&o.solutions, "solutions", "s", false, "overlay the path between the first two exits")
	f.IntVar(&o.northExit, "north-exit", -1, "column of an opening in the north wall")
	f.IntVar(&o.southExit, "south-exit", -1, "column of an opening in the south wall")
	f.IntVar(&o.eastExit, "east-exit", -1, "row of an opening in the east wall")
	f.IntVar(&o.westExit, "west-exit", -1, "row of an opening in the west wall")
	f.Int64Var(&o.seed, "seed", 0, "generation seed; omit for a time-based one")
	f.Float64Var(&o.spawnProbability, "spawn-probability", 0, "chance a carving worker forks at a junction")
	f.StringVarP(&o.importJSON, "import-json", "j", "", "render an existing maze from a JSON file")
	f.BoolVar(&o.verbose, "verbose", false, "debug logging on stderr")
	return cmd
}

func run(cmd *cobra.Command, o *options) error {
	log := newLogger(cmd.ErrOrStderr(), o.verbose)

	m, paths, err := buildMaze(cmd, o, log)
	if err != nil {
		return err
	}
	if o.solutions && len(paths) == 0 {
		paths, err = solveBetweenExits(m)
		if err != nil {
			return err
		}
		log.Debug("solved", "cells", len(paths[0]))
	}
	if !o.solutions {
		paths = nil
	}

	out, done, err := openOutput(cmd, o)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, out, m, paths, o); err != nil {
		done()
		return err
	}
	return done()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildMaze either imports a JSON document or carves a fresh maze.
func buildMaze(cmd *cobra.Command, o *options, log *slog.Logger) (*maze.Maze, []solve.Path, error) {
	if o.importJSON != "" {
		data, err := os.ReadFile(o.importJSON)
		if err != nil {
			return nil, nil, fmt.Errorf("import: %w", err)
		}
		m, paths, err := mazejson.Unmarshal(data)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("imported", "file", o.importJSON, "rows", m.Rows(), "cols", m.Cols())
		return m, paths, nil
	}

	opts := []carve.Option{carve.WithSpawnProbability(o.spawnProbability)}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, carve.WithSeed(o.seed))
	}
	m, err := carve.Generate(o.rows, o.cols, o.exits(), opts...)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("generated", "rows", m.Rows(), "cols", m.Cols(), "walls", m.WallCount())
	return m, nil, nil
}

func (o *options) exits() []maze.Exit {
	var exits []maze.Exit
	add := func(d maze.Direction, idx int) {
		if idx >= 0 {
			exits = append(exits, maze.Exit{Wall: d, Index: idx})
		}
	}
	add(maze.North, o.northExit)
	add(maze.West, o.westExit)
	add(maze.South, o.southExit)
	add(maze.East, o.eastExit)
	return exits
}

func solveBetweenExits(m *maze.Maze) ([]solve.Path, error) {
	exits := m.Exits()
	if len(exits) < 2 {
		return nil, fmt.Errorf("solving needs at least two exits, have %d", len(exits))
	}
	path, err := solve.BetweenExits(m, exits[0], exits[1])
	if err != nil {
		return nil, err
	}
	return []solve.Path{path}, nil
}

// openOutput returns the destination writer and a finalizer that flushes and
// closes it.
func openOutput(cmd *cobra.Command, o *options) (io.Writer, func() error, error) {
	if o.outputFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(o.outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("output: %w", err)
	}
	return f, f.Close, nil
}

func writeOutput(cmd *cobra.Command, w io.Writer, m *maze.Maze, paths []solve.Path, o *options) error {
	switch o.outputType {
	case typeText, typeBlock:
		topts := render.DefaultTextOptions()
		if o.outputType == typeBlock {
			topts = render.DefaultBlockOptions()
		}
		topts.CellSize = o.cellSize
		topts.WallSize = o.wallSize
		topts.BorderSize = o.borderSize
		topts.Solutions = paths
		out, err := render.Text(m, topts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err

	case typePNG:
		popts := render.DefaultPNGOptions()
		popts.CellSize = o.cellSize
		popts.WallSize = o.wallSize
		popts.BorderSize = o.borderSize
		popts.Solutions = paths
		var err error
		if popts.CellColor, err = render.ParseColor(o.cellColor); err != nil {
			return err
		}
		if popts.WallColor, err = render.ParseColor(o.wallColor); err != nil {
			return err
		}
		if popts.SolutionColor, err = render.ParseColor(o.solutionColor); err != nil {
			return err
		}
		return render.PNG(w, m, popts)

	case typeSVG:
		sopts := render.DefaultSVGOptions()
		cell := o.cellSize
		if !cmd.Flags().Changed("cell-size") {
			cell = svgDefaultCellSize
		}
		sopts.Sizing = contour.Sizing{
			CellSize:   contour.Abs(float64(cell)),
			WallSize:   contour.Abs(float64(o.wallSize)),
			BorderSize: contour.Abs(float64(o.borderSize)),
		}
		sopts.Solutions = paths
		var err error
		if sopts.CellColor, err = render.ParseColor(o.cellColor); err != nil {
			return err
		}
		if sopts.WallColor, err = render.ParseColor(o.wallColor); err != nil {
			return err
		}
		if sopts.SolutionColor, err = render.ParseColor(o.solutionColor); err != nil {
			return err
		}
		return render.SVG(w, m, sopts)

	case typeJSON:
		data, err := mazejson.Marshal(m, paths)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	default:
		return fmt.Errorf("unknown output type %q (want text, block, svg, png or json)", o.outputType)
	}
}
