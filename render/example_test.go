package render_test

import (
	"fmt"
	"strings"

	"github.com/mazeforge/mazeforge/carve"
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/render"
)

// ExampleText generates a small maze with two exits and renders it as a
// character grid, one glyph per cell and wall.
func ExampleText() {
	exits := []maze.Exit{
		{Wall: maze.North, Index: 0},
		{Wall: maze.South, Index: 3},
	}
	m, err := carve.Generate(4, 4, exits, carve.WithSeed(99))
	if err != nil {
		fmt.Println("generate:", err)
		return
	}
	out, err := render.Text(m, render.DefaultTextOptions())
	if err != nil {
		fmt.Println("render:", err)
		return
	}
	grid := strings.Split(strings.TrimRight(out, "\n"), "\n")
	fmt.Printf("lines: %d, width: %d\n", len(grid), len(grid[0]))
	fmt.Printf("north exit open: %t\n", strings.HasPrefix(grid[0], "# "))
	// Output:
	// lines: 9, width: 9
	// north exit open: true
}
