package render

import (
	"strings"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/solve"
)

// TextOptions configures character-grid output. Sizes are in characters.
type TextOptions struct {
	CellSize   int
	WallSize   int
	BorderSize int

	Wall     rune
	Floor    rune
	Solution rune

	Solutions []solve.Path
}

// DefaultTextOptions renders one character per cell and wall, '#' walls.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		CellSize: 1,
		WallSize: 1,
		Wall:     '#',
		Floor:    ' ',
		Solution: '+',
	}
}

// DefaultBlockOptions is DefaultTextOptions with solid-block walls.
func DefaultBlockOptions() TextOptions {
	o := DefaultTextOptions()
	o.Wall = '█'
	return o
}

// Text renders m as a newline-terminated character grid.
func Text(m *maze.Maze, o TextOptions) (string, error) {
	cv, err := paint(m, o.CellSize, o.WallSize, o.BorderSize, o.Solutions)
	if err != nil {
		return "", err
	}
	glyphs := [3]rune{layerCell: o.Floor, layerSolution: o.Solution, layerWall: o.Wall}

	var sb strings.Builder
	sb.Grow(cv.h * (cv.w + 1))
	for y := 0; y < cv.h; y++ {
		for _, v := range cv.pix[y*cv.w : (y+1)*cv.w] {
			sb.WriteRune(glyphs[v])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
