package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/solve"
)

// PNGOptions configures paletted raster output. Sizes are in pixels.
type PNGOptions struct {
	CellSize   int
	WallSize   int
	BorderSize int

	CellColor     colorful.Color
	WallColor     colorful.Color
	SolutionColor colorful.Color

	Solutions []solve.Path
}

// DefaultPNGOptions renders one pixel per cell and wall: white floor, black
// walls, red solutions.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		CellSize:      1,
		WallSize:      1,
		CellColor:     White,
		WallColor:     Black,
		SolutionColor: Red,
	}
}

// PNG encodes m as a three-color paletted PNG. The canvas layer values map
// directly onto palette indices.
func PNG(w io.Writer, m *maze.Maze, o PNGOptions) error {
	cv, err := paint(m, o.CellSize, o.WallSize, o.BorderSize, o.Solutions)
	if err != nil {
		return err
	}
	pal := color.Palette{o.CellColor, o.SolutionColor, o.WallColor}
	img := image.NewPaletted(image.Rect(0, 0, cv.w, cv.h), pal)
	copy(img.Pix, cv.pix)
	return png.Encode(w, img)
}
