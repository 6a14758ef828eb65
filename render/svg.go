package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mazeforge/mazeforge/contour"
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/solve"
)

// SVGOptions configures vector output. Sizing units are SVG user units.
type SVGOptions struct {
	Sizing contour.Sizing

	CellColor     colorful.Color
	WallColor     colorful.Color
	SolutionColor colorful.Color

	Solutions []solve.Path
}

// DefaultSVGOptions uses 19-unit cells with single-unit walls: white
// background, black walls, red dashed solutions.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Sizing: contour.Sizing{
			CellSize:   contour.Abs(19),
			WallSize:   contour.Abs(1),
			BorderSize: contour.Abs(0),
		},
		CellColor:     White,
		WallColor:     Black,
		SolutionColor: Red,
	}
}

// SVG writes m as a standalone SVG document: a background rectangle, the
// traced wall contours as stroked paths, and dashed solution polylines
// through the cell centers. Square line caps extend each open contour end by
// half a wall thickness, which is exactly the corner post the raster painter
// draws there.
func SVG(w io.Writer, m *maze.Maze, o SVGOptions) error {
	lines, err := contour.Trace(m, o.Sizing)
	if err != nil {
		return err
	}
	cell, wall, border, err := o.Sizing.Resolve()
	if err != nil {
		return err
	}
	cw, ch, err := contour.CanvasSize(m.Rows(), m.Cols(), o.Sizing)
	if err != nil {
		return err
	}

	doc := svg.New(w)
	doc.Start(int(math.Ceil(cw)), int(math.Ceil(ch)))
	doc.Rect(0, 0, int(math.Ceil(cw)), int(math.Ceil(ch)),
		fmt.Sprintf("fill:%s", o.CellColor.Hex()))

	wallStyle := fmt.Sprintf(
		"fill:none;stroke:%s;stroke-width:%g;stroke-linecap:square;stroke-linejoin:miter",
		o.WallColor.Hex(), wall)
	for _, pl := range lines {
		doc.Path(pathData(pl), wallStyle)
	}

	solutionStyle := fmt.Sprintf(
		"fill:none;stroke:%s;stroke-width:%g;stroke-linecap:square;stroke-dasharray:%g,%g",
		o.SolutionColor.Hex(), wall, cell/4, cell/4)
	for _, path := range o.Solutions {
		doc.Path(solutionData(path, cell, wall, border), solutionStyle)
	}

	doc.End()
	return nil
}

// pathData serializes a polyline as SVG path commands; closed contours get a
// Z so the line join covers the final corner.
func pathData(pl contour.Polyline) string {
	var sb strings.Builder
	for i, pt := range pl.Points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, " %g %g", pt.X, pt.Y)
	}
	if pl.Closed {
		sb.WriteString(" Z")
	}
	return sb.String()
}

// solutionData serializes a path through the centers of its cells.
func solutionData(path solve.Path, cell, wall, border float64) string {
	span := cell + wall
	var sb strings.Builder
	for i, p := range path {
		x := border + wall + float64(p.Col)*span + cell/2
		y := border + wall + float64(p.Row)*span + cell/2
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, " %g %g", x, y)
	}
	return sb.String()
}
