// Package render turns a maze into human-readable output: character grids,
// paletted PNG rasters, and standalone SVG documents.
//
// Text, block and PNG output share one painter. The painter fills a layered
// canvas in three passes: cell background, solution overlays through the
// cell centers, then wall rectangles. Every wall rectangle spans the wall
// band plus the corner post on both ends, so junction corners are covered
// exactly where the contour tracer's square line caps would cover them, and
// no post is painted unless at least one incident wall exists.
//
// SVG output skips the painter entirely and strokes the polylines from
// contour.Trace; at equal sizing both renderings cover the same area.
//
// Errors:
//
//   - ErrSizing for a non-positive cell or wall size, or a negative border.
//   - ErrColor from ParseColor for an unparseable hex triplet.
package render

import (
	"errors"
	"fmt"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/solve"
)

// ErrSizing indicates unusable raster dimensions.
var ErrSizing = errors.New("render: invalid sizing configuration")

// Layer values double as palette indices for PNG output: later layers paint
// over earlier ones.
const (
	layerCell uint8 = iota
	layerSolution
	layerWall
)

// canvas is a row-major grid of layer indices.
type canvas struct {
	w, h int
	pix  []uint8
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, pix: make([]uint8, w*h)}
}

func (c *canvas) fill(x, y, w, h int, v uint8) {
	for yy := y; yy < y+h; yy++ {
		row := c.pix[yy*c.w : yy*c.w+c.w]
		for xx := x; xx < x+w; xx++ {
			row[xx] = v
		}
	}
}

// paint rasterizes m at integer sizes: cs per cell side, ws per wall
// thickness, b blank border, all in glyph/pixel units.
func paint(m *maze.Maze, cs, ws, b int, solutions []solve.Path) (*canvas, error) {
	if cs < 1 {
		return nil, fmt.Errorf("%w: cell size %d", ErrSizing, cs)
	}
	if ws < 1 {
		return nil, fmt.Errorf("%w: wall size %d", ErrSizing, ws)
	}
	if b < 0 {
		return nil, fmt.Errorf("%w: border size %d", ErrSizing, b)
	}

	rows, cols := m.Rows(), m.Cols()
	span := cs + ws
	cv := newCanvas(2*b+cols*cs+(cols+1)*ws, 2*b+rows*cs+(rows+1)*ws)

	for _, path := range solutions {
		paintSolution(cv, path, cs, ws, b)
	}

	// Wall bands. Each east-west segment is ws tall and covers the cell
	// width plus both corner posts; north-south segments likewise.
	for r := 0; r <= rows; r++ {
		for c := 0; c < cols; c++ {
			if m.Wall(maze.EW, r, c) {
				cv.fill(b+c*span, b+r*span, cs+2*ws, ws, layerWall)
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c <= cols; c++ {
			if m.Wall(maze.NS, r, c) {
				cv.fill(b+c*span, b+r*span, ws, cs+2*ws, layerWall)
			}
		}
	}
	return cv, nil
}

// paintSolution draws a one-unit trail through the centers of the path's
// cells. Consecutive cells are adjacent with the wall between them open, so
// the straight run between two centers only ever crosses that opening.
func paintSolution(cv *canvas, path solve.Path, cs, ws, b int) {
	span := cs + ws
	center := func(p maze.Position) (x, y int) {
		return b + ws + p.Col*span + cs/2, b + ws + p.Row*span + cs/2
	}
	for i, p := range path {
		x, y := center(p)
		cv.fill(x, y, 1, 1, layerSolution)
		if i+1 == len(path) {
			break
		}
		nx, ny := center(path[i+1])
		if x > nx {
			x, nx = nx, x
		}
		if y > ny {
			y, ny = ny, y
		}
		cv.fill(x, y, nx-x+1, ny-y+1, layerSolution)
	}
}
