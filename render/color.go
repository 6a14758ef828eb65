package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrColor indicates a color string that is not a hex triplet.
var ErrColor = errors.New("render: invalid color")

// ParseColor parses an "rrggbb" or "#rrggbb" hex triplet.
func ParseColor(s string) (colorful.Color, error) {
	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	return c, nil
}

// Stock colors matching the defaults of the command-line tool.
var (
	White = colorful.Color{R: 1, G: 1, B: 1}
	Black = colorful.Color{R: 0, G: 0, B: 0}
	Red   = colorful.Color{R: 1, G: 0, B: 0}
)
