package quilt

import (
	"fmt"
	"strconv"

	"github.com/quilt-ui/quilt/mesh"
)

// Color is the vertex color carried by every node.
type Color = mesh.Color

// Colors the demo trees use.
var (
	White  = mesh.RGB(1, 1, 1)
	Black  = mesh.RGB(0, 0, 0)
	Red    = mesh.RGB(1, 0, 0)
	Green  = mesh.RGB(0, 1, 0)
	Blue   = mesh.RGB(0, 0, 1)
	Purple = mesh.RGB(0.5, 0, 0.5)
	Aqua   = mesh.RGB(0, 1, 1)
)

// ParseColor parses "#rgb", "#rrggbb", or "#rrggbbaa" hex notation.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("parse color %q: expected leading '#'", s)
	}
	hex := s[1:]

	// Expand shorthand: #abc -> #aabbcc
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: expected 3, 6, or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}

	a := uint64(0xff)
	if len(hex) == 8 {
		a = v & 0xff
		v >>= 8
	}
	return Color{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
		A: float32(a) / 255,
	}, nil
}
