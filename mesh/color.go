package mesh

import "image/color"

// Color is a linear RGBA color with components in [0, 1], the range the
// vertex attributes expect.
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color from components in [0, 1].
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA8 converts to an 8-bit color for backends built on image/color.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
