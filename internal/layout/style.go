package layout

// Style contains all layout properties for a node.
type Style struct {
	// Sizing policy per axis. The zero value is Fit on both axes.
	Sizing Sizing

	// Direction determines which axis children stack along.
	Direction Direction

	// Padding is a uniform inset on all four sides.
	Padding int

	// Gap is the space between consecutive children along the main axis.
	Gap int

	// Size constraints. A zero max means unbounded.
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
}

// DefaultStyle returns the zero Style: Fit sizing, Row direction, no
// padding, gap, or constraints.
func DefaultStyle() Style {
	return Style{}
}

// Min returns the minimum size constraint along the given axis.
func (s Style) Min(a Axis) int {
	if a == Horizontal {
		return s.MinWidth
	}
	return s.MinHeight
}

// Max returns the maximum size constraint along the given axis, or 0 if
// the axis is unbounded.
func (s Style) Max(a Axis) int {
	if a == Horizontal {
		return s.MaxWidth
	}
	return s.MaxHeight
}

// Clamp restricts v to this style's [min, max] range on the given axis.
// If min exceeds max, min wins.
func (s Style) Clamp(a Axis, v int) int {
	if minV := s.Min(a); v < minV {
		return minV
	}
	if maxV := s.Max(a); maxV > 0 && v > maxV {
		if maxV < s.Min(a) {
			return s.Min(a)
		}
		return maxV
	}
	return v
}
