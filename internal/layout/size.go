package layout

// Mode specifies how a dimension is resolved.
type Mode uint8

const (
	ModeFit   Mode = iota // Size to exactly the content minimum (default)
	ModeFixed             // Freeze the dimension at a declared value
	ModeGrow              // Claim leftover space after siblings' minimums
)

// Size represents a sizing policy for a single axis.
type Size struct {
	Mode   Mode
	Amount int // Only meaningful for ModeFixed
}

// Fit returns a Size that resolves to the content minimum.
func Fit() Size {
	return Size{Mode: ModeFit}
}

// Fixed returns a Size frozen at n.
func Fixed(n int) Size {
	return Size{Mode: ModeFixed, Amount: n}
}

// Grow returns a Size that claims leftover space in its container.
func Grow() Size {
	return Size{Mode: ModeGrow}
}

// IsGrow reports whether this dimension competes for leftover space.
func (s Size) IsGrow() bool {
	return s.Mode == ModeGrow
}

// Sizing holds the per-axis sizing policy of a node.
type Sizing struct {
	Width  Size
	Height Size
}

// Uniform returns a Sizing with the same policy on both axes.
func Uniform(s Size) Sizing {
	return Sizing{Width: s, Height: s}
}

// Along returns the policy for the given axis.
func (s Sizing) Along(a Axis) Size {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}
