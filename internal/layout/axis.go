package layout

// Axis identifies one of the two layout axes. It doubles as an index into
// per-node size and position arrays, so every pass can be written once and
// applied to either axis.
type Axis uint8

const (
	Horizontal Axis = iota // Left-to-right dimension (width, x)
	Vertical               // Top-to-bottom dimension (height, y)
)

// Flip returns the orthogonal axis.
func (a Axis) Flip() Axis {
	return a ^ 1
}

// String returns a readable name for debugging output.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Direction specifies the main axis for stacking children.
type Direction uint8

const (
	Row    Direction = iota // Children stacked left-to-right (default)
	Column                  // Children stacked top-to-bottom
)

// Main returns the axis along which children are stacked.
func (d Direction) Main() Axis {
	if d == Column {
		return Vertical
	}
	return Horizontal
}

// Cross returns the axis orthogonal to the stacking axis.
func (d Direction) Cross() Axis {
	return d.Main().Flip()
}

// String returns a readable name for debugging output.
func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}
