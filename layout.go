// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package quilt

import "github.com/quilt-ui/quilt/internal/layout"

// Axis identifies one of the two layout axes.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Direction specifies the main axis for stacking children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Mode specifies how a dimension is resolved.
type Mode = layout.Mode

const (
	ModeFit   = layout.ModeFit
	ModeFixed = layout.ModeFixed
	ModeGrow  = layout.ModeGrow
)

// Size represents a sizing policy for a single axis.
type Size = layout.Size

// Sizing holds the per-axis sizing policy of a node.
type Sizing = layout.Sizing

// Style contains all layout properties for a node.
type Style = layout.Style

// Tree is an arena of layout nodes forming a strict hierarchy.
type Tree = layout.Tree

// NodeID addresses a node in a Tree.
type NodeID = layout.NodeID

// NoNode is the sentinel for "no node".
const NoNode = layout.NoNode

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Fit returns a Size that resolves to the content minimum.
func Fit() Size {
	return layout.Fit()
}

// Fixed returns a Size frozen at n.
func Fixed(n int) Size {
	return layout.Fixed(n)
}

// Grow returns a Size that claims leftover space in its container.
func Grow() Size {
	return layout.Grow()
}

// Uniform returns a Sizing with the same policy on both axes.
func Uniform(s Size) Sizing {
	return layout.Uniform(s)
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewTree creates an empty layout tree.
func NewTree() *Tree {
	return layout.NewTree()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Calculate performs layout on the given tree against a viewport size.
func Calculate(t *Tree, viewportWidth, viewportHeight int) {
	layout.Calculate(t, viewportWidth, viewportHeight)
}

// CalculateParallel is Calculate with the fit pass fanned out across the
// root's child subtrees.
func CalculateParallel(t *Tree, viewportWidth, viewportHeight int) {
	layout.CalculateParallel(t, viewportWidth, viewportHeight)
}
