package quilt

import (
	"github.com/charmbracelet/log"

	"github.com/quilt-ui/quilt/internal/layout"
)

// UI owns a layout tree, its per-node colors, and the viewport it is laid
// out against. It sequences the layout passes per frame and drives the
// draw traversal. A UI with no root is a valid, explicit state: Layout
// and Draw log a diagnostic and no-op so a partially built tree still
// renders its background.
type UI struct {
	tree       *layout.Tree
	colors     []Color // indexed by NodeID
	background Color
	width      int
	height     int
	parallel   bool
	logger     *log.Logger
}

// Option configures a UI.
type Option func(*UI)

// WithBackground sets the clear color behind the tree.
func WithBackground(c Color) Option {
	return func(u *UI) { u.background = c }
}

// WithViewport sets the initial viewport size.
func WithViewport(width, height int) Option {
	return func(u *UI) { u.width, u.height = width, height }
}

// WithParallel enables sibling-subtree fan-out during the fit pass.
func WithParallel() Option {
	return func(u *UI) { u.parallel = true }
}

// WithLogger sets the logger used for layout diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(u *UI) { u.logger = l }
}

// New creates an empty UI.
func New(opts ...Option) *UI {
	u := &UI{
		tree:   layout.NewTree(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Tree returns the underlying layout tree.
func (u *UI) Tree() *Tree {
	return u.tree
}

// Root creates the root node. The tree must be empty.
func (u *UI) Root(style Style, c Color) NodeID {
	return u.Box(NoNode, style, c)
}

// Box creates a node with the given style and color under parent and
// returns its ID. Pass NoNode as the parent to create the root.
func (u *UI) Box(parent NodeID, style Style, c Color) NodeID {
	id := u.tree.Add(parent, style)
	u.colors = append(u.colors, c)
	return id
}

// Color returns the color of the given node.
func (u *UI) Color(id NodeID) Color {
	return u.colors[id]
}

// SetColor replaces the color of the given node.
func (u *UI) SetColor(id NodeID, c Color) {
	u.colors[id] = c
}

// Background returns the clear color.
func (u *UI) Background() Color {
	return u.background
}

// Clear discards the whole tree. Structural changes rebuild wholesale;
// the engine never inserts or removes individual nodes.
func (u *UI) Clear() {
	u.tree.Reset()
	u.colors = u.colors[:0]
}

// Resize re-seeds the viewport size used by the next Layout.
func (u *UI) Resize(width, height int) {
	u.width, u.height = width, height
}

// Viewport returns the current viewport size.
func (u *UI) Viewport() (width, height int) {
	return u.width, u.height
}

// Layout runs the fit, grow, and position passes against the current
// viewport. With no root this is a logged no-op.
func (u *UI) Layout() {
	if u.tree.Root() == NoNode {
		u.logger.Debug("layout skipped: tree has no root")
		return
	}
	if u.parallel {
		layout.CalculateParallel(u.tree, u.width, u.height)
	} else {
		layout.Calculate(u.tree, u.width, u.height)
	}
}

// Frame runs a full frame: layout followed by the draw traversal.
func (u *UI) Frame(r Renderer) error {
	u.Layout()
	return u.Draw(r)
}
