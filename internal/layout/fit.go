package layout

// fitSizing computes content-minimum sizes bottom-up. After this pass
// every node's size equals its content minimum, clamped to [min, max];
// Grow expansion happens later in the grow pass.
func (t *Tree) fitSizing(id NodeID) {
	for _, c := range t.nodes[id].children {
		t.fitSizing(c)
	}
	t.fitOwn(id)
}

// fitOwn resolves a single node's size from its (already fitted) children.
// The main-axis minimum is the sum of child sizes plus gaps and padding;
// the cross-axis minimum is the largest child plus padding. Leaves reduce
// to 2·padding on both axes, which the clamp then raises to the declared
// minimum.
func (t *Tree) fitOwn(id NodeID) {
	n := &t.nodes[id]
	main := n.style.Direction.Main()
	cross := main.Flip()

	mainAccum := 2 * n.style.Padding
	crossAccum := 0
	for _, c := range n.children {
		child := &t.nodes[c]
		mainAccum += child.size[main]
		crossAccum = max(crossAccum, child.size[cross])
	}
	if len(n.children) > 0 {
		mainAccum += (len(n.children) - 1) * n.style.Gap
	}
	crossAccum += 2 * n.style.Padding

	n.size[main] = t.resolve(n.style, main, mainAccum)
	n.size[cross] = t.resolve(n.style, cross, crossAccum)
}

// resolve turns a content size into the node's own size for one axis:
// Fixed freezes the dimension, Fit and Grow start at the content minimum.
// The result is clamped to the style's [min, max] range.
func (t *Tree) resolve(style Style, a Axis, content int) int {
	v := content
	if s := style.Sizing.Along(a); s.Mode == ModeFixed {
		v = s.Amount
	}
	return style.Clamp(a, v)
}
