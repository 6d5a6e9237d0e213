package layout

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Calculate performs layout on the tree: fit sizing (leaves to root),
// root forcing against the viewport, grow distribution (root to leaves),
// and position assignment (root to leaves). An empty tree is a no-op.
//
// viewportWidth and viewportHeight seed the root on every axis where the
// root's own sizing mode is Grow; the root is the only node whose size is
// set from outside the tree.
func Calculate(t *Tree, viewportWidth, viewportHeight int) {
	if t == nil || t.root == NoNode {
		return
	}
	t.fitSizing(t.root)
	t.forceRoot(viewportWidth, viewportHeight)
	t.growSizing(t.root)
	t.setPositions(t.root)
}

// CalculateParallel is Calculate with the fit pass fanned out across the
// root's child subtrees. Sibling subtrees occupy disjoint arena slots, so
// the goroutines never touch the same node. Grow and position stay
// sequential: they are cheap cursor walks whose output depends on sibling
// order.
func CalculateParallel(t *Tree, viewportWidth, viewportHeight int) {
	if t == nil || t.root == NoNode {
		return
	}

	children := t.nodes[t.root].children
	if len(children) < 2 {
		t.fitSizing(t.root)
	} else {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, c := range children {
			g.Go(func() error {
				t.fitSizing(c)
				return nil
			})
		}
		g.Wait() //nolint:errcheck // fitSizing cannot fail
		t.fitOwn(t.root)
	}

	t.forceRoot(viewportWidth, viewportHeight)
	t.growSizing(t.root)
	t.setPositions(t.root)
}

// forceRoot overwrites the root's resolved size with the viewport
// dimension on each axis where the root's sizing mode is Grow. This seeds
// the top-down grow distribution.
func (t *Tree) forceRoot(viewportWidth, viewportHeight int) {
	root := &t.nodes[t.root]
	if root.style.Sizing.Width.IsGrow() {
		root.size[Horizontal] = root.style.Clamp(Horizontal, viewportWidth)
	}
	if root.style.Sizing.Height.IsGrow() {
		root.size[Vertical] = root.style.Clamp(Vertical, viewportHeight)
	}
}
