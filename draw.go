package quilt

import "github.com/quilt-ui/quilt/mesh"

// Renderer is the backend contract the draw traversal emits into. Begin
// and End bracket one frame; Submit receives the geometry of a single
// rectangle. Implementations own the platform details (surfaces, buffers,
// file encoding) that the layout core deliberately knows nothing about.
type Renderer interface {
	Begin(width, height int) error
	Submit(m mesh.Mesh) error
	End() error
}

// Draw walks the tree in painter's order (parent before children,
// children in insertion order) emitting each node's rectangle. The
// background is emitted first as a viewport-sized quad.
func (u *UI) Draw(r Renderer) error {
	if err := r.Begin(u.width, u.height); err != nil {
		return err
	}
	if err := r.Submit(mesh.Rectangle(0, 0, u.width, u.height, u.background)); err != nil {
		return err
	}
	if root := u.tree.Root(); root != NoNode {
		if err := u.drawNode(r, root); err != nil {
			return err
		}
	} else {
		u.logger.Debug("draw: tree has no root, background only")
	}
	return r.End()
}

func (u *UI) drawNode(r Renderer, id NodeID) error {
	x, y := u.tree.Position(id)
	w, h := u.tree.Size(id)
	if err := r.Submit(mesh.Rectangle(x, y, w, h, u.colors[id])); err != nil {
		return err
	}
	for _, c := range u.tree.Children(id) {
		if err := u.drawNode(r, c); err != nil {
			return err
		}
	}
	return nil
}
