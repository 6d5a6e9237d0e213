package layout

// setPositions assigns absolute positions top-down. Children walk the
// main axis from the container's padded origin; every child shares the
// container's padded cross coordinate (children cross-align to the
// leading edge).
func (t *Tree) setPositions(id NodeID) {
	n := &t.nodes[id]
	main := n.style.Direction.Main()
	cross := main.Flip()

	cursor := n.pos[main] + n.style.Padding
	crossEdge := n.pos[cross] + n.style.Padding
	for _, c := range n.children {
		child := &t.nodes[c]
		child.pos[main] = cursor
		child.pos[cross] = crossEdge
		cursor += child.size[main] + n.style.Gap
		t.setPositions(c)
	}
}
