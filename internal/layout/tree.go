package layout

// NodeID addresses a node slot in a Tree's arena. IDs are dense and
// assigned in insertion order; they stay stable for the lifetime of the
// tree (nodes are never removed individually, only the whole tree is
// rebuilt).
type NodeID int32

// NoNode is the sentinel for "no node": an empty tree's root, or the
// parent of the root.
const NoNode NodeID = -1

// node is a single arena slot. size and pos are indexed by Axis.
type node struct {
	style    Style
	size     [2]int
	pos      [2]int
	parent   NodeID
	children []NodeID
}

// Tree is an arena of layout nodes forming a strict hierarchy. A node
// with children is a container; a childless node is a leaf. Container
// behavior and leaf behavior share the same slot type, so a container is
// just a sizable node from its parent's point of view.
//
// The layout passes mutate node sizes and positions in place. Structural
// mutation (Add, Reset) must not run concurrently with a pass; sibling
// subtrees occupy disjoint slots, which is what makes the parallel fit
// pass safe without locking.
type Tree struct {
	nodes []node
	root  NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{root: NoNode}
}

// Add creates a node with the given style under parent and returns its ID.
// Pass NoNode as the parent to create the root; adding a second root or
// attaching to an ID the tree never issued panics, since both are
// structural bugs in the caller's tree build.
func (t *Tree) Add(parent NodeID, style Style) NodeID {
	id := NodeID(len(t.nodes))
	if parent == NoNode {
		if t.root != NoNode {
			panic("layout: tree already has a root")
		}
		t.root = id
	} else {
		t.check(parent)
	}
	t.nodes = append(t.nodes, node{style: style, parent: parent})
	if parent != NoNode {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

// Reset discards all nodes, returning the tree to the empty state.
// Callers rebuild the tree wholesale on structural changes.
func (t *Tree) Reset() {
	t.nodes = t.nodes[:0]
	t.root = NoNode
}

// Root returns the root node, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Style returns the style of the given node.
func (t *Tree) Style(id NodeID) Style {
	t.check(id)
	return t.nodes[id].style
}

// SetStyle replaces the style of the given node.
func (t *Tree) SetStyle(id NodeID, style Style) {
	t.check(id)
	t.nodes[id].style = style
}

// Children returns the child IDs of the given node in insertion order,
// which is also paint order. The returned slice is owned by the tree and
// must not be mutated.
func (t *Tree) Children(id NodeID) []NodeID {
	t.check(id)
	return t.nodes[id].children
}

// Parent returns the parent of the given node, or NoNode for the root.
// The parent link exists for diagnostics and lookup; the passes always
// traverse through the children lists.
func (t *Tree) Parent(id NodeID) NodeID {
	t.check(id)
	return t.nodes[id].parent
}

// Size returns the resolved width and height of the given node.
// Meaningful only after the sizing passes have run.
func (t *Tree) Size(id NodeID) (width, height int) {
	t.check(id)
	return t.nodes[id].size[Horizontal], t.nodes[id].size[Vertical]
}

// Position returns the absolute top-left corner of the given node.
// Meaningful only after the position pass has run.
func (t *Tree) Position(id NodeID) (x, y int) {
	t.check(id)
	return t.nodes[id].pos[Horizontal], t.nodes[id].pos[Vertical]
}

// Bounds returns the resolved geometry of the given node as a Rect.
func (t *Tree) Bounds(id NodeID) Rect {
	t.check(id)
	n := &t.nodes[id]
	return Rect{
		X:      n.pos[Horizontal],
		Y:      n.pos[Vertical],
		Width:  n.size[Horizontal],
		Height: n.size[Vertical],
	}
}

// Walk visits id and its descendants pre-order, children in insertion
// order. If fn returns false the subtree below the current node is skipped.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	t.check(id)
	if !fn(id) {
		return
	}
	for _, c := range t.nodes[id].children {
		t.Walk(c, fn)
	}
}

func (t *Tree) check(id NodeID) {
	if id < 0 || int(id) >= len(t.nodes) {
		panic("layout: node ID out of range")
	}
}
