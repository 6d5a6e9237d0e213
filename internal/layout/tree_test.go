package layout

import "testing"

func TestTree_EmptyState(t *testing.T) {
	tree := NewTree()
	if tree.Root() != NoNode {
		t.Errorf("empty tree root = %d, want NoNode", tree.Root())
	}
	if tree.Len() != 0 {
		t.Errorf("empty tree len = %d, want 0", tree.Len())
	}
}

func TestTree_AddAssignsDenseIDs(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{})
	a := tree.Add(root, Style{})
	b := tree.Add(root, Style{})

	if root != 0 || a != 1 || b != 2 {
		t.Errorf("IDs = %d, %d, %d, want 0, 1, 2", root, a, b)
	}
	if tree.Len() != 3 {
		t.Errorf("len = %d, want 3", tree.Len())
	}
}

func TestTree_ChildrenKeepInsertionOrder(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{})
	want := []NodeID{
		tree.Add(root, Style{}),
		tree.Add(root, Style{}),
		tree.Add(root, Style{}),
	}

	got := tree.Children(root)
	if len(got) != len(want) {
		t.Fatalf("children count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("children[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestTree_ParentLinks(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{})
	child := tree.Add(root, Style{})
	grandchild := tree.Add(child, Style{})

	if tree.Parent(root) != NoNode {
		t.Errorf("root parent = %d, want NoNode", tree.Parent(root))
	}
	if tree.Parent(child) != root {
		t.Errorf("child parent = %d, want %d", tree.Parent(child), root)
	}
	if tree.Parent(grandchild) != child {
		t.Errorf("grandchild parent = %d, want %d", tree.Parent(grandchild), child)
	}
}

func TestTree_SecondRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding a second root")
		}
	}()
	tree := NewTree()
	tree.Add(NoNode, Style{})
	tree.Add(NoNode, Style{})
}

func TestTree_ResetReturnsToEmpty(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{})
	tree.Add(root, Style{})

	tree.Reset()
	if tree.Root() != NoNode || tree.Len() != 0 {
		t.Errorf("after Reset: root = %d, len = %d, want NoNode, 0", tree.Root(), tree.Len())
	}

	// The arena is reusable after a wholesale rebuild.
	newRoot := tree.Add(NoNode, Style{MinWidth: 10})
	if newRoot != 0 {
		t.Errorf("rebuilt root ID = %d, want 0", newRoot)
	}
}

func TestTree_WalkPreOrder(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{})
	a := tree.Add(root, Style{})
	aa := tree.Add(a, Style{})
	b := tree.Add(root, Style{})

	var visited []NodeID
	tree.Walk(root, func(id NodeID) bool {
		visited = append(visited, id)
		return true
	})

	want := []NodeID{root, a, aa, b}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit order %v, want %v", visited, want)
			break
		}
	}
}

func TestTree_WalkSkipsSubtree(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{})
	a := tree.Add(root, Style{})
	tree.Add(a, Style{})
	b := tree.Add(root, Style{})

	var visited []NodeID
	tree.Walk(root, func(id NodeID) bool {
		visited = append(visited, id)
		return id != a
	})

	want := []NodeID{root, a, b}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
}
