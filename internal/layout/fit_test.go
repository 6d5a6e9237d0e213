package layout

import "testing"

// Trees with no Grow nodes keep their fit-pass sizes through Calculate,
// so these tests drive the public entry point.

func TestFit_LeafAdoptsMinimum(t *testing.T) {
	type tc struct {
		style          Style
		expectedWidth  int
		expectedHeight int
	}

	tests := map[string]tc{
		"zero leaf": {
			style:          Style{},
			expectedWidth:  0,
			expectedHeight: 0,
		},
		"min floor on both axes": {
			style:          Style{MinWidth: 40, MinHeight: 25},
			expectedWidth:  40,
			expectedHeight: 25,
		},
		"fixed overrides content": {
			style:          Style{Sizing: Sizing{Width: Fixed(120), Height: Fixed(30)}},
			expectedWidth:  120,
			expectedHeight: 30,
		},
		"fixed clamped to min": {
			style:          Style{Sizing: Sizing{Width: Fixed(10)}, MinWidth: 50},
			expectedWidth:  50,
			expectedHeight: 0,
		},
		"fixed clamped to max": {
			style:          Style{Sizing: Sizing{Width: Fixed(500)}, MaxWidth: 200},
			expectedWidth:  200,
			expectedHeight: 0,
		},
		"padding is content even without children": {
			style:          Style{Padding: 8},
			expectedWidth:  16,
			expectedHeight: 16,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			root := tree.Add(NoNode, tt.style)
			Calculate(tree, 1000, 1000)

			w, h := tree.Size(root)
			if w != tt.expectedWidth || h != tt.expectedHeight {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.expectedWidth, tt.expectedHeight)
			}
		})
	}
}

func TestFit_RowSumsMainAndMaxesCross(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{Direction: Row, Padding: 5, Gap: 3})
	tree.Add(root, Style{MinWidth: 10, MinHeight: 8})
	tree.Add(root, Style{MinWidth: 20, MinHeight: 14})

	Calculate(tree, 1000, 1000)

	// main: 2*5 + 10 + 20 + 3 = 43; cross: max(8, 14) + 2*5 = 24
	w, h := tree.Size(root)
	if w != 43 || h != 24 {
		t.Errorf("root size = %dx%d, want 43x24", w, h)
	}
}

func TestFit_ColumnSumsMainAndMaxesCross(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{Direction: Column, Padding: 4, Gap: 2})
	tree.Add(root, Style{MinWidth: 30, MinHeight: 10})
	tree.Add(root, Style{MinWidth: 12, MinHeight: 6})

	Calculate(tree, 1000, 1000)

	// main (vertical): 2*4 + 10 + 6 + 2 = 26; cross: max(30, 12) + 8 = 38
	w, h := tree.Size(root)
	if w != 38 || h != 26 {
		t.Errorf("root size = %dx%d, want 38x26", w, h)
	}
}

func TestFit_NestedMinimumBoundingBox(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{Direction: Row, Padding: 5, Gap: 3})
	tree.Add(root, Style{MinWidth: 10, MinHeight: 8})
	inner := tree.Add(root, Style{Direction: Column, Padding: 2, Gap: 2})
	tree.Add(inner, Style{MinWidth: 4, MinHeight: 6})
	tree.Add(inner, Style{MinWidth: 4, MinHeight: 6})

	Calculate(tree, 1000, 1000)

	// inner column: main = 2*2 + 6 + 6 + 2 = 18, cross = 4 + 4 = 8
	if w, h := tree.Size(inner); w != 8 || h != 18 {
		t.Errorf("inner size = %dx%d, want 8x18", w, h)
	}

	// root row: main = 2*5 + 10 + 8 + 3 = 31, cross = max(8, 18) + 10 = 28
	if w, h := tree.Size(root); w != 31 || h != 28 {
		t.Errorf("root size = %dx%d, want 31x28", w, h)
	}
}

func TestFit_GapOmittedForSingleChild(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{Gap: 9})
	tree.Add(root, Style{MinWidth: 10, MinHeight: 10})

	Calculate(tree, 1000, 1000)

	if w, _ := tree.Size(root); w != 10 {
		t.Errorf("root width = %d, want 10 (no gap for a single child)", w)
	}
}

func TestFit_ContainerClampedToMax(t *testing.T) {
	tree := NewTree()
	root := tree.Add(NoNode, Style{MaxWidth: 15})
	tree.Add(root, Style{MinWidth: 40})

	Calculate(tree, 1000, 1000)

	// Content wants 40, max wins; the child overflows rather than shrinks.
	if w, _ := tree.Size(root); w != 15 {
		t.Errorf("root width = %d, want 15", w)
	}
	child := tree.Children(root)[0]
	if w, _ := tree.Size(child); w != 40 {
		t.Errorf("child width = %d, want 40 (never shrunk below min)", w)
	}
}
