package layout

import "testing"

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %d, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, want 60", r.Bottom())
	}
}

func TestRect_IsEmpty(t *testing.T) {
	tests := map[string]struct {
		r    Rect
		want bool
	}{
		"normal":          {NewRect(0, 0, 10, 10), false},
		"zero width":      {NewRect(0, 0, 0, 10), true},
		"negative height": {NewRect(0, 0, 10, -1), true},
		"zero value":      {Rect{}, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := map[string]struct {
		x, y int
		want bool
	}{
		"center":                {20, 20, true},
		"top-left edge inside":  {10, 10, true},
		"right edge outside":    {30, 20, false},
		"bottom edge outside":   {20, 30, false},
		"outside left":          {9, 20, false},
		"far away":              {100, 100, false},
		"last inside at corner": {29, 29, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(10, 10, 100, 50).Inset(8)
	want := NewRect(18, 18, 84, 34)
	if r != want {
		t.Errorf("Inset(8) = %+v, want %+v", r, want)
	}
}

func TestRect_Intersects(t *testing.T) {
	tests := map[string]struct {
		a, b Rect
		want bool
	}{
		"overlapping":    {NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		"touching edges": {NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		"disjoint":       {NewRect(0, 0, 10, 10), NewRect(30, 30, 5, 5), false},
		"contained":      {NewRect(0, 0, 100, 100), NewRect(10, 10, 5, 5), true},
		"empty":          {Rect{}, NewRect(0, 0, 10, 10), false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
