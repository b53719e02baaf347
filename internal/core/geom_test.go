package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestGridCursorMove(t *testing.T) {
	c := GridCursor{Cols: 4, Rows: 4}

	c.Move(1, 0)
	c.Move(0, 1)
	if c.Index != 5 {
		t.Errorf("Index = %d after right+down, expected 5", c.Index)
	}

	// Clamped at the edges, no wrap-around
	c.Move(-5, 0)
	if c.Index != 4 {
		t.Errorf("Index = %d after far left, expected 4", c.Index)
	}
	c.Move(10, 10)
	if c.Index != 15 {
		t.Errorf("Index = %d after far down-right, expected 15", c.Index)
	}
}

func TestGridCursorApply(t *testing.T) {
	c := GridCursor{Cols: 3, Rows: 3, Index: 4}
	in := NewInputFrame()
	in.Set(ActionUp)
	c.Apply(in)
	if c.Index != 1 {
		t.Errorf("Index = %d after Up, expected 1", c.Index)
	}
}

func TestPickActions(t *testing.T) {
	for n := 1; n <= 9; n++ {
		a := PickAction(n)
		idx, ok := a.PickIndex()
		if !ok || idx != n-1 {
			t.Errorf("PickAction(%d).PickIndex() = (%d, %v), expected (%d, true)", n, idx, ok, n-1)
		}
	}
	if PickAction(0) != ActionNone || PickAction(10) != ActionNone {
		t.Error("PickAction outside 1..9 should be ActionNone")
	}
	if _, ok := ActionConfirm.PickIndex(); ok {
		t.Error("ActionConfirm is not a pick")
	}

	in := NewInputFrame()
	in.Set(ActionPick7)
	in.Set(ActionPick3)
	if idx, ok := in.Pick(); !ok || idx != 2 {
		t.Errorf("Pick() = (%d, %v), expected lowest pick (2, true)", idx, ok)
	}
	if ActionPick3.String() != "Pick3" {
		t.Errorf("String() = %q, expected Pick3", ActionPick3.String())
	}
}
