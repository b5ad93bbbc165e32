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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestViewportProject(t *testing.T) {
	v := FitViewport(NewRect(1, 1, 21, 11), 0, 0, 10, 10)

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY int
	}{
		{"origin", 0, 0, 1, 1},
		{"far corner", 10, 10, 21, 11},
		{"rounds to nearest cell", 5, 2.4, 11, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := v.Project(tc.x, tc.y)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("Project(%g, %g) = (%d, %d), expected (%d, %d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestViewportDegenerateSpan(t *testing.T) {
	v := FitViewport(NewRect(0, 0, 10, 10), 3, 3, 3, 3)
	if v.ScaleX != 1 || v.ScaleY != 1 {
		t.Errorf("degenerate span scale = (%g, %g), expected (1, 1)", v.ScaleX, v.ScaleY)
	}
	x, y := v.Project(5, 4)
	if x != 2 || y != 1 {
		t.Errorf("Project(5, 4) = (%d, %d), expected (2, 1)", x, y)
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestInputSteering(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		wantX   int
		wantY   int
	}{
		{"none", nil, 0, 0},
		{"up right", []Action{ActionUp, ActionRight}, 1, -1},
		{"opposites cancel", []Action{ActionLeft, ActionRight, ActionDown}, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			dx, dy := f.Steering()
			if dx != tc.wantX || dy != tc.wantY {
				t.Errorf("Steering() = (%d, %d), expected (%d, %d)", dx, dy, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestInputMerge(t *testing.T) {
	a := NewInputFrame()
	a.Set(ActionUp)
	b := NewInputFrame()
	b.Set(ActionBrake)

	a.Merge(b)
	if !a.Has(ActionUp) || !a.Has(ActionBrake) {
		t.Errorf("Merge() lost actions: %v", a.Actions)
	}

	a.Clear()
	if a.Has(ActionUp) {
		t.Error("Clear() should remove all actions")
	}
}
