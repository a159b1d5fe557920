package core

import "testing"

func TestVecAddScale(t *testing.T) {
	v := Vec{X: 3, Y: -2}
	sum := v.Add(Vec{X: 1, Y: 5})
	if sum.X != 4 || sum.Y != 3 {
		t.Errorf("Add = %+v, want {4 3}", sum)
	}

	scaled := v.Scale(2.5)
	if scaled.X != 7.5 || scaled.Y != -5 {
		t.Errorf("Scale = %+v, want {7.5 -5}", scaled)
	}
	if v.X != 3 || v.Y != -2 {
		t.Errorf("receiver mutated: %+v", v)
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 20, 20)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(15, 15, 20, 20), true},
		{"contained", NewRect(12, 12, 5, 5), true},
		{"touching right edge", NewRect(30, 10, 10, 10), false},
		{"touching bottom edge", NewRect(10, 30, 10, 10), false},
		{"separate", NewRect(50, 50, 10, 10), false},
		{"one unit overlap", NewRect(29, 29, 10, 10), true},
		{"identical", NewRect(10, 10, 20, 20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 20, 20, true},
		{"top-left corner", 10, 10, true},
		{"right edge excluded", 30, 20, false},
		{"bottom edge excluded", 20, 30, false},
		{"just inside right", 29.99, 20, true},
		{"outside", 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right = %v, want 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom = %v, want 25", r.Bottom())
	}
	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center = %+v, want {15 17.5}", c)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{5.5, 0, 10, 5.5},
		{-0.1, 0, 10, 0},
		{10.1, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max failed")
	}
	if Min(5, 5) != 5 || Max(5, 5) != 5 {
		t.Error("Min/Max with equal values failed")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Errorf("Abs(5) = %d", Abs(5))
	}
	if Abs(-5) != 5 {
		t.Errorf("Abs(-5) = %d", Abs(-5))
	}
	if Abs(0) != 0 {
		t.Errorf("Abs(0) = %d", Abs(0))
	}
}
