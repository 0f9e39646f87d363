package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"separated horizontally", Box{0, 0, 10, 10}, Box{15, 0, 10, 10}, false},
		{"separated vertically", Box{0, 0, 10, 10}, Box{0, 15, 10, 10}, false},
		{"touching edges", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"contained", Box{0, 0, 20, 20}, Box{5, 5, 2, 2}, true},
		{"fractional overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 1, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(100, 50, 8)
	if b.X != 92 || b.Y != 42 || b.W != 16 || b.H != 16 {
		t.Errorf("BoxAround(100, 50, 8) = %+v", b)
	}
	if b.CenterX() != 100 || b.CenterY() != 50 {
		t.Errorf("center = (%v, %v), expected (100, 50)", b.CenterX(), b.CenterY())
	}
}

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
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 {
		t.Error("Clamp failed")
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.1, 0, 1) != 0 || ClampF(0.4, 0, 1) != 0.4 {
		t.Error("ClampF failed")
	}
}

func TestRescale(t *testing.T) {
	dx, dy := Rescale(3, 4, 10)
	if math.Abs(dx-6) > 1e-9 || math.Abs(dy-8) > 1e-9 {
		t.Errorf("Rescale(3, 4, 10) = (%v, %v), expected (6, 8)", dx, dy)
	}

	dx, dy = Rescale(0, 0, 10)
	if dx != 0 || dy != 0 {
		t.Errorf("Rescale of zero vector should stay zero, got (%v, %v)", dx, dy)
	}
}

func TestRotate(t *testing.T) {
	dx, dy := Rotate(1, 0, math.Pi/2)
	if math.Abs(dx) > 1e-9 || math.Abs(dy-1) > 1e-9 {
		t.Errorf("Rotate(1, 0, pi/2) = (%v, %v), expected (0, 1)", dx, dy)
	}
	if got := math.Hypot(Rotate(3, 4, 0.5)); math.Abs(got-5) > 1e-9 {
		t.Errorf("rotation should preserve magnitude, got %v", got)
	}
}
