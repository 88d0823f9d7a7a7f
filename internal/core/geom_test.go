package core

import (
	"math"
	"testing"
)

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{"overlapping", NewAABB(0, 0, 10, 10), NewAABB(5, 5, 10, 10), true},
		{"identical", NewAABB(3, 4, 25, 25), NewAABB(3, 4, 25, 25), true},
		{"identical zero size", NewAABB(7, 7, 0, 0), NewAABB(7, 7, 0, 0), true},
		{"contained", NewAABB(0, 0, 50, 50), NewAABB(10, 10, 5, 5), true},
		{"touching edge", NewAABB(0, 0, 10, 10), NewAABB(10, 0, 10, 10), true},
		{"touching corner", NewAABB(0, 0, 10, 10), NewAABB(10, 10, 5, 5), true},
		{"apart horizontally", NewAABB(0, 0, 10, 10), NewAABB(10.5, 0, 10, 10), false},
		{"apart vertically", NewAABB(0, 0, 10, 10), NewAABB(0, 11, 10, 10), false},
		{"x overlap only", NewAABB(0, 0, 10, 10), NewAABB(5, 20, 10, 10), false},
		{"y overlap only", NewAABB(0, 0, 10, 10), NewAABB(20, 5, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAABBNoRangeOverlapNeverCollides(t *testing.T) {
	base := NewAABB(100, 100, 25, 25)
	for dx := -60.0; dx <= 60; dx += 2.5 {
		for dy := -60.0; dy <= 60; dy += 2.5 {
			other := NewAABB(base.X+dx, base.Y+dy, 20, 20)
			xOverlap := other.X <= base.Right() && base.X <= other.Right()
			yOverlap := other.Y <= base.Bottom() && base.Y <= other.Bottom()
			if got := base.Intersects(other); got != (xOverlap && yOverlap) {
				t.Fatalf("offset (%v,%v): Intersects() = %v, axis overlap x=%v y=%v", dx, dy, got, xOverlap, yOverlap)
			}
		}
	}
}

func TestNewAABBNormalizesNegativeExtents(t *testing.T) {
	b := NewAABB(10, 10, -4, -6)
	if b.X != 6 || b.Y != 4 || b.W != 4 || b.H != 6 {
		t.Errorf("NewAABB(10,10,-4,-6) = %+v", b)
	}
}

func TestSegmentBounds(t *testing.T) {
	// Vertical segment still has the stroke width.
	b := SegmentBounds(250, 200, 250, 250, 5)
	if b.X != 247.5 || b.W != 5 {
		t.Errorf("vertical segment x-range = [%v, %v], expected [247.5, 252.5]", b.X, b.Right())
	}
	if b.Y != 197.5 || b.Bottom() != 252.5 {
		t.Errorf("vertical segment y-range = [%v, %v], expected [197.5, 252.5]", b.Y, b.Bottom())
	}

	// Direction of the segment does not matter.
	a := SegmentBounds(0, 0, 10, -10, 2)
	c := SegmentBounds(10, -10, 0, 0, 2)
	if a != c {
		t.Errorf("SegmentBounds not symmetric: %+v vs %+v", a, c)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(v.X-0.6) > 1e-9 || math.Abs(v.Y-0.8) > 1e-9 {
		t.Errorf("Normalize(3,4) = %+v", v)
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 || math.IsNaN(zero.X) {
		t.Errorf("Normalize(0,0) = %+v, expected zero vector", zero)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"adjacent (half-open)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsAndEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if !r.Contains(5, 10) || r.Contains(25, 25) {
		t.Error("Contains should include top-left and exclude bottom-right")
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClampHelpers(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp out of range")
	}
	if ClampF(475.5, 0, 475) != 475 || ClampF(-0.1, 0, 475) != 0 {
		t.Error("ClampF out of range")
	}
	if Min(3, 4) != 3 || Max(3, 4) != 4 || Abs(-2) != 2 {
		t.Error("Min/Max/Abs")
	}
}
