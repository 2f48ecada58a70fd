package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
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

func TestRectOutside(t *testing.T) {
	bounds := NewRect(0, 0, 800, 600)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"fully inside", NewRect(100, 100, 8, 8), false},
		{"straddling top edge", NewRect(100, -4, 8, 8), false},
		{"just above", NewRect(100, -9, 8, 8), true},
		{"just below", NewRect(100, 601, 8, 8), true},
		{"left of screen", NewRect(-9, 300, 8, 8), true},
		{"right of screen", NewRect(801, 300, 8, 8), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Outside(bounds); got != tc.expected {
				t.Errorf("Outside() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(10, 20, 50, 30)
	c := r.Center()
	if c.X != 35 || c.Y != 35 {
		t.Errorf("Center() = %v, expected (35, 35)", c)
	}

	moved := r.WithCenter(Vec2{X: 400, Y: 300})
	if moved.X != 375 || moved.Y != 285 {
		t.Errorf("WithCenter() top-left = (%v, %v), expected (375, 285)", moved.X, moved.Y)
	}
	if moved.W != r.W || moved.H != r.H {
		t.Error("WithCenter() must keep the size")
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		want   Vec2
		wantOK bool
	}{
		{"positive x", Vec2{X: 5}, Vec2{X: 1}, true},
		{"negative y", Vec2{Y: -3}, Vec2{Y: -1}, true},
		{"3-4-5", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}, true},
		{"zero", Vec2{}, Vec2{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.v.Normalize()
			if ok != tc.wantOK {
				t.Fatalf("Normalize() ok = %v, expected %v", ok, tc.wantOK)
			}
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestVecRotate(t *testing.T) {
	v := Vec2{X: 12}

	if got := v.Rotate(0); got != v {
		t.Errorf("Rotate(0) = %v, expected exact %v", got, v)
	}

	up := v.Rotate(-math.Pi / 2)
	if math.Abs(up.X) > 1e-9 || math.Abs(up.Y+12) > 1e-9 {
		t.Errorf("Rotate(-pi/2) = %v, expected (0, -12)", up)
	}

	r := v.Rotate(Radians(15))
	if math.Abs(r.Len()-12) > 1e-9 {
		t.Errorf("rotation changed length: %v", r.Len())
	}
	if math.Abs(r.Angle()-Radians(15)) > 1e-9 {
		t.Errorf("Angle() = %v, expected %v", r.Angle(), Radians(15))
	}
}

func TestVecDistance(t *testing.T) {
	a := Vec2{X: 1, Y: 1}
	b := Vec2{X: 4, Y: 5}
	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
	if d := FromAngle(0, 7); d != (Vec2{X: 7}) {
		t.Errorf("FromAngle(0, 7) = %v", d)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 750, 11},
		{900, 0, 750, 750},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
