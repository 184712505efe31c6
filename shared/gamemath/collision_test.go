package gamemath

import (
	"math"
	"testing"
)

func box(cx, cy, hw, hh float64) Box {
	return Box{CX: cx, CY: cy, HalfW: hw, HalfH: hh}
}

func TestIntersectNoContact(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
	}{
		{"separated vertically", box(0, 0, 5, 5), box(0, 20, 5, 5)},
		{"separated horizontally", box(0, 0, 5, 5), box(-11, 0, 5, 5)},
		{"touching edges", box(0, 0, 5, 5), box(10, 0, 5, 5)},
		{"diagonal apart", box(0, 0, 5, 5), box(12, 12, 5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := Intersect(tt.a, tt.b); ok {
				t.Errorf("Intersect() = %+v, want no contact", hit)
			}
		})
	}
}

func TestIntersectSideBySide(t *testing.T) {
	hit, ok := Intersect(box(0, 0, 5, 5), box(6, 0, 5, 5))
	if !ok {
		t.Fatal("expected contact")
	}
	if hit.Normal != (Vec2{X: -1}) {
		t.Errorf("Normal = %+v, want (-1, 0)", hit.Normal)
	}
	if hit.Delta != (Vec2{X: -4}) {
		t.Errorf("Delta = %+v, want (-4, 0)", hit.Delta)
	}
	if hit.Contact != (Vec2{X: 5, Y: 0}) {
		t.Errorf("Contact = %+v, want (5, 0)", hit.Contact)
	}
}

func TestIntersectAxisPriority(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Box
		wantX bool
	}{
		// ox = 4, oy = 4.5: inside the bias window
		{"near tie resolves Y", box(0, 0, 5, 5), box(6, 5.5, 5, 5), false},
		// ox = 4, oy = 6
		{"clear X win", box(0, 0, 5, 5), box(6, 4, 5, 5), true},
		// ox = 4, oy = 5: exactly one apart still resolves Y
		{"bias boundary resolves Y", box(0, 0, 5, 5), box(6, 5, 5, 5), false},
		// ox = 6, oy = 4
		{"smaller Y overlap", box(0, 0, 5, 5), box(4, 6, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Intersect(tt.a, tt.b)
			if !ok {
				t.Fatal("expected contact")
			}
			gotX := hit.Normal.X != 0
			if gotX != tt.wantX {
				t.Errorf("resolved on X = %v, want %v (hit %+v)", gotX, tt.wantX, hit)
			}
		})
	}
}

func TestIntersectNormals(t *testing.T) {
	a := box(0, 0, 8, 8)
	tests := []struct {
		name string
		b    Box
		want Vec2
	}{
		{"wall below gives up normal", box(0, 12, 8, 8), Vec2{Y: -1}},
		{"wall above gives down normal", box(0, -12, 8, 8), Vec2{Y: 1}},
		{"wall left", box(-12, 0, 8, 8), Vec2{X: 1}},
		{"wall right", box(12, 0, 8, 8), Vec2{X: -1}},
		{"same center resolves with sign +1", box(0, 0, 8, 8), Vec2{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Intersect(a, tt.b)
			if !ok {
				t.Fatal("expected contact")
			}
			if hit.Normal != tt.want {
				t.Errorf("Normal = %+v, want %+v", hit.Normal, tt.want)
			}
		})
	}
}

// Applying Delta to A must remove the overlap along the resolved axis.
func TestDeltaSeparates(t *testing.T) {
	cases := [][2]Box{
		{box(0, 0, 5, 5), box(6, 0, 5, 5)},
		{box(0, 0, 5, 5), box(3, 7, 5, 5)},
		{box(1.5, -2, 4, 6), box(-3, 1, 3, 2)},
		{box(0, 0, 8, 8), box(0, 15, 8, 8)},
	}
	for i, c := range cases {
		a, b := c[0], c[1]
		hit, ok := Intersect(a, b)
		if !ok {
			t.Fatalf("case %d: expected contact", i)
		}
		if math.Abs(hit.Normal.X)+math.Abs(hit.Normal.Y) != 1 {
			t.Errorf("case %d: Normal %+v is not a unit axis vector", i, hit.Normal)
		}
		a.CX += hit.Delta.X
		a.CY += hit.Delta.Y
		if Overlaps(a, b) {
			t.Errorf("case %d: boxes still overlap after applying %+v", i, hit.Delta)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, max, want float64
	}{
		{3, 5, 3},
		{7, 5, 5},
		{-9, 7, -7},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in, tt.max); got != tt.want {
			t.Errorf("ClampSpeed(%v, %v) = %v, want %v", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestTrunc(t *testing.T) {
	if got := Trunc(-3.7); got != -3 {
		t.Errorf("Trunc(-3.7) = %v, want -3", got)
	}
	if got := Trunc(12.99); got != 12 {
		t.Errorf("Trunc(12.99) = %v, want 12", got)
	}
}
