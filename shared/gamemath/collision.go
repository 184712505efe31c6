package gamemath

import "math"

// Box is an axis-aligned box given by its center and half extents.
type Box struct {
	CX, CY       float64
	HalfW, HalfH float64
}

// BoxFromRect converts a top-left anchored rectangle, the layout resolv
// objects and tiles use, into a Box.
func BoxFromRect(x, y, w, h float64) Box {
	return Box{CX: x + w/2, CY: y + h/2, HalfW: w / 2, HalfH: h / 2}
}

// Hit describes how two overlapping boxes intersect.
type Hit struct {
	// Delta moves box A out of box B along the resolved axis.
	Delta Vec2
	// Normal is the unit axis vector of the surface of B that A touches.
	Normal Vec2
	// Contact lies on A's boundary along the resolved axis, level with B's
	// center on the other axis.
	Contact Vec2
}

// yBias favours resolving on Y when the overlaps are nearly equal, so an
// entity sliding along a row of floor tiles is not caught by the side of the
// next tile.
const yBias = 1

// Intersect tests a against b. It reports false when the boxes do not
// overlap on at least one axis; touching edges do not count as overlap.
func Intersect(a, b Box) (Hit, bool) {
	dx := b.CX - a.CX
	ox := (a.HalfW + b.HalfW) - math.Abs(dx)
	if ox <= 0 {
		return Hit{}, false
	}

	dy := b.CY - a.CY
	oy := (a.HalfH + b.HalfH) - math.Abs(dy)
	if oy <= 0 {
		return Hit{}, false
	}

	if ox+yBias < oy {
		s := Sign(dx)
		return Hit{
			Delta:   Vec2{X: -s * ox},
			Normal:  Vec2{X: -s},
			Contact: Vec2{X: a.CX + a.HalfW*s, Y: b.CY},
		}, true
	}

	s := Sign(dy)
	return Hit{
		Delta:   Vec2{Y: -s * oy},
		Normal:  Vec2{Y: -s},
		Contact: Vec2{X: b.CX, Y: a.CY + a.HalfH*s},
	}, true
}

// Overlaps reports whether a and b intersect.
func Overlaps(a, b Box) bool {
	_, ok := Intersect(a, b)
	return ok
}
