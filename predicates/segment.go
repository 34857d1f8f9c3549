package predicates

import (
	"math"

	"github.com/iceisfun/tinmesh/types"
)

// SegmentIntersect reports whether closed segments [p,q] and [r,s]
// intersect, returning the parametric position along each when the
// intersection is a single point. For collinear overlaps the boolean
// is true and both parameters are NaN. Used by the constraint engine
// to locate the sequence of mesh edges crossed by a forced segment.
func SegmentIntersect(p, q, r, s types.Point, threshold float64) (bool, float64, float64) {
	o1 := Orientation(p, q, r, threshold)
	o2 := Orientation(p, q, s, threshold)
	o3 := Orientation(r, s, p, threshold)
	o4 := Orientation(r, s, q, threshold)

	if o1*o2 < 0 && o3*o4 < 0 {
		t, u := intersectionParams(p, q, r, s)
		return true, t, u
	}

	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		if overlapLength(p, q, r, s) > threshold {
			return true, math.NaN(), math.NaN()
		}
	}

	if o1 == 0 && onSegment(p, q, r) {
		return true, paramOnSegment(p, q, r), 0
	}
	if o2 == 0 && onSegment(p, q, s) {
		return true, paramOnSegment(p, q, s), 1
	}
	if o3 == 0 && onSegment(r, s, p) {
		return true, 0, paramOnSegment(r, s, p)
	}
	if o4 == 0 && onSegment(r, s, q) {
		return true, 1, paramOnSegment(r, s, q)
	}

	return false, math.NaN(), math.NaN()
}

func intersectionParams(p, q, r, s types.Point) (float64, float64) {
	pqX, pqY := q.X-p.X, q.Y-p.Y
	rsX, rsY := s.X-r.X, s.Y-r.Y
	diffX, diffY := r.X-p.X, r.Y-p.Y

	den := pqX*rsY - pqY*rsX
	if den == 0 {
		return math.NaN(), math.NaN()
	}
	t := (diffX*rsY - diffY*rsX) / den
	u := (diffX*pqY - diffY*pqX) / den
	return t, u
}

func onSegment(a, b, p types.Point) bool {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-1e-12 && p.X <= maxX+1e-12 && p.Y >= minY-1e-12 && p.Y <= maxY+1e-12
}

func paramOnSegment(a, b, p types.Point) float64 {
	length2 := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	if length2 == 0 {
		return 0
	}
	return ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / length2
}

func overlapLength(a1, a2, b1, b2 types.Point) float64 {
	if math.Abs(a1.X-a2.X) >= math.Abs(a1.Y-a2.Y) {
		aMin, aMax := math.Min(a1.X, a2.X), math.Max(a1.X, a2.X)
		bMin, bMax := math.Min(b1.X, b2.X), math.Max(b1.X, b2.X)
		return math.Min(aMax, bMax) - math.Max(aMin, bMin)
	}
	aMin, aMax := math.Min(a1.Y, a2.Y), math.Max(a1.Y, a2.Y)
	bMin, bMax := math.Min(b1.Y, b2.Y), math.Max(b1.Y, b2.Y)
	return math.Min(aMax, bMax) - math.Max(aMin, bMin)
}
