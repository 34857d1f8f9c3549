package constraint

import (
	"math"

	"github.com/iceisfun/tinmesh/predicates"
	"github.com/iceisfun/tinmesh/types"
)

// signedArea computes the signed area of a simple closed polygon given
// as an ordered point loop (implicitly closed).
func signedArea(loop []types.Point) float64 {
	if len(loop) < 3 {
		return 0
	}
	area := 0.0
	n := len(loop)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += loop[i].X*loop[j].Y - loop[j].X*loop[i].Y
	}
	return area / 2
}

// isCCW reports whether loop winds counter-clockwise.
func isCCW(loop []types.Point) bool {
	return signedArea(loop) > 0
}

// pointOnSegment reports whether p lies on the closed segment [a,b]
// within the mesh's precision threshold.
func pointOnSegment(p, a, b types.Point, threshold float64) bool {
	if predicates.Orientation(a, b, p, threshold) != 0 {
		return false
	}
	const tol = 1e-9
	minX, maxX := math.Min(a.X, b.X)-tol, math.Max(a.X, b.X)+tol
	minY, maxY := math.Min(a.Y, b.Y)-tol, math.Max(a.Y, b.Y)+tol
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// InResult categorizes a point-in-polygon query's outcome.
type InResult int

const (
	Outside InResult = iota
	OnBorder
	Inside
)

// PointInPolygon evaluates p against loop using the crossing-number
// method with separate left/right half-tallies per spec: a crossing is
// counted once to the right of p and once to the left; if the two
// parities disagree the point lies exactly on an edge and is reported
// OnBorder. Otherwise an odd right-parity means Inside.
func PointInPolygon(p types.Point, loop []types.Point) InResult {
	n := len(loop)
	if n < 3 {
		return Outside
	}

	rightCount, leftCount := 0, 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := loop[i], loop[j]

		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if xCross > p.X {
				rightCount++
			} else if xCross < p.X {
				leftCount++
			} else {
				return OnBorder
			}
		}
	}

	if rightCount%2 != leftCount%2 {
		return OnBorder
	}
	if rightCount%2 == 1 {
		return Inside
	}
	return Outside
}

// loopSelfIntersects reports whether a closed point loop crosses itself.
func loopSelfIntersects(loop []types.Point, threshold float64) bool {
	n := len(loop)
	for i := 0; i < n; i++ {
		a1, a2 := loop[i], loop[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || j == (i+1)%n || (j+1)%n == i {
				continue
			}
			b1, b2 := loop[j], loop[(j+1)%n]
			if ok, _, _ := predicates.SegmentIntersect(a1, a2, b1, b2, threshold); ok {
				return true
			}
		}
	}
	return false
}

// loopsIntersect reports whether two closed loops cross or touch along
// a non-shared-vertex edge.
func loopsIntersect(a, b []types.Point, threshold float64) bool {
	for i := 0; i < len(a); i++ {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := 0; j < len(b); j++ {
			b1, b2 := b[j], b[(j+1)%len(b)]
			if ok, _, _ := predicates.SegmentIntersect(a1, a2, b1, b2, threshold); ok {
				return true
			}
		}
	}
	return false
}
