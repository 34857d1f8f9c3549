package predicates

import "github.com/iceisfun/tinmesh/types"

// GhostInCircle generalizes InCircle to a hull edge (a,b) whose far side
// is the ghost (point-at-infinity) face, per spec §4.3's "Ghost
// handling": the test becomes the signed distance of v from the
// infinite line through a,b.
//
// Returns positive when the hull must expand to enclose v (the ghost
// edge should be replaced, mirroring a positive in-circle result),
// negative when v is still within the current hull's half-plane, and
// zero when v lies exactly on the line — disambiguated by whether v's
// projection falls inside the segment (treated as concave, i.e. flip)
// or outside it (left intact).
func GhostInCircle(a, b, v types.Point, threshold float64) int {
	h := (v.X-a.X)*(a.Y-b.Y) + (v.Y-a.Y)*(b.X-a.X)

	if h > threshold {
		return 1
	}
	if h < -threshold {
		return -1
	}

	hExact := ghostExact(a, b, v)
	if hExact != 0 {
		return hExact
	}

	// On the infinite line: disambiguate by the projection parameter.
	if projectionWithinSegment(a, b, v) {
		return 1
	}
	return -1
}

func ghostExact(a, b, v types.Point) int {
	vax := bigSub(v.X, a.X)
	vay := bigSub(v.Y, a.Y)
	ayby := bigSub(a.Y, b.Y)
	bxax := bigSub(b.X, a.X)

	term1 := vax.Mul(vax, ayby)
	term2 := vay.Mul(vay, bxax)
	h := term1.Add(term1, term2)
	return h.Sign()
}

func projectionWithinSegment(a, b, v types.Point) bool {
	abx := b.X - a.X
	aby := b.Y - a.Y
	length2 := abx*abx + aby*aby
	if length2 == 0 {
		return false
	}
	t := ((v.X-a.X)*abx + (v.Y-a.Y)*aby) / length2
	return t >= 0 && t <= 1
}
