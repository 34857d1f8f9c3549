package mesh

import (
	"github.com/iceisfun/tinmesh/predicates"
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

// orientSide evaluates the half-plane test used by the Lawson walk for
// directed edge e against query point q. An edge touching the null
// vertex has no geometric side of its own — it always "passes" — which
// is what lets the walk terminate correctly in a ghost face without any
// special-casing: the single real edge of that face is the only one
// that can actually signal "q is on the far side."
func (m *Mesh) orientSide(e quadedge.EdgeID, q types.Point) int {
	a := m.pool.Origin(e)
	b := m.pool.Dest(e)
	if a.IsNull() || b.IsNull() {
		return 1
	}
	return predicates.Orientation(m.pointOf(a), m.pointOf(b), q, m.thresholds.HalfPlane)
}

// locate walks from the cached search edge to the triangle (possibly a
// ghost face) containing q, examining the triangle to the left of the
// current edge at each step and crossing whichever bounding edge q lies
// strictly to the right of. Ties between two qualifying crossing edges
// in degenerate configurations are broken stochastically to guarantee
// termination with probability 1.
func (m *Mesh) locate(q types.Point) quadedge.EdgeID {
	e := m.searchEdge
	if e.IsNil() || !m.pool.IsLive(e) {
		return quadedge.NilEdge
	}

	limit := 4*m.pool.NumLiveEdges() + 64
	for iter := 0; iter < limit; iter++ {
		f := m.pool.Forward(e)
		r := m.pool.Forward(f)

		s0 := m.orientSide(e, q)
		s1 := m.orientSide(f, q)
		s2 := m.orientSide(r, q)

		if s0 >= 0 && s1 >= 0 && s2 >= 0 {
			return e
		}

		var candidates []quadedge.EdgeID
		if s0 < 0 {
			candidates = append(candidates, e)
		}
		if s1 < 0 {
			candidates = append(candidates, f)
		}
		if s2 < 0 {
			candidates = append(candidates, r)
		}

		var cross quadedge.EdgeID
		if len(candidates) == 1 {
			cross = candidates[0]
		} else {
			cross = candidates[m.randIntn(len(candidates))]
		}
		e = cross.Dual()
	}
	return e
}
