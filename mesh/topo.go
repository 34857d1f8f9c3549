package mesh

import (
	"github.com/iceisfun/tinmesh/predicates"
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

// splitTriangle inserts apex v into the triangular face bounded by e,
// Forward(e) and Reverse(e), replacing it with three new triangles
// (v,a,b), (v,b,c), (v,c,a) where a,b,c are the face's original
// vertices in forward order. The three original edges survive
// unmodified in their own right (each now borders exactly one new
// triangle on one side and whatever was already on the other side);
// they are returned in the order e, Forward(e), Reverse(e) so callers
// can push them onto a legalize stack.
//
// This primitive works identically whether the face is interior or a
// ghost face (c == types.NullVertex): Null is treated as an ordinary
// vertex ID throughout, which is what makes hull expansion a direct
// reuse of the same code path as ordinary cavity splitting.
func (m *Mesh) splitTriangle(e quadedge.EdgeID, v types.VertexID) (outer [3]quadedge.EdgeID) {
	f := m.pool.Forward(e)
	r := m.pool.Forward(f)

	a := m.pool.Origin(e)
	b := m.pool.Origin(f)
	c := m.pool.Origin(r)

	sa := m.pool.Allocate(v, a)
	sb := m.pool.Allocate(v, b)
	sc := m.pool.Allocate(v, c)

	m.pool.SetForward(sa, e)
	m.pool.SetForward(e, sb.Dual())
	m.pool.SetForward(sb.Dual(), sa)

	m.pool.SetForward(sb, f)
	m.pool.SetForward(f, sc.Dual())
	m.pool.SetForward(sc.Dual(), sb)

	m.pool.SetForward(sc, r)
	m.pool.SetForward(r, sa.Dual())
	m.pool.SetForward(sa.Dual(), sc)

	m.setVertexEdge(v, sa)
	m.setVertexEdge(a, e)
	m.setVertexEdge(b, f)
	m.setVertexEdge(c, r)

	m.debugEdge(sa)
	m.debugEdge(sb)
	m.debugEdge(sc)
	m.debugTriangle(v, a, b)
	m.debugTriangle(v, b, c)
	m.debugTriangle(v, c, a)

	return [3]quadedge.EdgeID{e, f, r}
}

// splitOnEdge handles a new vertex v discovered to lie exactly on edge
// e (exactly collinear with both its endpoints), rather than
// strictly interior to one of its two bounding triangles. A plain
// splitTriangle call would leave a degenerate zero-area sliver on e's
// side of the split; instead this first performs that split anyway —
// producing the sliver plus two good triangles on e's former side —
// and then flips e itself, which structurally replaces the sliver and
// e's original far-side triangle with two good triangles meeting at v,
// the same four-triangle result as explicitly splitting both of e's
// original neighbors at once.
func (m *Mesh) splitOnEdge(e quadedge.EdgeID, v types.VertexID) []quadedge.EdgeID {
	ed := e.Dual()
	f2 := m.pool.Forward(ed)
	r2 := m.pool.Forward(f2)

	outer := m.splitTriangle(e, v)
	m.flipEdge(e)

	return []quadedge.EdgeID{outer[1], outer[2], f2, r2}
}

// flipEdge replaces diagonal a-b of the quadrilateral (v,a,r,b) with
// diagonal v-r, reusing e's own pool slot as the new edge (no
// allocation, no deallocation). e and Dual(e) are returned unchanged
// in identity, only in endpoints and forward links.
func (m *Mesh) flipEdge(e quadedge.EdgeID) {
	ed := e.Dual()
	f1 := m.pool.Forward(e)
	f2 := m.pool.Forward(f1)
	g1 := m.pool.Forward(ed)
	g2 := m.pool.Forward(g1)

	v := m.pool.Origin(f2)
	r := m.pool.Origin(g2)
	a := m.pool.Origin(e)
	b := m.pool.Origin(ed)

	m.pool.SetOrigin(e, v)
	m.pool.SetOrigin(ed, r)

	m.pool.SetForward(f2, g1)
	m.pool.SetForward(g1, ed)
	m.pool.SetForward(ed, f2)

	m.pool.SetForward(e, g2)
	m.pool.SetForward(g2, f1)
	m.pool.SetForward(f1, e)

	m.setVertexEdge(v, e)
	m.setVertexEdge(r, ed)
	m.setVertexEdge(a, g1)
	m.setVertexEdge(b, g2)

	m.debugTriangle(v, a, r)
	m.debugTriangle(v, r, b)
}

// legalize drains a stack of candidate edges, flipping any whose
// left-side apex (always the newly inserted vertex, by construction of
// every edge pushed onto the stack — see splitTriangle) violates the
// in-circle test against the opposite apex. Flips push their two
// far edges back onto the stack, cascading the Delaunay restoration
// outward until no violation remains. Hull edges (opposite apex null)
// and ghost edges (an endpoint null) are never flipped — there is
// nothing to violate against infinity.
func (m *Mesh) legalize(stack []quadedge.EdgeID) {
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !m.pool.IsLive(e) {
			continue
		}

		f1 := m.pool.Forward(e)
		f2 := m.pool.Forward(f1)
		ed := e.Dual()
		g1 := m.pool.Forward(ed)
		g2 := m.pool.Forward(g1)

		v := m.pool.Origin(f2)
		r := m.pool.Origin(g2)
		a := m.pool.Origin(e)
		b := m.pool.Origin(ed)
		if v.IsNull() || r.IsNull() || a.IsNull() || b.IsNull() {
			continue
		}

		sign := predicates.InCircle(m.pointOf(a), m.pointOf(b), m.pointOf(v), m.pointOf(r), m.thresholds.InCircle)
		if sign == 0 {
			m.inCircleTieBreaks++
		}
		if sign <= 0 {
			continue
		}

		m.flipEdge(e)
		stack = append(stack, g1, g2)
	}
}

// realEdgeOfGhostFace returns the one edge, among the three bounding
// the ghost face reached via e, whose endpoints are both non-null —
// the hull edge that face is attached to.
func (m *Mesh) realEdgeOfGhostFace(e quadedge.EdgeID) quadedge.EdgeID {
	cur := e
	for i := 0; i < 3; i++ {
		if !m.pool.Origin(cur).IsNull() && !m.pool.Dest(cur).IsNull() {
			return cur
		}
		cur = m.pool.Forward(cur)
	}
	return quadedge.NilEdge
}
