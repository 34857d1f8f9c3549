package mesh

import (
	"github.com/iceisfun/tinmesh/predicates"
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

// InjectConstraintVertex inserts a constraint-owned point into the mesh
// exactly as AddVertex would, additionally flagging the resulting site
// (or, on merge, its surviving group representative) as a constraint
// member.
func (m *Mesh) InjectConstraintVertex(x, y, z float64) (types.VertexID, error) {
	id, _, err := m.AddVertex(x, y, z)
	if err != nil {
		return types.NullVertex, err
	}
	if rep, merged := m.mergedAway[id]; merged {
		id = rep
	}
	m.markConstraintMember(id)
	return id, nil
}

// ConstraintKind distinguishes a polygon (region) constraint from an
// open polyline (linear) constraint, so regionConstraint/linearConstraint
// queries can tell them apart without the mesh package depending on the
// constraint package's own Kind type.
type ConstraintKind uint8

const (
	ConstraintKindLinear ConstraintKind = iota
	ConstraintKindPolygon
)

// RegisterConstraintKind records whether constraint index belongs to a
// polygon or a linear constraint, so RegionConstraint/LinearConstraint
// can answer without ambiguity. Called once per constraint at
// installation time.
func (m *Mesh) RegisterConstraintKind(index int, kind ConstraintKind) {
	m.constraintKind[index] = kind
}

// LockConstraints marks the mesh as having constraints installed,
// failing if this mesh has already gone through constraint
// installation once before.
func (m *Mesh) LockConstraints() error {
	if m.constraintsInstalled {
		return ErrConstraintAlreadyInstalled
	}
	m.constraintsInstalled = true
	return nil
}

// MarkConstraintEdge records that edge e (either direction) belongs to
// constraint index i. A shared border between two polygons keeps
// whichever index reaches it first.
func (m *Mesh) MarkConstraintEdge(e quadedge.EdgeID, index int) {
	base := e.Base()
	if _, already := m.constraintIndex[base]; already {
		return
	}
	m.constraintIndex[base] = index
}

// ConstraintIndexOf reports the constraint index stored for edge e, if
// any, regardless of whether it belongs to a region (polygon) or a
// linear constraint. RegionConstraint and LinearConstraint narrow this
// to the spec's two distinct query operations.
func (m *Mesh) ConstraintIndexOf(e quadedge.EdgeID) (int, bool) {
	idx, ok := m.constraintIndex[e.Base()]
	return idx, ok
}

// RegionConstraint reports the polygon constraint index owning edge e,
// if e was marked by a polygon (boundary or flood-marked interior)
// rather than a linear constraint.
func (m *Mesh) RegionConstraint(e quadedge.EdgeID) (int, bool) {
	idx, ok := m.constraintIndex[e.Base()]
	if !ok || m.constraintKind[idx] != ConstraintKindPolygon {
		return 0, false
	}
	return idx, true
}

// LinearConstraint reports the open-polyline constraint index owning
// edge e, if e was marked by a linear constraint rather than a polygon.
func (m *Mesh) LinearConstraint(e quadedge.EdgeID) (int, bool) {
	idx, ok := m.constraintIndex[e.Base()]
	if !ok || m.constraintKind[idx] != ConstraintKindLinear {
		return 0, false
	}
	return idx, true
}

// EdgeBetween returns the live directed edge p->q, if one currently
// exists, for callers that need to feed it to RegionConstraint,
// LinearConstraint, or ConstraintIndexOf.
func (m *Mesh) EdgeBetween(p, q types.VertexID) (quadedge.EdgeID, bool) {
	return m.directedEdgeBetween(p, q)
}

// directedEdgeBetween scans the pinwheel fan around p for a live edge
// whose destination is q, returning it oriented p->q.
func (m *Mesh) directedEdgeBetween(p, q types.VertexID) (quadedge.EdgeID, bool) {
	anchor, ok := m.vertexEdge[p]
	if !ok {
		return quadedge.NilEdge, false
	}
	cur := anchor
	for i := 0; i < 256; i++ {
		if m.pool.Dest(cur) == q {
			return cur, true
		}
		cur = m.pool.Pinwheel(cur)
		if cur == anchor {
			break
		}
	}
	return quadedge.NilEdge, false
}

// ForceEdge ensures a mesh edge p->q exists, inserting it via Sloan's
// crossing-edge flip procedure if it is not already present: the
// sequence of edges the open segment p-q passes through is collected by
// walking triangle-to-triangle across the segment, then repeatedly
// flipped (each flip only valid when the local quadrilateral is convex)
// until every crossing has been eliminated and p-q is a mesh edge in
// its own right. Returns the directed edge p->q. A previously forced
// constraint edge lying across the path fails the walk with
// ErrCrossingConstraints.
func (m *Mesh) ForceEdge(p, q types.VertexID) (quadedge.EdgeID, error) {
	if e, ok := m.directedEdgeBetween(p, q); ok {
		return e, nil
	}
	if p == q || p.IsNull() || q.IsNull() {
		return quadedge.NilEdge, ErrInvalidConstraintGeometry
	}

	crossing, err := m.collectCrossingEdges(p, q)
	if err != nil {
		return quadedge.NilEdge, err
	}

	pp, qp := m.pointOf(p), m.pointOf(q)
	stalled := 0
	for len(crossing) > 0 {
		e := crossing[0]
		crossing = crossing[1:]

		if !m.pool.IsLive(e) {
			continue
		}
		if _, constrained := m.ConstraintIndexOf(e); constrained {
			return quadedge.NilEdge, ErrCrossingConstraints
		}

		u := m.pool.Origin(e)
		v := m.pool.Dest(e)
		x := m.pool.Dest(m.pool.Forward(e))
		y := m.pool.Dest(m.pool.Forward(e.Dual()))
		if u.IsNull() || v.IsNull() || x.IsNull() || y.IsNull() || !m.quadConvex(u, x, v, y) {
			crossing = append(crossing, e)
			stalled++
			if stalled > 4*(len(crossing)+1)+64 {
				return quadedge.NilEdge, ErrCrossingConstraints
			}
			continue
		}

		m.flipEdge(e)
		stalled = 0

		if (x == p && y == q) || (x == q && y == p) {
			continue
		}
		if m.segmentCrossesOpen(pp, qp, m.pointOf(x), m.pointOf(y)) {
			crossing = append(crossing, e)
		}
	}

	edge, ok := m.directedEdgeBetween(p, q)
	if !ok {
		return quadedge.NilEdge, ErrCrossingConstraints
	}
	return edge, nil
}

// quadConvex reports whether the quadrilateral u,x,v,y (x and y being
// the apexes opposite diagonal u-v in its two bounding triangles) is
// strictly convex, the precondition for flipping diagonal u-v to x-y.
func (m *Mesh) quadConvex(u, x, v, y types.VertexID) bool {
	pu, px, pv, py := m.pointOf(u), m.pointOf(x), m.pointOf(v), m.pointOf(y)
	sx := predicates.Orientation(pu, pv, px, m.thresholds.Precision)
	sy := predicates.Orientation(pu, pv, py, m.thresholds.Precision)
	if sx == 0 || sy == 0 || sx == sy {
		return false
	}
	return predicates.Orientation(px, py, pu, m.thresholds.Precision) !=
		predicates.Orientation(px, py, pv, m.thresholds.Precision)
}

// segmentCrossesOpen reports whether segment u-v still crosses the
// open interior of segment p-q (used to decide whether a freshly
// flipped diagonal remains a crossing edge needing further treatment).
func (m *Mesh) segmentCrossesOpen(p, q, u, v types.Point) bool {
	ok, t, s := predicates.SegmentIntersect(p, q, u, v, m.thresholds.Precision)
	if !ok {
		return false
	}
	return t > 0 && t < 1 && s > 0 && s < 1
}

// collectCrossingEdges walks from p towards q, returning the ordered
// list of edges the open segment p-q passes through (touching neither
// p nor q), by repeatedly stepping into whichever of the far triangle's
// two remaining edges the segment continues across.
func (m *Mesh) collectCrossingEdges(p, q types.VertexID) ([]quadedge.EdgeID, error) {
	pp, qp := m.pointOf(p), m.pointOf(q)

	anchor, ok := m.vertexEdge[p]
	if !ok {
		return nil, ErrVertexNotFound
	}

	var first quadedge.EdgeID
	cur := anchor
	for i := 0; i < 256; i++ {
		next := m.pool.Pinwheel(cur)
		a := m.pool.Dest(cur)
		b := m.pool.Dest(next)
		if !a.IsNull() && !b.IsNull() {
			sa := predicates.Orientation(pp, qp, m.pointOf(a), m.thresholds.Precision)
			sb := predicates.Orientation(pp, qp, m.pointOf(b), m.thresholds.Precision)
			if sa <= 0 && sb >= 0 {
				first = m.pool.Forward(cur)
				break
			}
		}
		cur = next
		if cur == anchor {
			return nil, ErrInvalidConstraintGeometry
		}
	}
	if first.IsNil() {
		return nil, ErrInvalidConstraintGeometry
	}

	var out []quadedge.EdgeID
	cross := first
	for i := 0; i < m.pool.NumLiveEdges()+64; i++ {
		u := m.pool.Origin(cross)
		v := m.pool.Dest(cross)
		far := cross.Dual()
		w := m.pool.Dest(m.pool.Forward(far))

		if w == q {
			out = append(out, cross)
			return out, nil
		}
		if u.IsNull() || v.IsNull() || w.IsNull() {
			return nil, ErrInvalidConstraintGeometry
		}

		out = append(out, cross)

		sv := predicates.Orientation(pp, qp, m.pointOf(v), m.thresholds.Precision)
		sw := predicates.Orientation(pp, qp, m.pointOf(w), m.thresholds.Precision)
		if sw == sv {
			cross = m.pool.Forward(far)
		} else {
			cross = m.pool.Forward(m.pool.Forward(far))
		}
	}
	return nil, ErrInvalidConstraintGeometry
}

// FloodMarkInterior marks index on every interior edge reachable, by
// crossing only unmarked non-ghost edges, from the face immediately to
// the left of start. Used to label a polygon constraint's enclosed
// region after its boundary has been forced and marked.
func (m *Mesh) FloodMarkInterior(start quadedge.EdgeID, index int) {
	stack := []quadedge.EdgeID{start}
	seen := make(map[quadedge.EdgeID]bool)

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		base := e.Base()
		if seen[base] {
			continue
		}
		seen[base] = true

		f := m.pool.Forward(e)
		r := m.pool.Forward(f)
		a, b, c := m.pool.Origin(e), m.pool.Origin(f), m.pool.Origin(r)
		if a.IsNull() || b.IsNull() || c.IsNull() {
			continue
		}

		for _, bound := range [3]quadedge.EdgeID{e, f, r} {
			if _, constrained := m.ConstraintIndexOf(bound); constrained {
				continue
			}
			m.MarkConstraintEdge(bound, index)
			stack = append(stack, bound.Dual())
		}
	}
}
