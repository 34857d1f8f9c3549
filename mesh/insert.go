package mesh

import (
	"github.com/iceisfun/tinmesh/predicates"
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

// pollInterval is the minimum number of inserts between Monitor polls
// during AddVertices, independent of the 1%-of-total cadence.
const pollInterval = 10000

// Monitor is polled during a batch insertion; returning true cancels
// the remaining work with ErrCancelled.
type Monitor func(completed, total int) (cancel bool)

// AddVertex inserts a single point. The returned bool reports whether
// the vertex was merged into an existing coincident vertex (false
// means a distinct new site was created). Before the mesh has three
// non-collinear points on file, the vertex is buffered and bootstrap
// is retried.
func (m *Mesh) AddVertex(x, y, z float64) (types.VertexID, bool, error) {
	if m.disposed {
		return types.NullVertex, false, ErrDisposed
	}

	v := types.NewVertex(m.nextVertexID(), x, y, z)
	m.verts = append(m.verts, v)
	m.bounds = m.bounds.Expand(v.Point())
	m.spatialIdx.AddVertex(v.ID, v.Point())

	if !m.bootstrapped {
		m.pending = append(m.pending, v)
		if len(m.pending) >= 3 {
			m.tryBootstrap()
		}
		if !m.bootstrapped {
			return v.ID, false, nil
		}
		return v.ID, false, nil
	}

	merged := m.insertVertex(v)
	return v.ID, merged, nil
}

// VertexSpec is one point submitted to AddVertices.
type VertexSpec struct {
	X, Y, Z float64
}

// AddVertices inserts a batch of points, polling monitor once every 1%
// of the batch or every pollInterval inserts, whichever is larger.
// Returns the number of vertices actually added before any
// cancellation.
func (m *Mesh) AddVertices(specs []VertexSpec, monitor Monitor) (int, error) {
	if m.disposed {
		return 0, ErrDisposed
	}

	total := len(specs)
	cadence := total / 100
	if cadence < pollInterval {
		cadence = pollInterval
	}

	for i, s := range specs {
		if _, _, err := m.AddVertex(s.X, s.Y, s.Z); err != nil {
			return i, err
		}
		if monitor != nil && (i+1)%cadence == 0 {
			if monitor(i+1, total) {
				return i + 1, ErrCancelled
			}
		}
	}
	if monitor != nil {
		monitor(total, total)
	}
	return total, nil
}

// insertVertex places an already-logged vertex into a bootstrapped
// mesh: if it falls within tolerance of an existing site it is merged
// into that site's group; otherwise it is located and spliced in,
// either by splitting an interior triangle or by expanding the hull.
func (m *Mesh) insertVertex(v types.Vertex) bool {
	m.debugVertex(v.ID, v.Point())

	if existing, ok := m.findCoincident(v.Point()); ok {
		m.mergeInto(existing, v)
		return true
	}

	e := m.locate(v.Point())
	if e.IsNil() {
		return false
	}

	a := m.pool.Origin(e)
	b := m.pool.Dest(e)
	f := m.pool.Forward(e)
	c := m.pool.Dest(f)

	if a.IsNull() || b.IsNull() || c.IsNull() {
		m.insertOutsideHull(e, v)
		return false
	}

	if host := m.edgeHostingVertex(e, v.Point()); !host.IsNil() {
		m.legalize(m.splitOnEdge(host, v.ID))
		return false
	}

	outer := m.splitTriangle(e, v.ID)
	m.legalize([]quadedge.EdgeID{outer[0], outer[1], outer[2]})
	return false
}

// edgeHostingVertex reports which of e's triangle's three bounding
// edges (e, Forward(e), Reverse(e)) point p is exactly collinear with,
// or NilEdge if p is strictly interior to the triangle. Only considers
// edges with two real endpoints; ghost faces are handled entirely by
// insertOutsideHull instead.
func (m *Mesh) edgeHostingVertex(e quadedge.EdgeID, p types.Point) quadedge.EdgeID {
	f := m.pool.Forward(e)
	r := m.pool.Forward(f)
	for _, cand := range [3]quadedge.EdgeID{e, f, r} {
		a := m.pool.Origin(cand)
		b := m.pool.Dest(cand)
		if a.IsNull() || b.IsNull() {
			continue
		}
		if predicates.Orientation(m.pointOf(a), m.pointOf(b), p, m.thresholds.Precision) == 0 {
			return cand
		}
	}
	return quadedge.NilEdge
}

// findCoincident asks the spatial index for every vertex registered
// within tolerance of p, resolving each candidate to its live
// representative (following any merge it has already undergone) and
// confirming the resolved point is still within tolerance.
func (m *Mesh) findCoincident(p types.Point) (types.VertexID, bool) {
	for _, c := range m.spatialIdx.FindVerticesNear(p, m.thresholds.VertexTolerance) {
		rep := c
		if target, merged := m.mergedAway[c]; merged {
			rep = target
		}
		if _, live := m.vertexEdge[rep]; !live {
			continue
		}
		if m.thresholds.WithinVertexTolerance(m.pointOf(rep), p) {
			return rep, true
		}
	}
	return types.NullVertex, false
}

// mergeInto folds newV into existing's merger group, resolving the
// group's Z attribute per the configured MergeRule.
func (m *Mesh) mergeInto(existing types.VertexID, newV types.Vertex) {
	g, ok := m.groupOf[existing]
	if !ok {
		rep := m.verts[existing]
		g = types.NewVertexMergerGroup(rep, m.cfg.mergeRule)
		m.groupOf[existing] = g
	}
	g.Add(newV)
	m.mergedAway[newV.ID] = existing
}

// insertOutsideHull handles a query point that lies in a ghost face:
// it splits that ghost triangle exactly as splitTriangle would any
// other (Null standing in as an ordinary vertex), producing the new
// vertex's first two spokes to its hull neighbors and to Null, then
// walks outward from each of those neighbors absorbing any further
// hull edges the new vertex also sees past.
func (m *Mesh) insertOutsideHull(e quadedge.EdgeID, v types.Vertex) {
	outer := m.splitTriangle(e, v.ID)
	m.legalize([]quadedge.EdgeID{outer[0]})

	m.absorbHullEdges(outer[1], v)
	m.absorbHullEdges(outer[2].Dual(), v)
}

// absorbHullEdges repeatedly tests whether v also sees past the hull
// edge just beyond spokeToNull (an unchanged original X->Null spoke),
// and if so folds that hull vertex into v's fan by flipping the shared
// diagonal between v's ghost face and the next ghost face outward,
// the same quad-edge flip primitive used for Delaunay restoration
// applied here to a quadrilateral that happens to include Null. Each
// absorption promotes the old hull edge to an interior edge, which
// must then be re-legalized against whatever real triangle already
// sat on its far side. It handles both sides of v: when v's ghost face
// lies to the left of spokeToNull the next ghost face is across its
// dual, otherwise it is spokeToNull's own left face.
func (m *Mesh) absorbHullEdges(spokeToNull quadedge.EdgeID, v types.Vertex) {
	forward := m.pool.Dest(m.pool.Forward(spokeToNull)) == v.ID
	for i := 0; i < m.pool.NumLiveEdges()+64; i++ {
		ghostBeyond := spokeToNull
		if forward {
			ghostBeyond = spokeToNull.Dual()
		}
		hullEdge := m.realEdgeOfGhostFace(ghostBeyond)
		if hullEdge.IsNil() {
			return
		}

		p := m.pool.Origin(hullEdge)
		q := m.pool.Dest(hullEdge)
		if predicates.GhostInCircle(m.pointOf(p), m.pointOf(q), v.Point(), m.thresholds.HalfPlane) <= 0 {
			return
		}

		m.flipEdge(spokeToNull)
		m.legalize([]quadedge.EdgeID{hullEdge})

		if forward {
			spokeToNull = m.pool.Forward(spokeToNull)
		} else {
			spokeToNull = m.pool.Forward(m.pool.Forward(spokeToNull)).Dual()
		}
	}
}
