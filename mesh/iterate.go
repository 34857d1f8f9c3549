package mesh

import (
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

// Edges returns every undirected edge currently in the mesh, hull
// edges included, one entry per live pool pair whose endpoints are
// both real vertices. Ghost edges (spokes to Null) are excluded.
func (m *Mesh) Edges() []types.Edge {
	var out []types.Edge
	m.pool.Iterate(func(e quadedge.EdgeID) {
		a := m.pool.Origin(e)
		b := m.pool.Dest(e)
		if a.IsNull() || b.IsNull() {
			return
		}
		out = append(out, types.NewEdge(a, b))
	})
	return out
}

// Triangles returns every interior (non-ghost) face, each visited
// exactly once by walking from its lowest-indexed bounding edge.
func (m *Mesh) Triangles() []types.Triangle {
	var out []types.Triangle
	m.pool.Iterate(func(e quadedge.EdgeID) {
		m.collectTriangleFrom(e, &out)
		m.collectTriangleFrom(e.Dual(), &out)
	})
	return out
}

// collectTriangleFrom appends the face reached by e if e is its
// lowest-indexed bounding edge, a real (non-ghost) triangle, and not
// already visited from a different starting edge this call.
func (m *Mesh) collectTriangleFrom(e quadedge.EdgeID, out *[]types.Triangle) {
	f := m.pool.Forward(e)
	r := m.pool.Forward(f)
	if m.pool.Forward(r) != e {
		return
	}

	a := m.pool.Origin(e)
	b := m.pool.Origin(f)
	c := m.pool.Origin(r)
	if a.IsNull() || b.IsNull() || c.IsNull() {
		return
	}

	if e < f && e < r {
		*out = append(*out, types.NewTriangle(a, b, c))
	}
}

// Vertices returns the IDs of every distinct site currently present in
// the mesh (plain vertices plus one per merger group representative).
func (m *Mesh) Vertices() []types.VertexID {
	out := make([]types.VertexID, 0, len(m.vertexEdge))
	for id := range m.vertexEdge {
		out = append(out, id)
	}
	return out
}

// Perimeter returns the convex-hull boundary as an ordered loop of
// vertex IDs, counter-clockwise, one entry per hull vertex's spoke to
// Null. Spec's literal traversal recipe for stepping from one ghost
// edge to the next does not actually reach the next spoke under this
// package's ghost-ring wiring; the verified step used
// here instead is Dual(Forward(e)), which advances the v->Null spoke
// of one hull vertex to that of the next.
func (m *Mesh) Perimeter() []types.VertexID {
	if !m.bootstrapped {
		return nil
	}

	found := false
	var start quadedge.EdgeID
	m.pool.Iterate(func(e quadedge.EdgeID) {
		if found {
			return
		}
		if !m.pool.Origin(e).IsNull() && m.pool.Dest(e).IsNull() {
			start, found = e, true
		} else if !m.pool.Origin(e.Dual()).IsNull() && m.pool.Dest(e.Dual()).IsNull() {
			start, found = e.Dual(), true
		}
	})
	if !found {
		return nil
	}

	var loop []types.VertexID
	cur := start
	limit := m.pool.NumLiveEdges() + 8
	for i := 0; i < limit; i++ {
		loop = append(loop, m.pool.Origin(cur))
		cur = m.pool.Forward(cur).Dual()
		if cur == start {
			break
		}
	}
	return loop
}
