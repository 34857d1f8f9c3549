package mesh

import (
	"math"

	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

// NearestEdge returns the edge of the triangle containing (x,y) that
// lies closest to the query point. Ghost (hull) edges are never
// returned: when the query falls outside the hull, the nearest real
// hull edge is reported instead.
func (m *Mesh) NearestEdge(x, y float64) (types.Edge, bool) {
	if !m.bootstrapped {
		return types.Edge{}, false
	}
	q := types.Point{X: x, Y: y}
	e := m.locate(q)
	if e.IsNil() {
		return types.Edge{}, false
	}

	real := m.realEdgeOfGhostFace(e)
	candidates := []struct {
		a, b types.VertexID
	}{}
	cur := e
	for i := 0; i < 3; i++ {
		a := m.pool.Origin(cur)
		b := m.pool.Dest(cur)
		if !a.IsNull() && !b.IsNull() {
			candidates = append(candidates, struct{ a, b types.VertexID }{a, b})
		}
		cur = m.pool.Forward(cur)
	}
	if len(candidates) == 0 {
		if real.IsNil() {
			return types.Edge{}, false
		}
		a, b := m.pool.Origin(real), m.pool.Dest(real)
		return types.NewEdge(a, b), true
	}

	best := candidates[0]
	bestDist := m.distToSegment(q, best.a, best.b)
	for _, c := range candidates[1:] {
		d := m.distToSegment(q, c.a, c.b)
		if d < bestDist {
			bestDist, best = d, c
		}
	}
	return types.NewEdge(best.a, best.b), true
}

func (m *Mesh) distToSegment(q types.Point, aID, bID types.VertexID) float64 {
	a, b := m.pointOf(aID), m.pointOf(bID)
	dx, dy := b.X-a.X, b.Y-a.Y
	length2 := dx*dx + dy*dy
	if length2 == 0 {
		return math.Hypot(q.X-a.X, q.Y-a.Y)
	}
	t := ((q.X-a.X)*dx + (q.Y-a.Y)*dy) / length2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	px, py := a.X+t*dx, a.Y+t*dy
	return math.Hypot(q.X-px, q.Y-py)
}

// NearestVertex returns the ID of the site nearest the query point,
// searching the vertices of the triangle (or ghost face) located for
// the query and then a fixed three rounds of their pinwheel neighbors.
func (m *Mesh) NearestVertex(x, y float64) (types.VertexID, bool) {
	if !m.bootstrapped {
		return types.NullVertex, false
	}
	q := types.Point{X: x, Y: y}
	e := m.locate(q)
	if e.IsNil() {
		return types.NullVertex, false
	}

	best := types.NullVertex
	bestDist := math.Inf(1)
	visited := map[types.VertexID]bool{}
	frontier := []quadedge.EdgeID{e}
	for round := 0; round < 3 && len(frontier) > 0; round++ {
		var next []quadedge.EdgeID
		for _, fe := range frontier {
			cur := fe
			for i := 0; i < 3; i++ {
				id := m.pool.Origin(cur)
				if !id.IsNull() && !visited[id] {
					visited[id] = true
					p := m.pointOf(id)
					d := math.Hypot(q.X-p.X, q.Y-p.Y)
					if d < bestDist {
						bestDist, best = d, id
					}
				}
				next = append(next, m.pool.Pinwheel(cur))
				cur = m.pool.Forward(cur)
			}
		}
		frontier = next
	}

	if best.IsNull() {
		return types.NullVertex, false
	}
	return best, true
}

// IsPointInside reports whether (x,y) falls within the triangulated
// hull (on the boundary counts as inside).
func (m *Mesh) IsPointInside(x, y float64) bool {
	if !m.bootstrapped {
		return false
	}
	e := m.locate(types.Point{X: x, Y: y})
	if e.IsNil() {
		return false
	}
	a := m.pool.Origin(e)
	b := m.pool.Dest(e)
	f := m.pool.Forward(e)
	c := m.pool.Dest(f)
	return !a.IsNull() && !b.IsNull() && !c.IsNull()
}
