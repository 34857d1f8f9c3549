package mesh

import (
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

// SplitEdge inserts a new vertex at the midpoint of e, carrying z as
// its scalar attribute, and re-triangulates around it exactly as an
// ordinary AddVertex would. restoreConformity is accepted for
// interface symmetry with constraint-aware splitting but is a no-op
// here: this package's Delaunay restoration already runs on every
// insertion, so there is no separate conformity pass to re-run.
func (m *Mesh) SplitEdge(e quadedge.EdgeID, z float64, restoreConformity bool) (types.VertexID, error) {
	if m.disposed {
		return types.NullVertex, ErrDisposed
	}
	if !m.bootstrapped || !m.pool.IsLive(e) {
		return types.NullVertex, ErrNotBootstrapped
	}

	a := m.pool.Origin(e)
	b := m.pool.Dest(e)
	if a.IsNull() || b.IsNull() {
		return types.NullVertex, ErrVertexNotFound
	}

	pa, pb := m.pointOf(a), m.pointOf(b)
	mx, my := (pa.X+pb.X)/2, (pa.Y+pb.Y)/2

	v := types.NewVertex(m.nextVertexID(), mx, my, z)
	v.Flags |= types.FlagSynthetic
	m.verts = append(m.verts, v)
	m.bounds = m.bounds.Expand(v.Point())
	m.spatialIdx.AddVertex(v.ID, v.Point())

	m.insertVertex(v)
	return v.ID, nil
}
