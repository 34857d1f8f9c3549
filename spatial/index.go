// Package spatial provides an accelerated lookup structure for vertices
// near a query point, used by the mesh core to find merge candidates
// without a linear scan of every inserted vertex (spec §4.3's "merge on
// near-coincidence").
package spatial

import "github.com/iceisfun/tinmesh/types"

// Index provides spatial queries for vertices.
type Index interface {
	// FindVerticesNear returns candidate vertex IDs that may lie within
	// radius of point p; the result can include vertices farther away.
	FindVerticesNear(p types.Point, radius float64) []types.VertexID
	// AddVertex adds a vertex to the index.
	AddVertex(id types.VertexID, p types.Point)
	// Build finalizes the index structure.
	Build()
}
