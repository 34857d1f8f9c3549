package types

// Triangle is the result type yielded by a mesh's triangle iterator: an
// ordered triplet of vertex IDs for one interior (non-ghost) face.
//
// The order always reflects counter-clockwise winding as produced by the
// mesh; it is stored exactly as provided, no reordering is performed.
// Use predicates.Orientation to re-derive winding for a triangle built
// some other way.
type Triangle [3]VertexID

// NewTriangle creates a triangle from three vertex IDs.
func NewTriangle(v1, v2, v3 VertexID) Triangle {
	return Triangle{v1, v2, v3}
}

// V1 returns the first vertex.
func (t Triangle) V1() VertexID {
	return t[0]
}

// V2 returns the second vertex.
func (t Triangle) V2() VertexID {
	return t[1]
}

// V3 returns the third vertex.
func (t Triangle) V3() VertexID {
	return t[2]
}

// Vertices returns all three vertex IDs as a slice.
func (t Triangle) Vertices() []VertexID {
	return []VertexID{t[0], t[1], t[2]}
}

// Edges returns the three edges of this triangle in canonical form.
//
// The edges are returned in the order: (v1,v2), (v2,v3), (v3,v1).
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(t[0], t[1]),
		NewEdge(t[1], t[2]),
		NewEdge(t[2], t[0]),
	}
}
