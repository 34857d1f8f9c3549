package mesh

// Stats summarizes a mesh's current size and a few internal counters
// useful for diagnosing degenerate or pathological inputs.
type Stats struct {
	Vertices        int
	Edges           int
	Triangles       int
	SyntheticCount  int
	MergerGroups    int
	InCircleTieBreaks int
}

// Stats computes a fresh snapshot of the mesh's size.
func (m *Mesh) Stats() Stats {
	synthetic := 0
	for _, v := range m.verts {
		if v.IsSynthetic() {
			synthetic++
		}
	}

	return Stats{
		Vertices:          m.NumVertices(),
		Edges:             len(m.Edges()),
		Triangles:         len(m.Triangles()),
		SyntheticCount:    synthetic,
		MergerGroups:      len(m.groupOf),
		InCircleTieBreaks: m.inCircleTieBreaks,
	}
}
