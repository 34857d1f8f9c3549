package constraint

import (
	"github.com/iceisfun/tinmesh/mesh"
	"github.com/iceisfun/tinmesh/types"
)

// AddConstraints installs every constraint into m exactly once: all
// unconstrained vertices must already have been added. It injects each
// constraint's vertices, forces the mesh edge for every consecutive
// segment (flipping across whatever the segment crosses), marks forced
// edges with their constraint's index, flood-marks each polygon's
// interior, and finally — if restoreConformity is true — bisects every
// constraint segment longer than the mesh's nominal spacing with
// synthetic midpoints until no piece is longer than that spacing. The
// in-circle condition along the constraint is not tested.
//
// Calling this a second time on the same mesh fails with
// ErrConstraintAlreadyInstalled.
func AddConstraints(m *mesh.Mesh, constraints []*Constraint, restoreConformity bool) error {
	if !m.Bootstrapped() {
		return ErrNotBootstrapped
	}
	if err := m.LockConstraints(); err != nil {
		return err
	}

	for i, c := range constraints {
		if len(c.Points) < c.minPoints() {
			return ErrInsufficientConstraintGeometry
		}
		if c.Kind == KindPolygon && loopSelfIntersects(c.Points, m.Thresholds().Precision) {
			return ErrInvalidConstraintGeometry
		}
		c.index = i
		c.computeBoundsAndLength()
		if c.Kind == KindPolygon {
			m.RegisterConstraintKind(c.index, mesh.ConstraintKindPolygon)
		} else {
			m.RegisterConstraintKind(c.index, mesh.ConstraintKindLinear)
		}
	}

	for _, c := range constraints {
		if err := installOne(m, c); err != nil {
			return err
		}
	}

	if restoreConformity {
		for _, c := range constraints {
			if err := restoreOne(m, c); err != nil {
				return err
			}
		}
	}

	return nil
}

// installOne injects c's vertices, forces its segments, and — for
// polygons — flood-marks the enclosed interior.
func installOne(m *mesh.Mesh, c *Constraint) error {
	c.resolved = make([]types.VertexID, len(c.Points))
	for i, p := range c.Points {
		id, err := m.InjectConstraintVertex(p.X, p.Y, c.zAt(i))
		if err != nil {
			return err
		}
		c.resolved[i] = id
	}

	for _, seg := range c.segments() {
		p, q := c.resolved[seg[0]], c.resolved[seg[1]]
		if p == q {
			return ErrInvalidConstraintGeometry
		}
		e, err := m.ForceEdge(p, q)
		if err != nil {
			return err
		}
		m.MarkConstraintEdge(e, c.index)
	}

	if c.Kind == KindPolygon && isCCW(c.Points) {
		for _, seg := range c.segments() {
			e, err := m.ForceEdge(c.resolved[seg[0]], c.resolved[seg[1]])
			if err != nil {
				return err
			}
			m.FloodMarkInterior(e, c.index)
		}
	}
	return nil
}

// restoreOne recursively bisects each of c's forced segments that is
// longer than the mesh's nominal spacing, inserting a synthetic
// midpoint via SplitEdge (whose own insertion already restores local
// Delaunay conformance) and re-forcing+marking the two resulting
// halves, until no remaining sub-segment is longer than the nominal
// spacing. It does not test the in-circle condition along the
// constraint.
func restoreOne(m *mesh.Mesh, c *Constraint) error {
	threshold := m.Thresholds().NominalSpacing
	if threshold <= 0 {
		return nil
	}

	type span struct {
		a, b   types.VertexID
		za, zb float64
	}

	var stack []span
	for _, seg := range c.segments() {
		stack = append(stack, span{
			a: c.resolved[seg[0]], b: c.resolved[seg[1]],
			za: c.zAt(seg[0]), zb: c.zAt(seg[1]),
		})
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pa, ok1 := m.VertexPoint(s.a)
		pb, ok2 := m.VertexPoint(s.b)
		if !ok1 || !ok2 {
			continue
		}
		dx, dy := pb.X-pa.X, pb.Y-pa.Y
		if dx*dx+dy*dy <= threshold*threshold {
			continue
		}

		e, err := m.ForceEdge(s.a, s.b)
		if err != nil {
			return err
		}
		mid, err := m.SplitEdge(e, (s.za+s.zb)/2, true)
		if err != nil {
			return err
		}
		m.MarkConstraintMember(mid)

		e1, err := m.ForceEdge(s.a, mid)
		if err != nil {
			return err
		}
		m.MarkConstraintEdge(e1, c.index)
		e2, err := m.ForceEdge(mid, s.b)
		if err != nil {
			return err
		}
		m.MarkConstraintEdge(e2, c.index)

		stack = append(stack, span{a: s.a, b: mid, za: s.za, zb: (s.za + s.zb) / 2})
		stack = append(stack, span{a: mid, b: s.b, za: (s.za + s.zb) / 2, zb: s.zb})
	}
	return nil
}
