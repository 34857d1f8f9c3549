package constraint

import (
	"testing"

	"github.com/iceisfun/tinmesh/mesh"
	"github.com/iceisfun/tinmesh/types"
)

func buildGridMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh(1.0)
	for y := 0.0; y <= 10; y += 2 {
		for x := 0.0; x <= 10; x += 2 {
			if _, _, err := m.AddVertex(x, y, 0); err != nil {
				t.Fatalf("AddVertex: %v", err)
			}
		}
	}
	if !m.Bootstrapped() {
		t.Fatal("expected grid mesh to bootstrap")
	}
	return m
}

func TestAddPolygonConstraintMarksInterior(t *testing.T) {
	m := buildGridMesh(t)

	square := NewPolygon([]types.Point{
		{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7},
	})

	if err := AddConstraints(m, []*Constraint{square}, false); err != nil {
		t.Fatalf("AddConstraints: %v", err)
	}
	if square.Index() != 0 {
		t.Fatalf("expected index 0, got %d", square.Index())
	}
	if square.Bounds().Min.X != 3 || square.Bounds().Max.X != 7 {
		t.Fatalf("unexpected bounds: %+v", square.Bounds())
	}
	if diff := square.Length() - 16; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected perimeter length 16, got %v", square.Length())
	}

	// Every boundary edge of the polygon must carry its constraint index.
	for i, seg := range square.segments() {
		a, b := square.resolved[seg[0]], square.resolved[seg[1]]
		e, ok := m.EdgeBetween(a, b)
		if !ok {
			t.Fatalf("boundary segment %d: expected a live mesh edge", i)
		}
		idx, ok := m.RegionConstraint(e)
		if !ok || idx != 0 {
			t.Fatalf("boundary segment %d: expected RegionConstraint 0, got (%d, %v)", i, idx, ok)
		}
	}

	// At least one interior edge, reached by flood marking rather than
	// forcing, must also carry the constraint index.
	foundInterior := false
	for _, e := range m.Edges() {
		qe, ok := m.EdgeBetween(e.V1(), e.V2())
		if !ok {
			continue
		}
		idx, ok := m.RegionConstraint(qe)
		if !ok || idx != 0 {
			continue
		}
		pa, _ := m.VertexPoint(e.V1())
		pb, _ := m.VertexPoint(e.V2())
		if pa.X > 3 && pa.X < 7 && pa.Y > 3 && pa.Y < 7 &&
			pb.X > 3 && pb.X < 7 && pb.Y > 3 && pb.Y < 7 {
			foundInterior = true
			break
		}
	}
	if !foundInterior {
		t.Fatal("expected at least one strictly-interior edge marked with constraint index 0")
	}

	if got := PointInPolygon(types.Point{X: 5, Y: 5}, square.Points); got != Inside {
		t.Fatalf("expected center of square to be Inside, got %v", got)
	}
}

func TestAddConstraintsTwiceFails(t *testing.T) {
	m := buildGridMesh(t)
	line := NewLinear([]types.Point{{X: 1, Y: 1}, {X: 9, Y: 9}})

	if err := AddConstraints(m, []*Constraint{line}, false); err != nil {
		t.Fatalf("first AddConstraints: %v", err)
	}
	other := NewLinear([]types.Point{{X: 0, Y: 2}, {X: 2, Y: 0}})
	if err := AddConstraints(m, []*Constraint{other}, false); err != ErrConstraintAlreadyInstalled {
		t.Fatalf("expected ErrConstraintAlreadyInstalled, got %v", err)
	}
}

func TestLinearConstraintForcesDiagonalEdge(t *testing.T) {
	m := buildGridMesh(t)

	diag := NewLinear([]types.Point{{X: 0, Y: 0}, {X: 10, Y: 10}})
	if err := AddConstraints(m, []*Constraint{diag}, false); err != nil {
		t.Fatalf("AddConstraints: %v", err)
	}

	found := false
	for _, e := range m.Edges() {
		a, _ := m.VertexPoint(e.V1())
		b, _ := m.VertexPoint(e.V2())
		if (a.X == 0 && a.Y == 0 && b.X == 10 && b.Y == 10) ||
			(b.X == 0 && b.Y == 0 && a.X == 10 && a.Y == 10) {
			found = true
		}
	}
	if !found {
		t.Fatal("expected mesh to contain the forced diagonal edge")
	}
}

func TestInsufficientGeometryRejected(t *testing.T) {
	m := buildGridMesh(t)
	tooFew := NewPolygon([]types.Point{{X: 1, Y: 1}, {X: 2, Y: 2}})
	if err := AddConstraints(m, []*Constraint{tooFew}, false); err != ErrInsufficientConstraintGeometry {
		t.Fatalf("expected ErrInsufficientConstraintGeometry, got %v", err)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []types.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}

	if got := PointInPolygon(types.Point{X: 2, Y: 2}, square); got != Inside {
		t.Fatalf("expected Inside, got %v", got)
	}
	if got := PointInPolygon(types.Point{X: 10, Y: 10}, square); got != Outside {
		t.Fatalf("expected Outside, got %v", got)
	}
}

func TestDensifyRespectsThreshold(t *testing.T) {
	line := []types.Vertex{
		types.NewVertex(0, 0, 0, 0),
		types.NewVertex(1, 10, 0, 10),
	}
	out := Densify(line, 3)
	for i := 0; i+1 < len(out); i++ {
		dx := out[i+1].X - out[i].X
		if dx > 3+1e-9 {
			t.Fatalf("segment %d exceeds threshold: %v", i, dx)
		}
	}
	if out[0].X != 0 || out[len(out)-1].X != 10 {
		t.Fatalf("expected endpoints preserved, got %v..%v", out[0].X, out[len(out)-1].X)
	}
}
