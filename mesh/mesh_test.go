package mesh

import (
	"testing"

	"github.com/iceisfun/tinmesh/types"
)

func addSquare(t *testing.T, m *Mesh) [4]types.VertexID {
	t.Helper()
	var ids [4]types.VertexID
	pts := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, p := range pts {
		id, merged, err := m.AddVertex(p[0], p[1], 0)
		if err != nil {
			t.Fatalf("AddVertex(%v): %v", p, err)
		}
		if merged {
			t.Fatalf("AddVertex(%v): unexpected merge", p)
		}
		ids[i] = id
	}
	return ids
}

func TestUnitSquareBootstrapsToTwoTriangles(t *testing.T) {
	m := NewMesh(1.0)
	addSquare(t, m)

	if !m.Bootstrapped() {
		t.Fatal("expected mesh to be bootstrapped after 4 points")
	}

	tris := m.Triangles()
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}

	perim := m.Perimeter()
	if len(perim) != 4 {
		t.Fatalf("expected 4 perimeter vertices, got %d", len(perim))
	}

	area := 0.0
	for _, tri := range tris {
		a, _ := m.VertexPoint(tri.V1())
		b, _ := m.VertexPoint(tri.V2())
		c, _ := m.VertexPoint(tri.V3())
		area += ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)) / 2
	}
	if area < 0 {
		area = -area
	}
	if diff := area - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected unit hull area 1, got %v", area)
	}
}

func TestCollinearTripleThenOffsetBootstraps(t *testing.T) {
	m := NewMesh(1.0)
	if _, _, err := m.AddVertex(0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.AddVertex(1, 0, 0); err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.AddVertex(2, 0, 0); err != nil {
		t.Fatal(err)
	}
	if m.Bootstrapped() {
		t.Fatal("three collinear points should not bootstrap")
	}

	if _, _, err := m.AddVertex(1, 1, 0); err != nil {
		t.Fatal(err)
	}
	if !m.Bootstrapped() {
		t.Fatal("expected bootstrap once a non-collinear point arrives")
	}
	if got := len(m.Triangles()); got == 0 {
		t.Fatal("expected at least one triangle after bootstrap")
	}
}

func TestFivePointDelaunayFlip(t *testing.T) {
	m := NewMesh(1.0)
	addSquare(t, m)
	if _, _, err := m.AddVertex(0.5, 0.5, 0); err != nil {
		t.Fatal(err)
	}

	tris := m.Triangles()
	if len(tris) != 4 {
		t.Fatalf("expected 4 triangles after center insertion, got %d", len(tris))
	}
}

func TestCoincidentVertexMerges(t *testing.T) {
	m := NewMesh(1.0)
	addSquare(t, m)

	before := m.NumVertices()
	id, merged, err := m.AddVertex(1e-8, 1e-8, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !merged {
		t.Fatal("expected near-coincident vertex to merge")
	}
	if got := m.NumVertices(); got != before {
		t.Fatalf("expected vertex count unchanged after merge, got %d want %d", got, before)
	}
	if _, ok := m.VertexPoint(id); !ok {
		t.Fatal("merged vertex should still resolve to a live point")
	}
}

func TestRemoveVertexRetriangulates(t *testing.T) {
	m := NewMesh(1.0)
	ids := addSquare(t, m)
	centerID, _, err := m.AddVertex(0.5, 0.5, 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.RemoveVertex(centerID); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if got := len(m.Triangles()); got != 2 {
		t.Fatalf("expected 2 triangles after removing the center, got %d", got)
	}

	if err := m.RemoveVertex(ids[0]); err == nil {
		if got := len(m.Triangles()); got == 0 {
			t.Fatal("expected remaining triangles after corner removal")
		}
	}
}

func TestCannotRemoveLastTriangle(t *testing.T) {
	m := NewMesh(1.0)
	ids := [3]types.VertexID{}
	pts := [3][2]float64{{0, 0}, {1, 0}, {0, 1}}
	for i, p := range pts {
		id, _, err := m.AddVertex(p[0], p[1], 0)
		if err != nil {
			t.Fatal(err)
		}
		ids[i] = id
	}
	if !m.Bootstrapped() {
		t.Fatal("expected bootstrap with 3 non-collinear points")
	}
	if err := m.RemoveVertex(ids[0]); err != ErrCannotRemoveHullTriangle {
		t.Fatalf("expected ErrCannotRemoveHullTriangle, got %v", err)
	}
}

func TestSplitEdgeInsertsMidpoint(t *testing.T) {
	m := NewMesh(1.0)
	addSquare(t, m)

	edges := m.Edges()
	if len(edges) == 0 {
		t.Fatal("expected at least one edge")
	}

	before := m.NumVertices()
	anchorEdge, ok := m.vertexEdge[0]
	if !ok {
		t.Fatal("expected vertex 0 to have an anchor edge")
	}
	_, err := m.SplitEdge(anchorEdge, 2.5, false)
	if err != nil {
		t.Fatalf("SplitEdge: %v", err)
	}
	if got := m.NumVertices(); got != before+1 {
		t.Fatalf("expected vertex count to grow by 1, got %d want %d", got, before+1)
	}
}

func TestClearResetsMesh(t *testing.T) {
	m := NewMesh(1.0)
	addSquare(t, m)
	m.Clear()

	if m.Bootstrapped() {
		t.Fatal("expected Clear to reset bootstrap state")
	}
	if got := m.NumVertices(); got != 0 {
		t.Fatalf("expected 0 vertices after Clear, got %d", got)
	}

	addSquare(t, m)
	if !m.Bootstrapped() {
		t.Fatal("expected mesh to be reusable after Clear")
	}
}

func TestDisposeRejectsFurtherOperations(t *testing.T) {
	m := NewMesh(1.0)
	addSquare(t, m)
	m.Dispose()

	if _, _, err := m.AddVertex(5, 5, 0); err != ErrDisposed {
		t.Fatalf("expected ErrDisposed, got %v", err)
	}
}
