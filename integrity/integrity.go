// Package integrity verifies a mesh's structural and geometric
// invariants after construction, reporting the first violation found.
package integrity

import (
	"fmt"

	"github.com/iceisfun/tinmesh/mesh"
	"github.com/iceisfun/tinmesh/predicates"
	"github.com/iceisfun/tinmesh/types"
)

// Result reports the outcome of a Check call. OK true (Detail empty)
// means no violation was found; the zero value has OK false.
type Result struct {
	OK     bool
	Detail string
}

func fail(format string, args ...any) Result {
	return Result{OK: false, Detail: fmt.Sprintf(format, args...)}
}

// Check runs its invariants in order, stopping and reporting at the
// first violation: positive-area interior triangles, a hull perimeter
// of at least three vertices with positive signed area, and Delaunay
// conformance across every shared interior edge. It does not verify
// the edge pool's forward-link circuits.
func Check(m *mesh.Mesh) Result {
	if !m.Bootstrapped() {
		return fail("mesh is not bootstrapped")
	}

	if r := checkTriangleAreas(m); !r.OK {
		return r
	}
	if r := checkPerimeter(m); !r.OK {
		return r
	}
	if r := checkDelaunayConformance(m); !r.OK {
		return r
	}

	return Result{OK: true}
}

// checkTriangleAreas verifies every interior triangle has strictly
// positive signed area (CCW, non-degenerate).
func checkTriangleAreas(m *mesh.Mesh) Result {
	for _, tri := range m.Triangles() {
		a, _ := m.VertexPoint(tri.V1())
		b, _ := m.VertexPoint(tri.V2())
		c, _ := m.VertexPoint(tri.V3())
		area := predicates.Area(a, b, c)
		if area <= 0 {
			return fail("triangle (%d,%d,%d) has non-positive area %v", tri.V1(), tri.V2(), tri.V3(), area)
		}
	}
	return Result{OK: true}
}

// checkPerimeter verifies the hull boundary returned by Perimeter has
// at least three live vertices and positive signed area
// (counter-clockwise).
func checkPerimeter(m *mesh.Mesh) Result {
	loop := m.Perimeter()
	if len(loop) < 3 {
		return fail("perimeter has fewer than 3 vertices (%d)", len(loop))
	}

	area := 0.0
	pts := make([]types.Point, len(loop))
	for i, id := range loop {
		p, ok := m.VertexPoint(id)
		if !ok {
			return fail("perimeter references vertex %d with no live point", id)
		}
		pts[i] = p
	}
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	area /= 2
	if area <= 0 {
		return fail("hull signed area is non-positive (%v); expected counter-clockwise winding", area)
	}
	return Result{OK: true}
}

// checkDelaunayConformance verifies that, for every interior edge
// shared by two real triangles, swapping its diagonal would not
// improve the in-circle value beyond the mesh's own Delaunay
// threshold.
func checkDelaunayConformance(m *mesh.Mesh) Result {
	thresh := m.Thresholds()
	adjacency := buildTriangleAdjacency(m)

	for edge, tris := range adjacency {
		if len(tris) != 2 {
			continue
		}
		t1, t2 := tris[0], tris[1]
		apex1 := oppositeVertex(t1, edge)
		apex2 := oppositeVertex(t2, edge)
		if apex1.IsNull() || apex2.IsNull() {
			continue
		}

		a, _ := m.VertexPoint(edge.V1())
		b, _ := m.VertexPoint(edge.V2())
		p1, _ := m.VertexPoint(apex1)
		p2, _ := m.VertexPoint(apex2)
		if predicates.Orientation(a, b, p1, thresh.HalfPlane) < 0 {
			a, b = b, a
		}

		if predicates.InCircle(a, b, p1, p2, thresh.Delaunay) > 0 {
			return fail("edge (%d,%d) violates Delaunay conformance against apex %d", edge.V1(), edge.V2(), apex2)
		}
	}
	return Result{OK: true}
}

func buildTriangleAdjacency(m *mesh.Mesh) map[types.Edge][]types.Triangle {
	adjacency := make(map[types.Edge][]types.Triangle)
	for _, tri := range m.Triangles() {
		for _, e := range tri.Edges() {
			adjacency[e.Canonical()] = append(adjacency[e.Canonical()], tri)
		}
	}
	return adjacency
}

func oppositeVertex(tri types.Triangle, edge types.Edge) types.VertexID {
	for _, v := range tri.Vertices() {
		if v != edge.V1() && v != edge.V2() {
			return v
		}
	}
	return types.NullVertex
}
