// Command tinmesh-demo bootstraps a mesh, inserts a scattered point
// set plus a polygon constraint, and reports the resulting queries and
// integrity check. It is a usage example, not a library entry point.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/iceisfun/tinmesh/constraint"
	"github.com/iceisfun/tinmesh/formatting"
	"github.com/iceisfun/tinmesh/integrity"
	"github.com/iceisfun/tinmesh/mesh"
	"github.com/iceisfun/tinmesh/types"
)

func main() {
	n := flag.Int("n", 200, "number of scattered points to insert")
	spacing := flag.Float64("spacing", 1.0, "nominal point spacing")
	seed := flag.Int64("seed", 1, "random seed for the scattered point set")
	flag.Parse()

	m := mesh.NewMesh(*spacing,
		mesh.WithDebugAddVertex(func(id types.VertexID, p types.Point) {
			log.Printf("%s added at %s", formatting.VertexIDString(id), formatting.PointString(p))
		}),
	)

	rnd := rand.New(rand.NewSource(*seed))
	const width, height = 100.0, 100.0
	for i := 0; i < *n; i++ {
		x := rnd.Float64() * width
		y := rnd.Float64() * height
		if _, _, err := m.AddVertex(x, y, 0); err != nil {
			log.Fatalf("AddVertex: %v", err)
		}
	}
	if !m.Bootstrapped() {
		log.Fatal("mesh failed to bootstrap from the scattered point set")
	}

	square := constraint.NewPolygon([]types.Point{
		{X: 25, Y: 25}, {X: 75, Y: 25}, {X: 75, Y: 75}, {X: 25, Y: 75},
	})
	if err := constraint.AddConstraints(m, []*constraint.Constraint{square}, false); err != nil {
		log.Fatalf("AddConstraints: %v", err)
	}

	loop := make(types.PolygonLoop, 0, len(square.Points))
	for _, corner := range square.Points {
		if id, ok := m.NearestVertex(corner.X, corner.Y); ok {
			loop = append(loop, id)
		}
	}
	log.Printf("constraint boundary: %s", formatting.PolygonLoopString(loop))

	stats := m.Stats()
	log.Printf("stats: %+v", stats)
	log.Printf("bounds: %s", formatting.RectString(m.Bounds()))

	if id, ok := m.NearestVertex(50, 50); ok {
		p, _ := m.VertexPoint(id)
		log.Printf("nearest vertex to (50,50): %s at %s", formatting.VertexIDString(id), formatting.PointString(p))
	}
	if e, ok := m.NearestEdge(50, 50); ok {
		log.Printf("nearest edge to (50,50): %s", formatting.EdgeString(e))
	}
	log.Printf("(10,10) inside hull: %v", m.IsPointInside(10, 10))

	result := integrity.Check(m)
	if !result.OK {
		log.Fatalf("integrity check failed: %s", result.Detail)
	}
	log.Printf("integrity check passed: %d triangles, %d edges", stats.Triangles, stats.Edges)
	if tris := m.Triangles(); len(tris) > 0 {
		log.Printf("sample triangle: %s", formatting.TriangleString(tris[0]))
	}
}
