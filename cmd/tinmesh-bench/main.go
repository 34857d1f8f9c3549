// Command tinmesh-bench times batch vertex insertion against a Monitor
// callback, then fans out concurrent read-only nearest-vertex and
// nearest-edge queries across goroutines to exercise the mesh's
// quiescent-state multi-reader contract.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iceisfun/tinmesh/mesh"
)

func main() {
	n := flag.Int("n", 50000, "number of points to batch-insert")
	spacing := flag.Float64("spacing", 1.0, "nominal point spacing")
	readers := flag.Int("readers", 8, "number of concurrent read-only query goroutines")
	queriesPerReader := flag.Int("queries", 5000, "queries issued by each reader goroutine")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))
	const width, height = 1000.0, 1000.0
	specs := make([]mesh.VertexSpec, *n)
	for i := range specs {
		specs[i] = mesh.VertexSpec{X: rnd.Float64() * width, Y: rnd.Float64() * height}
	}

	m := mesh.NewMesh(*spacing)

	start := time.Now()
	lastReport := 0
	inserted, err := m.AddVertices(specs, func(completed, total int) bool {
		if completed-lastReport >= total/10 || completed == total {
			log.Printf("insert progress: %d/%d", completed, total)
			lastReport = completed
		}
		return false
	})
	if err != nil {
		log.Fatalf("AddVertices: %v", err)
	}
	elapsed := time.Since(start)
	log.Printf("inserted %d vertices in %s (%.0f vertices/sec)", inserted, elapsed, float64(inserted)/elapsed.Seconds())

	if !m.Bootstrapped() {
		log.Fatal("mesh failed to bootstrap")
	}

	g, _ := errgroup.WithContext(context.Background())
	readStart := time.Now()
	for r := 0; r < *readers; r++ {
		r := r
		g.Go(func() error {
			local := rand.New(rand.NewSource(*seed + int64(r) + 1))
			for q := 0; q < *queriesPerReader; q++ {
				x := local.Float64() * width
				y := local.Float64() * height
				if _, ok := m.NearestVertex(x, y); !ok {
					continue
				}
				if _, ok := m.NearestEdge(x, y); !ok {
					continue
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("concurrent read phase: %v", err)
	}
	readElapsed := time.Since(readStart)
	totalQueries := *readers * *queriesPerReader
	log.Printf("ran %d concurrent queries across %d readers in %s (%.0f queries/sec)",
		totalQueries, *readers, readElapsed, float64(totalQueries)/readElapsed.Seconds())

	log.Printf("final stats: %+v", m.Stats())
}
