package mesh

import "github.com/iceisfun/tinmesh/types"

// Option configures a Mesh during construction. Options are applied
// once, in NewMesh, and never change afterward.
type Option func(*config)

// WithMergeRule sets the resolution rule applied to a VertexMergerGroup's
// Z attribute when coincident vertices are reduced to a group.
func WithMergeRule(rule types.MergeRule) Option {
	return func(c *config) {
		c.mergeRule = rule
	}
}

// WithEdgePoolPageSize overrides the edge pool's half-edges-per-page
// capacity. Must be a positive even number; invalid values fall back
// to quadedge.DefaultPageSize.
func WithEdgePoolPageSize(size int) Option {
	return func(c *config) {
		if size > 0 && size%2 == 0 {
			c.edgePoolPageSize = size
		}
	}
}

// WithRandomSeed fixes the deterministic seed driving the Lawson walk's
// stochastic tie-break and the bootstrap triple selection. Without this
// option the mesh still uses a fixed, reproducible default seed — the
// core never reads from a nondeterministic entropy source.
func WithRandomSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithDebugAddVertex installs a hook called immediately after a vertex
// is accepted into the mesh (bootstrap or insertion), before any merge
// resolution. Useful for progress reporting; never required for
// correctness.
func WithDebugAddVertex(hook func(types.VertexID, types.Point)) Option {
	return func(c *config) {
		c.debugAddVertex = hook
	}
}

// WithDebugAddEdge installs a hook called for each new edge with two
// real endpoints created when a vertex is spliced into a triangle.
// Edges created by bootstrap or by vertex removal, and ghost edges,
// are not reported.
func WithDebugAddEdge(hook func(types.Edge)) Option {
	return func(c *config) {
		c.debugAddEdge = hook
	}
}

// WithDebugAddTriangle installs a hook called whenever a new interior
// triangle is created by insertion or retriangulation.
func WithDebugAddTriangle(hook func(types.Triangle)) Option {
	return func(c *config) {
		c.debugAddTriangle = hook
	}
}
