// Package mesh implements the triangulation core: bootstrap, incremental
// Bowyer/Watson insertion with a stochastic Lawson walk, Devillers vertex
// removal, edge splitting, and the navigation/query surface built on top
// of a quadedge.Pool.
package mesh

import (
	"math/rand"
	"sync"

	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/spatial"
	"github.com/iceisfun/tinmesh/types"
)

// Mesh owns an edge pool, the vertex log, any merger groups, the
// bounding rectangle, a cached search-edge hint, and the thresholds
// derived from its nominal point spacing. A Mesh is the unit of
// encapsulation: all triangulation state lives inside it and nothing is
// shared between meshes.
type Mesh struct {
	cfg        config
	pool       *quadedge.Pool
	thresholds types.Thresholds

	verts []types.Vertex

	groupOf    map[types.VertexID]*types.VertexMergerGroup
	mergedAway map[types.VertexID]types.VertexID

	vertexEdge map[types.VertexID]quadedge.EdgeID
	spatialIdx *spatial.HashGrid

	pending []types.Vertex

	bounds       types.Rect
	bootstrapped bool
	disposed     bool
	searchEdge   quadedge.EdgeID

	rnd   *rand.Rand
	rndMu sync.Mutex

	constraintIndex      map[quadedge.EdgeID]int
	constraintKind       map[int]ConstraintKind
	constraintsInstalled bool

	lastBootstrapClassification string
	inCircleTieBreaks           int
}

// NewMesh constructs an empty, unbootstrapped mesh. nominalPointSpacing
// controls every derived geometric threshold (types.NewThresholds).
// Construction is cheap: it allocates the pool's first page only, no
// edges or vertices.
func NewMesh(nominalPointSpacing float64, opts ...Option) *Mesh {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	seed := cfg.seed
	if !cfg.hasSeed {
		seed = 1
	}

	return &Mesh{
		cfg:             cfg,
		pool:            quadedge.NewPool(cfg.edgePoolPageSize),
		thresholds:      types.NewThresholds(nominalPointSpacing),
		groupOf:         make(map[types.VertexID]*types.VertexMergerGroup),
		mergedAway:      make(map[types.VertexID]types.VertexID),
		vertexEdge:      make(map[types.VertexID]quadedge.EdgeID),
		spatialIdx:      spatial.NewHashGrid(nominalPointSpacing),
		bounds:          types.EmptyRect(),
		searchEdge:      quadedge.NilEdge,
		rnd:             rand.New(rand.NewSource(seed)),
		constraintIndex: make(map[quadedge.EdgeID]int),
		constraintKind:  make(map[int]ConstraintKind),
	}
}

// Thresholds returns the immutable threshold set derived at construction.
func (m *Mesh) Thresholds() types.Thresholds {
	return m.thresholds
}

// Bootstrapped reports whether the mesh has accepted its initial triangle.
func (m *Mesh) Bootstrapped() bool {
	return m.bootstrapped
}

// Bounds returns the bounding rectangle of every vertex ever added,
// including vertices later absorbed into a merger group.
func (m *Mesh) Bounds() types.Rect {
	return m.bounds
}

// NumVertices returns the number of distinct sites currently present in
// the mesh: live plain vertices plus one per merger group (not one per
// coincident input vertex).
func (m *Mesh) NumVertices() int {
	count := 0
	for id := range m.vertexEdge {
		_ = id
		count++
	}
	return count
}

// VertexPoint returns the coordinates a vertex ID currently resolves
// to — its own point if it is a plain live vertex, or its merger
// group's representative point if it was absorbed into one.
func (m *Mesh) VertexPoint(id types.VertexID) (types.Point, bool) {
	if int(id) < 0 || int(id) >= len(m.verts) {
		return types.Point{}, false
	}
	rep := id
	if target, merged := m.mergedAway[id]; merged {
		rep = target
	}
	if _, live := m.vertexEdge[rep]; !live {
		return types.Point{}, false
	}
	return m.pointOf(rep), true
}

// Clear returns the mesh to an unbootstrapped, empty state while
// preserving the edge pool's page capacity (no pages are freed).
func (m *Mesh) Clear() {
	m.pool.Iterate(func(e quadedge.EdgeID) {
		m.pool.Deallocate(e)
	})
	m.verts = nil
	m.pending = nil
	m.groupOf = make(map[types.VertexID]*types.VertexMergerGroup)
	m.mergedAway = make(map[types.VertexID]types.VertexID)
	m.vertexEdge = make(map[types.VertexID]quadedge.EdgeID)
	m.spatialIdx = spatial.NewHashGrid(m.thresholds.NominalSpacing)
	m.constraintIndex = make(map[quadedge.EdgeID]int)
	m.constraintKind = make(map[int]ConstraintKind)
	m.constraintsInstalled = false
	m.bounds = types.EmptyRect()
	m.bootstrapped = false
	m.searchEdge = quadedge.NilEdge
	m.lastBootstrapClassification = ""
	m.inCircleTieBreaks = 0
}

// Dispose releases the mesh's resources and marks it unusable. After
// it, AddVertex, AddVertices, RemoveVertex and SplitEdge return
// ErrDisposed; no other method reports ErrDisposed.
func (m *Mesh) Dispose() {
	m.Clear()
	m.pool = nil
	m.disposed = true
}

// randIntn is the only mesh state mutated by a read-only locate call
// (locate reads the shared search-edge hint but never writes it), so
// it is serialized for concurrent NearestVertex/NearestEdge/
// IsPointInside callers.
func (m *Mesh) randIntn(n int) int {
	m.rndMu.Lock()
	defer m.rndMu.Unlock()
	return m.rnd.Intn(n)
}

func (m *Mesh) nextVertexID() types.VertexID {
	return types.VertexID(len(m.verts))
}

func (m *Mesh) pointOf(id types.VertexID) types.Point {
	if g, ok := m.groupOf[id]; ok {
		return g.Point()
	}
	return m.verts[id].Point()
}

func (m *Mesh) setVertexEdge(id types.VertexID, e quadedge.EdgeID) {
	if id.IsNull() {
		return
	}
	m.vertexEdge[id] = e
}

// markConstraintMember sets FlagConstraintMember on the logged vertex
// record for id, following merge resolution to the surviving record
// when id itself was folded into a merger group.
func (m *Mesh) markConstraintMember(id types.VertexID) {
	rep := id
	if target, merged := m.mergedAway[id]; merged {
		rep = target
	}
	if int(rep) < 0 || int(rep) >= len(m.verts) {
		return
	}
	m.verts[rep].Flags |= types.FlagConstraintMember
}

// MarkConstraintMember is the exported form of markConstraintMember,
// for use by the constraint package when it flags a vertex (such as a
// conformance-restoration midpoint) after it has already been added.
func (m *Mesh) MarkConstraintMember(id types.VertexID) {
	m.markConstraintMember(id)
}

func (m *Mesh) debugVertex(id types.VertexID, p types.Point) {
	if m.cfg.debugAddVertex != nil {
		m.cfg.debugAddVertex(id, p)
	}
}

func (m *Mesh) debugEdge(e quadedge.EdgeID) {
	if m.cfg.debugAddEdge == nil {
		return
	}
	a, b := m.pool.Origin(e), m.pool.Dest(e)
	if a.IsNull() || b.IsNull() {
		return
	}
	m.cfg.debugAddEdge(types.NewEdge(a, b))
}

func (m *Mesh) debugTriangle(a, b, c types.VertexID) {
	if m.cfg.debugAddTriangle == nil {
		return
	}
	if a.IsNull() || b.IsNull() || c.IsNull() {
		return
	}
	m.cfg.debugAddTriangle(types.NewTriangle(a, b, c))
}
