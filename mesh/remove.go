package mesh

import (
	"math"

	"github.com/iceisfun/tinmesh/predicates"
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

// RemoveVertex deletes a site from the mesh. If id names a member of a
// VertexMergerGroup with other surviving members, the member is simply
// dropped from the group and the mesh's topology is untouched; the
// group's representative point never moves. Only when the last member
// of a group (or a plain, unmerged vertex) is removed does the
// triangulation itself change, via Devillers' cavity retriangulation.
func (m *Mesh) RemoveVertex(id types.VertexID) error {
	if m.disposed {
		return ErrDisposed
	}
	if !m.bootstrapped {
		return ErrNotBootstrapped
	}

	rep := id
	if target, merged := m.mergedAway[id]; merged {
		rep = target
	}
	m.spatialIdx.RemoveVertex(id, m.verts[id].Point())
	if g, ok := m.groupOf[rep]; ok {
		if remaining := g.Remove(id); remaining {
			delete(m.mergedAway, id)
			return nil
		}
		delete(m.groupOf, rep)
		delete(m.mergedAway, id)
	}

	anchor, ok := m.vertexEdge[rep]
	if !ok || !m.pool.IsLive(anchor) {
		return ErrVertexNotFound
	}
	if m.NumVertices() <= 3 {
		return ErrCannotRemoveHullTriangle
	}

	m.removeTopological(rep, anchor)
	return nil
}

// removeTopological excises rep from the mesh: it walks the pinwheel
// fan around rep to collect the cyclic ring of neighboring vertices
// and the boundary edges already connecting them, deallocates rep's
// spokes, then retriangulates the resulting polygonal cavity with an
// ear-clipping pass that scores each candidate ear by how many other
// ring vertices its circumcircle would improperly contain, except an
// admissible ear touching Null (its hull edge leaves every other ring
// vertex on the interior side), which is taken immediately: there is no
// circumcircle to test against infinity, and the hull must shed its
// departing vertex before ordinary Delaunay scoring can resume for the
// rest of the ring.
func (m *Mesh) removeTopological(rep types.VertexID, anchor quadedge.EdgeID) {
	ring, spokes, boundary := m.collectRemovalRing(rep, anchor)
	n := len(ring)

	for _, s := range spokes {
		m.pool.Deallocate(s)
	}
	delete(m.vertexEdge, rep)

	next := make([]int, n)
	prev := make([]int, n)
	active := make([]bool, n)
	edgeOut := make([]quadedge.EdgeID, n)
	for i := 0; i < n; i++ {
		next[i] = (i + 1) % n
		prev[i] = (i - 1 + n) % n
		active[i] = true
		edgeOut[i] = boundary[i]
	}

	activeCount := n
	var diagonals []quadedge.EdgeID

	for activeCount > 3 {
		best := -1
		bestScore := math.Inf(-1)
		for k := 0; k < n; k++ {
			if !active[k] {
				continue
			}
			p, q := prev[k], next[k]
			score, valid := m.earScore(ring, active, p, k, q)
			if valid && score > bestScore {
				bestScore, best = score, k
			}
		}
		if best == -1 {
			break
		}

		k := best
		p, q := prev[k], next[k]
		edgeA := edgeOut[p]
		edgeB := edgeOut[k]

		newEdge := m.pool.Allocate(ring[p], ring[q])
		m.pool.SetForward(edgeA, edgeB)
		m.pool.SetForward(edgeB, newEdge.Dual())
		m.pool.SetForward(newEdge.Dual(), edgeA)
		m.debugTriangle(ring[p], ring[k], ring[q])

		edgeOut[p] = newEdge
		diagonals = append(diagonals, newEdge)

		next[p] = q
		prev[q] = p
		active[k] = false
		activeCount--
	}

	i1 := -1
	for i := 0; i < n; i++ {
		if active[i] {
			i1 = i
			break
		}
	}
	i2 := next[i1]
	i3 := next[i2]
	m.pool.SetForward(edgeOut[i1], edgeOut[i2])
	m.pool.SetForward(edgeOut[i2], edgeOut[i3])
	m.pool.SetForward(edgeOut[i3], edgeOut[i1])
	m.debugTriangle(ring[i1], ring[i2], ring[i3])

	for i := 0; i < n; i++ {
		m.setVertexEdge(ring[i], edgeOut[i])
	}
	if n > 0 {
		m.searchEdge = edgeOut[i1]
	}

	legalizeStack := append(diagonals, boundary...)
	m.legalize(legalizeStack)
}

// collectRemovalRing walks rep's pinwheel fan starting at anchor,
// returning its neighbors in counter-clockwise order, the spokes
// rep->ring[i] (to be deallocated), and the pre-existing edges
// ring[i]->ring[i+1] bounding the opposite side of each fan triangle.
func (m *Mesh) collectRemovalRing(rep types.VertexID, anchor quadedge.EdgeID) (ring []types.VertexID, spokes, boundary []quadedge.EdgeID) {
	cur := anchor
	for i := 0; i < 256; i++ {
		ring = append(ring, m.pool.Dest(cur))
		spokes = append(spokes, cur)
		boundary = append(boundary, m.pool.Forward(cur))

		cur = m.pool.Pinwheel(cur)
		if cur == anchor {
			break
		}
	}
	return ring, spokes, boundary
}

// earScore reports whether the ear at ring index k (triangle
// ring[p],ring[k],ring[q]) is geometrically admissible and, if so, its
// quality: the negated count of other still-active ring vertices whose
// presence inside its circumcircle would make it a poor
// (non-locally-Delaunay) choice. An ear touching Null is admissible
// only when every other active real ring vertex lies strictly on the
// interior side of its one real (hull) edge; an admissible one
// outranks every other candidate, since there is no circumcircle to
// test against the point at infinity.
func (m *Mesh) earScore(ring []types.VertexID, active []bool, p, k, q int) (float64, bool) {
	pID, kID, qID := ring[p], ring[k], ring[q]
	if pID.IsNull() || kID.IsNull() || qID.IsNull() {
		a, b := pID, kID
		if kID.IsNull() {
			a, b = qID, pID
		} else if pID.IsNull() {
			a, b = kID, qID
		}
		for i, alive := range active {
			if alive && i != p && i != k && i != q && !ring[i].IsNull() &&
				predicates.Orientation(m.pointOf(a), m.pointOf(b), m.pointOf(ring[i]), m.thresholds.HalfPlane) >= 0 {
				return 0, false
			}
		}
		return math.Inf(1), true
	}

	pp, pk, pq := m.pointOf(pID), m.pointOf(kID), m.pointOf(qID)
	if predicates.Orientation(pp, pk, pq, m.thresholds.HalfPlane) <= 0 {
		return 0, false
	}

	bad := 0
	for i, alive := range active {
		if !alive || i == p || i == k || i == q {
			continue
		}
		if ring[i].IsNull() {
			continue
		}
		if predicates.InCircle(pp, pk, pq, m.pointOf(ring[i]), m.thresholds.InCircle) > 0 {
			bad++
		}
	}
	return -float64(bad), true
}
