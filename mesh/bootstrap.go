package mesh

import (
	"math"

	"github.com/iceisfun/tinmesh/predicates"
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

func clampCubeRoot(n int) int {
	k := int(math.Cbrt(float64(n)))
	if k < 3 {
		k = 3
	}
	if k > 16 {
		k = 16
	}
	return k
}

// minBootstrapArea is 1/64 the area of an equilateral triangle of side
// s, the threshold a candidate initial triangle's absolute area must
// exceed.
func (m *Mesh) minBootstrapArea() float64 {
	s := m.thresholds.NominalSpacing
	return (math.Sqrt(3) / 4) * s * s / 64
}

// tryBootstrap attempts to select a non-degenerate initial triangle
// from m.pending, trying random triples, then a regression-based
// heuristic, then an exhaustive search. On success it commits the
// triangle and inserts every other pending vertex through the normal
// insertion path, and clears pending.
func (m *Mesh) tryBootstrap() bool {
	pts := m.pending
	minArea := m.minBootstrapArea()

	if idx, ok := m.bootstrapRandomTriples(pts, minArea); ok {
		m.commitBootstrap(pts, idx)
		return true
	}
	if idx, ok := m.bootstrapRegression(pts, minArea); ok {
		m.commitBootstrap(pts, idx)
		return true
	}
	if idx, ok := m.bootstrapExhaustive(pts, minArea); ok {
		m.commitBootstrap(pts, idx)
		return true
	}
	return false
}

func (m *Mesh) bootstrapRandomTriples(pts []types.Vertex, minArea float64) ([3]int, bool) {
	n := len(pts)
	k := clampCubeRoot(n)
	bestArea := -1.0
	var best [3]int

	for t := 0; t < k; t++ {
		i := m.rnd.Intn(n)
		j := m.rnd.Intn(n)
		l := m.rnd.Intn(n)
		if i == j || j == l || i == l {
			continue
		}
		a := math.Abs(predicates.Area(pts[i].Point(), pts[j].Point(), pts[l].Point()))
		if a > bestArea {
			bestArea = a
			best = [3]int{i, j, l}
		}
	}

	return best, bestArea >= minArea
}

// bootstrapRegression runs the linear-regression heuristic: compute the
// mean and principal axis, classify trivial/collinear point sets, then
// pick an apex (farthest point from the axis) and axis extrema, probing
// a few replacement candidates to maximize triangle area.
func (m *Mesh) bootstrapRegression(pts []types.Vertex, minArea float64) ([3]int, bool) {
	n := len(pts)
	var mx, my float64
	for _, p := range pts {
		mx += p.X
		my += p.Y
	}
	mx /= float64(n)
	my /= float64(n)

	var sxx, syy, sxy float64
	for _, p := range pts {
		dx, dy := p.X-mx, p.Y-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}

	if sxx < m.thresholds.VertexTolSq && syy < m.thresholds.VertexTolSq {
		m.lastBootstrapClassification = "trivial"
		return [3]int{}, false
	}

	theta := 0.5 * math.Atan2(2*sxy, sxx-syy)
	axisX, axisY := math.Cos(theta), math.Sin(theta)

	maxDev := 0.0
	for _, p := range pts {
		dx, dy := p.X-mx, p.Y-my
		perp := math.Abs(-axisY*dx + axisX*dy)
		if perp > maxDev {
			maxDev = perp
		}
	}
	if maxDev < m.thresholds.HalfPlane {
		m.lastBootstrapClassification = "collinear"
		return [3]int{}, false
	}
	m.lastBootstrapClassification = ""

	apex, bestPerp := -1, -1.0
	for i, p := range pts {
		dx, dy := p.X-mx, p.Y-my
		perp := math.Abs(-axisY*dx + axisX*dy)
		if perp > bestPerp {
			bestPerp = perp
			apex = i
		}
	}

	minProj, maxProj := math.Inf(1), math.Inf(-1)
	minIdx, maxIdx := -1, -1
	for i, p := range pts {
		dx, dy := p.X-mx, p.Y-my
		proj := axisX*dx + axisY*dy
		if proj < minProj {
			minProj = proj
			minIdx = i
		}
		if proj > maxProj {
			maxProj = proj
			maxIdx = i
		}
	}

	best := [3]int{apex, minIdx, maxIdx}
	bestArea := math.Abs(predicates.Area(pts[apex].Point(), pts[minIdx].Point(), pts[maxIdx].Point()))

	probes := clampCubeRoot(n)
	for t := 0; t < probes; t++ {
		i := m.rnd.Intn(n)
		if i == apex || i == minIdx {
			continue
		}
		a := math.Abs(predicates.Area(pts[apex].Point(), pts[minIdx].Point(), pts[i].Point()))
		if a > bestArea {
			bestArea = a
			best = [3]int{apex, minIdx, i}
		}
	}

	return best, bestArea >= minArea
}

func (m *Mesh) bootstrapExhaustive(pts []types.Vertex, minArea float64) ([3]int, bool) {
	n := len(pts)
	bestArea := -1.0
	var best [3]int

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for l := j + 1; l < n; l++ {
				a := math.Abs(predicates.Area(pts[i].Point(), pts[j].Point(), pts[l].Point()))
				if a > bestArea {
					bestArea = a
					best = [3]int{i, j, l}
				}
			}
		}
	}

	return best, bestArea >= minArea
}

// commitBootstrap orients the chosen triple counter-clockwise, builds
// the initial interior triangle plus its three-ghost-face hull ring,
// then inserts every other pending vertex through the ordinary
// insertion path.
func (m *Mesh) commitBootstrap(pts []types.Vertex, idx [3]int) {
	v := [3]types.Vertex{pts[idx[0]], pts[idx[1]], pts[idx[2]]}
	if predicates.Orientation(v[0].Point(), v[1].Point(), v[2].Point(), m.thresholds.HalfPlane) < 0 {
		v[1], v[2] = v[2], v[1]
	}

	var e, s [3]quadedge.EdgeID
	for i := 0; i < 3; i++ {
		e[i] = m.pool.Allocate(v[i].ID, v[(i+1)%3].ID)
	}
	for i := 0; i < 3; i++ {
		s[i] = m.pool.Allocate(v[i].ID, types.NullVertex)
	}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		m.pool.SetForward(e[i], e[j])
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		dualEi := e[i].Dual()
		m.pool.SetForward(dualEi, s[i])
		m.pool.SetForward(s[i], s[j].Dual())
		m.pool.SetForward(s[j].Dual(), dualEi)
	}

	for i := 0; i < 3; i++ {
		m.setVertexEdge(v[i].ID, e[i])
		m.debugVertex(v[i].ID, v[i].Point())
	}
	m.debugTriangle(v[0].ID, v[1].ID, v[2].ID)

	m.searchEdge = e[0]
	m.bootstrapped = true

	chosen := map[int]bool{idx[0]: true, idx[1]: true, idx[2]: true}
	for i, p := range pts {
		if chosen[i] {
			continue
		}
		m.insertVertex(p)
	}

	m.pending = nil
}
