package types

import "math"

// Thresholds holds the floating-point tolerances that drive every
// geometric decision in a mesh. They are derived once from the nominal
// point spacing and are immutable afterward — safe to share read-only
// across any number of concurrent readers (spec §5's "shared-resource
// policy").
//
//	precision       = 256 * ulp(nominalSpacing)
//	halfPlane       = 256 * precision
//	delaunay        = 256 * precision
//	inCircle        = 2^20 * precision
//	vertexTolerance = nominalSpacing / 1e5
type Thresholds struct {
	NominalSpacing float64

	Precision       float64
	HalfPlane       float64
	Delaunay        float64
	InCircle        float64
	VertexTolerance float64
	VertexTolSq     float64
}

// NewThresholds derives the full set of tolerances from a nominal point
// spacing. A non-positive spacing is replaced with 1, matching the
// teacher's pattern of falling back to a sane default rather than
// propagating a degenerate divisor.
func NewThresholds(nominalSpacing float64) Thresholds {
	if nominalSpacing <= 0 || math.IsNaN(nominalSpacing) {
		nominalSpacing = 1
	}

	ulp := math.Nextafter(nominalSpacing, math.Inf(1)) - nominalSpacing
	if ulp <= 0 {
		ulp = math.SmallestNonzeroFloat64
	}

	precision := 256 * ulp
	vertexTol := nominalSpacing / 1e5

	return Thresholds{
		NominalSpacing:  nominalSpacing,
		Precision:       precision,
		HalfPlane:       256 * precision,
		Delaunay:        256 * precision,
		InCircle:        float64(uint64(1)<<20) * precision,
		VertexTolerance: vertexTol,
		VertexTolSq:     vertexTol * vertexTol,
	}
}

// WithinVertexTolerance reports whether two points are close enough to
// be treated as coincident under these thresholds.
func (t Thresholds) WithinVertexTolerance(a, b Point) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy <= t.VertexTolSq
}
