// Package constraint adds linear and polygon constraints to an already
// populated mesh: vertex injection, edge forcing across the existing
// triangulation, constraint marking, interior region flood-marking for
// polygons, conformance restoration, and a standalone densification
// helper.
package constraint

import (
	"math"

	"github.com/iceisfun/tinmesh/mesh"
	"github.com/iceisfun/tinmesh/types"
)

// Sentinel errors shared with the mesh package's own copies, so callers
// can type-switch without importing both packages.
var (
	ErrInsufficientConstraintGeometry = mesh.ErrInsufficientConstraintGeometry
	ErrConstraintAlreadyInstalled     = mesh.ErrConstraintAlreadyInstalled
	ErrCrossingConstraints            = mesh.ErrCrossingConstraints
	ErrInvalidConstraintGeometry      = mesh.ErrInvalidConstraintGeometry
	ErrNotBootstrapped                = mesh.ErrNotBootstrapped
)

// Kind discriminates the two constraint variants.
type Kind int

const (
	// KindLinear is an open polyline; no interior region is marked.
	KindLinear Kind = iota
	// KindPolygon is a closed loop; CCW marks an interior region, CW
	// marks a hole (its own interior is left unmarked).
	KindPolygon
)

// Constraint is a polyline or closed polygon loop submitted for
// installation into a mesh. Points are supplied as plain coordinates;
// AddConstraints resolves them to mesh vertex IDs as it runs.
type Constraint struct {
	Kind   Kind
	Points []types.Point
	Z      []float64 // optional per-point Z; nil means all zero

	index    int
	bounds   types.Rect
	length   float64
	resolved []types.VertexID
}

// NewLinear builds an open polyline constraint from points.
func NewLinear(points []types.Point) *Constraint {
	return &Constraint{Kind: KindLinear, Points: points}
}

// NewPolygon builds a closed polygon constraint from points. The loop
// is implicitly closed: the first point should not be repeated at the
// end.
func NewPolygon(points []types.Point) *Constraint {
	return &Constraint{Kind: KindPolygon, Points: points}
}

// Index returns the dense index this constraint was assigned by
// AddConstraints (valid only after installation).
func (c *Constraint) Index() int { return c.index }

// Bounds returns the constraint's axis-aligned bounding rectangle,
// cached at installation.
func (c *Constraint) Bounds() types.Rect { return c.bounds }

// Length returns the constraint's total perimeter (polygon) or
// polyline length, cached at installation.
func (c *Constraint) Length() float64 { return c.length }

// segments returns the consecutive point pairs this constraint forces,
// closing the loop for polygons.
func (c *Constraint) segments() [][2]int {
	n := len(c.Points)
	if c.Kind == KindLinear {
		segs := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			segs = append(segs, [2]int{i, i + 1})
		}
		return segs
	}
	segs := make([][2]int, n)
	for i := 0; i < n; i++ {
		segs[i] = [2]int{i, (i + 1) % n}
	}
	return segs
}

func (c *Constraint) zAt(i int) float64 {
	if i < len(c.Z) {
		return c.Z[i]
	}
	return 0
}

func (c *Constraint) minPoints() int {
	if c.Kind == KindPolygon {
		return 3
	}
	return 2
}

func (c *Constraint) computeBoundsAndLength() {
	c.bounds = types.EmptyRect()
	for _, p := range c.Points {
		c.bounds = c.bounds.Expand(p)
	}
	c.length = 0
	for _, seg := range c.segments() {
		a, b := c.Points[seg[0]], c.Points[seg[1]]
		c.length += math.Hypot(b.X-a.X, b.Y-a.Y)
	}
}
