package predicates

import (
	"testing"

	"github.com/iceisfun/tinmesh/types"
)

func TestOrientationBasics(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	left := types.Point{X: 0, Y: 1}
	right := types.Point{X: 0, Y: -1}

	if got := Orientation(a, b, left, 1e-9); got != 1 {
		t.Fatalf("expected CCW (1), got %d", got)
	}
	if got := Orientation(a, b, right, 1e-9); got != -1 {
		t.Fatalf("expected CW (-1), got %d", got)
	}
	collinear := types.Point{X: 2, Y: 0}
	if got := Orientation(a, b, collinear, 1e-9); got != 0 {
		t.Fatalf("expected collinear (0), got %d", got)
	}
}

func TestInCircleUnitSquareDiagonalPoint(t *testing.T) {
	// CCW triangle (0,0)-(10,0)-(10,10); (5,5) should be strictly inside
	// its circumcircle since it's the diagonal midpoint of a square whose
	// circumcircle passes through all four corners.
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 10, Y: 0}
	c := types.Point{X: 10, Y: 10}
	d := types.Point{X: 5, Y: 5}

	if got := InCircle(a, b, c, d, 1e-6); got <= 0 {
		t.Fatalf("expected (5,5) strictly inside circumcircle, got %d", got)
	}
}

func TestInCircleFarPointOutside(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	c := types.Point{X: 0, Y: 1}
	far := types.Point{X: 100, Y: 100}

	if got := InCircle(a, b, c, far, 1e-9); got >= 0 {
		t.Fatalf("expected far point outside circumcircle, got %d", got)
	}
}

func TestAreaSign(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	c := types.Point{X: 0, Y: 1}
	if Area(a, b, c) <= 0 {
		t.Fatalf("expected positive area for CCW triangle")
	}
}

func TestSegmentIntersectProper(t *testing.T) {
	p := types.Point{X: 0, Y: 0}
	q := types.Point{X: 2, Y: 2}
	r := types.Point{X: 0, Y: 2}
	s := types.Point{X: 2, Y: 0}

	hit, t1, u := SegmentIntersect(p, q, r, s, 1e-9)
	if !hit {
		t.Fatalf("expected intersection")
	}
	if t1 < 0.4 || t1 > 0.6 || u < 0.4 || u > 0.6 {
		t.Fatalf("expected midpoint parameters, got t=%v u=%v", t1, u)
	}
}

func TestSegmentIntersectDisjoint(t *testing.T) {
	p := types.Point{X: 0, Y: 0}
	q := types.Point{X: 1, Y: 0}
	r := types.Point{X: 5, Y: 5}
	s := types.Point{X: 6, Y: 6}

	hit, _, _ := SegmentIntersect(p, q, r, s, 1e-9)
	if hit {
		t.Fatalf("expected no intersection")
	}
}

func TestGhostInCircleSignFlipsAcrossHullEdge(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	inside := types.Point{X: 0.5, Y: 0.5} // above the hull edge a->b: should expand
	outside := types.Point{X: 0.5, Y: -0.5}

	if got := GhostInCircle(a, b, inside, 1e-9); got <= 0 {
		t.Fatalf("expected hull expansion sign for point above edge, got %d", got)
	}
	if got := GhostInCircle(a, b, outside, 1e-9); got >= 0 {
		t.Fatalf("expected non-expansion sign for point below edge, got %d", got)
	}
}
