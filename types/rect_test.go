package types

import "testing"

func TestEmptyRectInvalid(t *testing.T) {
	r := EmptyRect()
	if r.Valid() {
		t.Fatalf("empty rect should be invalid")
	}
}

func TestRectExpand(t *testing.T) {
	r := EmptyRect()
	r = r.Expand(Point{X: 1, Y: 2})
	r = r.Expand(Point{X: -1, Y: 5})
	if !r.Valid() {
		t.Fatalf("expanded rect should be valid")
	}
	if r.Min != (Point{X: -1, Y: 2}) || r.Max != (Point{X: 1, Y: 5}) {
		t.Fatalf("unexpected rect bounds: %+v", r)
	}
	if !r.Contains(Point{X: 0, Y: 3}) {
		t.Fatalf("expected rect to contain interior point")
	}
	if r.Contains(Point{X: 10, Y: 10}) {
		t.Fatalf("expected rect to exclude outside point")
	}
}
