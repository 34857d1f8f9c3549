package quadedge

import (
	"testing"

	"github.com/iceisfun/tinmesh/types"
)

func TestEdgeDualInvolution(t *testing.T) {
	e := EdgeID(10)
	if e.Dual().Dual() != e {
		t.Fatalf("Dual(Dual(e)) != e")
	}
	if e.Dual() == e {
		t.Fatalf("Dual(e) must differ from e")
	}
}

func TestPoolAllocateSetsEndpoints(t *testing.T) {
	p := NewPool(8)
	e := p.Allocate(1, 2)

	if p.Origin(e) != 1 {
		t.Fatalf("expected origin 1, got %v", p.Origin(e))
	}
	if p.Dest(e) != 2 {
		t.Fatalf("expected dest 2, got %v", p.Dest(e))
	}
	if p.Origin(e.Dual()) != 2 {
		t.Fatalf("expected dual origin 2, got %v", p.Origin(e.Dual()))
	}
	if !p.IsLive(e) {
		t.Fatalf("expected allocated edge to be live")
	}
}

func TestPoolDeallocateClearsSlot(t *testing.T) {
	p := NewPool(8)
	e := p.Allocate(1, 2)
	p.Deallocate(e)

	if p.IsLive(e) {
		t.Fatalf("expected deallocated edge to be dead")
	}
	if p.Origin(e) != types.NullVertex {
		t.Fatalf("expected origin reset to NullVertex, got %v", p.Origin(e))
	}
}

func TestPoolReuseSlotAfterDeallocate(t *testing.T) {
	p := NewPool(8)
	e1 := p.Allocate(1, 2)
	p.Deallocate(e1)
	e2 := p.Allocate(3, 4)

	if e2.Base() != e1.Base() {
		t.Fatalf("expected freed slot to be reused, got e1=%v e2=%v", e1, e2)
	}
	if p.Origin(e2) != 3 {
		t.Fatalf("expected new origin 3, got %v", p.Origin(e2))
	}
}

func TestPoolAlwaysHasFreeSlot(t *testing.T) {
	p := NewPool(4) // 2 pairs per page
	for i := 0; i < 10; i++ {
		if p.freeHead == nil {
			t.Fatalf("pool invariant violated: no page with free slots after %d allocations", i)
		}
		p.Allocate(types.VertexID(i), types.VertexID(i+1))
	}
}

func TestPoolReverseIsForwardForward(t *testing.T) {
	p := NewPool(8)
	a := p.Allocate(0, 1)
	b := p.Allocate(1, 2)
	c := p.Allocate(2, 0)

	// Wire a triangular face: a -> b -> c -> a.
	p.SetForward(a, b)
	p.SetForward(b, c)
	p.SetForward(c, a)

	if p.Reverse(a) != c {
		t.Fatalf("expected Reverse(a) == c, got %v", p.Reverse(a))
	}
	if p.Forward(p.Forward(a)) != p.Reverse(a) {
		t.Fatalf("Reverse must equal Forward composed with itself")
	}
}

func TestPoolIterateVisitsOnlyLiveBaseEdges(t *testing.T) {
	p := NewPool(8)
	e1 := p.Allocate(0, 1)
	e2 := p.Allocate(1, 2)
	p.Deallocate(e1)

	seen := map[EdgeID]bool{}
	p.Iterate(func(e EdgeID) {
		seen[e] = true
		if !e.IsBase() {
			t.Fatalf("Iterate yielded non-base edge %v", e)
		}
	})

	if seen[e1] {
		t.Fatalf("Iterate visited deallocated edge")
	}
	if !seen[e2] {
		t.Fatalf("Iterate missed live edge")
	}
	if len(seen) != 1 {
		t.Fatalf("expected exactly 1 live edge, got %d", len(seen))
	}
}

func TestPoolNumLiveEdges(t *testing.T) {
	p := NewPool(8)
	if p.NumLiveEdges() != 0 {
		t.Fatalf("expected 0 live edges initially")
	}
	e1 := p.Allocate(0, 1)
	p.Allocate(1, 2)
	if p.NumLiveEdges() != 2 {
		t.Fatalf("expected 2 live edges, got %d", p.NumLiveEdges())
	}
	p.Deallocate(e1)
	if p.NumLiveEdges() != 1 {
		t.Fatalf("expected 1 live edge after deallocate, got %d", p.NumLiveEdges())
	}
}

func TestPoolDefaultPageSizeOnInvalidInput(t *testing.T) {
	p := NewPool(0)
	if p.pairsPerPage != DefaultPageSize/2 {
		t.Fatalf("expected default page size applied, got %d pairs", p.pairsPerPage)
	}
	p2 := NewPool(7) // odd, invalid
	if p2.pairsPerPage != DefaultPageSize/2 {
		t.Fatalf("expected default page size applied for odd input, got %d pairs", p2.pairsPerPage)
	}
}
