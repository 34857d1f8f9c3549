package quadedge

import "github.com/iceisfun/tinmesh/types"

// DefaultPageSize is the number of half-edges held per page (512
// undirected edges), matching spec §4.2 and the mesh package's
// edgePoolPageSize option.
const DefaultPageSize = 1024

// page is a fixed-capacity block of half-edge pair slots. bitmap holds
// one bit per pair (allocated = 1); freeNext threads pages that still
// have at least one free slot into the pool's free list.
type page struct {
	bitmap     []uint64
	allocCount int
	index      int
	freeNext   *page
	inFreeList bool
}

// Pool is a page-allocated arena of quad-edges. Edges are addressed by
// dense EdgeID; a base edge and its dual occupy adjacent slots (base^1
// == dual). Allocation and deallocation are O(1); at least one page
// always has a free slot, per spec's pool invariant.
type Pool struct {
	pairsPerPage int
	pages        []*page
	freeHead     *page

	origin []types.VertexID
	fwd    []EdgeID
}

// NewPool creates an empty pool with one eagerly-allocated page, as
// required by the "at least one page always has free slots" invariant.
func NewPool(pageSize int) *Pool {
	if pageSize <= 0 || pageSize%2 != 0 {
		pageSize = DefaultPageSize
	}
	p := &Pool{pairsPerPage: pageSize / 2}
	p.addPage()
	return p
}

func (p *Pool) addPage() *page {
	words := (p.pairsPerPage + 63) / 64
	pg := &page{
		bitmap:     make([]uint64, words),
		index:      len(p.pages),
		inFreeList: true,
	}
	pg.freeNext = p.freeHead
	p.freeHead = pg
	p.pages = append(p.pages, pg)

	newCap := len(p.pages) * p.pairsPerPage * 2
	for len(p.origin) < newCap {
		p.origin = append(p.origin, types.NullVertex)
		p.fwd = append(p.fwd, NilEdge)
	}
	return pg
}

// Allocate creates a new undirected edge with endpoints a (origin of
// the base half-edge) and b (origin of the dual). Each half-edge's
// forward link initially points to itself until the caller splices
// them into a face.
func (p *Pool) Allocate(a, b types.VertexID) EdgeID {
	if p.freeHead == nil {
		p.addPage()
	}
	pg := p.freeHead

	slot := firstZeroBit(pg.bitmap, p.pairsPerPage)
	setBit(pg.bitmap, slot)
	pg.allocCount++

	if pg.allocCount == p.pairsPerPage {
		p.freeHead = pg.freeNext
		pg.freeNext = nil
		pg.inFreeList = false
	}

	pairGlobal := pg.index*p.pairsPerPage + slot
	base := EdgeID(pairGlobal * 2)
	dual := base + 1

	p.origin[base] = a
	p.origin[dual] = b
	p.fwd[base] = base
	p.fwd[dual] = dual

	if p.freeHead == nil {
		p.addPage()
	}
	return base
}

// Deallocate returns an edge's slot to its page's free list, clearing
// both half-edges' endpoints and links.
func (p *Pool) Deallocate(e EdgeID) {
	base := e.Base()
	pairGlobal := int(base) / 2
	pageIdx := pairGlobal / p.pairsPerPage
	slot := pairGlobal % p.pairsPerPage
	pg := p.pages[pageIdx]

	wasFull := pg.allocCount == p.pairsPerPage
	clearBit(pg.bitmap, slot)
	pg.allocCount--

	p.origin[base] = types.NullVertex
	p.origin[base+1] = types.NullVertex
	p.fwd[base] = NilEdge
	p.fwd[base+1] = NilEdge

	if wasFull {
		pg.freeNext = p.freeHead
		p.freeHead = pg
		pg.inFreeList = true
	}
}

// IsLive reports whether e's pair is currently allocated.
func (p *Pool) IsLive(e EdgeID) bool {
	if e.IsNil() || int(e) < 0 || int(e) >= len(p.fwd) {
		return false
	}
	base := e.Base()
	pairGlobal := int(base) / 2
	pageIdx := pairGlobal / p.pairsPerPage
	slot := pairGlobal % p.pairsPerPage
	return testBit(p.pages[pageIdx].bitmap, slot)
}

// Origin returns the origin vertex of half-edge e.
func (p *Pool) Origin(e EdgeID) types.VertexID {
	return p.origin[e]
}

// SetOrigin sets the origin vertex of half-edge e.
func (p *Pool) SetOrigin(e EdgeID, v types.VertexID) {
	p.origin[e] = v
}

// Dest returns the destination vertex of half-edge e (the origin of its dual).
func (p *Pool) Dest(e EdgeID) types.VertexID {
	return p.origin[e.Dual()]
}

// Forward returns the next half-edge around the same face (Lnext).
func (p *Pool) Forward(e EdgeID) EdgeID {
	return p.fwd[e]
}

// SetForward rewires e's next-in-face pointer.
func (p *Pool) SetForward(e, to EdgeID) {
	p.fwd[e] = to
}

// Reverse returns the previous half-edge around the same face. Every
// interior face is a triangle, so Reverse(e) == Forward(Forward(e)).
func (p *Pool) Reverse(e EdgeID) EdgeID {
	return p.fwd[p.fwd[e]]
}

// Pinwheel returns the next outgoing half-edge sharing e's origin,
// rotating counter-clockwise around the vertex: Dual(Reverse(e)).
func (p *Pool) Pinwheel(e EdgeID) EdgeID {
	return p.Reverse(e).Dual()
}

// MaxAllocatedIndex returns an upper bound on live EdgeID values,
// useful for sizing visited-flag bit-sets during iteration.
func (p *Pool) MaxAllocatedIndex() int {
	return len(p.fwd)
}

// Iterate calls fn for every currently allocated base edge (the
// even-indexed half-edge of each live pair), in page/slot order.
// Order is deterministic for a given allocation history.
func (p *Pool) Iterate(fn func(EdgeID)) {
	for _, pg := range p.pages {
		for slot := 0; slot < p.pairsPerPage; slot++ {
			if !testBit(pg.bitmap, slot) {
				continue
			}
			pairGlobal := pg.index*p.pairsPerPage + slot
			fn(EdgeID(pairGlobal * 2))
		}
	}
}

// NumLiveEdges returns the count of currently allocated undirected edges.
func (p *Pool) NumLiveEdges() int {
	total := 0
	for _, pg := range p.pages {
		total += pg.allocCount
	}
	return total
}

func firstZeroBit(bitmap []uint64, limit int) int {
	for word := 0; word < len(bitmap); word++ {
		if bitmap[word] == ^uint64(0) {
			continue
		}
		for bit := 0; bit < 64; bit++ {
			idx := word*64 + bit
			if idx >= limit {
				return -1
			}
			if bitmap[word]&(1<<uint(bit)) == 0 {
				return idx
			}
		}
	}
	return -1
}

func setBit(bitmap []uint64, idx int) {
	bitmap[idx/64] |= 1 << uint(idx%64)
}

func clearBit(bitmap []uint64, idx int) {
	bitmap[idx/64] &^= 1 << uint(idx%64)
}

func testBit(bitmap []uint64, idx int) bool {
	return bitmap[idx/64]&(1<<uint(idx%64)) != 0
}
