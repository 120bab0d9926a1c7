package pool

import (
	"fmt"
	"os"
	"sync"

	"github.com/dynapptor/mempool-32/internal/arena"
	"github.com/dynapptor/mempool-32/internal/format"
)

// Runtime trace flag for allocation logging - controlled by POOL_LOG_ALLOC
// env var.
var logAlloc = os.Getenv("POOL_LOG_ALLOC") != ""

// Ref is a cell reference: the cell's byte offset into the pool arena.
type Ref = uint32

// NoRef is the reference returned by failed allocations. Release ignores it.
const NoRef Ref = ^Ref(0)

// Pool is a fixed-segment slab allocator. One contiguous arena holds every
// segment's cells back to back; one contiguous word buffer holds every
// segment's two-level free-bit map. Both are carved exactly once in Begin
// and never resized.
//
// Every exported operation takes the pool's mutex for its whole duration.
// All operations are O(log segments) or better and never block, so the
// critical section is short and bounded.
type Pool struct {
	mu          sync.Mutex
	initialized bool

	ar     *arena.Arena
	data   []byte   // ar.Bytes(), cached
	words  []uint32 // bitmap buffer, all segments
	tab    *table
	lookup []int16

	stats     StatsSink
	useMapped bool
	lockMem   bool
}

// New returns an uninitialized pool. Call Begin to size it.
func New(opts ...Option) *Pool {
	p := &Pool{stats: nopSink{}}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Begin sizes the pool from the segment descriptors: validates and orders
// them, carves the arena and bitmap buffers, and builds the size lookup
// table. A failed Begin leaves the pool uninitialized with no partial state;
// calling Begin on an initialized pool fails with ErrInitialized and changes
// nothing.
func (p *Pool) Begin(segs []Segment) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return ErrInitialized
	}

	tab, err := buildTable(segs)
	if err != nil {
		return err
	}

	var ar *arena.Arena
	if p.useMapped {
		ar, err = arena.NewMapped(tab.arenaBytes, p.lockMem)
		if err != nil {
			return err
		}
	} else {
		ar = arena.NewHeap(tab.arenaBytes)
	}

	words := make([]uint32, tab.maskWords)
	for sg := 0; sg < tab.segments(); sg++ {
		tab.window(words, sg).Reset()
	}

	p.ar = ar
	p.data = ar.Bytes()
	p.words = words
	p.tab = tab
	p.lookup = buildLookup(tab)
	p.initialized = true
	return nil
}

// Clean releases the arena and all metadata, returning the pool to the
// uninitialized state from which Begin may be called again. Cleaning an
// uninitialized pool is a no-op.
func (p *Pool) Clean() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	err := p.ar.Release()
	p.ar, p.data, p.words, p.tab, p.lookup = nil, nil, nil, nil, nil
	p.initialized = false
	if err != nil {
		return fmt.Errorf("pool: release arena: %w", err)
	}
	return nil
}

// MaxCellSize returns the resolved size of the largest segment, which is
// also the largest request Alloc can satisfy. Zero before Begin.
func (p *Pool) MaxCellSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0
	}
	return p.tab.maxSize()
}

// FreeCells returns the number of cells currently free in the given
// segment. The segment index follows the sorted order Begin established.
func (p *Pool) FreeCells(segment int) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0, ErrUninitialized
	}
	if segment < 0 || segment >= p.tab.segments() {
		return 0, ErrNoSegment
	}
	return p.tab.window(p.words, segment).FreeCount(), nil
}

// Alloc claims a free cell from the smallest segment able to hold size
// bytes and returns its reference plus the cell's payload window. When that
// segment has no free cell, the request escalates: it is retried as a
// request for the next larger segment's resolved size, trading space for
// availability. Failures return NoRef and one of ErrBadSize, ErrOversized,
// ErrNoSegment, or ErrExhausted; all are recoverable and leave the pool
// unchanged.
func (p *Pool) Alloc(size int) (Ref, []byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return NoRef, nil, ErrUninitialized
	}
	if size <= 0 {
		p.stats.RecordFailure()
		return NoRef, nil, ErrBadSize
	}
	if size > p.tab.maxSize() {
		p.stats.RecordFailure()
		return NoRef, nil, ErrOversized
	}

	sg := int(p.lookup[format.StepUnits(size)-1])
	if sg == format.NoSegment || sg >= p.tab.segments() {
		p.stats.RecordFailure()
		return NoRef, nil, ErrNoSegment
	}

	for {
		m := p.tab.window(p.words, sg)
		if !m.Full() {
			cell, ok := m.Acquire()
			if !ok {
				// Unreachable while the padding bits stay armed; fail
				// like exhaustion rather than touch a nonexistent cell.
				p.stats.RecordFailure()
				return NoRef, nil, ErrExhausted
			}
			cellSize := p.tab.sizes[sg]
			off := p.tab.base[sg] + cell*cellSize
			p.stats.RecordAlloc(sg, cell)
			return Ref(off), p.data[off : off+cellSize : off+cellSize], nil
		}

		if sg == p.tab.segments()-1 {
			p.stats.RecordFailure()
			return NoRef, nil, ErrExhausted
		}

		// Escalate by size, not index: rerun the lookup with the next
		// larger segment's resolved size. The guard keeps duplicate sizes
		// from mapping the lookup back to an exhausted segment.
		next := p.tab.sizes[sg+1]
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[POOL] escalate: segment %d full, retrying as %d-byte request\n", sg, next)
		}
		nsg := int(p.lookup[format.StepUnits(next)-1])
		if nsg <= sg {
			nsg = sg + 1
		}
		sg = nsg
	}
}

// Release returns a cell to its segment. Invalid references are ignored:
// NoRef, offsets outside the arena, and offsets that are not a cell
// boundary this pool handed out all leave the bitmaps untouched, and
// releasing a cell that is already free is a no-op.
func (p *Pool) Release(ref Ref) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || ref == NoRef {
		return
	}
	off := int(ref)
	if off < 0 || off >= len(p.data) {
		return
	}

	sg, cell, ok := p.locate(off)
	if !ok {
		return
	}
	m := p.tab.window(p.words, sg)
	if !m.Used(cell) {
		return
	}
	m.Release(cell)
}

// Locate converts a reference into its typed handle: owning segment index
// and cell index. ok is false for references Release would ignore.
func (p *Pool) Locate(ref Ref) (segment, cell int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || ref == NoRef {
		return 0, 0, false
	}
	off := int(ref)
	if off < 0 || off >= len(p.data) {
		return 0, 0, false
	}
	return p.locate(off)
}

// locate classifies an in-arena offset: binary search for the greatest
// segment base <= off, then constant-time cell index recovery through the
// segment's divisor. The recovered index is validated by mapping it back to
// the offset, so misaligned interior offsets are rejected instead of
// clearing an unrelated cell's bit.
func (p *Pool) locate(off int) (int, int, bool) {
	sg := -1
	lo, hi := 0, p.tab.segments()-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if off < p.tab.base[mid] {
			hi = mid - 1
		} else {
			sg = mid
			lo = mid + 1
		}
	}
	if sg < 0 {
		return 0, 0, false
	}

	rel := off - p.tab.base[sg]
	cell := p.tab.div[sg].CellIndex(rel)
	if cell >= p.tab.counts[sg] || cell*p.tab.sizes[sg] != rel {
		return 0, 0, false
	}
	return sg, cell, true
}
