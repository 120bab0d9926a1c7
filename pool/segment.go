package pool

import (
	"github.com/dynapptor/mempool-32/internal/bitmap"
	"github.com/dynapptor/mempool-32/internal/fastdiv"
	"github.com/dynapptor/mempool-32/internal/format"
)

// Segment describes one pool of fixed-size cells handed to Begin: Count
// cells of Size step units (Size * 4 bytes) each. Descriptors may arrive in
// any order; Begin sorts them by resolved size.
type Segment struct {
	// Count is the number of cells, 1..1024.
	Count int

	// Size is the cell size in step units; the resolved byte size
	// Size * 4 must not exceed 64.
	Size int
}

// table holds the metadata derived from the segment descriptors at Begin:
// per-segment slices index-aligned across all arrays, ordered by strictly
// increasing resolved cell size, plus the two buffer partitions.
type table struct {
	sizes  []int             // resolved cell size in bytes
	counts []int             // cells per segment
	div    []fastdiv.Divisor // offset -> cell index, one per segment
	base   []int             // byte offset of each segment's first cell in the arena
	mask   []int             // word offset of each segment's window in the bitmap buffer

	arenaBytes int // total arena length
	maskWords  int // total bitmap buffer length in words
}

// buildTable validates the descriptors and derives the table. Selection is
// a stable selection sort on resolved size (ties keep first-occurrence
// order), which yields the ordering the lookup table and the release-path
// binary search both rely on.
func buildTable(segs []Segment) (*table, error) {
	n := len(segs)
	if n == 0 || n > format.MaxSegments {
		return nil, ErrSegmentCount
	}

	t := &table{
		sizes:  make([]int, n),
		counts: make([]int, n),
		div:    make([]fastdiv.Divisor, n),
		base:   make([]int, n),
		mask:   make([]int, n),
	}

	placed := make([]bool, n)
	for i := 0; i < n; i++ {
		ix := -1
		for j := 0; j < n; j++ {
			if placed[j] {
				continue
			}
			if ix == -1 || segs[j].Size < segs[ix].Size {
				ix = j
			}
		}
		placed[ix] = true

		seg := segs[ix]
		if seg.Size <= 0 || seg.Size*format.Step > format.MaxCellBytes {
			return nil, ErrCellSize
		}
		if seg.Count <= 0 || seg.Count > format.MaxCellsPerSegment {
			return nil, ErrCellCount
		}

		t.sizes[i] = seg.Size * format.Step
		t.counts[i] = seg.Count
		t.div[i] = fastdiv.New(t.sizes[i])
	}

	for i := 1; i < n; i++ {
		t.base[i] = t.base[i-1] + t.sizes[i-1]*t.counts[i-1]
		t.mask[i] = t.mask[i-1] + bitmap.WordsFor(t.counts[i-1])
	}
	t.arenaBytes = t.base[n-1] + t.sizes[n-1]*t.counts[n-1]
	t.maskWords = t.mask[n-1] + bitmap.WordsFor(t.counts[n-1])

	return t, nil
}

// segments returns the number of segments in the table.
func (t *table) segments() int {
	return len(t.sizes)
}

// maxSize returns the largest resolved cell size.
func (t *table) maxSize() int {
	return t.sizes[len(t.sizes)-1]
}

// window returns segment sg's bitmap view over the shared word buffer.
func (t *table) window(words []uint32, sg int) bitmap.Map {
	lo := t.mask[sg]
	return bitmap.View(words[lo:lo+bitmap.WordsFor(t.counts[sg])], t.counts[sg])
}
