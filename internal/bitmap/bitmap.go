// Package bitmap implements the two-level free-bit bookkeeping for one pool
// of fixed-size cells.
//
// Each pool owns a window of 32-bit words inside the shared bitmap buffer:
// word 0 is the group mask (bit g set when all 32 cells of group g are in
// use) and words 1..ceil(cells/32) are the per-group cell masks (bit b of
// word g+1 set when cell g*32+b is in use). Bits beyond the valid cell and
// group range are pre-set to 1 so the trailing-zero scans can never land on
// a cell that does not exist.
package bitmap

import "math/bits"

const (
	// WordBits is the number of cells tracked by one mask word.
	WordBits = 32

	// full is a saturated mask word.
	full uint32 = 0xFFFFFFFF
)

// Map is a view over one pool's window of the shared bitmap buffer. It holds
// no storage of its own; the words slice aliases the buffer owned by the
// pool, so views are cheap to construct per operation.
type Map struct {
	words []uint32
	cells int
}

// WordsFor returns the window length for a pool of count cells: one
// group-mask word plus one cell-mask word per group.
func WordsFor(count int) int {
	return (count+WordBits-1)/WordBits + 1
}

// View wraps a pool's window. len(words) must be WordsFor(cells).
func View(words []uint32, cells int) Map {
	return Map{words: words, cells: cells}
}

// Groups returns the number of cell groups in the map.
func (m Map) Groups() int {
	return (m.cells + WordBits - 1) / WordBits
}

// Cells returns the number of valid cells in the map.
func (m Map) Cells() int {
	return m.cells
}

// Reset marks every cell free and re-arms the padding bits beyond the valid
// group and cell range.
func (m Map) Reset() {
	for i := range m.words {
		m.words[i] = 0
	}
	groups := m.Groups()
	m.words[0] = padMask(groups)
	m.words[groups] = padMask(m.cells % WordBits)
}

// Full reports whether the group mask is saturated, meaning no group has a
// free cell. This is the escalation trigger.
func (m Map) Full() bool {
	return m.words[0] == full
}

// Acquire claims the lowest-index free cell and returns its index. The
// second result is false when no valid cell is free; with the padding bits
// armed that only happens once the map is fully saturated.
func (m Map) Acquire() (int, bool) {
	g := bits.TrailingZeros32(^m.words[0])
	if g >= m.Groups() {
		return 0, false
	}
	w := &m.words[g+1]
	b := bits.TrailingZeros32(^*w)
	*w |= 1 << b
	if *w == full {
		m.words[0] |= 1 << g
	}
	return g*WordBits + b, true
}

// Release frees a cell. The group bit is cleared unconditionally: a group
// that just gained a free cell cannot be full. Out-of-range indexes are
// ignored so padding bits are never disturbed.
func (m Map) Release(cell int) {
	if cell < 0 || cell >= m.cells {
		return
	}
	g := cell / WordBits
	b := cell % WordBits
	m.words[0] &^= 1 << g
	m.words[g+1] &^= 1 << b
}

// Used reports whether cell is currently claimed. Out-of-range indexes
// report true, matching the permanently occupied padding.
func (m Map) Used(cell int) bool {
	if cell < 0 || cell >= m.cells {
		return true
	}
	return m.words[cell/WordBits+1]&(1<<(cell%WordBits)) != 0
}

// FreeCount returns the number of valid cells currently free. It walks the
// cell-mask words, so it is diagnostic rather than hot-path.
func (m Map) FreeCount() int {
	used := 0
	for g := 0; g < m.Groups(); g++ {
		used += bits.OnesCount32(m.words[g+1])
	}
	// Subtract the armed padding bits in the last cell-mask word.
	if pad := m.Groups()*WordBits - m.cells; pad > 0 {
		used -= pad
	}
	return m.cells - used
}

// padMask returns a word with the first n bits clear and the rest set: the
// free span for a group that only has n valid entries. n of 0 or WordBits
// means the whole word is valid and starts free.
func padMask(n int) uint32 {
	if n == 0 {
		return 0
	}
	return full << n
}
