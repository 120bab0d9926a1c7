// Package fastdiv converts byte offsets within a pool back into cell indexes
// without a runtime integer divide.
//
// Cell sizes are small and fixed for a pool's lifetime, so the divide by the
// cell size is precomputed once: power-of-two sizes reduce to a shift, and
// the remaining sizes use a fixed-point reciprocal ("magic number") with a
// 16-bit shift. Because every cell size is a multiple of the 4-byte step,
// the offset is first reduced to words (offset >> 2), which keeps the
// 16-bit reciprocal exact for every in-range cell index.
package fastdiv

import "math/bits"

// reciprocalShift is the fixed-point precision of the magic-number path.
const reciprocalShift = 16

// Divisor recovers cell indexes from byte offsets for one fixed cell size.
// The zero value is not usable; build one with New.
type Divisor struct {
	magic uint32
	shift uint8
	pow2  bool
}

// New builds the divisor for a cell size. size must be a positive multiple
// of 4 and at most 64; both are guaranteed by segment validation.
func New(size int) Divisor {
	if size&(size-1) == 0 {
		return Divisor{shift: uint8(bits.TrailingZeros32(uint32(size))), pow2: true}
	}
	words := uint32(size >> 2)
	return Divisor{
		magic: (1<<reciprocalShift + words - 1) / words,
		shift: reciprocalShift,
	}
}

// CellIndex recovers the cell index for a byte offset within the pool. The
// result is exact whenever offset is a whole multiple of the cell size; for
// any other offset the index is unspecified, so callers must validate the
// round trip when the offset origin is untrusted.
func (d Divisor) CellIndex(offset int) int {
	if d.pow2 {
		return offset >> d.shift
	}
	return int((uint32(offset>>2) * d.magic) >> d.shift)
}

// Pow2 reports whether the divisor takes the shift path.
func (d Divisor) Pow2() bool { return d.pow2 }
