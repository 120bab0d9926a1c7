package pool

import "github.com/dynapptor/mempool-32/internal/format"

// buildLookup constructs the size lookup table. Entry i holds the index of
// the smallest segment whose resolved size can hold (i+1)*Step bytes, or
// format.NoSegment when none can. Construction is O(segments * entries);
// it runs once in Begin, never on the allocation path.
func buildLookup(t *table) []int16 {
	entries := t.maxSize() / format.Step
	lut := make([]int16, entries)
	for i := 1; i <= entries; i++ {
		lut[i-1] = lookupSegment(t, i*format.Step)
	}
	return lut
}

// lookupSegment scans for the smallest segment with resolved size >= size.
func lookupSegment(t *table, size int) int16 {
	for i, s := range t.sizes {
		if s >= size {
			return int16(i)
		}
	}
	return format.NoSegment
}
