// Package format houses the fixed geometry of the slab pool layout. The goal
// is to keep the constants and alignment arithmetic in one place, independent
// from the public API, so higher-level packages can orchestrate the data in a
// more ergonomic form.
package format

const (
	// Step is the allocation granularity in bytes. Every resolved cell size
	// is a whole multiple of Step, and size requests are rounded up to the
	// next Step boundary before segment lookup.
	Step = 4

	// StepLog2 is log2(Step), used to turn byte counts into step counts
	// without a divide.
	StepLog2 = 2

	// MaxCellBytes is the largest resolved cell size a segment may declare.
	MaxCellBytes = 64

	// MaxSegments bounds the segment descriptor table.
	MaxSegments = 64

	// WordBits is the width of one bitmap word. Cells are tracked in groups
	// of WordBits, with one group-mask bit per group.
	WordBits = 32

	// MaxCellsPerSegment is the hard cap on cells in a single segment. The
	// group mask for a segment is a single 32-bit word, so at most 32 groups
	// of 32 cells are addressable.
	MaxCellsPerSegment = WordBits * WordBits

	// NoSegment is the lookup-table sentinel for sizes no segment can hold.
	NoSegment = -1
)
