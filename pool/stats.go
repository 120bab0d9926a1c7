package pool

// StatsSink receives allocation events from the pool. The default sink
// discards them, so the hot path carries no diagnostic cost when statistics
// are off; install a *Stats with WithStats to record them. Sinks are called
// with the pool's mutex held and must not call back into the pool.
type StatsSink interface {
	// RecordAlloc reports a successful allocation of cell index cell in
	// segment index segment.
	RecordAlloc(segment, cell int)

	// RecordFailure reports an allocation that returned no cell.
	RecordFailure()
}

// nopSink is the default, zero-cost sink.
type nopSink struct{}

func (nopSink) RecordAlloc(int, int) {}
func (nopSink) RecordFailure()       {}

// Stats is a recording StatsSink: total and failed allocation counts plus
// per-segment counters and the peak cell index handed out. Read it after
// the workload quiesces, or render it with Pool.WriteStats.
type Stats struct {
	TotalAllocs  uint64
	FailedAllocs uint64
	PerSegment   []SegmentStats
}

// SegmentStats holds one segment's counters.
type SegmentStats struct {
	Allocs   uint64
	PeakCell int // highest cell index handed out; -1 until the first alloc
}

// RecordAlloc implements StatsSink.
func (s *Stats) RecordAlloc(segment, cell int) {
	s.TotalAllocs++
	for len(s.PerSegment) <= segment {
		s.PerSegment = append(s.PerSegment, SegmentStats{PeakCell: -1})
	}
	ss := &s.PerSegment[segment]
	ss.Allocs++
	if cell > ss.PeakCell {
		ss.PeakCell = cell
	}
}

// RecordFailure implements StatsSink.
func (s *Stats) RecordFailure() {
	s.FailedAllocs++
}
