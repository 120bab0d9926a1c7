package pool

// Option configures a Pool before Begin.
type Option func(*Pool)

// WithMappedArena backs the arena with an anonymous memory mapping instead
// of a garbage-collected slice. On platforms without mappings it falls back
// to the heap.
func WithMappedArena() Option {
	return func(p *Pool) {
		p.useMapped = true
	}
}

// WithLockedArena maps the arena and pins it with mlock, so the allocation
// path can never fault on a paged-out cell. Begin fails when the pages
// cannot be locked.
func WithLockedArena() Option {
	return func(p *Pool) {
		p.useMapped = true
		p.lockMem = true
	}
}

// WithStats installs sink as the pool's statistics recorder. A nil sink
// keeps the default discarding sink.
func WithStats(sink StatsSink) Option {
	return func(p *Pool) {
		if sink != nil {
			p.stats = sink
		}
	}
}
