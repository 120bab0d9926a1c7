package pool

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Diagnostic dumps. These render raw allocator state for debugging and are
// never required for correctness.

// DumpArena writes the raw arena bytes, space separated, in the given
// numeric base (2..36).
func (p *Pool) DumpArena(w io.Writer, base int) error {
	if err := checkBase(base); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrUninitialized
	}
	for _, b := range p.data {
		if _, err := io.WriteString(w, strconv.FormatUint(uint64(b), base)+" "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DumpBitmap writes the raw bitmap words, space separated, in the given
// numeric base (2..36). Word 0 of each segment window is its group mask.
func (p *Pool) DumpBitmap(w io.Writer, base int) error {
	if err := checkBase(base); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrUninitialized
	}
	for _, word := range p.words {
		if _, err := io.WriteString(w, strconv.FormatUint(uint64(word), base)+" "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DumpLookup writes the size lookup table, space separated, in the given
// numeric base (2..36). Entries are segment indexes; -1 marks a size no
// segment fits.
func (p *Pool) DumpLookup(w io.Writer, base int) error {
	if err := checkBase(base); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrUninitialized
	}
	for _, e := range p.lookup {
		if _, err := io.WriteString(w, strconv.FormatInt(int64(e), base)+" "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteStats renders the statistics report. When the pool carries the
// default discarding sink there is nothing to report and the output says so.
func (p *Pool) WriteStats(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.stats.(*Stats)
	if !ok {
		_, err := fmt.Fprintln(w, "stats unavailable: install a recording sink with WithStats")
		return err
	}

	mp := message.NewPrinter(language.English)
	if _, err := mp.Fprintf(w, "total allocs: %d\n", rec.TotalAllocs); err != nil {
		return err
	}
	if _, err := mp.Fprintf(w, "failed allocs: %d\n", rec.FailedAllocs); err != nil {
		return err
	}
	for i, ss := range rec.PerSegment {
		if _, err := mp.Fprintf(w, "segment %d: max cell index = %d, allocs = %d\n",
			i, ss.PeakCell, ss.Allocs); err != nil {
			return err
		}
	}
	return nil
}

func checkBase(base int) error {
	if base < 2 || base > 36 {
		return fmt.Errorf("pool: unsupported numeric base %d", base)
	}
	return nil
}
