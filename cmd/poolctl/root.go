package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dynapptor/mempool-32/pool"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	segmentSpec string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "poolctl",
	Short: "Inspect and exercise fixed-segment slab pools",
	Long: `poolctl builds a slab pool from a segment specification, runs
workloads against it, and prints its internal layout, bitmaps, and
statistics. It is a diagnostic companion to the pool package, not a
production surface.

A segment specification is a comma-separated list of COUNTxUNITS pairs,
where COUNT is the number of cells and UNITS the cell size in 4-byte step
units. For example "64x1,32x4,8x16" declares 64 four-byte cells, 32
sixteen-byte cells, and 8 sixty-four-byte cells.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		StringVarP(&segmentSpec, "segments", "s", "64x1,32x4,8x16", "Segment specification (COUNTxUNITS,...)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printVerbose prints a message only in verbose mode.
func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// parseSegments turns a COUNTxUNITS,... specification into descriptors.
func parseSegments(spec string) ([]pool.Segment, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("empty segment specification")
	}
	var segs []pool.Segment
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		fields := strings.SplitN(part, "x", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad segment %q: want COUNTxUNITS", part)
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("bad cell count in %q: %w", part, err)
		}
		units, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad cell size in %q: %w", part, err)
		}
		segs = append(segs, pool.Segment{Count: count, Size: units})
	}
	return segs, nil
}
