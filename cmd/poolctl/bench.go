package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dynapptor/mempool-32/pool"
	"github.com/spf13/cobra"
)

var (
	benchOps    int
	benchSeed   int64
	benchMapped bool
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchOps, "ops", 100000, "Number of alloc/release operations")
	cmd.Flags().Int64Var(&benchSeed, "seed", 1, "Seed for the workload generator")
	cmd.Flags().BoolVar(&benchMapped, "mapped", false, "Back the arena with an anonymous mapping")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run a synthetic alloc/release workload and print statistics",
		Long: `The bench command initializes a pool from --segments, runs a seeded
random alloc/release workload against it, and prints the recorded
statistics report plus wall time.

Example:
  poolctl bench -s 256x1,128x4,32x16 --ops 1000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func runBench() error {
	segs, err := parseSegments(segmentSpec)
	if err != nil {
		return err
	}

	stats := &pool.Stats{}
	opts := []pool.Option{pool.WithStats(stats)}
	if benchMapped {
		opts = append(opts, pool.WithMappedArena())
	}
	p := pool.New(opts...)
	if err := p.Begin(segs); err != nil {
		return fmt.Errorf("begin pool: %w", err)
	}
	defer p.Clean()

	maxSize := p.MaxCellSize()
	rng := rand.New(rand.NewSource(benchSeed))
	live := make([]pool.Ref, 0, 1024)

	printVerbose("running %d ops against %q (max cell %d bytes)\n", benchOps, segmentSpec, maxSize)
	start := time.Now()
	for i := 0; i < benchOps; i++ {
		// Release roughly half the time once cells are live, so the pool
		// hovers near a steady working set.
		if len(live) > 0 && rng.Intn(2) == 0 {
			j := rng.Intn(len(live))
			p.Release(live[j])
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
			continue
		}
		size := 1 + rng.Intn(maxSize)
		ref, _, err := p.Alloc(size)
		if err != nil {
			// Exhaustion is part of the workload; drop a live cell and
			// keep going.
			if len(live) > 0 {
				p.Release(live[0])
				live = live[1:]
			}
			continue
		}
		live = append(live, ref)
	}
	elapsed := time.Since(start)

	for _, ref := range live {
		p.Release(ref)
	}

	fmt.Printf("%d ops in %v (%.0f ops/s)\n",
		benchOps, elapsed, float64(benchOps)/elapsed.Seconds())
	return p.WriteStats(os.Stdout)
}
