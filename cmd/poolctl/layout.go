package main

import (
	"fmt"
	"os"

	"github.com/dynapptor/mempool-32/pool"
	"github.com/spf13/cobra"
)

var layoutBase int

func init() {
	cmd := newLayoutCmd()
	cmd.Flags().IntVar(&layoutBase, "base", 2, "Numeric base for bitmap and lookup dumps (2..36)")
	rootCmd.AddCommand(cmd)
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the computed pool layout for a segment specification",
		Long: `The layout command initializes a pool from --segments and prints the
derived layout: per-segment free cell counts, the size lookup table, and
the initial bitmap words (padding bits already armed).

Example:
  poolctl layout -s 4x1,2x4
  poolctl layout -s 64x1,32x4 --base 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout()
		},
	}
}

func runLayout() error {
	segs, err := parseSegments(segmentSpec)
	if err != nil {
		return err
	}

	p := pool.New()
	if err := p.Begin(segs); err != nil {
		return fmt.Errorf("begin pool: %w", err)
	}
	defer p.Clean()

	fmt.Printf("segments: %d, max cell size: %d bytes\n", len(segs), p.MaxCellSize())
	for i := range segs {
		free, err := p.FreeCells(i)
		if err != nil {
			return err
		}
		fmt.Printf("segment %d: %d free cells\n", i, free)
	}

	fmt.Print("lookup table: ")
	if err := p.DumpLookup(os.Stdout, 10); err != nil {
		return err
	}
	fmt.Printf("bitmap words (base %d): ", layoutBase)
	return p.DumpBitmap(os.Stdout, layoutBase)
}
