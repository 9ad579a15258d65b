package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-estimate/estimate"
	"github.com/cwbudde/algo-estimate/report"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		items      int
		iterations int
		tier       string
		aligned    bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated calculations over synthetic line items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if items < 0 || iterations <= 0 {
				return fmt.Errorf("--items must be >= 0 and --iterations > 0")
			}
			k, err := kernelFor(tier)
			if err != nil {
				return err
			}

			a.log.Info("benchmark started",
				zap.Int("items", items),
				zap.Int("iterations", iterations),
				zap.String("requested", tier),
				zap.Stringer("tier", k.Tier()),
			)
			lines := estimate.SyntheticLines(items)
			if aligned {
				cols, err := newAlignedColumns(lines)
				if err != nil {
					return err
				}
				defer func() {
					if err := cols.release(); err != nil {
						a.log.Warn("releasing aligned columns", zap.Error(err))
					}
				}()
				lines = cols.lines
			}
			b := estimate.BenchmarkLines(lines, iterations, k)
			a.log.Info("benchmark finished", zap.Duration("elapsed", b.Elapsed))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tier:        %s (width %d)\n", b.Tier, b.Tier.Width())
			fmt.Fprintf(out, "Items:       %d\n", b.Items)
			fmt.Fprintf(out, "Iterations:  %d\n", b.Iterations)
			fmt.Fprintf(out, "Per call:    %s\n", b.PerCall())
			fmt.Fprintf(out, "Throughput:  %.0f items/s\n", b.ItemsPerSecond())

			if a.verbose {
				tag, err := a.language()
				if err != nil {
					return err
				}
				return report.Write(out, b.Result, report.WithLanguage(tag))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 10000, "number of synthetic line items")
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 1000, "number of timed calculations")
	cmd.Flags().StringVarP(&tier, "tier", "t", "auto", "kernel tier (auto, scalar, avx2, avx512)")
	cmd.Flags().BoolVar(&aligned, "aligned", true, "place the columns in 64-byte aligned memory")
	return cmd
}
