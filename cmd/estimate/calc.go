package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-estimate/estimate"
	"github.com/cwbudde/algo-estimate/report"
)

func newCalcCmd(a *app) *cobra.Command {
	var (
		file  string
		tier  string
		exact bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate an estimate read from an HCL file",
		Long: `Calculate an estimate from an HCL file containing an optional settings
block and one item block per line item.

Examples:
  estimate calc --file house.hcl
  estimate calc --file house.hcl --tier scalar
  estimate calc --file house.hcl --exact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.language()
			if err != nil {
				return err
			}
			k, err := kernelFor(tier)
			if err != nil {
				return err
			}

			start := time.Now()
			in, err := loadInput(file)
			if err != nil {
				return err
			}
			a.log.Info("input loaded",
				zap.String("file", file),
				zap.Int("items", in.Lines.Len()),
				zap.Duration("elapsed", time.Since(start)),
			)

			var r estimate.Result
			if exact {
				r = estimate.CalculateExact(in.Lines, in.Settings).Float()
				a.log.Debug("calculated in decimal arithmetic")
			} else {
				r = k.Calculate(in.Lines, in.Settings)
				a.log.Debug("calculated", zap.Stringer("tier", k.Tier()))
			}

			out := cmd.OutOrStdout()
			if a.verbose {
				for i, name := range in.Names {
					it := in.Lines.Item(i)
					fmt.Fprintf(out, "  %-24s q=%-10g direct=%-10g labor=%-10g material=%g\n",
						name, it.Quantity, it.Costs.Direct, it.Costs.Labor, it.Costs.Material)
				}
				fmt.Fprintln(out)
			}
			return report.Write(out, r, report.WithLanguage(tag), report.WithVATRate(in.Settings.VATRate))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "estimate input file (.hcl)")
	cmd.Flags().StringVarP(&tier, "tier", "t", "auto", "kernel tier (auto, scalar, avx2, avx512)")
	cmd.Flags().BoolVar(&exact, "exact", false, "calculate in decimal arithmetic instead of float64")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
