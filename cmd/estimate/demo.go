package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-estimate/estimate"
	"github.com/cwbudde/algo-estimate/report"
)

// demoIndex is the price index applied by the demo estimate.
const demoIndex = 8.5

func newDemoCmd(a *app) *cobra.Command {
	var items int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Calculate and print a synthetic estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if items < 0 {
				return fmt.Errorf("--items must be >= 0, got %d", items)
			}
			tag, err := a.language()
			if err != nil {
				return err
			}

			lines := estimate.DemoLines(items)
			settings := estimate.ApplySettingsOptions(estimate.WithIndex(demoIndex))
			r := estimate.CalculateAuto(lines, settings)

			a.log.Info("demo estimate",
				zap.Int("items", lines.Len()),
				zap.Float64("index", settings.Index),
				zap.Stringer("tier", estimate.ActiveTier()),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Demo estimate: %d items, index %.1f, tier %s\n\n", lines.Len(), settings.Index, estimate.ActiveTier())
			return report.Write(out, r, report.WithLanguage(tag), report.WithVATRate(settings.VATRate))
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 100, "number of synthetic line items")
	return cmd
}
