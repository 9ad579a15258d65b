package main

import (
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-estimate/estimate"
	"github.com/cwbudde/algo-estimate/internal/cpu"
	"github.com/cwbudde/algo-estimate/internal/kernel"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print CPU capabilities and the active kernel tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host := cpu.Host()
			tiers := kernel.Tiers()
			names := make([]string, len(tiers))
			for i, e := range tiers {
				names[i] = e.Name
			}

			a.log.Debug("probed host",
				zap.Bool("avx2", estimate.HasNarrowVector()),
				zap.Bool("avx512f", estimate.HasWideVector()),
				zap.Bool("fma", estimate.HasFusedMultiplyAdd()),
				zap.Strings("registered", names),
			)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "OS/Arch:\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(tw, "CPU:\t%s\n", host.Brand)
			fmt.Fprintf(tw, "Vendor:\t%s\n", host.Vendor)
			fmt.Fprintf(tw, "Cores:\t%d physical, %d logical\n", host.PhysicalCores, host.LogicalCores)
			fmt.Fprintf(tw, "Cache line:\t%d bytes\n", host.CacheLine)
			fmt.Fprintf(tw, "AVX2:\t%s\n", yesNo(estimate.HasNarrowVector()))
			fmt.Fprintf(tw, "AVX-512F:\t%s\n", yesNo(estimate.HasWideVector()))
			fmt.Fprintf(tw, "FMA:\t%s\n", yesNo(estimate.HasFusedMultiplyAdd()))
			fmt.Fprintf(tw, "Registered tiers:\t%s\n", strings.Join(names, ", "))
			fmt.Fprintf(tw, "Active tier:\t%s (width %d)\n", estimate.ActiveTier(), estimate.ActiveTier().Width())
			return tw.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
