// Command estimate runs and inspects construction cost estimates.
//
// Usage:
//
//	estimate [command] [flags]
//
// Commands:
//
//	info    print CPU capabilities and the kernel tier in use
//	bench   time repeated calculations over synthetic line items
//	demo    calculate and print a synthetic estimate
//	calc    calculate an estimate read from an HCL file
//
// Examples:
//
//	estimate info
//	estimate bench --items 100000 --iterations 100 --tier avx2
//	estimate demo --items 50 --lang ru
//	estimate calc --file house.hcl --exact
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// app holds state shared by all subcommands.
type app struct {
	verbose bool
	lang    string
	log     *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "estimate",
		Short: "Vectorized construction cost estimates",
		Long: `estimate computes construction cost estimates on the widest vector
unit the CPU offers (AVX-512, AVX2 or plain scalar code).

Examples:
  estimate info
  estimate bench --items 100000 --tier avx2
  estimate demo --items 50
  estimate calc --file house.hcl`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("initializing logging: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging and detailed output")
	root.PersistentFlags().StringVar(&a.lang, "lang", "en", "report language (BCP 47 tag, e.g. en, ru)")

	root.AddCommand(
		newInfoCmd(a),
		newBenchCmd(a),
		newDemoCmd(a),
		newCalcCmd(a),
	)
	return root
}

// newLogger returns a production logger at info level, or a development
// logger at debug level when verbose is set. Both write to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// language returns the tag selected with --lang.
func (a *app) language() (language.Tag, error) {
	tag, err := language.Parse(a.lang)
	if err != nil {
		return language.Und, fmt.Errorf("invalid --lang %q: %w", a.lang, err)
	}
	return tag, nil
}
