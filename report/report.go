// Package report renders an estimate result as a boxed text table.
//
// Amounts are rounded half away from zero to two decimal places in decimal
// arithmetic before printing, and digits are grouped according to the
// selected language.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-estimate/estimate"
)

const (
	labelWidth   = 20
	amountFormat = "%15.2f"
	ruleWidth    = 39
)

// Config controls how a result is rendered.
type Config struct {
	Language language.Tag
	Currency string
	VATRate  float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns English labels, the ruble sign and a 20% VAT label.
func DefaultConfig() Config {
	return Config{
		Language: language.English,
		Currency: "₽",
		VATRate:  estimate.DefaultSettings().VATRate,
	}
}

// WithLanguage selects the label language and digit grouping. Russian
// variants get Russian labels; everything else falls back to English.
func WithLanguage(tag language.Tag) Option {
	return func(cfg *Config) {
		cfg.Language = tag
	}
}

// WithCurrency sets the symbol printed after every amount.
func WithCurrency(symbol string) Option {
	return func(cfg *Config) {
		cfg.Currency = symbol
	}
}

// WithVATRate sets the rate shown in the VAT label. It does not change any
// amount. Negative rates are ignored.
func WithVATRate(rate float64) Option {
	return func(cfg *Config) {
		if rate >= 0 {
			cfg.VATRate = rate
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Write renders r to w.
func Write(w io.Writer, r estimate.Result, opts ...Option) error {
	cfg := ApplyOptions(opts...)
	l := labelsFor(cfg.Language)
	p := message.NewPrinter(cfg.Language)

	var b strings.Builder
	heavy := strings.Repeat("═", ruleWidth) + "\n"
	light := strings.Repeat("─", ruleWidth) + "\n"

	line := func(label string, amount float64) {
		b.WriteString("  ")
		b.WriteString(pad(label, labelWidth))
		b.WriteString(p.Sprintf(amountFormat, roundAmount(amount)))
		if cfg.Currency != "" {
			b.WriteString(" ")
			b.WriteString(cfg.Currency)
		}
		b.WriteString("\n")
	}

	b.WriteString(heavy)
	b.WriteString("  " + l.title + "\n")
	b.WriteString(heavy)
	line(l.direct, r.DirectCosts)
	line(l.labor, r.LaborCosts)
	line(l.machineOperator, r.MachineOperatorCosts)
	line(l.material, r.MaterialCosts)
	line(l.machine, r.MachineCosts)
	b.WriteString(light)
	line(l.overhead, r.Overhead)
	line(l.profit, r.Profit)
	b.WriteString(light)
	line(l.subtotal, r.Subtotal)
	line(fmt.Sprintf(l.vat, cfg.VATRate*100), r.VAT)
	b.WriteString(heavy)
	line(l.total, r.Total)
	b.WriteString(heavy)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

// Print renders r to standard output.
func Print(r estimate.Result, opts ...Option) error {
	return Write(os.Stdout, r, opts...)
}

// roundAmount rounds v half away from zero to cents in decimal arithmetic.
// NaN and infinities have no decimal form and are returned unchanged.
func roundAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}
