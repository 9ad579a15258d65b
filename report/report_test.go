package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/cwbudde/algo-estimate/estimate"
)

func scenario() estimate.Result {
	return estimate.CalculateAuto(estimate.LinesFromItems([]estimate.Item{
		{Quantity: 1, Costs: estimate.UnitCosts{Direct: 100, Labor: 10}},
		{Quantity: 2, Costs: estimate.UnitCosts{Direct: 50, Labor: 10}},
	}), estimate.DefaultSettings())
}

func TestWrite_English(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, scenario()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Estimate result",
		"Direct costs:",
		"200.00 ₽",
		"3.60 ₽",
		"2.40 ₽",
		"206.00 ₽",
		"VAT 20%:",
		"41.20 ₽",
		"TOTAL:",
		"247.20 ₽",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if n := strings.Count(out, "\n"); n != 17 {
		t.Errorf("output has %d lines, want 17:\n%s", n, out)
	}
}

func TestWrite_Russian(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, scenario(), WithLanguage(language.Russian)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Результаты расчёта сметы", "Прямые затраты:", "НДС 20%:", "ИТОГО:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_Options(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, scenario(), WithCurrency("EUR"), WithVATRate(0.19), WithLanguage(language.German))
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "VAT 19%:") {
		t.Errorf("VAT label not updated:\n%s", out)
	}
	if strings.Contains(out, "₽") || !strings.Contains(out, " EUR\n") {
		t.Errorf("currency not replaced:\n%s", out)
	}
}

func TestWrite_NoCurrency(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, scenario(), WithCurrency("")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "247.20\n") {
		t.Errorf("expected bare amounts:\n%s", buf.String())
	}
}

func TestWrite_RoundsHalfAwayFromZero(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, estimate.Result{Total: 0.125}, WithCurrency("")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "0.13\n") {
		t.Errorf("0.125 should print as 0.13:\n%s", buf.String())
	}
}

func TestWrite_GroupsDigits(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, estimate.Result{Total: 1234567.891}, WithCurrency("")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1,234,567.89") {
		t.Errorf("expected grouped digits:\n%s", buf.String())
	}
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWrite_PropagatesError(t *testing.T) {
	if err := Write(failingWriter{}, scenario()); !errors.Is(err, errSink) {
		t.Fatalf("Write error = %v, want wrapped errSink", err)
	}
}

func TestApplyOptions_IgnoresInvalid(t *testing.T) {
	cfg := ApplyOptions(WithVATRate(-1), nil)
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestPad(t *testing.T) {
	if got := pad("ИТОГО:", 8); got != "ИТОГО:  " {
		t.Errorf("pad counts bytes, not runes: %q", got)
	}
	if got := pad("long label", 4); got != "long label " {
		t.Errorf("pad(long) = %q", got)
	}
}

func TestWrite_NonFiniteAmounts(t *testing.T) {
	tests := []struct {
		name string
		r    estimate.Result
	}{
		{"overflowed total", estimate.Result{DirectCosts: 1e308, Subtotal: math.Inf(1), VAT: math.Inf(1), Total: math.Inf(1)}},
		{"negative infinity", estimate.Result{Total: math.Inf(-1)}},
		{"nan", estimate.Result{Overhead: math.NaN(), Total: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.r); err != nil {
				t.Fatalf("Write error: %v", err)
			}
			if n := strings.Count(buf.String(), "\n"); n != 17 {
				t.Errorf("output has %d lines, want 17:\n%s", n, buf.String())
			}
		})
	}
}

func TestRoundAmount(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.125, 0.13},
		{-0.125, -0.13},
		{247.2, 247.2},
		{1e308, 1e308},
	}
	for _, tt := range tests {
		if got := roundAmount(tt.in); got != tt.want {
			t.Errorf("roundAmount(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := roundAmount(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("roundAmount(+Inf) = %v", got)
	}
	if got := roundAmount(math.NaN()); !math.IsNaN(got) {
		t.Errorf("roundAmount(NaN) = %v", got)
	}
}
