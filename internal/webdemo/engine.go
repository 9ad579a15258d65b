// Package webdemo holds the browser calculator behind web/wasm. It has no
// syscall/js dependency so it can be tested natively; the wasm entry point
// only converts between JS values and the types here.
package webdemo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-estimate/estimate"
)

// ItemParams is one line item as sent by the page.
type ItemParams struct {
	Quantity        float64
	Direct          float64
	Labor           float64
	MachineOperator float64
	Material        float64
	Machine         float64
}

// SettingsParams carries the rate inputs of the page.
type SettingsParams struct {
	OverheadRate float64
	ProfitRate   float64
	VATRate      float64
	Index        float64
}

// Engine keeps the current settings between calls from the page.
type Engine struct {
	settings estimate.Settings
}

// NewEngine returns an engine with default settings.
func NewEngine() *Engine {
	return &Engine{settings: estimate.DefaultSettings()}
}

// Settings returns the settings used by Calculate.
func (e *Engine) Settings() estimate.Settings {
	return e.settings
}

// SetSettings replaces the settings. Rates must be finite and non-negative
// and the index must be positive; on error the previous settings stay.
func (e *Engine) SetSettings(p SettingsParams) error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"overhead rate", p.OverheadRate},
		{"profit rate", p.ProfitRate},
		{"VAT rate", p.VATRate},
	} {
		if !finite(v.val) || v.val < 0 {
			return fmt.Errorf("%s must be a non-negative number: %v", v.name, v.val)
		}
	}
	if !finite(p.Index) || p.Index <= 0 {
		return fmt.Errorf("index must be > 0: %v", p.Index)
	}

	e.settings = estimate.Settings{
		OverheadRate: p.OverheadRate,
		ProfitRate:   p.ProfitRate,
		VATRate:      p.VATRate,
		Index:        p.Index,
	}
	return nil
}

// Calculate returns the estimate for items under the current settings.
func (e *Engine) Calculate(items []ItemParams) estimate.Result {
	lines := estimate.NewLines(len(items))
	for _, it := range items {
		lines.Append(estimate.Item{
			Quantity: it.Quantity,
			Costs: estimate.UnitCosts{
				Direct:          it.Direct,
				Labor:           it.Labor,
				MachineOperator: it.MachineOperator,
				Material:        it.Material,
				Machine:         it.Machine,
			},
		})
	}
	return estimate.CalculateAuto(lines, e.settings)
}

// CalculateItems returns quantities[i] * unitCosts[i] * coefficients[i].
// Unlike estimate.CalculateItems it reports mismatched lengths as an error,
// since the inputs come from untrusted page state.
func (e *Engine) CalculateItems(quantities, unitCosts, coefficients []float64) ([]float64, error) {
	n := len(quantities)
	if len(unitCosts) != n || len(coefficients) != n {
		return nil, fmt.Errorf("length mismatch: %d quantities, %d unit costs, %d coefficients",
			n, len(unitCosts), len(coefficients))
	}
	dst := make([]float64, n)
	estimate.CalculateItems(dst, quantities, unitCosts, coefficients)
	return dst, nil
}

// Tier returns the name of the kernel tier the engine runs on.
func (e *Engine) Tier() string {
	return estimate.ActiveTier().String()
}

// ResultFields flattens r into the field map handed to JavaScript.
func ResultFields(r estimate.Result) map[string]any {
	return map[string]any{
		"directCosts":          r.DirectCosts,
		"laborCosts":           r.LaborCosts,
		"machineOperatorCosts": r.MachineOperatorCosts,
		"materialCosts":        r.MaterialCosts,
		"machineCosts":         r.MachineCosts,
		"laborTotal":           r.LaborTotal(),
		"overhead":             r.Overhead,
		"profit":               r.Profit,
		"subtotal":             r.Subtotal,
		"vat":                  r.VAT,
		"total":                r.Total,
	}
}

// SettingsFields flattens s into the field map handed to JavaScript.
func SettingsFields(s estimate.Settings) map[string]any {
	return map[string]any{
		"overheadRate": s.OverheadRate,
		"profitRate":   s.ProfitRate,
		"vatRate":      s.VATRate,
		"index":        s.Index,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
