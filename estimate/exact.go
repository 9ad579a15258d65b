package estimate

import (
	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-estimate/internal/kernel/registry"
)

// ExactResult is an estimate computed in arbitrary-precision decimal
// arithmetic. Field meanings match Result.
type ExactResult struct {
	DirectCosts          decimal.Decimal
	LaborCosts           decimal.Decimal
	MachineOperatorCosts decimal.Decimal
	MaterialCosts        decimal.Decimal
	MachineCosts         decimal.Decimal
	Overhead             decimal.Decimal
	Profit               decimal.Decimal
	Subtotal             decimal.Decimal
	VAT                  decimal.Decimal
	Total                decimal.Decimal
}

// CalculateExact computes the estimate without floating-point rounding: every
// input is converted with decimal.NewFromFloat (shortest representation) and
// all products and sums are exact. It is slow and serves as the reference the
// float tiers are checked against, and for printing amounts that must add up
// to the cent. Panics if any input is NaN or infinite.
func CalculateExact(l Lines, s Settings) ExactResult {
	unit := l.columns()

	var sums [registry.Categories]decimal.Decimal
	for i, q := range l.Quantities {
		dq := decimal.NewFromFloat(q)
		for c, col := range unit {
			sums[c] = sums[c].Add(dq.Mul(decimal.NewFromFloat(col[i])))
		}
	}

	index := decimal.NewFromFloat(s.Index)
	for c := range sums {
		sums[c] = sums[c].Mul(index)
	}

	r := ExactResult{
		DirectCosts:          sums[CategoryDirect],
		LaborCosts:           sums[CategoryLabor],
		MachineOperatorCosts: sums[CategoryMachineOperator],
		MaterialCosts:        sums[CategoryMaterial],
		MachineCosts:         sums[CategoryMachine],
	}

	laborTotal := r.LaborTotal()
	r.Overhead = laborTotal.Mul(decimal.NewFromFloat(s.OverheadRate))
	r.Profit = laborTotal.Mul(decimal.NewFromFloat(s.ProfitRate))
	r.Subtotal = r.DirectCosts.Add(r.Overhead).Add(r.Profit)
	r.VAT = r.Subtotal.Mul(decimal.NewFromFloat(s.VATRate))
	r.Total = r.Subtotal.Add(r.VAT)
	return r
}

// LaborTotal returns labor plus machine operator costs.
func (r ExactResult) LaborTotal() decimal.Decimal {
	return r.LaborCosts.Add(r.MachineOperatorCosts)
}

// Round rounds every field to the given number of decimal places.
func (r ExactResult) Round(places int32) ExactResult {
	return ExactResult{
		DirectCosts:          r.DirectCosts.Round(places),
		LaborCosts:           r.LaborCosts.Round(places),
		MachineOperatorCosts: r.MachineOperatorCosts.Round(places),
		MaterialCosts:        r.MaterialCosts.Round(places),
		MachineCosts:         r.MachineCosts.Round(places),
		Overhead:             r.Overhead.Round(places),
		Profit:               r.Profit.Round(places),
		Subtotal:             r.Subtotal.Round(places),
		VAT:                  r.VAT.Round(places),
		Total:                r.Total.Round(places),
	}
}

// Float converts r to a float64 Result. Each field is rounded to the nearest
// float64 independently.
func (r ExactResult) Float() Result {
	return Result{
		DirectCosts:          r.DirectCosts.InexactFloat64(),
		LaborCosts:           r.LaborCosts.InexactFloat64(),
		MachineOperatorCosts: r.MachineOperatorCosts.InexactFloat64(),
		MaterialCosts:        r.MaterialCosts.InexactFloat64(),
		MachineCosts:         r.MachineCosts.InexactFloat64(),
		Overhead:             r.Overhead.InexactFloat64(),
		Profit:               r.Profit.InexactFloat64(),
		Subtotal:             r.Subtotal.InexactFloat64(),
		VAT:                  r.VAT.InexactFloat64(),
		Total:                r.Total.InexactFloat64(),
	}
}

// Exact converts r field by field to decimal.
func (r Result) Exact() ExactResult {
	return ExactResult{
		DirectCosts:          decimal.NewFromFloat(r.DirectCosts),
		LaborCosts:           decimal.NewFromFloat(r.LaborCosts),
		MachineOperatorCosts: decimal.NewFromFloat(r.MachineOperatorCosts),
		MaterialCosts:        decimal.NewFromFloat(r.MaterialCosts),
		MachineCosts:         decimal.NewFromFloat(r.MachineCosts),
		Overhead:             decimal.NewFromFloat(r.Overhead),
		Profit:               decimal.NewFromFloat(r.Profit),
		Subtotal:             decimal.NewFromFloat(r.Subtotal),
		VAT:                  decimal.NewFromFloat(r.VAT),
		Total:                decimal.NewFromFloat(r.Total),
	}
}
