package estimate

import "github.com/cwbudde/algo-estimate/internal/kernel/registry"

// Category identifies one of the five cost categories.
type Category int

const (
	CategoryDirect Category = iota
	CategoryLabor
	CategoryMachineOperator
	CategoryMaterial
	CategoryMachine
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDirect:
		return "direct"
	case CategoryLabor:
		return "labor"
	case CategoryMachineOperator:
		return "machine operator"
	case CategoryMaterial:
		return "material"
	case CategoryMachine:
		return "machine"
	default:
		return "unknown"
	}
}

// Sums holds sum(quantity x unit cost) per category, indexed by Category.
type Sums [registry.Categories]float64

// Result is a complete estimate.
type Result struct {
	DirectCosts          float64
	LaborCosts           float64
	MachineOperatorCosts float64
	MaterialCosts        float64
	MachineCosts         float64
	Overhead             float64
	Profit               float64
	Subtotal             float64
	VAT                  float64
	Total                float64
}

// LaborTotal returns labor plus machine operator costs, the base for overhead
// and profit.
func (r Result) LaborTotal() float64 {
	return r.LaborCosts + r.MachineOperatorCosts
}

// Aggregate scales raw category sums by the price index and derives overhead,
// profit, subtotal, VAT and total from them. Every tier shares it, so tiers
// can only differ in the sums they feed in.
//
// Subtotal = DirectCosts + Overhead + Profit and Total = Subtotal + VAT hold
// exactly.
func Aggregate(sums Sums, s Settings) Result {
	for c := range sums {
		sums[c] *= s.Index
	}

	r := Result{
		DirectCosts:          sums[CategoryDirect],
		LaborCosts:           sums[CategoryLabor],
		MachineOperatorCosts: sums[CategoryMachineOperator],
		MaterialCosts:        sums[CategoryMaterial],
		MachineCosts:         sums[CategoryMachine],
	}

	// The float64 conversions round each product before it is summed, so
	// the compiler cannot fuse them into the additions below.
	laborTotal := r.LaborTotal()
	r.Overhead = float64(laborTotal * s.OverheadRate)
	r.Profit = float64(laborTotal * s.ProfitRate)
	r.Subtotal = r.DirectCosts + r.Overhead + r.Profit
	r.VAT = float64(r.Subtotal * s.VATRate)
	r.Total = r.Subtotal + r.VAT
	return r
}
