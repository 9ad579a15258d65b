package estimate

import "github.com/cwbudde/algo-estimate/internal/kernel/registry"

// UnitCosts holds the five per-unit costs of one line item.
type UnitCosts struct {
	Direct          float64
	Labor           float64
	MachineOperator float64
	Material        float64
	Machine         float64
}

// Item is one estimate line: a quantity and its unit costs.
type Item struct {
	Quantity float64
	Costs    UnitCosts
}

// Lines holds estimate line items as six parallel columns.
//
// Len() is len(Quantities); every unit-cost column must hold at least Len()
// elements. Only indices [0, Len()) are read, and no function in this package
// modifies or retains the columns.
type Lines struct {
	Quantities      []float64
	Direct          []float64
	Labor           []float64
	MachineOperator []float64
	Material        []float64
	Machine         []float64
}

// NewLines returns empty Lines with room for n items.
func NewLines(n int) Lines {
	return Lines{
		Quantities:      make([]float64, 0, n),
		Direct:          make([]float64, 0, n),
		Labor:           make([]float64, 0, n),
		MachineOperator: make([]float64, 0, n),
		Material:        make([]float64, 0, n),
		Machine:         make([]float64, 0, n),
	}
}

// LinesFromItems converts a slice of items to column form.
func LinesFromItems(items []Item) Lines {
	l := NewLines(len(items))
	for _, it := range items {
		l.Append(it)
	}
	return l
}

// Append adds one item to the end of every column.
func (l *Lines) Append(it Item) {
	l.Quantities = append(l.Quantities, it.Quantity)
	l.Direct = append(l.Direct, it.Costs.Direct)
	l.Labor = append(l.Labor, it.Costs.Labor)
	l.MachineOperator = append(l.MachineOperator, it.Costs.MachineOperator)
	l.Material = append(l.Material, it.Costs.Material)
	l.Machine = append(l.Machine, it.Costs.Machine)
}

// Len returns the number of line items.
func (l Lines) Len() int {
	return len(l.Quantities)
}

// Head restricts l to its first n items. The unit-cost columns are left
// as they are, since only the first Len() elements are ever read.
// Panics if n is outside [0, Len()].
func (l Lines) Head(n int) Lines {
	if n < 0 || n > l.Len() {
		panic("estimate: head count out of range")
	}
	l.Quantities = l.Quantities[:n]
	return l
}

// Item returns line item i.
func (l Lines) Item(i int) Item {
	return Item{
		Quantity: l.Quantities[i],
		Costs: UnitCosts{
			Direct:          l.Direct[i],
			Labor:           l.Labor[i],
			MachineOperator: l.MachineOperator[i],
			Material:        l.Material[i],
			Machine:         l.Machine[i],
		},
	}
}

// columns returns the unit-cost columns in Category order, checking that
// each covers Len() items.
func (l Lines) columns() [registry.Categories][]float64 {
	unit := [registry.Categories][]float64{
		CategoryDirect:          l.Direct,
		CategoryLabor:           l.Labor,
		CategoryMachineOperator: l.MachineOperator,
		CategoryMaterial:        l.Material,
		CategoryMachine:         l.Machine,
	}
	n := l.Len()
	for _, col := range unit {
		if len(col) < n {
			panic("estimate: cost line length mismatch")
		}
	}
	return unit
}
