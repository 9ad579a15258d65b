package estimate

import vecmath "github.com/cwbudde/algo-vecmath"

// SyntheticLines returns n deterministic line items whose quantities and unit
// costs grow linearly with the item index:
//
//	quantity         = 10  + 0.5*i
//	direct           = 1000 + 5*i
//	labor            = 300 + i
//	machine operator = 100 + 0.3*i
//	material         = 500 + 2*i
//	machine          = 100 + 0.5*i
//
// It feeds benchmarks and the diagnostic command.
func SyntheticLines(n int) Lines {
	if n < 0 {
		n = 0
	}

	idx := make([]float64, n)
	ones := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
		ones[i] = 1
	}

	ramp := func(base, step float64) []float64 {
		col := make([]float64, n)
		off := make([]float64, n)
		vecmath.ScaleBlock(col, idx, step)
		vecmath.ScaleBlock(off, ones, base)
		vecmath.AddBlockInPlace(col, off)
		return col
	}

	return Lines{
		Quantities:      ramp(10, 0.5),
		Direct:          ramp(1000, 5),
		Labor:           ramp(300, 1),
		MachineOperator: ramp(100, 0.3),
		Material:        ramp(500, 2),
		Machine:         ramp(100, 0.5),
	}
}

// DemoLines returns n line items derived from a base price of 1000 + 50*i,
// split 30/10/50/10 percent into labor, machine operator, material and
// machine, with quantities cycling through 10..29.
func DemoLines(n int) Lines {
	if n < 0 {
		n = 0
	}

	base := make([]float64, n)
	q := make([]float64, n)
	for i := range base {
		base[i] = 1000 + 50*float64(i)
		q[i] = float64(10 + i%20)
	}

	share := func(ratio float64) []float64 {
		col := make([]float64, n)
		vecmath.ScaleBlock(col, base, ratio)
		return col
	}

	return Lines{
		Quantities:      q,
		Direct:          base,
		Labor:           share(0.30),
		MachineOperator: share(0.10),
		Material:        share(0.50),
		Machine:         share(0.10),
	}
}
