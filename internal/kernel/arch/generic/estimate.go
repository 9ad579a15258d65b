// Package generic provides the scalar tier of the estimate kernels.
//
// Every function here processes one element per step. The vector tiers
// delegate to these functions for inputs shorter than their width and use
// them as the reference for remainder handling.
package generic

import "github.com/cwbudde/algo-estimate/internal/kernel/registry"

// EstimateSums returns, for every category c, sum(q[i] * unit[c][i]) over
// i in [0, len(q)). Accumulation is strictly sequential.
// Panics if any unit[c] is shorter than q.
func EstimateSums(q []float64, unit [registry.Categories][]float64) [registry.Categories]float64 {
	n := len(q)
	direct, labor, machineOp, material, machine := unit[0], unit[1], unit[2], unit[3], unit[4]
	if len(direct) < n || len(labor) < n || len(machineOp) < n || len(material) < n || len(machine) < n {
		panic("kernel: slice length mismatch")
	}

	var sums [registry.Categories]float64
	AccumulateTail(&sums, q, unit, 0)
	return sums
}

// AccumulateTail adds q[i] * unit[c][i] for i in [from, len(q)) into sums,
// one element at a time. Vector tiers call it for the indices beyond their
// last full chunk. Bounds are the caller's responsibility.
func AccumulateTail(sums *[registry.Categories]float64, q []float64, unit [registry.Categories][]float64, from int) {
	n := len(q)
	direct := unit[0][:n]
	labor := unit[1][:n]
	machineOp := unit[2][:n]
	material := unit[3][:n]
	machine := unit[4][:n]

	for i := from; i < n; i++ {
		qi := q[i]
		sums[0] += qi * direct[i]
		sums[1] += qi * labor[i]
		sums[2] += qi * machineOp[i]
		sums[3] += qi * material[i]
		sums[4] += qi * machine[i]
	}
}
