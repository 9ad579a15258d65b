//go:build amd64 && goexperiment.simd && !purego

package avx2

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-estimate/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-estimate/internal/kernel/registry"
)

// EstimateSums returns, for every category c, sum(q[i] * unit[c][i]).
// Full 4-element chunks are accumulated with FMA into one vector per
// category and reduced once; the remaining len(q) % 4 elements are added by
// the scalar tier. Inputs shorter than four elements go entirely to the
// scalar tier. Panics if any unit[c] is shorter than q.
func EstimateSums(q []float64, unit [registry.Categories][]float64) [registry.Categories]float64 {
	n := len(q)
	for c := range unit {
		if len(unit[c]) < n {
			panic("kernel: slice length mismatch")
		}
	}
	if n < Lanes {
		return generic.EstimateSums(q, unit)
	}

	var sums [registry.Categories]float64
	i := AccumulateChunks(&sums, q, unit, 0)
	generic.AccumulateTail(&sums, q, unit, i)
	return sums
}

// AccumulateChunks accumulates every full 4-element chunk of q starting at
// from, reduces each category accumulator once and adds it into sums. It
// returns the index of the first element it did not process.
func AccumulateChunks(sums *[registry.Categories]float64, q []float64, unit [registry.Categories][]float64, from int) int {
	n := len(q)
	direct := unit[0][:n]
	labor := unit[1][:n]
	machineOp := unit[2][:n]
	material := unit[3][:n]
	machine := unit[4][:n]

	var accDirect, accLabor, accMachineOp, accMaterial, accMachine archsimd.Float64x4

	i := from
	for ; i+Lanes <= n; i += Lanes {
		vq := archsimd.LoadFloat64x4Slice(q[i:])

		// acc += q * cost
		accDirect = vq.MulAdd(archsimd.LoadFloat64x4Slice(direct[i:]), accDirect)
		accLabor = vq.MulAdd(archsimd.LoadFloat64x4Slice(labor[i:]), accLabor)
		accMachineOp = vq.MulAdd(archsimd.LoadFloat64x4Slice(machineOp[i:]), accMachineOp)
		accMaterial = vq.MulAdd(archsimd.LoadFloat64x4Slice(material[i:]), accMaterial)
		accMachine = vq.MulAdd(archsimd.LoadFloat64x4Slice(machine[i:]), accMachine)
	}

	if i == from {
		return i
	}

	sums[0] += reduce(accDirect)
	sums[1] += reduce(accLabor)
	sums[2] += reduce(accMachineOp)
	sums[3] += reduce(accMaterial)
	sums[4] += reduce(accMachine)
	return i
}
