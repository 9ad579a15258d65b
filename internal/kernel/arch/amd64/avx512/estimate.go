//go:build amd64 && goexperiment.simd && !purego

package avx512

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-estimate/internal/kernel/arch/amd64/avx2"
	"github.com/cwbudde/algo-estimate/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-estimate/internal/kernel/registry"
)

// EstimateSums returns, for every category c, sum(q[i] * unit[c][i]).
// Panics if any unit[c] is shorter than q.
func EstimateSums(q []float64, unit [registry.Categories][]float64) [registry.Categories]float64 {
	n := len(q)
	for c := range unit {
		if len(unit[c]) < n {
			panic("kernel: slice length mismatch")
		}
	}
	if n < Lanes {
		return avx2.EstimateSums(q, unit)
	}

	direct := unit[0][:n]
	labor := unit[1][:n]
	machineOp := unit[2][:n]
	material := unit[3][:n]
	machine := unit[4][:n]

	var accDirect, accLabor, accMachineOp, accMaterial, accMachine archsimd.Float64x8

	i := 0
	for ; i+Lanes <= n; i += Lanes {
		vq := archsimd.LoadFloat64x8Slice(q[i:])

		accDirect = vq.MulAdd(archsimd.LoadFloat64x8Slice(direct[i:]), accDirect)
		accLabor = vq.MulAdd(archsimd.LoadFloat64x8Slice(labor[i:]), accLabor)
		accMachineOp = vq.MulAdd(archsimd.LoadFloat64x8Slice(machineOp[i:]), accMachineOp)
		accMaterial = vq.MulAdd(archsimd.LoadFloat64x8Slice(material[i:]), accMaterial)
		accMachine = vq.MulAdd(archsimd.LoadFloat64x8Slice(machine[i:]), accMachine)
	}

	sums := [registry.Categories]float64{
		reduce(accDirect),
		reduce(accLabor),
		reduce(accMachineOp),
		reduce(accMaterial),
		reduce(accMachine),
	}

	// At most one 4-wide chunk remains, then at most three scalars.
	i = avx2.AccumulateChunks(&sums, q, unit, i)
	generic.AccumulateTail(&sums, q, unit, i)
	return sums
}
