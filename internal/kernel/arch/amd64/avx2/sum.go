//go:build amd64 && goexperiment.simd && !purego

package avx2

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-estimate/internal/kernel/arch/generic"
)

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	n := len(x)
	if n < Lanes {
		return generic.Sum(x)
	}

	var acc archsimd.Float64x4
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		acc = acc.Add(archsimd.LoadFloat64x4Slice(x[i:]))
	}

	sum := reduce(acc)
	for ; i < n; i++ {
		sum += x[i]
	}
	return sum
}
