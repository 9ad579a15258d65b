//go:build amd64 && goexperiment.simd && !purego

package avx512

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-estimate/internal/kernel/arch/amd64/avx2"
)

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Only the minimum length of the two slices is used.
func DotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n < Lanes {
		return avx2.DotProduct(a, b)
	}
	a, b = a[:n], b[:n]

	var acc archsimd.Float64x8
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		acc = va.MulAdd(vb, acc)
	}

	sum := reduce(acc)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
