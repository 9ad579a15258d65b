//go:build amd64 && goexperiment.simd && !purego

package avx2

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-estimate/internal/kernel/arch/generic"
)

// MulMulBlock performs chained element-wise multiplication:
// dst[i] = a[i] * b[i] * c[i] for i in [0, len(a)).
// Panics if dst, b or c is shorter than a.
func MulMulBlock(dst, a, b, c []float64) {
	n := len(a)
	if len(b) < n || len(c) < n || len(dst) < n {
		panic("kernel: slice length mismatch")
	}

	i := MulMulChunks(dst, a, b, c, 0)
	generic.MulMulTail(dst, a, b, c, i)
}

// MulMulChunks processes every full 4-element chunk of a starting at from
// and returns the index of the first element it did not write.
func MulMulChunks(dst, a, b, c []float64, from int) int {
	n := len(a)
	b, c, dst = b[:n], c[:n], dst[:n]

	i := from
	for ; i+Lanes <= n; i += Lanes {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		vc := archsimd.LoadFloat64x4Slice(c[i:])
		va.Mul(vb).Mul(vc).StoreSlice(dst[i:])
	}
	return i
}
