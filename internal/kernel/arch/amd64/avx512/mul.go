//go:build amd64 && goexperiment.simd && !purego

package avx512

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-estimate/internal/kernel/arch/amd64/avx2"
	"github.com/cwbudde/algo-estimate/internal/kernel/arch/generic"
)

// MulMulBlock performs chained element-wise multiplication:
// dst[i] = a[i] * b[i] * c[i] for i in [0, len(a)).
// The loop runs 8 wide, then 4 wide, then one element at a time.
// Panics if dst, b or c is shorter than a.
func MulMulBlock(dst, a, b, c []float64) {
	n := len(a)
	if len(b) < n || len(c) < n || len(dst) < n {
		panic("kernel: slice length mismatch")
	}
	b, c, dst = b[:n], c[:n], dst[:n]

	i := 0
	for ; i+Lanes <= n; i += Lanes {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		vc := archsimd.LoadFloat64x8Slice(c[i:])
		va.Mul(vb).Mul(vc).StoreSlice(dst[i:])
	}

	i = avx2.MulMulChunks(dst, a, b, c, i)
	generic.MulMulTail(dst, a, b, c, i)
}
