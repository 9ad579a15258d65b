//go:build amd64 && goexperiment.simd && !purego

package avx2

import (
	"github.com/cwbudde/algo-estimate/internal/cpu"
	"github.com/cwbudde/algo-estimate/internal/kernel/registry"
)

// init registers the AVX2 tier with the kernel registry.
//
// AVX2 with FMA3 processes four float64 lanes per instruction and fuses the
// quantity x unit-cost multiply into the running sum. Available on Intel
// Haswell (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (preferred over scalar, below AVX-512)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		EstimateSums: EstimateSums,
		Sum:          Sum,
		DotProduct:   DotProduct,
		MulMulBlock:  MulMulBlock,
	})
}
