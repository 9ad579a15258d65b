//go:build amd64 && goexperiment.simd && !purego

package avx512

import (
	"github.com/cwbudde/algo-estimate/internal/cpu"
	"github.com/cwbudde/algo-estimate/internal/kernel/registry"
)

// init registers the AVX-512 tier with the kernel registry.
//
// AVX-512F processes eight float64 lanes per instruction. Available on Intel
// Skylake-X (2017+), Ice Lake and AMD Zen 4 (2022+).
//
// Priority: 30 (highest, preferred over AVX2 and scalar)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  30,

		EstimateSums: EstimateSums,
		Sum:          Sum,
		DotProduct:   DotProduct,
		MulMulBlock:  MulMulBlock,
	})
}
