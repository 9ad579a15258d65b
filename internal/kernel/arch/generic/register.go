package generic

import (
	"github.com/cwbudde/algo-estimate/internal/cpu"
	"github.com/cwbudde/algo-estimate/internal/kernel/registry"
)

// init registers the scalar (pure Go) tier with the kernel registry.
//
// The scalar tier is the baseline fallback when no vector tier can run, when
// the build has no vector tiers, or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		EstimateSums: EstimateSums,
		Sum:          Sum,
		DotProduct:   DotProduct,
		MulMulBlock:  MulMulBlock,
	})
}
