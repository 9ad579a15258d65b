//go:build amd64 && goexperiment.simd && !purego

package kernel

// This file imports the amd64 vector tiers to trigger their init()
// functions, which register them with the global registry.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-estimate/internal/kernel/arch/generic"

	// AMD64 implementations
	_ "github.com/cwbudde/algo-estimate/internal/kernel/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-estimate/internal/kernel/arch/amd64/avx512"
)
