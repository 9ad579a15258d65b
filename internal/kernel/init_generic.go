//go:build !amd64 || !goexperiment.simd || purego

package kernel

// This file imports only the scalar tier: the target has no vector tier, the
// toolchain was built without the simd experiment, or purego was requested.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-estimate/internal/kernel/arch/generic"
)
