// Package kernel links the tier packages that exist for the build target and
// resolves which registered tier serves a call.
//
// Importing this package is what populates registry.Global: the init_*.go
// files blank-import every tier package compiled for the target, and each
// tier registers itself from its own init().
package kernel

import (
	"github.com/cwbudde/algo-estimate/internal/cpu"
	"github.com/cwbudde/algo-estimate/internal/kernel/registry"
)

// Resolve returns the highest-priority tier the current CPU can run whose
// SIMD level does not exceed limit. The CPU is probed through
// cpu.DetectFeatures, so forced features are honoured.
//
// The scalar tier is always linked, so a nil lookup means the build is
// broken; Resolve panics in that case.
func Resolve(limit cpu.SIMDLevel) *registry.OpEntry {
	entry := registry.Global.LookupAtMost(cpu.DetectFeatures(), limit)
	if entry == nil {
		panic("kernel: no implementation registered")
	}
	return entry
}

// Active returns the tier an unconstrained call would use.
func Active() *registry.OpEntry {
	return Resolve(cpu.SIMDAVX512)
}

// Tiers lists the registered tiers, highest priority first.
func Tiers() []registry.OpEntry {
	return registry.Global.ListEntries()
}
