// Package cpu provides CPU feature detection for estimate kernel selection.
//
// Three capabilities matter to the kernels: AVX-512 Foundation (the wide,
// 8 x float64 tier), AVX2 (the narrow, 4 x float64 tier) and FMA3, which both
// vector tiers use to accumulate quantity x unit-cost products.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
// Capability is static for the lifetime of a process, so a cached answer is
// never stale.
package cpu

import (
	"sync"
)

// SIMDLevel represents a kernel tier by the instruction set it requires.
// Higher values process more float64 lanes per instruction.
type SIMDLevel int

const (
	// SIMDNone indicates the scalar tier (pure Go, one lane).
	SIMDNone SIMDLevel = iota

	// SIMDAVX2 indicates the narrow tier: AVX2 + FMA, 4 x float64.
	SIMDAVX2

	// SIMDAVX512 indicates the wide tier: AVX-512F, 8 x float64.
	SIMDAVX512
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	default:
		return "Unknown"
	}
}

// Lanes returns the number of float64 values one vector of this level holds.
func (s SIMDLevel) Lanes() int {
	switch s {
	case SIMDAVX2:
		return 4
	case SIMDAVX512:
		return 8
	default:
		return 1
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasAVX2   bool // Advanced Vector Extensions 2 (CPUID.7.0:EBX[5])
	HasAVX512 bool // AVX-512 Foundation (CPUID.7.0:EBX[16])
	HasFMA    bool // Fused multiply-add (CPUID.1:ECX[12])

	// Control flags
	ForceGeneric bool // Disable all SIMD tiers (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasWideVector reports whether the wide (AVX-512F) tier can run.
func HasWideVector() bool {
	return DetectFeatures().HasAVX512
}

// HasNarrowVector reports whether the CPU supports AVX2.
func HasNarrowVector() bool {
	return DetectFeatures().HasAVX2
}

// HasFMA reports whether the CPU supports FMA3.
func HasFMA() bool {
	return DetectFeatures().HasFMA
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// This function is used by the kernel registry to determine tier compatibility.
//
// The narrow tier needs FMA in addition to AVX2 because its accumulation
// loop issues VFMADD. AVX-512F implies both on every shipping part.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDAVX2:
		return features.HasAVX2 && features.HasFMA
	case SIMDAVX512:
		return features.HasAVX512
	default:
		return false
	}
}

// Best returns the highest SIMD level the given features support.
func Best(features Features) SIMDLevel {
	switch {
	case Supports(features, SIMDAVX512):
		return SIMDAVX512
	case Supports(features, SIMDAVX2):
		return SIMDAVX2
	default:
		return SIMDNone
	}
}
