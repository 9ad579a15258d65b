package estimate

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-estimate/internal/cpu"
	"github.com/cwbudde/algo-estimate/internal/kernel"
	"github.com/cwbudde/algo-estimate/internal/kernel/registry"
)

// Tier is one of the interchangeable kernel implementations, distinguished by
// vector width.
type Tier int

const (
	// TierScalar processes one element at a time. Always available.
	TierScalar Tier = iota
	// TierNarrow uses 256-bit vectors (AVX2 + FMA).
	TierNarrow
	// TierWide uses 512-bit vectors (AVX-512F).
	TierWide
)

// Width returns the number of float64 values the tier processes per
// instruction.
func (t Tier) Width() int {
	return t.level().Lanes()
}

// String returns the tier's kernel name.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierNarrow:
		return "avx2"
	case TierWide:
		return "avx512"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier accepts a tier name as printed by String, or one of the aliases
// "generic", "narrow" and "wide".
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic":
		return TierScalar, nil
	case "avx2", "narrow":
		return TierNarrow, nil
	case "avx512", "avx-512", "wide":
		return TierWide, nil
	default:
		return 0, fmt.Errorf("estimate: unknown tier %q", s)
	}
}

func (t Tier) level() cpu.SIMDLevel {
	switch t {
	case TierNarrow:
		return cpu.SIMDAVX2
	case TierWide:
		return cpu.SIMDAVX512
	default:
		return cpu.SIMDNone
	}
}

func tierOf(level cpu.SIMDLevel) Tier {
	switch level {
	case cpu.SIMDAVX2:
		return TierNarrow
	case cpu.SIMDAVX512:
		return TierWide
	default:
		return TierScalar
	}
}

// HasWideVector reports whether the CPU supports AVX-512 Foundation.
func HasWideVector() bool { return cpu.HasWideVector() }

// HasNarrowVector reports whether the CPU supports AVX2.
func HasNarrowVector() bool { return cpu.HasNarrowVector() }

// HasFusedMultiplyAdd reports whether the CPU supports FMA3.
func HasFusedMultiplyAdd() bool { return cpu.HasFMA() }

// ActiveTier returns the tier CalculateAuto runs on this host. It can be
// lower than the CPU probe suggests when the binary was built without the
// vector tiers.
func ActiveTier() Tier {
	return tierOf(kernel.Active().SIMDLevel)
}

// Kernel is a handle on one resolved tier. The zero Kernel resolves the best
// tier on every call, like the *Auto functions.
type Kernel struct {
	entry *registry.OpEntry
}

// Select returns the kernel for t, or for the best lower tier if the host
// cannot run t.
func Select(t Tier) Kernel {
	return Kernel{entry: kernel.Resolve(t.level())}
}

// Best returns the kernel for the best tier the host can run.
func Best() Kernel {
	return Kernel{entry: kernel.Active()}
}

func (k Kernel) ops() *registry.OpEntry {
	if k.entry == nil {
		return kernel.Active()
	}
	return k.entry
}

// Tier returns the tier k runs on.
func (k Kernel) Tier() Tier {
	return tierOf(k.ops().SIMDLevel)
}

// Name returns the registered name of k's tier.
func (k Kernel) Name() string {
	return k.ops().Name
}

// Sums returns the raw category sums of l, before index and rates.
func (k Kernel) Sums(l Lines) Sums {
	return Sums(k.ops().EstimateSums(l.Quantities, l.columns()))
}

// Calculate returns the complete estimate for l under s.
func (k Kernel) Calculate(l Lines, s Settings) Result {
	return Aggregate(k.Sums(l), s)
}

// Items writes dst[i] = quantities[i] * unitCosts[i] * coefficients[i] for
// every i in [0, len(quantities)).
// Panics if dst, unitCosts or coefficients is shorter than quantities.
func (k Kernel) Items(dst, quantities, unitCosts, coefficients []float64) {
	if len(dst) < len(quantities) {
		panic("estimate: destination shorter than quantities")
	}
	k.ops().MulMulBlock(dst, quantities, unitCosts, coefficients)
}

// Sum returns the sum of all elements in x.
func (k Kernel) Sum(x []float64) float64 {
	return k.ops().Sum(x)
}

// Dot returns sum(a[i] * b[i]) over the shorter of the two slices.
func (k Kernel) Dot(a, b []float64) float64 {
	return k.ops().DotProduct(a, b)
}
