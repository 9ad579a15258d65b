// Package registry provides the tier registry for estimate kernels.
//
// The registry-based dispatch system allows the scalar, narrow (AVX2) and
// wide (AVX-512) kernel tiers to coexist. Tier packages register themselves
// via init() functions, and the estimate package looks up the best tier for
// the current CPU on every call.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-estimate/internal/cpu"
)

// Categories is the number of cost categories accumulated by EstimateSums:
// direct, labor, machine operator, material and machine.
const Categories = 5

// EstimateSumsFunc returns, for every category c, sum(q[i] * unit[c][i]).
// Every unit[c] must hold at least len(q) elements.
type EstimateSumsFunc func(q []float64, unit [Categories][]float64) [Categories]float64

// OpEntry represents a registered kernel tier.
//
// Each entry contains typed function pointers for all operations at a
// specific SIMD level. A tier registered without one of the operations is
// skipped by lookups for that operation.
type OpEntry struct {
	// Name is a human-readable identifier for this tier (e.g., "avx2").
	Name string

	// SIMDLevel indicates the instruction set required for this tier.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible tiers exist.
	// Higher priority tiers are preferred. Suggested priorities:
	//   - Scalar (SIMDNone): 0
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	// EstimateSums accumulates the five weighted category sums.
	EstimateSums EstimateSumsFunc

	// Sum returns the sum of all elements in the slice: sum(x[i]).
	Sum func(x []float64) float64

	// DotProduct returns the dot product of two slices: sum(a[i] * b[i]).
	DotProduct func(a, b []float64) float64

	// MulMulBlock performs chained element-wise multiplication:
	// dst[i] = a[i] * b[i] * c[i].
	MulMulBlock func(dst, a, b, c []float64)
}

// Complete reports whether every operation of the entry is populated.
func (e *OpEntry) Complete() bool {
	return e.EstimateSums != nil && e.Sum != nil && e.DotProduct != nil && e.MulMulBlock != nil
}

// OpRegistry manages the registration and lookup of kernel tiers.
//
// Tiers register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority tier compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the default registry instance used by the estimate package.
var Global = &OpRegistry{}

// Register adds a tier to the registry, keeping entries sorted by priority
// (descending). Registering a second entry with the same name replaces the
// first.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			r.entries[i] = entry
			r.sortByPriority()
			return
		}
	}

	r.entries = append(r.entries, entry)
	r.sortByPriority()
}

// Lookup finds the best tier for the given CPU features.
//
// Returns the highest-priority complete entry compatible with the CPU, or
// nil if none is registered (which should never happen once the scalar tier
// is linked in).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	return r.LookupAtMost(features, cpu.SIMDAVX512)
}

// LookupAtMost finds the best tier whose SIMD level does not exceed limit.
//
// It is used when a caller asks for a specific tier: a tier the CPU (or the
// build) cannot run degrades to the next lower one instead of faulting.
func (r *OpRegistry) LookupAtMost(features cpu.Features, limit cpu.SIMDLevel) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.SIMDLevel > limit || !entry.Complete() {
			continue
		}
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Priority > r.entries[j].Priority
	})
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and diagnostics.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}
