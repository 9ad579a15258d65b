package registry

import (
	"testing"

	"github.com/cwbudde/algo-estimate/internal/cpu"
)

func dummyEntry(name string, level cpu.SIMDLevel, priority int) OpEntry {
	return OpEntry{
		Name:      name,
		SIMDLevel: level,
		Priority:  priority,
		EstimateSums: func(q []float64, unit [Categories][]float64) [Categories]float64 {
			return [Categories]float64{}
		},
		Sum:         func(x []float64) float64 { return 0 },
		DotProduct:  func(a, b []float64) float64 { return 0 },
		MulMulBlock: func(dst, a, b, c []float64) {},
	}
}

func TestOpRegistry_Register(t *testing.T) {
	// Create a fresh registry for testing
	reg := &OpRegistry{}

	reg.Register(dummyEntry("generic", cpu.SIMDNone, 0))
	reg.Register(dummyEntry("avx2", cpu.SIMDAVX2, 20))

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "avx2" {
		t.Fatalf("entries not sorted by priority: first is %q", entries[0].Name)
	}
}

func TestOpRegistry_RegisterReplacesByName(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(dummyEntry("generic", cpu.SIMDNone, 0))
	reg.Register(dummyEntry("generic", cpu.SIMDNone, 5))

	entries := reg.ListEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after re-registration, got %d", len(entries))
	}
	if entries[0].Priority != 5 {
		t.Fatalf("expected replaced priority 5, got %d", entries[0].Priority)
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// Register tiers out of order to test sorting
	reg.Register(dummyEntry("avx2", cpu.SIMDAVX2, 20))
	reg.Register(dummyEntry("generic", cpu.SIMDNone, 0))
	reg.Register(dummyEntry("avx512", cpu.SIMDAVX512, 30))

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "AVX-512 available - select avx512",
			features: cpu.Features{HasAVX2: true, HasFMA: true, HasAVX512: true},
			want:     "avx512",
		},
		{
			name:     "AVX2 and FMA - select avx2",
			features: cpu.Features{HasAVX2: true, HasFMA: true},
			want:     "avx2",
		},
		{
			name:     "AVX2 without FMA - select generic",
			features: cpu.Features{HasAVX2: true},
			want:     "generic",
		},
		{
			name:     "No SIMD - select generic",
			features: cpu.Features{},
			want:     "generic",
		},
		{
			name: "ForceGeneric - select generic",
			features: cpu.Features{
				HasAVX2:      true,
				HasFMA:       true,
				HasAVX512:    true,
				ForceGeneric: true,
			},
			want: "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_LookupAtMost(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(dummyEntry("generic", cpu.SIMDNone, 0))
	reg.Register(dummyEntry("avx2", cpu.SIMDAVX2, 20))
	reg.Register(dummyEntry("avx512", cpu.SIMDAVX512, 30))

	all := cpu.Features{HasAVX2: true, HasFMA: true, HasAVX512: true}

	tests := []struct {
		name     string
		features cpu.Features
		limit    cpu.SIMDLevel
		want     string
	}{
		{"limit none", all, cpu.SIMDNone, "generic"},
		{"limit avx2", all, cpu.SIMDAVX2, "avx2"},
		{"limit avx512", all, cpu.SIMDAVX512, "avx512"},
		{"wide requested on narrow host", cpu.Features{HasAVX2: true, HasFMA: true}, cpu.SIMDAVX512, "avx2"},
		{"wide requested on scalar host", cpu.Features{}, cpu.SIMDAVX512, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.LookupAtMost(tt.features, tt.limit)
			if entry == nil {
				t.Fatal("LookupAtMost returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_LookupSkipsIncomplete(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(dummyEntry("generic", cpu.SIMDNone, 0))
	reg.Register(OpEntry{Name: "partial", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	entry := reg.Lookup(cpu.Features{HasAVX2: true, HasFMA: true})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected incomplete entry to be skipped, got %+v", entry)
	}
}

func TestOpRegistry_LookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil from empty registry, got %q", entry.Name)
	}
}

func TestOpRegistry_Reset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(dummyEntry("generic", cpu.SIMDNone, 0))
	reg.Reset()

	if n := len(reg.ListEntries()); n != 0 {
		t.Fatalf("expected 0 entries after Reset, got %d", n)
	}
}
