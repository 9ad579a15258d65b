package cpu

import (
	"runtime"
	"sync"
	"testing"
)

func TestSIMDLevelString(t *testing.T) {
	cases := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "None"},
		{SIMDAVX2, "AVX2"},
		{SIMDAVX512, "AVX-512"},
		{SIMDLevel(99), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestSIMDLevelLanes(t *testing.T) {
	if got := SIMDNone.Lanes(); got != 1 {
		t.Errorf("SIMDNone.Lanes() = %d, want 1", got)
	}
	if got := SIMDAVX2.Lanes(); got != 4 {
		t.Errorf("SIMDAVX2.Lanes() = %d, want 4", got)
	}
	if got := SIMDAVX512.Lanes(); got != 8 {
		t.Errorf("SIMDAVX512.Lanes() = %d, want 8", got)
	}
}

func TestDetectFeaturesArchitecture(t *testing.T) {
	defer ResetDetection()
	ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH != "amd64" {
		if f.HasAVX2 || f.HasAVX512 || f.HasFMA {
			t.Fatalf("non-amd64 host reported x86 features: %+v", f)
		}
	}
}

func TestDetectFeaturesStable(t *testing.T) {
	defer ResetDetection()

	first := DetectFeatures()
	for range 10 {
		if got := DetectFeatures(); got != first {
			t.Fatalf("DetectFeatures() changed between calls: %+v vs %+v", first, got)
		}
	}
}

func TestDetectFeaturesConcurrent(t *testing.T) {
	defer ResetDetection()
	ResetDetection()

	want := DetectFeatures()
	ResetDetection()

	var wg sync.WaitGroup
	results := make([]Features, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = DetectFeatures()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Fatalf("goroutine %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, HasFMA: true, Architecture: "amd64"})
	if !HasNarrowVector() {
		t.Error("HasNarrowVector() = false with forced AVX2")
	}
	if !HasFMA() {
		t.Error("HasFMA() = false with forced FMA")
	}
	if HasWideVector() {
		t.Error("HasWideVector() = true without forced AVX-512")
	}

	ResetDetection()
	if got := DetectFeatures(); got.ForceGeneric {
		t.Fatal("ResetDetection did not clear forced features")
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"avx2 needs fma", Features{HasAVX2: true}, SIMDAVX2, false},
		{"avx2 with fma", Features{HasAVX2: true, HasFMA: true}, SIMDAVX2, true},
		{"avx512", Features{HasAVX512: true}, SIMDAVX512, true},
		{"avx512 missing", Features{HasAVX2: true, HasFMA: true}, SIMDAVX512, false},
		{"force generic blocks avx512", Features{HasAVX512: true, ForceGeneric: true}, SIMDAVX512, false},
		{"force generic allows none", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasAVX512: true}, SIMDLevel(42), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Fatalf("Supports(%+v, %s) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestBest(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     SIMDLevel
	}{
		{"scalar", Features{}, SIMDNone},
		{"narrow", Features{HasAVX2: true, HasFMA: true}, SIMDAVX2},
		{"avx2 without fma", Features{HasAVX2: true}, SIMDNone},
		{"wide", Features{HasAVX2: true, HasFMA: true, HasAVX512: true}, SIMDAVX512},
		{"forced generic", Features{HasAVX512: true, ForceGeneric: true}, SIMDNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Best(tt.features); got != tt.want {
				t.Fatalf("Best() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHost(t *testing.T) {
	h := Host()
	if h.Architecture != runtime.GOARCH {
		t.Fatalf("Host().Architecture = %q, want %q", h.Architecture, runtime.GOARCH)
	}
	if h.LogicalCores < 0 || h.PhysicalCores < 0 {
		t.Fatalf("negative core counts: %+v", h)
	}
}
