package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// HostInfo describes the processor for diagnostics. It plays no part in
// kernel selection.
type HostInfo struct {
	Vendor        string
	Brand         string
	PhysicalCores int
	LogicalCores  int
	CacheLine     int
	L1DataCache   int // bytes, -1 if unknown
	Architecture  string
}

// Host returns descriptive information about the current processor.
func Host() HostInfo {
	return HostInfo{
		Vendor:        cpuid.CPU.VendorString,
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		CacheLine:     cpuid.CPU.CacheLine,
		L1DataCache:   cpuid.CPU.Cache.L1D,
		Architecture:  runtime.GOARCH,
	}
}
