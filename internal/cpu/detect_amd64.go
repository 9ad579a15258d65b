//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// Uses golang.org/x/sys/cpu which issues CPUID leaves 1 and 7 and also
// checks XGETBV, so a flag is only set when the OS saves the wider register
// state. AVX-512 reports false on CPUs whose kernel disabled ZMM state.
func detectFeaturesImpl() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasFMA:       cpu.X86.HasFMA,
		Architecture: runtime.GOARCH,
	}
}
