//go:build !amd64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for architectures without x86 vector
// extensions.
//
// Returns a Features struct with all SIMD flags set to false,
// indicating only the scalar tier should be used.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
