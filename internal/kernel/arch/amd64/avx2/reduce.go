//go:build amd64 && goexperiment.simd && !purego

// Package avx2 provides the narrow tier of the estimate kernels: 256-bit
// vectors holding four float64 lanes, built on simd/archsimd.
//
// All loads and stores are unaligned. Inputs shorter than one vector are
// handed to the scalar tier.
package avx2

import "simd/archsimd"

// Lanes is the number of float64 values processed per vector instruction.
const Lanes = 4

// reduce folds the four lanes of v into one scalar: the upper half is added
// onto the lower half, then the remaining pair is added.
func reduce(v archsimd.Float64x4) float64 {
	var t [Lanes]float64
	v.StoreSlice(t[:])
	return (t[0] + t[2]) + (t[1] + t[3])
}
