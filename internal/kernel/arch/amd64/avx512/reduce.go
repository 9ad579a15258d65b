//go:build amd64 && goexperiment.simd && !purego

// Package avx512 provides the wide tier of the estimate kernels: 512-bit
// vectors holding eight float64 lanes, built on simd/archsimd.
//
// Inputs shorter than one wide vector are handed to the AVX2 tier; the
// remainder after the last full 8-element chunk goes through one 4-wide
// chunk and then the scalar tier.
package avx512

import "simd/archsimd"

// Lanes is the number of float64 values processed per vector instruction.
const Lanes = 8

// reduce folds the eight lanes of v into one scalar, halving the width on
// every step: 8 -> 4 -> 2 -> 1.
func reduce(v archsimd.Float64x8) float64 {
	var t [Lanes]float64
	v.StoreSlice(t[:])
	s0 := t[0] + t[4]
	s1 := t[1] + t[5]
	s2 := t[2] + t[6]
	s3 := t[3] + t[7]
	return (s0 + s2) + (s1 + s3)
}
