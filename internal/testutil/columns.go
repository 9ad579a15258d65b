package testutil

import "math/rand"

// DeterministicNoise generates uniform values in [-amplitude, amplitude) with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicPositive generates uniform values in [lo, hi) with a fixed
// seed. Quantities and unit costs in tests are drawn from it.
func DeterministicPositive(seed int64, lo, hi float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// Ramp returns start, start+step, start+2*step, ... of the given length.
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// DC generates a constant-valued column.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// CostColumns returns a quantity column and five unit-cost columns of length
// n, all drawn deterministically from seed. Quantities lie in [1, 50) and
// costs in [10, 5000), the ranges an estimate line realistically carries.
func CostColumns(seed int64, n int) (q []float64, unit [5][]float64) {
	q = DeterministicPositive(seed, 1, 50, n)
	for c := range unit {
		unit[c] = DeterministicPositive(seed+int64(c)+1, 10, 5000, n)
	}
	return q, unit
}
