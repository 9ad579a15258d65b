package estimate

import "time"

// benchmarkWarmup is the number of untimed calls before measurement starts.
const benchmarkWarmup = 10

// BenchmarkResult reports the timing of repeated Calculate calls.
type BenchmarkResult struct {
	Tier       Tier
	Items      int
	Iterations int
	Elapsed    time.Duration
	Result     Result
}

// PerCall returns the mean duration of one Calculate call.
func (b BenchmarkResult) PerCall() time.Duration {
	if b.Iterations == 0 {
		return 0
	}
	return b.Elapsed / time.Duration(b.Iterations)
}

// ItemsPerSecond returns line items processed per second.
func (b BenchmarkResult) ItemsPerSecond() float64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return float64(b.Items) * float64(b.Iterations) / b.Elapsed.Seconds()
}

// Benchmark times iterations calls of k.Calculate over SyntheticLines(items)
// with default settings, after a short warm-up. Non-positive iterations
// default to one.
func Benchmark(items, iterations int, k Kernel) BenchmarkResult {
	return BenchmarkLines(SyntheticLines(items), iterations, k)
}

// BenchmarkLines is Benchmark over caller-provided lines, for callers that
// place the columns in their own (for example aligned) storage.
func BenchmarkLines(lines Lines, iterations int, k Kernel) BenchmarkResult {
	if iterations <= 0 {
		iterations = 1
	}
	settings := DefaultSettings()

	var r Result
	for range benchmarkWarmup {
		r = k.Calculate(lines, settings)
	}

	start := time.Now()
	for range iterations {
		r = k.Calculate(lines, settings)
	}
	elapsed := time.Since(start)

	return BenchmarkResult{
		Tier:       k.Tier(),
		Items:      lines.Len(),
		Iterations: iterations,
		Elapsed:    elapsed,
		Result:     r,
	}
}
