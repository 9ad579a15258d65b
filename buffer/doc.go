// Package buffer provides 64-byte aligned memory blocks for estimate input
// columns.
//
// The kernels in package estimate accept any []float64 and use unaligned
// loads, so alignment is never required for correctness. Aligned columns only
// keep every 8-wide vector load inside one cache line. Callers own each block
// returned by Allocate and must Release it when done; Pool recycles blocks by
// size class for callers that allocate columns repeatedly.
package buffer
