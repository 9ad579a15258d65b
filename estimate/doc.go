// Package estimate computes weighted construction cost estimates on the
// widest vector tier the host CPU supports.
//
// An estimate is a set of line items, each carrying a quantity and five unit
// costs (direct, labor, machine operator, material, machine). The per
// category sums of quantity x unit cost are accumulated by one of three
// interchangeable kernel tiers:
//
//   - TierWide:   AVX-512F, 8 x float64 per instruction
//   - TierNarrow: AVX2 + FMA, 4 x float64 per instruction
//   - TierScalar: pure Go, one element at a time
//
// and then turned into overhead, profit, subtotal, VAT and total by
// Aggregate, which is shared by every tier.
//
// CalculateAuto probes the CPU and runs the best tier. The explicit
// Calculate{Scalar,Narrow,Wide} variants never fault on hardware that lacks
// the requested instructions: they fall back to the best tier the host can
// run. Tier results agree within a relative tolerance of 1e-9 but are not bit
// identical, because the vector tiers sum in a different order.
//
// The vector tiers are compiled only for amd64 with GOEXPERIMENT=simd and
// without the purego build tag. Other builds run the scalar tier everywhere.
//
// All functions are safe for concurrent use.
package estimate
