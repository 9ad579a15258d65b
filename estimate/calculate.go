package estimate

// CalculateScalar computes the estimate one item at a time.
func CalculateScalar(l Lines, s Settings) Result {
	return Select(TierScalar).Calculate(l, s)
}

// CalculateNarrow computes the estimate with 4-wide vectors, or with the
// scalar tier if the host lacks AVX2 and FMA.
func CalculateNarrow(l Lines, s Settings) Result {
	return Select(TierNarrow).Calculate(l, s)
}

// CalculateWide computes the estimate with 8-wide vectors, falling back to
// the narrow and then the scalar tier on hosts without AVX-512F. Fewer than
// eight items are handed to the narrow tier.
func CalculateWide(l Lines, s Settings) Result {
	return Select(TierWide).Calculate(l, s)
}

// CalculateAuto computes the estimate on the best tier for this host.
// The CPU probe is read on every call; it is memoized, so this is cheap.
func CalculateAuto(l Lines, s Settings) Result {
	return Best().Calculate(l, s)
}

// CalculateItems writes the per-item amount
// dst[i] = quantities[i] * unitCosts[i] * coefficients[i] on the best tier.
// Panics if dst, unitCosts or coefficients is shorter than quantities.
func CalculateItems(dst, quantities, unitCosts, coefficients []float64) {
	Best().Items(dst, quantities, unitCosts, coefficients)
}

// CalculateItemsScalar is CalculateItems on the scalar tier.
func CalculateItemsScalar(dst, quantities, unitCosts, coefficients []float64) {
	Select(TierScalar).Items(dst, quantities, unitCosts, coefficients)
}

// CalculateItemsNarrow is CalculateItems on the narrow tier.
func CalculateItemsNarrow(dst, quantities, unitCosts, coefficients []float64) {
	Select(TierNarrow).Items(dst, quantities, unitCosts, coefficients)
}

// CalculateItemsWide is CalculateItems on the wide tier.
func CalculateItemsWide(dst, quantities, unitCosts, coefficients []float64) {
	Select(TierWide).Items(dst, quantities, unitCosts, coefficients)
}

// CalculateItemsAuto is an alias for CalculateItems.
func CalculateItemsAuto(dst, quantities, unitCosts, coefficients []float64) {
	CalculateItems(dst, quantities, unitCosts, coefficients)
}

// FastSumScalar returns the sum of x on the scalar tier.
func FastSumScalar(x []float64) float64 {
	return Select(TierScalar).Sum(x)
}

// FastSumNarrow returns the sum of x on the narrow tier.
func FastSumNarrow(x []float64) float64 {
	return Select(TierNarrow).Sum(x)
}

// FastSumWide returns the sum of x on the wide tier.
func FastSumWide(x []float64) float64 {
	return Select(TierWide).Sum(x)
}

// FastSumAuto returns the sum of x on the best tier.
func FastSumAuto(x []float64) float64 {
	return Best().Sum(x)
}

// DotProduct returns sum(a[i] * b[i]) over the shorter of a and b, on the
// best tier.
func DotProduct(a, b []float64) float64 {
	return Best().Dot(a, b)
}
