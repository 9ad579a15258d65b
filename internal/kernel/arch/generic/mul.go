package generic

// MulMulBlock performs chained element-wise multiplication:
// dst[i] = a[i] * b[i] * c[i] for i in [0, len(a)).
// Panics if dst, b or c is shorter than a.
func MulMulBlock(dst, a, b, c []float64) {
	n := len(a)
	if len(b) < n || len(c) < n || len(dst) < n {
		panic("kernel: slice length mismatch")
	}
	MulMulTail(dst, a, b, c, 0)
}

// MulMulTail computes dst[i] = a[i] * b[i] * c[i] for i in [from, len(a)).
// Bounds are the caller's responsibility.
func MulMulTail(dst, a, b, c []float64, from int) {
	n := len(a)
	b, c, dst = b[:n], c[:n], dst[:n]
	for i := from; i < n; i++ {
		dst[i] = a[i] * b[i] * c[i]
	}
}
