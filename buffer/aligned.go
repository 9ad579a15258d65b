package buffer

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"
)

// Alignment is the guaranteed alignment, in bytes, of every block's start
// address. It matches the cache-line size and the width of a 512-bit vector.
const Alignment = 64

var (
	// ErrAllocation is returned, wrapped, when a block cannot be allocated.
	ErrAllocation = errors.New("buffer: allocation failed")

	// ErrReleased is returned by Release on a block that was already released.
	ErrReleased = errors.New("buffer: block already released")
)

// Aligned is a block of memory whose first byte sits on an Alignment
// boundary.
type Aligned struct {
	block    []byte // aligned, full capacity
	n        int    // visible length in bytes
	free     func() error
	released atomic.Bool
}

// Allocate returns a block of sizeBytes bytes starting on a 64-byte boundary.
// The block is zero-filled. A zero size yields a valid empty block.
//
// Allocate never panics: a negative or overflowing size, or the operating
// system refusing the request, returns nil and an error wrapping
// ErrAllocation.
func Allocate(sizeBytes int) (*Aligned, error) {
	if sizeBytes < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, sizeBytes)
	}
	if sizeBytes > math.MaxInt-Alignment {
		return nil, fmt.Errorf("%w: size %d overflows", ErrAllocation, sizeBytes)
	}
	if sizeBytes == 0 {
		return &Aligned{free: func() error { return nil }}, nil
	}

	block, free, err := allocate(sizeBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrAllocation, sizeBytes, err)
	}
	return &Aligned{block: block, n: sizeBytes, free: free}, nil
}

// NewFloat64s allocates an aligned block holding n float64 values.
func NewFloat64s(n int) (*Aligned, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrAllocation, n)
	}
	if n > (math.MaxInt-Alignment)/8 {
		return nil, fmt.Errorf("%w: length %d overflows", ErrAllocation, n)
	}
	return Allocate(n * 8)
}

// Len returns the block size in bytes, or 0 after Release.
func (a *Aligned) Len() int {
	if a.released.Load() {
		return 0
	}
	return a.n
}

// Bytes returns the block. The slice must not be used after Release.
func (a *Aligned) Bytes() []byte {
	if a.released.Load() || a.n == 0 {
		return nil
	}
	return a.block[:a.n:a.n]
}

// Float64s views the block as float64 values; trailing bytes that do not
// fill a whole float64 are not part of the view. The slice must not be used
// after Release.
func (a *Aligned) Float64s() []float64 {
	b := a.Bytes()
	if len(b) < 8 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b[0])), len(b)/8)
}

// Release returns the block's memory. Releasing a block twice returns
// ErrReleased.
func (a *Aligned) Release() error {
	if !a.released.CompareAndSwap(false, true) {
		return ErrReleased
	}
	a.block = nil
	return a.free()
}

// capacity returns the usable size of the underlying allocation.
func (a *Aligned) capacity() int {
	return len(a.block)
}

// resize sets the visible length; n must not exceed capacity.
func (a *Aligned) resize(n int) {
	a.n = n
}

// alignUp returns the offset from p to the next Alignment boundary.
func alignUp(p uintptr) int {
	return int((Alignment - p%Alignment) % Alignment)
}
