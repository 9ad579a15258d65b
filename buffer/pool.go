package buffer

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sync"
)

// defaultPerClass bounds how many idle blocks a Pool keeps per size class.
const defaultPerClass = 8

// Pool recycles aligned blocks by power-of-two size class to avoid repeated
// mmap and munmap calls when the same column sizes are allocated in a loop.
//
// Unlike sync.Pool, idle blocks are never dropped silently: blocks that
// do not fit the free list are released, and Close releases the rest.
type Pool struct {
	mu       sync.Mutex
	free     map[int][]*Aligned
	perClass int
}

// NewPool returns a Pool that keeps at most perClass idle blocks per size
// class. Non-positive values select a default of 8.
func NewPool(perClass int) *Pool {
	if perClass <= 0 {
		perClass = defaultPerClass
	}
	return &Pool{free: make(map[int][]*Aligned), perClass: perClass}
}

// maxClass is the largest power of two an int can hold.
const maxClass = 1 << (bits.UintSize - 2)

// sizeClass rounds n up to a power of two, at least Alignment. Sizes above
// maxClass have no class and return 0.
func sizeClass(n int) int {
	if n <= Alignment {
		return Alignment
	}
	if n > maxClass {
		return 0
	}
	return 1 << bits.Len(uint(n-1))
}

// Get returns a zero-filled block of sizeBytes bytes.
// Callers must return it via Put or Release it when done.
func (p *Pool) Get(sizeBytes int) (*Aligned, error) {
	if sizeBytes <= 0 {
		return Allocate(sizeBytes)
	}
	class := sizeClass(sizeBytes)
	if class == 0 {
		return Allocate(sizeBytes)
	}

	p.mu.Lock()
	idle := p.free[class]
	var a *Aligned
	if n := len(idle); n > 0 {
		a = idle[n-1]
		p.free[class] = idle[:n-1]
	}
	p.mu.Unlock()

	if a == nil {
		var err error
		a, err = Allocate(class)
		if err != nil {
			return nil, err
		}
	}

	a.resize(sizeBytes)
	clear(a.Bytes())
	return a, nil
}

// GetFloat64s returns a zero-filled block holding n float64 values.
func (p *Pool) GetFloat64s(n int) (*Aligned, error) {
	if n < 0 || n > (math.MaxInt-Alignment)/8 {
		return nil, fmt.Errorf("%w: length %d out of range", ErrAllocation, n)
	}
	return p.Get(n * 8)
}

// Put returns a block to the pool. The caller must not use the block after
// calling Put. Nil, released and foreign-sized blocks are ignored or
// released as appropriate.
func (p *Pool) Put(a *Aligned) {
	if a == nil || a.released.Load() {
		return
	}
	class := a.capacity()
	if class < Alignment || sizeClass(class) != class {
		_ = a.Release()
		return
	}

	p.mu.Lock()
	if len(p.free[class]) < p.perClass {
		p.free[class] = append(p.free[class], a)
		a = nil
	}
	p.mu.Unlock()

	if a != nil {
		_ = a.Release()
	}
}

// Idle returns the number of blocks currently held by the pool.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, idle := range p.free {
		n += len(idle)
	}
	return n
}

// Close releases every idle block. The pool stays usable afterwards.
func (p *Pool) Close() error {
	p.mu.Lock()
	free := p.free
	p.free = make(map[int][]*Aligned)
	p.mu.Unlock()

	var errs []error
	for _, idle := range free {
		for _, a := range idle {
			if err := a.Release(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
