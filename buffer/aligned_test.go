package buffer

import (
	"errors"
	"math"
	"testing"
	"unsafe"
)

func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

func TestAllocateAligned(t *testing.T) {
	for _, size := range []int{1, 7, 8, 63, 64, 65, 4096, 100003} {
		a, err := Allocate(size)
		if err != nil {
			t.Fatalf("Allocate(%d) error: %v", size, err)
		}
		if a.Len() != size {
			t.Fatalf("Allocate(%d).Len() = %d", size, a.Len())
		}
		b := a.Bytes()
		if p := addr(b); p%Alignment != 0 {
			t.Fatalf("Allocate(%d) start %#x not %d-byte aligned", size, p, Alignment)
		}
		for i, v := range b {
			if v != 0 {
				t.Fatalf("Allocate(%d) byte %d = %d, want 0", size, i, v)
			}
		}
		b[size-1] = 0xff
		if err := a.Release(); err != nil {
			t.Fatalf("Release error: %v", err)
		}
	}
}

func TestAllocateZero(t *testing.T) {
	a, err := Allocate(0)
	if err != nil {
		t.Fatalf("Allocate(0) error: %v", err)
	}
	if a.Len() != 0 || a.Bytes() != nil || a.Float64s() != nil {
		t.Fatal("Allocate(0) should be empty")
	}
	if err := a.Release(); err != nil {
		t.Fatalf("Release error: %v", err)
	}
}

func TestAllocateInvalidSize(t *testing.T) {
	for _, size := range []int{-1, math.MaxInt, math.MaxInt - Alignment + 1} {
		a, err := Allocate(size)
		if a != nil {
			t.Errorf("Allocate(%d) returned a block", size)
		}
		if !errors.Is(err, ErrAllocation) {
			t.Errorf("Allocate(%d) error = %v, want ErrAllocation", size, err)
		}
	}
}

func TestNewFloat64s(t *testing.T) {
	a, err := NewFloat64s(17)
	if err != nil {
		t.Fatalf("NewFloat64s error: %v", err)
	}
	defer a.Release()

	f := a.Float64s()
	if len(f) != 17 {
		t.Fatalf("len(Float64s()) = %d, want 17", len(f))
	}
	for i := range f {
		f[i] = float64(i)
	}
	if f[16] != 16 {
		t.Fatal("Float64s view not writable")
	}
	if p := uintptr(unsafe.Pointer(&f[0])); p%Alignment != 0 {
		t.Fatalf("Float64s start %#x not aligned", p)
	}

	if _, err := NewFloat64s(-3); !errors.Is(err, ErrAllocation) {
		t.Fatalf("NewFloat64s(-3) error = %v, want ErrAllocation", err)
	}
	if _, err := NewFloat64s(math.MaxInt / 4); !errors.Is(err, ErrAllocation) {
		t.Fatalf("NewFloat64s(huge) error = %v, want ErrAllocation", err)
	}
}

func TestFloat64sDropsTrailingBytes(t *testing.T) {
	a, err := Allocate(20)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	if n := len(a.Float64s()); n != 2 {
		t.Fatalf("len(Float64s()) = %d, want 2", n)
	}
}

func TestReleaseTwice(t *testing.T) {
	a, err := Allocate(128)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Release(); err != nil {
		t.Fatalf("first Release error: %v", err)
	}
	if err := a.Release(); !errors.Is(err, ErrReleased) {
		t.Fatalf("second Release error = %v, want ErrReleased", err)
	}
	if a.Len() != 0 || a.Bytes() != nil {
		t.Fatal("released block still exposes memory")
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		p    uintptr
		want int
	}{
		{0, 0}, {1, 63}, {63, 1}, {64, 0}, {65, 63}, {128, 0},
	}
	for _, tt := range tests {
		if got := alignUp(tt.p); got != tt.want {
			t.Errorf("alignUp(%d) = %d, want %d", tt.p, got, tt.want)
		}
	}
}
