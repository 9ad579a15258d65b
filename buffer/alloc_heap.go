//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package buffer

import "unsafe"

// allocate over-allocates a Go slice by Alignment-1 bytes and returns the
// aligned window inside it. The garbage collector reclaims the memory once
// the block is dropped.
func allocate(size int) ([]byte, func() error, error) {
	raw := make([]byte, size+Alignment-1)
	off := alignUp(uintptr(unsafe.Pointer(&raw[0])))
	return raw[off : off+size : off+size], func() error { return nil }, nil
}
