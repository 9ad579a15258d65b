//go:build linux || darwin || freebsd || netbsd || openbsd

package buffer

import "golang.org/x/sys/unix"

// allocate maps anonymous private memory. Mappings start on a page boundary,
// which is always a multiple of Alignment, and the kernel hands them out
// zero-filled.
func allocate(size int) ([]byte, func() error, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return mem, func() error { return unix.Munmap(mem) }, nil
}
