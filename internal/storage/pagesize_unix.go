// pagesize_unix.go
//go:build linux || darwin

package storage

import "golang.org/x/sys/unix"

// PageSize returns the memory page size of the host, used as the default
// node budget.
func PageSize() int {
	if size := unix.Getpagesize(); size > 0 {
		return size
	}
	return DefaultPageSize
}
