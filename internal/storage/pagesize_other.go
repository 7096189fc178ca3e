// pagesize_other.go
//go:build !linux && !darwin

package storage

// On unsupported platforms the page size falls back to DefaultPageSize
func PageSize() int {
	return DefaultPageSize
}
