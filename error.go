package pagetree

import (
	"errors"

	"pagetree/internal/page"
)

//goland:noinspection GoUnusedGlobalVariable
var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrEmptyTree         = errors.New("tree is empty")
	ErrInvalidComparison = errors.New("comparison with invalid key")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrInvalidCapacity   = errors.New("node capacity must be between 2 and 65535")
	ErrCorruption        = errors.New("tree invariant violated")

	ErrInvalidPageSize    = page.ErrInvalidPageSize
	ErrInvalidChecksum    = page.ErrInvalidChecksum
	ErrInvalidMagicNumber = page.ErrInvalidMagicNumber
	ErrPageOverflow       = page.ErrPageOverflow
	ErrTruncated          = page.ErrTruncated
)
