package pagetree

import (
	"pagetree/internal/page"
	"pagetree/internal/storage"
)

// DuplicatePolicy controls how Insert treats a key equal to one already stored.
type DuplicatePolicy int

const (
	// AllowDuplicates stores equal keys side by side. Among equals, insertion
	// order is preserved: a later key is always placed after earlier ones.
	AllowDuplicates DuplicatePolicy = iota

	// RejectDuplicates makes Insert return ErrDuplicateKey when an equal key
	// is already present. The tree is left unchanged.
	RejectDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case AllowDuplicates:
		return "allow"
	case RejectDuplicates:
		return "reject"
	default:
		return "unknown"
	}
}

// Options configures tree behavior.
type Options struct {
	pageSize   int // Target node size in bytes. Capacity is pageSize / key size.
	capacity   int // Explicit capacity. Overrides pageSize when non-zero.
	duplicates DuplicatePolicy
	logger     Logger
}

func defaultOptions() Options {
	return Options{
		pageSize:   storage.PageSize(),
		duplicates: AllowDuplicates,
		logger:     DiscardLogger{},
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithPageSize sets the target size of a node in bytes. The node capacity M
// is derived as pageSize divided by the codec's key size.
//
//goland:noinspection GoUnusedExportedFunction
func WithPageSize(bytes int) Option {
	return func(opts *Options) {
		opts.pageSize = bytes
	}
}

// WithCapacity sets the node capacity M directly, ignoring the page size.
//
//goland:noinspection GoUnusedExportedFunction
func WithCapacity(m int) Option {
	return func(opts *Options) {
		opts.capacity = m
	}
}

// WithDuplicates selects how equal keys are handled on insert.
//
//goland:noinspection GoUnusedExportedFunction
func WithDuplicates(policy DuplicatePolicy) Option {
	return func(opts *Options) {
		opts.duplicates = policy
	}
}

// WithLogger sets the logger for structural events. A nil logger restores
// the default DiscardLogger.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger Logger) Option {
	return func(opts *Options) {
		if logger == nil {
			logger = DiscardLogger{}
		}
		opts.logger = logger
	}
}

// capacityFor derives M for a key of the given serialized size. M must be at
// least 2 and small enough for a node to fit one page image.
func (o Options) capacityFor(keySize int) (int, error) {
	m := o.capacity
	if m == 0 {
		if keySize <= 0 {
			return 0, ErrInvalidCapacity
		}
		m = o.pageSize / keySize
	}
	if m < 2 || m > page.MaxKeys {
		return 0, ErrInvalidCapacity
	}
	return m, nil
}
