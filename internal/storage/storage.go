// Package storage reports the page size nodes are budgeted against. Nodes are
// never written to disk by this module; the size only bounds node capacity.
package storage

// DefaultPageSize is used when the host page size cannot be determined.
const DefaultPageSize = 4096
