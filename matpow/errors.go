package matpow

import "errors"

// Sentinel errors for the matpow package.
var (
	// ErrBlockOutOfRange indicates a row or column block index outside
	// the configured partition's range.
	ErrBlockOutOfRange = errors.New("matpow: block index out of range")

	// ErrDimensionMismatch indicates Φ's dimensions disagree with the
	// partition's total variable count, or a scratch buffer's shape
	// disagrees with Φ's.
	ErrDimensionMismatch = errors.New("matpow: dimension mismatch")

	// ErrNilExtractor indicates a LazyExp handle was constructed without
	// a RowsExtractor.
	ErrNilExtractor = errors.New("matpow: rows extractor must not be nil")

	// ErrExternal wraps a failure reported by an external collaborator
	// (e.g. the RowsExtractor failing to converge), surfaced unchanged
	// per spec.md §7's ExternalError propagation policy.
	ErrExternal = errors.New("matpow: external collaborator failed")
)
