package partition

import "errors"

// Sentinel errors for the partition package.
var (
	// ErrEmptyPartition indicates a partition with zero blocks was given.
	ErrEmptyPartition = errors.New("partition: must have at least one block")

	// ErrEmptyBlock indicates a block with Hi < Lo (non-positive length).
	ErrEmptyBlock = errors.New("partition: block must be non-empty")

	// ErrNotAscending indicates blocks are not strictly ascending, or
	// overlap, or leave a gap — violating the "blocks cover {1..n} exactly
	// once, in order" invariant from spec.md §3.
	ErrNotAscending = errors.New("partition: blocks must be contiguous, ascending and non-overlapping")

	// ErrVarOutOfRange indicates a variable-of-interest index outside
	// [0, n).
	ErrVarOutOfRange = errors.New("partition: variable index out of range")

	// ErrUnsortedVars indicates the caller-supplied variables-of-interest
	// slice was not sorted ascending, which §4.1 requires as a precondition.
	ErrUnsortedVars = errors.New("partition: variables of interest must be sorted ascending")
)
