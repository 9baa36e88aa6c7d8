package matpow

import (
	"github.com/arborix/reachflow/partition"
	"gonum.org/v1/gonum/mat"
)

// Handle is the matrix-power driver contract every backend implements.
// After Advance has been called k-1 times following construction, Row
// and Sub must yield blocks of Φᵏ (spec.md §3's matrix-power handle
// invariant).
type Handle interface {
	// Row returns Φᵏ[P[blockIdx], :] — all columns of the given block's
	// rows.
	Row(blockIdx int) (mat.Matrix, error)

	// Sub returns Φᵏ[P[i], P[j]] — the rows of block i restricted to the
	// columns of block j.
	Sub(i, j int) (mat.Matrix, error)

	// IsZeroBlock reports whether Φᵏ[P[i], P[j]] is structurally zero,
	// when the backend can answer cheaply (the sparse backend can; dense
	// and lazy-exponential backends conservatively report false, since
	// they have no sparsity pattern to consult without materializing).
	IsZeroBlock(i, j int) (bool, error)

	// Advance moves the handle from Φᵏ to Φᵏ⁺¹.
	Advance() error

	// K returns the current exponent k.
	K() int
}

// blockBounds returns the inclusive [lo, hi] variable-index range for
// block idx, validating idx against the partition.
func blockBounds(part *partition.Partition, idx int) (lo, hi int, err error) {
	if idx < 0 || idx >= part.Len() {
		return 0, 0, ErrBlockOutOfRange
	}
	b := part.Block(idx)
	return b.Lo, b.Hi, nil
}
