package matpow

import (
	"github.com/arborix/reachflow/partition"
	"gonum.org/v1/gonum/mat"
)

// DenseHandle is the explicit-dense matrix-power backend: Φᵏ is held as
// a gonum *mat.Dense and advanced in place against a pre-allocated
// scratch buffer, so Advance never allocates on the hot path (the same
// discipline a graph library's own Dense type documents for its
// arithmetic kernels).
type DenseHandle struct {
	part    *partition.Partition
	phi     *mat.Dense // Φ¹, held fixed
	cur     *mat.Dense // Φᵏ
	scratch *mat.Dense // reused destination buffer for cur*phi
	k       int
}

// NewDense constructs a DenseHandle for state-transition matrix phi over
// the given partition, starting at k=1.
func NewDense(part *partition.Partition, phi *mat.Dense) (*DenseHandle, error) {
	n := part.N()
	r, c := phi.Dims()
	if r != n || c != n {
		return nil, ErrDimensionMismatch
	}
	cur := mat.NewDense(n, n, nil)
	cur.Copy(phi)
	return &DenseHandle{
		part:    part,
		phi:     phi,
		cur:     cur,
		scratch: mat.NewDense(n, n, nil),
		k:       1,
	}, nil
}

// K returns the current exponent.
func (h *DenseHandle) K() int { return h.k }

// Row returns a read-only view onto Φᵏ[P[blockIdx], :]; no copy is made.
func (h *DenseHandle) Row(blockIdx int) (mat.Matrix, error) {
	lo, hi, err := blockBounds(h.part, blockIdx)
	if err != nil {
		return nil, err
	}
	_, n := h.cur.Dims()
	return h.cur.Slice(lo, hi+1, 0, n), nil
}

// Sub returns a read-only view onto Φᵏ[P[i], P[j]]; no copy is made.
func (h *DenseHandle) Sub(i, j int) (mat.Matrix, error) {
	rowLo, rowHi, err := blockBounds(h.part, i)
	if err != nil {
		return nil, err
	}
	colLo, colHi, err := blockBounds(h.part, j)
	if err != nil {
		return nil, err
	}
	return h.cur.Slice(rowLo, rowHi+1, colLo, colHi+1), nil
}

// IsZeroBlock conservatively reports false: a dense backend carries no
// sparsity pattern to consult, and the dense micro-strategy (spec.md
// §4.5) always materializes every slot rather than skipping.
func (h *DenseHandle) IsZeroBlock(i, j int) (bool, error) {
	if _, _, err := blockBounds(h.part, i); err != nil {
		return false, err
	}
	if _, _, err := blockBounds(h.part, j); err != nil {
		return false, err
	}
	return false, nil
}

// Advance computes scratch ← cur*phi, then swaps cur and scratch — the
// "never allocate inside the loop" in-place advance spec.md §4.4 asks
// for.
func (h *DenseHandle) Advance() error {
	h.scratch.Mul(h.cur, h.phi)
	h.cur, h.scratch = h.scratch, h.cur
	h.k++
	return nil
}
