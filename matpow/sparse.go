package matpow

import (
	"github.com/arborix/reachflow/partition"
	"github.com/arborix/reachflow/sparsemat"
	"gonum.org/v1/gonum/mat"
)

// SparseHandle is the explicit-sparse matrix-power backend: Φᵏ is held
// as a sparsemat.CSR and advanced by Φᵏ⁺¹ ← Φᵏ · Φ (sparse × sparse
// product), preserving sparsity so the structural-zero test stays cheap
// across the whole horizon.
type SparseHandle struct {
	part *partition.Partition
	phi  *sparsemat.CSR // Φ¹, held fixed
	cur  *sparsemat.CSR // Φᵏ
	k    int
}

// NewSparse constructs a SparseHandle for state-transition matrix phi
// over the given partition, starting at k=1 (Φ¹ = phi).
func NewSparse(part *partition.Partition, phi *sparsemat.CSR) (*SparseHandle, error) {
	r, c := phi.Dims()
	if r != part.N() || c != part.N() {
		return nil, ErrDimensionMismatch
	}
	return &SparseHandle{part: part, phi: phi, cur: phi, k: 1}, nil
}

// K returns the current exponent.
func (h *SparseHandle) K() int { return h.k }

// Row returns Φᵏ[P[blockIdx], :] materialized densely for the caller.
func (h *SparseHandle) Row(blockIdx int) (mat.Matrix, error) {
	lo, hi, err := blockBounds(h.part, blockIdx)
	if err != nil {
		return nil, err
	}
	return h.cur.RowBlockDense(lo, hi), nil
}

// Sub returns Φᵏ[P[i], P[j]] materialized densely for the caller.
func (h *SparseHandle) Sub(i, j int) (mat.Matrix, error) {
	rowLo, rowHi, err := blockBounds(h.part, i)
	if err != nil {
		return nil, err
	}
	colLo, colHi, err := blockBounds(h.part, j)
	if err != nil {
		return nil, err
	}
	return h.cur.SubBlockDense(rowLo, rowHi, colLo, colHi), nil
}

// IsZeroBlock answers directly from Φᵏ's sparsity pattern — the zero
// test spec.md §4.5's sparse micro-strategy relies on to skip a
// cross-block contribution without ever constructing it.
func (h *SparseHandle) IsZeroBlock(i, j int) (bool, error) {
	rowLo, rowHi, err := blockBounds(h.part, i)
	if err != nil {
		return false, err
	}
	colLo, colHi, err := blockBounds(h.part, j)
	if err != nil {
		return false, err
	}
	return h.cur.IsStructurallyZero(rowLo, rowHi, colLo, colHi), nil
}

// Advance computes Φᵏ⁺¹ ← Φᵏ · Φ.
func (h *SparseHandle) Advance() error {
	next, err := sparsemat.Mul(h.cur, h.phi)
	if err != nil {
		return err
	}
	h.cur = next
	h.k++
	return nil
}
