package matpow

import (
	"fmt"

	"github.com/arborix/reachflow/partition"
	"gonum.org/v1/gonum/mat"
)

// RowsExtractor is the external collaborator that materializes a
// sub-block of exp(A·δ·k) on demand — computing a matrix exponential is
// explicitly out of scope for this engine (spec.md §1). assumeSparse is
// the flag given to NewLazyExp, forwarded so the extractor may choose a
// sparsity-aware algorithm internally; this package never interprets it.
type RowsExtractor func(a mat.Matrix, delta float64, k int, rowLo, rowHi, colLo, colHi int, assumeSparse bool) (mat.Matrix, error)

// LazyExpHandle is the lazy-matrix-exponential backend: it stores the
// continuous generator A, the time step δ, and an integer exponent k,
// and forwards row/sub-block queries to extractor for exp(A·δ·k).
//
// Advance increments k; it never multiplies or adds matrices. This
// resolves spec.md §9's Open Question 2: a prior source was observed
// advancing via "M ← M + M₀", which only makes sense if M is the
// exponential's argument (A·δ·k), not Φᵏ itself. Keeping this handle's
// state as (A, δ, k) and re-deriving exp(A·δ·k) through the extractor at
// query time sidesteps the ambiguity entirely — the invariant is simply
// "stored k ⇔ materializes exp(A·δ·k)".
type LazyExpHandle struct {
	part         *partition.Partition
	a            mat.Matrix
	delta        float64
	k            int
	assumeSparse bool
	extractor    RowsExtractor
}

// NewLazyExp constructs a LazyExpHandle starting at k=1.
func NewLazyExp(part *partition.Partition, a mat.Matrix, delta float64, assumeSparse bool, extractor RowsExtractor) (*LazyExpHandle, error) {
	if extractor == nil {
		return nil, ErrNilExtractor
	}
	r, c := a.Dims()
	if r != part.N() || c != part.N() {
		return nil, ErrDimensionMismatch
	}
	return &LazyExpHandle{part: part, a: a, delta: delta, k: 1, assumeSparse: assumeSparse, extractor: extractor}, nil
}

// K returns the current exponent.
func (h *LazyExpHandle) K() int { return h.k }

// Row returns exp(A·δ·k)[P[blockIdx], :].
func (h *LazyExpHandle) Row(blockIdx int) (mat.Matrix, error) {
	lo, hi, err := blockBounds(h.part, blockIdx)
	if err != nil {
		return nil, err
	}
	n := h.part.N()
	out, err := h.extractor(h.a, h.delta, h.k, lo, hi, 0, n-1, h.assumeSparse)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternal, err)
	}
	return out, nil
}

// Sub returns exp(A·δ·k)[P[i], P[j]].
func (h *LazyExpHandle) Sub(i, j int) (mat.Matrix, error) {
	rowLo, rowHi, err := blockBounds(h.part, i)
	if err != nil {
		return nil, err
	}
	colLo, colHi, err := blockBounds(h.part, j)
	if err != nil {
		return nil, err
	}
	out, err := h.extractor(h.a, h.delta, h.k, rowLo, rowHi, colLo, colHi, h.assumeSparse)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternal, err)
	}
	return out, nil
}

// IsZeroBlock conservatively reports false: nothing is known about
// exp(A·δ·k)'s sparsity pattern without materializing it.
func (h *LazyExpHandle) IsZeroBlock(i, j int) (bool, error) {
	if _, _, err := blockBounds(h.part, i); err != nil {
		return false, err
	}
	if _, _, err := blockBounds(h.part, j); err != nil {
		return false, err
	}
	return false, nil
}

// Advance increments k. See the type doc comment for why this is
// addition-free.
func (h *LazyExpHandle) Advance() error {
	h.k++
	return nil
}
