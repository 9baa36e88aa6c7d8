package engine

import (
	"fmt"

	"github.com/arborix/reachflow/partition"
	"github.com/arborix/reachflow/sets"
)

// DecomposeX0 implements spec.md §4.2: given a set x0 of dimension
// part.N(), produce one overapproximated block set per partition block,
// X̂₀[i] = approx_i(π_{P[i]}(x0)), where approx_i is block i's init
// policy from opts.
//
// Shortcut: when part is the trivial single block spanning all n
// variables and that block's resolved policy is KindLinearMapPassthrough,
// x0 is returned unchanged as the sole block set — decomposition and
// projection are both the identity in that case.
func DecomposeX0(x0 sets.Set, part *partition.Partition, opts BlockOptions) ([]sets.Set, error) {
	if x0 == nil {
		return nil, ErrNilInitialSet
	}
	if x0.Dim() != part.N() {
		return nil, fmt.Errorf("%w: X0 has dimension %d, partition covers %d", ErrShape, x0.Dim(), part.N())
	}

	if part.Len() == 1 {
		blk := part.Block(0)
		policy := opts.PolicyFor(0, blk.Len())
		if policy.Kind == sets.KindLinearMapPassthrough {
			return []sets.Set{x0}, nil
		}
	}

	out := make([]sets.Set, part.Len())
	n := part.N()
	for i := 0; i < part.Len(); i++ {
		blk := part.Block(i)
		sel := selectionMatrix(n, blk.Lo, blk.Hi)
		projected, err := x0.LinearMap(sel)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExternal, err)
		}
		policy := opts.PolicyFor(i, blk.Len())
		concrete, err := projected.Overapproximate(policy)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNumeric, err)
		}
		if concrete.Dim() != blk.Len() {
			return nil, fmt.Errorf("%w: block %d decomposed to dimension %d, want %d", ErrShape, i, concrete.Dim(), blk.Len())
		}
		out[i] = concrete
	}
	return out, nil
}
