package sets

import "gonum.org/v1/gonum/mat"

// CartesianProductArray represents the decomposed set X̂ = blocks[0] ×
// blocks[1] × ... × blocks[len-1] from spec.md §3: a mapping
// block-index → block set, semantically the Cartesian product of the
// per-block sets in partition order.
//
// It is a terminal, composite node: the engine only ever queries its
// Support (for guard separation tests against the interesting-blocks
// candidate, §4.5 point 3, and for termination-policy and property
// checks) and reads back its Blocks.
// Further LinearMap/MinkowskiSum on an already-assembled decomposed set
// has no use in this engine (blocks are mapped and summed before
// composition, never after), so those two methods report
// ErrUnsupportedOperation rather than silently doing something a caller
// did not intend.
type CartesianProductArray struct {
	blocks []Set
	dims   []int
	total  int
}

// NewCartesianProductArray builds a decomposed set from per-block sets,
// in partition order.
func NewCartesianProductArray(blocks []Set) *CartesianProductArray {
	dims := make([]int, len(blocks))
	total := 0
	for i, b := range blocks {
		dims[i] = b.Dim()
		total += dims[i]
	}
	return &CartesianProductArray{blocks: blocks, dims: dims, total: total}
}

// Dim returns the sum of all block dimensions.
func (c *CartesianProductArray) Dim() int { return c.total }

// Blocks returns the per-block sets in partition order. The returned
// slice is the array's own backing slice; callers must treat it as
// read-only.
func (c *CartesianProductArray) Blocks() []Set { return c.blocks }

// Support splits d into per-block segments (by block dimension, in
// partition order) and sums each block's own Support, since a Cartesian
// product's support function decomposes additively:
// ρ_{X×Y}((d1,d2)) = ρ_X(d1) + ρ_Y(d2).
func (c *CartesianProductArray) Support(d []float64) (float64, error) {
	if len(d) != c.total {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	offset := 0
	for i, b := range c.blocks {
		seg := d[offset : offset+c.dims[i]]
		v, err := b.Support(seg)
		if err != nil {
			return 0, err
		}
		sum += v
		offset += c.dims[i]
	}
	return sum, nil
}

// LinearMap is not supported on an already-assembled decomposed set; see
// the type doc comment.
func (c *CartesianProductArray) LinearMap(m mat.Matrix) (Set, error) {
	return nil, ErrUnsupportedOperation
}

// MinkowskiSum is not supported on an already-assembled decomposed set;
// see the type doc comment.
func (c *CartesianProductArray) MinkowskiSum(other Set) (Set, error) {
	return nil, ErrUnsupportedOperation
}

// Overapproximate returns c unchanged for KindNone (every block is
// already overapproximated individually by the time a
// CartesianProductArray is assembled); any other policy is rejected
// since "re-overapproximating" a composite has no single-block meaning.
func (c *CartesianProductArray) Overapproximate(policy BlockPolicy) (Set, error) {
	if policy.Kind == KindNone {
		return c, nil
	}
	return nil, ErrUnsupportedOperation
}
