package inputs

import "github.com/arborix/reachflow/sets"

// Accumulator tracks one interesting block's input contribution Ŵₖ[i]
// across the iteration, per spec.md §4.3. The caller is responsible for
// computing each step's new term row_i(Φᵏ)·U (via the matpow and sets
// packages) and handing it to Advance; Accumulator owns only the
// fold-or-collapse decision and the underlying cached Minkowski-sum
// array.
type Accumulator struct {
	policy   sets.BlockPolicy
	collapse CollapsePredicate
	array    *sets.MinkowskiSumArray
	current  sets.Set
	dim      int
	ready    bool
}

// NewAccumulator constructs an Accumulator for a block of the given
// dimension, under policy (the block's iter set-type policy) and
// collapse (the schedule deciding when to fold to a concrete set).
func NewAccumulator(dim int, policy sets.BlockPolicy, collapse CollapsePredicate) *Accumulator {
	return &Accumulator{dim: dim, policy: policy, collapse: collapse}
}

// Init sets Ŵ₁[i] := approx_i(π_i(U)), wrapping it into a single-element
// cached Minkowski-sum array as spec.md §4.3 prescribes, then collapsing
// immediately under the configured policy so Current() returns a
// concrete set right after Init.
func (a *Accumulator) Init(piU sets.Set) (sets.Set, error) {
	if a.ready {
		return nil, ErrAlreadyInitialized
	}
	if piU.Dim() != a.dim {
		return nil, sets.ErrDimensionMismatch
	}
	a.array = sets.NewMinkowskiSumArray(a.dim, piU)
	concrete, err := a.array.CollapseInto(a.policy)
	if err != nil {
		return nil, err
	}
	a.current = concrete
	a.ready = true
	return a.current, nil
}

// Advance folds term (= row_i(Φᵏ)·U, the new step's input contribution)
// into the cached sum and, if collapse(k+1) holds, overapproximates to a
// fresh concrete set; otherwise the enlarged lazy value is returned.
// Memory is bounded per the BlockPolicy.DependsOnHistory contract: when
// the policy depends on history (ε-close polygon refinement), prior
// summands are retained across collapses instead of forgotten.
func (a *Accumulator) Advance(k int, term sets.Set) (sets.Set, error) {
	if !a.ready {
		return nil, ErrNotInitialized
	}
	if term.Dim() != a.dim {
		return nil, sets.ErrDimensionMismatch
	}
	if err := a.array.Append(term); err != nil {
		return nil, err
	}
	if a.collapse(k + 1) {
		concrete, err := a.array.CollapseInto(a.policy)
		if err != nil {
			return nil, err
		}
		a.current = concrete
		return a.current, nil
	}
	a.current = a.array
	return a.current, nil
}

// Current returns the most recently produced value without recomputing
// anything.
func (a *Accumulator) Current() sets.Set { return a.current }

// Len reports the number of tail terms currently retained by the
// underlying Minkowski-sum array, exposed so tests can assert the O(1)
// amortised-memory contract of §4.3.
func (a *Accumulator) Len() int {
	if a.array == nil {
		return 0
	}
	return a.array.Len()
}
