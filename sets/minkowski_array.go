package sets

import "gonum.org/v1/gonum/mat"

// MinkowskiSumArray is the cached, append-mostly Minkowski sum container
// described in spec.md §3/§9: an arena of summand terms with a sentinel
// "collapsed-prefix" slot. Every MinkowskiSum call in this package that
// cannot combine two concrete leaves exactly produces one of these —
// never a nested pair — which keeps the accumulation structure flat
// (§9 design note #3: "always flatten to a Minkowski-sum-array at
// construction time" to avoid deep right-recursive evaluators).
//
// Semantically this represents:
//
//	value = collapsedPrefix ⊕ terms[0] ⊕ terms[1] ⊕ ... ⊕ terms[len-1]
//
// where collapsedPrefix may be nil (no collapse has happened yet).
type MinkowskiSumArray struct {
	dim             int
	collapsedPrefix Set
	terms           []Set
}

// NewMinkowskiSumArray constructs an array over dim-dimensional terms,
// flattening any term that is itself a *MinkowskiSumArray so the result
// never nests.
func NewMinkowskiSumArray(dim int, terms ...Set) *MinkowskiSumArray {
	a := &MinkowskiSumArray{dim: dim}
	for _, t := range terms {
		a.appendFlatten(t)
	}
	return a
}

func (a *MinkowskiSumArray) appendFlatten(t Set) {
	if nested, ok := t.(*MinkowskiSumArray); ok {
		if nested.collapsedPrefix != nil {
			a.terms = append(a.terms, nested.collapsedPrefix)
		}
		a.terms = append(a.terms, nested.terms...)
		return
	}
	a.terms = append(a.terms, t)
}

// Append adds a new summand to the tail, flattening nested arrays. This
// is the per-step append path of §4.3's input accumulator schedule when
// collapse?(k+1) does not fire.
func (a *MinkowskiSumArray) Append(t Set) error {
	if t.Dim() != a.dim {
		return ErrDimensionMismatch
	}
	a.appendFlatten(t)
	return nil
}

// Len returns the number of tail terms currently retained (excluding the
// collapsed prefix), used by tests asserting the O(1)-amortised-memory
// contract of §4.3.
func (a *MinkowskiSumArray) Len() int { return len(a.terms) }

// Dim returns the configured term dimension.
func (a *MinkowskiSumArray) Dim() int { return a.dim }

// Support sums the collapsed prefix's (if any) and every tail term's
// support in direction d — Minkowski sum's support function is additive.
func (a *MinkowskiSumArray) Support(d []float64) (float64, error) {
	if len(d) != a.dim {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	if a.collapsedPrefix != nil {
		v, err := a.collapsedPrefix.Support(d)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	for _, t := range a.terms {
		v, err := t.Support(d)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// LinearMap wraps the whole array lazily.
func (a *MinkowskiSumArray) LinearMap(m mat.Matrix) (Set, error) {
	_, c := m.Dims()
	if c != a.dim {
		return nil, ErrDimensionMismatch
	}
	return &LinearMap{M: m, X: a}, nil
}

// MinkowskiSum merges another array's terms in directly (flattening) or
// appends a non-array term; the receiver is not mutated.
func (a *MinkowskiSumArray) MinkowskiSum(other Set) (Set, error) {
	if other.Dim() != a.dim {
		return nil, ErrDimensionMismatch
	}
	merged := &MinkowskiSumArray{dim: a.dim, collapsedPrefix: a.collapsedPrefix}
	merged.terms = append(merged.terms, a.terms...)
	merged.appendFlatten(other)
	return merged, nil
}

// Overapproximate returns a fresh concrete set overapproximating the
// whole array without mutating the receiver. Use CollapseInto instead
// when the caller wants the in-place, memory-bounding collapse the
// input-accumulator schedule (§4.3) relies on.
func (a *MinkowskiSumArray) Overapproximate(policy BlockPolicy) (Set, error) {
	return overapproximateGeneric(a, policy)
}

// CollapseInto overapproximates the entire current value (collapsed
// prefix plus every tail term) under policy, replaces the collapsed
// prefix with the result, and — unless policy.DependsOnHistory() is
// true — clears the tail, bounding memory to O(1) amortised per spec
// §4.3's contract. When the policy does depend on history (ε-close
// polygon refinement), the tail is retained so future collapses keep
// seeing every prior summand, exactly as §9's design note requires.
func (a *MinkowskiSumArray) CollapseInto(policy BlockPolicy) (Set, error) {
	collapsed, err := overapproximateGeneric(a, policy)
	if err != nil {
		return nil, err
	}
	a.collapsedPrefix = collapsed
	if !policy.DependsOnHistory() {
		a.terms = nil
	}
	return collapsed, nil
}

// Forget drops the tail unconditionally, keeping only the collapsed
// prefix. Callers must only do this when the active policy does not
// depend on history (see BlockPolicy.DependsOnHistory).
func (a *MinkowskiSumArray) Forget() {
	a.terms = nil
}
