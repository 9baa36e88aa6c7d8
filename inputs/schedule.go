package inputs

// CollapsePredicate decides, for step index k (the step about to be
// reached, i.e. collapse?(k) is consulted when advancing to Ŵₖ), whether
// the accumulator should collapse to a fresh concrete set rather than
// append a new lazy summand. Spec.md §4.3 phrases this as "a predicate
// collapse?: ℕ → bool (equivalently a period m ... or 'always' or
// 'never')".
type CollapsePredicate func(k int) bool

// Always collapses at every step — the tightest memory bound, at the
// cost of recomputing an overapproximation every iteration.
func Always() CollapsePredicate {
	return func(int) bool { return true }
}

// Never never collapses: the Minkowski-sum array grows by one term per
// step, trading unbounded memory for the least overapproximation error.
func Never() CollapsePredicate {
	return func(int) bool { return false }
}

// Period collapses whenever k is a multiple of m. Returns ErrInvalidPeriod
// if m <= 0.
func Period(m int) (CollapsePredicate, error) {
	if m <= 0 {
		return nil, ErrInvalidPeriod
	}
	return func(k int) bool { return k%m == 0 }, nil
}
