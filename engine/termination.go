package engine

import "github.com/arborix/reachflow/sets"

// TerminationPolicy is the per-step predicate of spec.md §4.7: invoked
// with (k, currentSet, t0), it reports whether the run should terminate,
// whether the termination is a "skip" (invariant disjointness) rather
// than a satisfied horizon, and the set to record for this step.
//
// intersectedSet equals currentSet ∩ invariant when an invariant policy
// is in effect; since exact intersection of two general lazy sets is
// explicitly out of scope (spec.md §1), the invariant policies below
// return currentSet itself unchanged rather than a tightened
// intersection — the same one-sided-soundness compromise
// sets.MayIntersectIntersection already makes for the separation test
// itself.
type TerminationPolicy interface {
	Evaluate(k int, current sets.Set, t0 float64) (terminate, skip bool, intersected sets.Set, err error)
}

// Unbounded never terminates and never skips. Run and Check have no step
// bound of their own, so under Unbounded they return only on an error.
type Unbounded struct{}

// Evaluate always reports continue.
func (Unbounded) Evaluate(k int, current sets.Set, t0 float64) (bool, bool, sets.Set, error) {
	return false, false, current, nil
}

// Horizon terminates (satisfied, not skip) once k reaches N.
type Horizon struct {
	N int
}

// Evaluate reports terminate=true once k >= N.
func (h Horizon) Evaluate(k int, current sets.Set, t0 float64) (bool, bool, sets.Set, error) {
	return k >= h.N, false, current, nil
}

// Invariant terminates with skip=true once the current set is proven
// disjoint from the supplied invariant polytope (an intersection of
// half-spaces). It never terminates on a horizon; pair with
// InvariantHorizon for both.
type Invariant struct {
	HalfSpaces []sets.HalfSpace
}

// Evaluate reports terminate=skip=true iff MayIntersectIntersection
// proves false (i.e. disjointness was certified).
func (inv Invariant) Evaluate(k int, current sets.Set, t0 float64) (bool, bool, sets.Set, error) {
	if len(inv.HalfSpaces) == 0 {
		return false, false, current, nil
	}
	mayIntersect, err := sets.MayIntersectIntersection(current, inv.HalfSpaces)
	if err != nil {
		return false, false, nil, err
	}
	if !mayIntersect {
		return true, true, current, nil
	}
	return false, false, current, nil
}

// InvariantHorizon combines Horizon and Invariant: horizon terminates
// normally (skip=false), disjointness terminates with skip=true,
// whichever is detected first at this step (disjointness is checked
// first, matching the "earliest trigger wins" ordering of spec.md §5,
// since a guard/invariant condition is the more specific of the two).
type InvariantHorizon struct {
	N          int
	HalfSpaces []sets.HalfSpace
}

// Evaluate checks invariant disjointness before the horizon bound.
func (ih InvariantHorizon) Evaluate(k int, current sets.Set, t0 float64) (bool, bool, sets.Set, error) {
	if len(ih.HalfSpaces) > 0 {
		mayIntersect, err := sets.MayIntersectIntersection(current, ih.HalfSpaces)
		if err != nil {
			return false, false, nil, err
		}
		if !mayIntersect {
			return true, true, current, nil
		}
	}
	return k >= ih.N, false, current, nil
}
