package engine

import "github.com/arborix/reachflow/sets"

// ReachRecord is a single step's entry in a Flowpipe, per spec.md §3's
// "reach-set record": the decomposed set at step k, its time interval,
// and the partition block indices it actually covers (the interesting
// blocks always; the non-interesting ones too, on steps where
// cross-guard splicing fired).
type ReachRecord struct {
	// Set is the decomposed set for this step: a *sets.CartesianProductArray
	// over CoveredBlks when no OutputFunction is configured, or that
	// value wrapped in a lazy *sets.LinearMap when one is (spec.md §6's
	// plotting-space output). Either way it satisfies sets.Set.
	Set         sets.Set
	TStart      float64
	TEnd        float64
	CoveredBlks []int
}

// Flowpipe is an ordered, append-only sequence of ReachRecords, possibly
// truncated to fewer than N entries by early termination.
type Flowpipe []ReachRecord
