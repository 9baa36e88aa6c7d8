package engine

import (
	"errors"
	"fmt"

	"github.com/arborix/reachflow/inputs"
	"github.com/arborix/reachflow/sets"
)

// Run executes the block-propagation engine (C5) in reach mode: it
// produces a Flowpipe of per-step decomposed reach sets, applying the
// interesting-blocks optimisation and cross-guard splicing of spec.md
// §4.5, and consulting the configured TerminationPolicy (§4.7) every
// step.
func Run(cfg *Config) (Result, error) {
	if errs := Validate(cfg); len(errs) > 0 {
		return Result{}, errors.Join(errs...)
	}

	interesting, complement, err := cfg.Partition.InterestingBlocks(cfg.Vars)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	u := cfg.U
	if cfg.AssumeHomogeneous {
		u = nil
	}

	n := cfg.Partition.N()

	accs := make(map[int]*inputs.Accumulator, len(interesting))
	if u != nil {
		for _, i := range interesting {
			blk := cfg.Partition.Block(i)
			policy := cfg.BlockOptionsIter.PolicyFor(i, blk.Len())
			accs[i] = inputs.NewAccumulator(blk.Len(), policy, cfg.LazyInputsInterval)
		}
	}

	var flowpipe Flowpipe

	// k = 1: the k=1 reach set is X̂₀ itself, unchanged (spec.md §4.5),
	// recorded at full dimension regardless of the interesting-blocks
	// split — the identity round-trip property of §8 ("N=1: the result
	// is exactly X̂₀") must hold independent of which variables are of
	// interest.
	step1Set, err := assembleRecordSet(cfg, blockValsFromSlice(cfg.X0), allBlocks(cfg.Partition.Len()))
	if err != nil {
		return Result{}, err
	}
	if cfg.OnStep != nil {
		cfg.OnStep(1, step1Set)
	}
	terminate, skip, _, err := cfg.Termination.Evaluate(1, step1Set, 0)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrExternal, err)
	}
	if !skip {
		flowpipe = append(flowpipe, ReachRecord{
			Set:         step1Set,
			TStart:      0,
			TEnd:        cfg.Delta,
			CoveredBlks: allBlocks(cfg.Partition.Len()),
		})
	}
	if terminate {
		reason := ReasonSkip
		if !skip {
			reason = ReasonHorizon
		}
		return Result{Flowpipe: flowpipe, Reason: reason}, nil
	}

	if u != nil {
		for _, i := range interesting {
			blk := cfg.Partition.Block(i)
			sel := selectionMatrix(n, blk.Lo, blk.Hi)
			piU, err := u.LinearMap(sel)
			if err != nil {
				return Result{}, fmt.Errorf("%w: %w", ErrExternal, err)
			}
			if _, err := accs[i].Init(piU); err != nil {
				return Result{}, fmt.Errorf("%w: %w", ErrNumeric, err)
			}
			if cfg.OnCollapse != nil {
				cfg.OnCollapse(i, 1)
			}
		}
	}

	for k := 2; ; k++ {
		// The accumulator recurrence Ŵ_{k} = Ŵ_{k-1} ⊕ row_i(Φ^{k-1})·U
		// (spec.md §4.3) needs Φ at the *previous* step's power, so it must
		// run before MatPow is advanced to Φᵏ below.
		if u != nil {
			for _, i := range interesting {
				rowM, err := cfg.MatPow.Row(i)
				if err != nil {
					return Result{}, fmt.Errorf("%w: %w", ErrExternal, err)
				}
				term, err := u.LinearMap(rowM)
				if err != nil {
					return Result{}, fmt.Errorf("%w: %w", ErrExternal, err)
				}
				if _, err := accs[i].Advance(k-1, term); err != nil {
					return Result{}, fmt.Errorf("%w: %w", ErrNumeric, err)
				}
				if cfg.OnCollapse != nil && cfg.LazyInputsInterval(k) {
					cfg.OnCollapse(i, k)
				}
			}
		}

		if err := cfg.MatPow.Advance(); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrExternal, err)
		}

		interestingSets, err := computeBlocks(cfg, interesting, u, accs)
		if err != nil {
			return Result{}, err
		}
		candidate := sets.NewCartesianProductArray(toSlice(interestingSets, interesting))

		covered := interesting
		blockVals := interestingSets
		if len(complement) > 0 {
			mayCross := true
			if len(cfg.Guards) > 0 {
				disjoint, err := sets.DisjointFromUnion(candidate, cfg.Guards)
				if err != nil {
					return Result{}, fmt.Errorf("%w: %w", ErrExternal, err)
				}
				mayCross = !disjoint
			} else {
				mayCross = false
			}
			if mayCross {
				if cfg.OnGuardCross != nil {
					cfg.OnGuardCross(k)
				}
				complementSets, err := computeBlocks(cfg, complement, u, accs)
				if err != nil {
					return Result{}, err
				}
				for idx, s := range complementSets {
					blockVals[idx] = s
				}
				covered = mergeSortedBlocks(interesting, complement)
			}
		}

		recordSet, err := assembleRecordSet(cfg, blockVals, covered)
		if err != nil {
			return Result{}, err
		}

		t0 := float64(k-1) * cfg.Delta
		if cfg.OnStep != nil {
			cfg.OnStep(k, recordSet)
		}
		terminate, skip, _, err := cfg.Termination.Evaluate(k, recordSet, t0)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrExternal, err)
		}
		if !skip {
			flowpipe = append(flowpipe, ReachRecord{
				Set:         recordSet,
				TStart:      t0,
				TEnd:        t0 + cfg.Delta,
				CoveredBlks: covered,
			})
		}
		if terminate {
			reason := ReasonSkip
			if !skip {
				reason = ReasonHorizon
			}
			return Result{Flowpipe: flowpipe, Reason: reason}, nil
		}
	}
}

// computeBlocks evaluates spec.md §4.5's per-step gather for every block
// index in blocks, returning a map keyed by block index so callers can
// splice interesting and complement results back together in partition
// order.
func computeBlocks(cfg *Config, blocks []int, u sets.Set, accs map[int]*inputs.Accumulator) (map[int]sets.Set, error) {
	out := make(map[int]sets.Set, len(blocks))
	for _, i := range blocks {
		blk := cfg.Partition.Block(i)
		var acc sets.Set = &sets.ZeroSet{N: blk.Len()}
		for j := 0; j < cfg.Partition.Len(); j++ {
			zero, err := cfg.MatPow.IsZeroBlock(i, j)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrExternal, err)
			}
			if zero {
				continue
			}
			b, err := cfg.MatPow.Sub(i, j)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrExternal, err)
			}
			mapped, err := cfg.X0[j].LinearMap(b)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrShape, err)
			}
			acc, err = acc.MinkowskiSum(mapped)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNumeric, err)
			}
		}
		if u != nil {
			if a, ok := accs[i]; ok {
				var err error
				acc, err = acc.MinkowskiSum(a.Current())
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrNumeric, err)
				}
			}
		}
		policy := cfg.BlockOptionsIter.PolicyFor(i, blk.Len())
		concrete, err := acc.Overapproximate(policy)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNumeric, err)
		}
		if concrete.Dim() != blk.Len() {
			return nil, fmt.Errorf("%w: block %d produced dimension %d, want %d", ErrShape, i, concrete.Dim(), blk.Len())
		}
		out[i] = concrete
	}
	return out, nil
}

// assembleRecordSet builds the decomposed set to store/report for the
// blocks in covered (ascending, partition order), applying the optional
// output_function as a lazy wrap rather than a fresh materialisation.
func assembleRecordSet(cfg *Config, blockVals map[int]sets.Set, covered []int) (sets.Set, error) {
	ordered := make([]sets.Set, len(covered))
	for idx, b := range covered {
		v, ok := blockVals[b]
		if !ok {
			return nil, fmt.Errorf("%w: block %d missing from record assembly", ErrShape, b)
		}
		ordered[idx] = v
	}
	composite := sets.NewCartesianProductArray(ordered)
	if cfg.OutputFunction == nil {
		return composite, nil
	}
	return &sets.LinearMap{M: cfg.OutputFunction, X: composite}, nil
}

func blockValsFromSlice(x0 []sets.Set) map[int]sets.Set {
	out := make(map[int]sets.Set, len(x0))
	for i, s := range x0 {
		out[i] = s
	}
	return out
}

func allBlocks(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// toSlice reads blockVals back out in the exact order of blocks.
func toSlice(blockVals map[int]sets.Set, blocks []int) []sets.Set {
	out := make([]sets.Set, len(blocks))
	for i, b := range blocks {
		out[i] = blockVals[b]
	}
	return out
}
