package engine

import (
	"errors"
	"fmt"

	"github.com/arborix/reachflow/inputs"
	"github.com/arborix/reachflow/sets"
)

// Check executes the property-checking engine (C7): the same per-step
// propagation as Run, restricted to interesting blocks only (spec.md
// §4.6 — "the property must have been rewritten to reference only those
// blocks"), evaluating cfg.Property instead of storing a flowpipe. It
// returns the first violating step index, or 0 if the property held
// through every step up to N (or until the termination policy otherwise
// stopped the run).
//
// cfg.EagerChecking controls when cfg.Property runs: with it set, every
// step is checked as soon as it is computed; with it unset, evaluation
// is deferred until the step the termination policy would stop at
// anyway, trading early-violation reporting for fewer Property calls
// over a run that terminates early or is skipped.
func Check(cfg *Config) (CheckResult, error) {
	if cfg.Property == nil {
		return CheckResult{}, fmt.Errorf("%w: %w", ErrConfig, ErrNilProperty)
	}
	if errs := Validate(cfg); len(errs) > 0 {
		return CheckResult{}, errors.Join(errs...)
	}

	interesting, _, err := cfg.Partition.InterestingBlocks(cfg.Vars)
	if err != nil {
		return CheckResult{}, fmt.Errorf("%w: %w", ErrConfig, err)
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

	step1 := sets.NewCartesianProductArray(selectSlice(cfg.X0, interesting))
	terminate, skip, _, err := cfg.Termination.Evaluate(1, step1, 0)
	if err != nil {
		return CheckResult{}, fmt.Errorf("%w: %w", ErrExternal, err)
	}
	if cfg.EagerChecking || terminate {
		ok, err := cfg.Property(step1)
		if err != nil {
			return CheckResult{}, fmt.Errorf("%w: %w", ErrExternal, err)
		}
		if !ok {
			return CheckResult{ViolatedAt: 1, Reason: ReasonViolation}, nil
		}
	}
	if terminate {
		reason := ReasonHorizon
		if skip {
			reason = ReasonSkip
		}
		return CheckResult{ViolatedAt: 0, Reason: reason}, nil
	}

	if u != nil {
		for _, i := range interesting {
			blk := cfg.Partition.Block(i)
			sel := selectionMatrix(n, blk.Lo, blk.Hi)
			piU, err := u.LinearMap(sel)
			if err != nil {
				return CheckResult{}, fmt.Errorf("%w: %w", ErrExternal, err)
			}
			if _, err := accs[i].Init(piU); err != nil {
				return CheckResult{}, fmt.Errorf("%w: %w", ErrNumeric, err)
			}
		}
	}

	for k := 2; ; k++ {
		if u != nil {
			for _, i := range interesting {
				rowM, err := cfg.MatPow.Row(i)
				if err != nil {
					return CheckResult{}, fmt.Errorf("%w: %w", ErrExternal, err)
				}
				term, err := u.LinearMap(rowM)
				if err != nil {
					return CheckResult{}, fmt.Errorf("%w: %w", ErrExternal, err)
				}
				if _, err := accs[i].Advance(k-1, term); err != nil {
					return CheckResult{}, fmt.Errorf("%w: %w", ErrNumeric, err)
				}
			}
		}

		if err := cfg.MatPow.Advance(); err != nil {
			return CheckResult{}, fmt.Errorf("%w: %w", ErrExternal, err)
		}

		blockVals, err := computeBlocks(cfg, interesting, u, accs)
		if err != nil {
			return CheckResult{}, err
		}
		candidate := sets.NewCartesianProductArray(toSlice(blockVals, interesting))

		t0 := float64(k-1) * cfg.Delta
		terminate, skip, _, err := cfg.Termination.Evaluate(k, candidate, t0)
		if err != nil {
			return CheckResult{}, fmt.Errorf("%w: %w", ErrExternal, err)
		}
		if cfg.EagerChecking || terminate {
			ok, err := cfg.Property(candidate)
			if err != nil {
				return CheckResult{}, fmt.Errorf("%w: %w", ErrExternal, err)
			}
			if !ok {
				return CheckResult{ViolatedAt: k, Reason: ReasonViolation}, nil
			}
		}
		if terminate {
			reason := ReasonHorizon
			if skip {
				reason = ReasonSkip
			}
			return CheckResult{ViolatedAt: 0, Reason: reason}, nil
		}
	}
}

// selectSlice returns cfg.X0-style values at the given block indices, in
// the order given — used to build the restricted-to-interesting-blocks
// candidate at k=1, before any propagation has occurred.
func selectSlice(x0 []sets.Set, blocks []int) []sets.Set {
	out := make([]sets.Set, len(blocks))
	for i, b := range blocks {
		out[i] = x0[b]
	}
	return out
}
