package reachflow

import (
	"github.com/arborix/reachflow/engine"
	"github.com/arborix/reachflow/partition"
	"github.com/arborix/reachflow/sets"
)

// Reach decomposes x0 over part using blockOptsInit (spec.md §4.2),
// wires the result and part into an engine.Config alongside opts, and
// runs the block-propagation engine (C5) to completion. It is
// equivalent to calling engine.DecomposeX0 and engine.Run by hand; use
// the lower-level calls directly when a caller already holds a
// pre-decomposed X0 or wants to reuse one across several runs.
func Reach(x0 sets.Set, part *partition.Partition, blockOptsInit engine.BlockOptions, opts ...engine.Option) (engine.Result, error) {
	decomposed, err := engine.DecomposeX0(x0, part, blockOptsInit)
	if err != nil {
		return engine.Result{}, err
	}
	base := []engine.Option{
		engine.WithPartition(part),
		engine.WithX0(decomposed),
		engine.WithBlockOptionsInit(blockOptsInit),
	}
	cfg := engine.NewConfig(append(base, opts...)...)
	return engine.Run(cfg)
}

// Check decomposes x0 the same way Reach does, then runs the
// property-checking engine (C7) instead of assembling a flowpipe. opts
// must include engine.WithProperty; Check itself returns
// engine.ErrNilProperty otherwise.
func Check(x0 sets.Set, part *partition.Partition, blockOptsInit engine.BlockOptions, opts ...engine.Option) (engine.CheckResult, error) {
	decomposed, err := engine.DecomposeX0(x0, part, blockOptsInit)
	if err != nil {
		return engine.CheckResult{}, err
	}
	base := []engine.Option{
		engine.WithPartition(part),
		engine.WithX0(decomposed),
		engine.WithBlockOptionsInit(blockOptsInit),
	}
	cfg := engine.NewConfig(append(base, opts...)...)
	return engine.Check(cfg)
}
