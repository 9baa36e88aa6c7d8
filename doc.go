// Package reachflow computes block-decomposed reachable-state
// overapproximations for discrete-time linear time-invariant systems
// x_{k+1} = Phi x_k + w_k, w_k in U, without ever materializing the
// dense flowpipe over the full state dimension.
//
// 🚀 What is reachflow?
//
//	A small, dependency-light engine that brings together:
//
//	  • Lazy set algebra: support functions, Minkowski sum, linear map,
//	    Cartesian product (sets)
//	  • Partition-driven block decomposition, restricted to the
//	    variables a caller actually cares about (partition)
//	  • An amortised input accumulator that folds U's contribution
//	    across steps without re-summing from scratch (inputs)
//	  • Dense, sparse and lazy-matrix-exponential Phi^k backends
//	    (matpow)
//	  • A block-propagation driver with pluggable termination policies
//	    and a restricted property-checking mode (engine)
//
// Under the hood, everything is organized under five subpackages:
//
//	sets/      — lazy set values and the Set interface every block carries
//	partition/ — block partitions and interesting-block selection
//	inputs/    — per-block input accumulator and collapse schedules
//	matpow/    — Phi^k row/sub-block access, three interchangeable backends
//	engine/    — Config, Run (flowpipe) and Check (property) drivers
//
// This root package is a thin convenience door: Reach and Check assemble
// an engine.Config from the pieces above and hand it to engine.Run /
// engine.Check, for callers who want one call instead of wiring a
// Config by hand.
package reachflow
