// Package inputs implements the input-accumulator schedule of spec.md
// §4.3 (component C3): per interesting block, it decides at each step k
// whether to fold the new input contribution row_i(Φᵏ)·U into a cached
// lazy Minkowski sum or to collapse the accumulated sum to a fresh
// concrete block set.
//
// The schedule is parameterised by a CollapsePredicate rather than a
// fixed cadence, mirroring how a traversal library's bfs/dfs packages take a
// strategy value (Visitor) instead of hard-coding traversal order.
package inputs
