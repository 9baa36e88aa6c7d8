// Package partition represents a partition of the state variables
// {0, ..., n-1} into contiguous, ascending, non-empty blocks, and
// computes which blocks are "interesting" (cover at least one variable
// of interest) versus "cheap" for a given chosen subset of variables.
//
// This is §4.1 of the reachability engine spec: interesting blocks are
// propagated at full fidelity every step; the complement is propagated
// only when a guard intersection forces it (see package engine).
//
// Block membership is tracked with a bitset.BitSet (as godoctor's
// analysis/dataflow package tracks basic-block reaching-definitions
// membership) rather than a map[int]bool, since InterestingBlocks needs
// fast ascending iteration over a small, dense index range.
package partition
