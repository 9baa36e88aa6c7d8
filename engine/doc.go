// Package engine implements the block-propagation engine (C5), the
// termination policy (C6), the property-checking variant (C7) and
// flowpipe assembly (C8) of the block-decomposed LTI reachability
// engine: given a discretised state-transition matrix Φ, a
// block-decomposed initial set, an optional input set U and a
// partition, it iteratively produces reach-set overapproximations
// X̂₁, X̂₂, ..., X̂_N, or, in check mode, the first step at which a
// supplied property is violated.
//
// Config is built once via functional options (WithPartition, WithU,
// ...) before Run or Check starts, following the same "typed value
// built once, threaded through the hot path" discipline a
// graph-construction package's BuilderConfig and matrix Option types use. The engine never
// branches on a global: everything it needs is either in Config or
// produced locally inside the loop.
package engine
