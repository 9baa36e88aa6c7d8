// Package matpow implements the matrix-power driver (spec.md §4.4, C4):
// three interchangeable backends that each produce, on demand, row- and
// sub-blocks of Φᵏ for an increasing sequence of k, behind a single
// Handle interface so the block-propagation engine (package engine)
// never branches on which backend is in play.
//
//   - Sparse: an explicit sparsemat.CSR advanced by Φᵏ⁺¹ ← Φᵏ · Φ
//     (sparse × sparse product), with a structural-zero test the
//     engine's sparse micro-strategy uses to skip zero cross-block
//     contributions entirely.
//   - Dense: an explicit gonum *mat.Dense advanced in place against a
//     pre-allocated scratch buffer — no allocation inside Advance.
//   - LazyExp: holds the continuous generator A and an integer exponent
//     k; row/sub-block queries are forwarded to an external
//     RowsExtractor that materializes exp(A·δ·k) on demand (matrix
//     exponentiation itself is an out-of-scope external collaborator
//     per spec.md §1). Advance increments k — it does not multiply or
//     add matrices — per the resolution of spec.md §9's Open Question 2
//     (the handle's invariant is "stored k ⇔ materializes exp(A·δ·k)").
package matpow
