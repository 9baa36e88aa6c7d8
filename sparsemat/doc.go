// Package sparsemat provides a row-major compressed-sparse-row (CSR)
// matrix used by the sparse matrix-power backend (package matpow) and by
// the block-propagation engine's structural-zero test.
//
// A graph library's matrix package writes its own Dense type rather than
// reaching for a BLAS-backed dependency; sparsemat follows the same "write the
// primitive you need" idiom for the one piece the domain stack's chosen
// numerical library (gonum) does not provide off the shelf — a sparse
// matrix type. CSR implements gonum's mat.Matrix (Dims/At/T), so every
// CSR value can be passed anywhere this module expects a mat.Matrix:
// dense propagation code, Zonotope.LinearMap, and so on all interop with
// it for free.
package sparsemat
