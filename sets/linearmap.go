package sets

import "gonum.org/v1/gonum/mat"

// LinearMap is the lazy value { m*x : x ∈ X }, materialized only when
// Support is queried (or Overapproximate is called). It is the lazy
// counterpart used whenever a concrete leaf's LinearMap method cannot
// compute an exact image (boxes and polygons are not closed under a
// general dense map; zonotopes are, and never construct one of these).
type LinearMap struct {
	M mat.Matrix
	X Set
}

// Dim returns the row count of M.
func (l *LinearMap) Dim() int {
	r, _ := l.M.Dims()
	return r
}

// Support uses the identity ρ_{MX}(d) = ρ_X(Mᵀd): pulling the direction
// back through Mᵀ avoids ever materializing M*X's geometry.
func (l *LinearMap) Support(d []float64) (float64, error) {
	r, c := l.M.Dims()
	if len(d) != r {
		return 0, ErrDimensionMismatch
	}
	back := make([]float64, c)
	for k := 0; k < c; k++ {
		var s float64
		for i := 0; i < r; i++ {
			s += l.M.At(i, k) * d[i]
		}
		back[k] = s
	}
	return l.X.Support(back)
}

// LinearMap composes maps lazily: (m2 ∘ l) keeps a single LinearMap node
// wrapping the original X, with M replaced by m2*l.M, so a chain of
// linear maps never builds a deeper lazy tree than one LinearMap node.
func (l *LinearMap) LinearMap(m2 mat.Matrix) (Set, error) {
	r2, c2 := m2.Dims()
	r1, c1 := l.M.Dims()
	if c2 != r1 {
		return nil, ErrDimensionMismatch
	}
	composed := mat.NewDense(r2, c1, nil)
	// composed = m2 * l.M; l.M may itself be a non-*Dense mat.Matrix
	// (e.g. a sparse block), which Dense.Mul accepts generically.
	composed.Mul(m2, l.M)
	return &LinearMap{M: composed, X: l.X}, nil
}

// MinkowskiSum wraps into a flattened sum array (see MinkowskiSumArray).
func (l *LinearMap) MinkowskiSum(other Set) (Set, error) {
	if other.Dim() != l.Dim() {
		return nil, ErrDimensionMismatch
	}
	return NewMinkowskiSumArray(l.Dim(), l, other), nil
}

// Overapproximate dispatches through the shared support-function kernel;
// KindLinearMapPassthrough is the one policy that returns l unchanged.
func (l *LinearMap) Overapproximate(policy BlockPolicy) (Set, error) {
	return overapproximateGeneric(l, policy)
}
