package sets

import "gonum.org/v1/gonum/mat"

// Zonotope is a concrete centrally-symmetric set Center ⊕ Σ_j [-1,1]*g_j,
// where g_j are the columns of Generators. Zonotopes are closed exactly
// under both linear map and Minkowski sum, which makes them the natural
// concrete representation for a block's init set when the caller wants
// tighter-than-box geometry without paying ε-polygon LP costs.
type Zonotope struct {
	Center     []float64
	Generators *mat.Dense // n x m: n == Dim(), m generators
}

// Dim returns len(Center).
func (z *Zonotope) Dim() int { return len(z.Center) }

// Support evaluates ρ_Z(d) = d·Center + Σ_j |d·g_j|.
func (z *Zonotope) Support(d []float64) (float64, error) {
	n := z.Dim()
	if len(d) != n {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += d[i] * z.Center[i]
	}
	_, m := z.Generators.Dims()
	for j := 0; j < m; j++ {
		var dg float64
		for i := 0; i < n; i++ {
			dg += d[i] * z.Generators.At(i, j)
		}
		if dg < 0 {
			dg = -dg
		}
		sum += dg
	}
	return sum, nil
}

// LinearMap computes the exact image M*Z = (M*Center) ⊕ Σ_j [-1,1]*(M*g_j),
// which is again a Zonotope — no overapproximation introduced.
func (z *Zonotope) LinearMap(mm mat.Matrix) (Set, error) {
	r, c := mm.Dims()
	if c != z.Dim() {
		return nil, ErrDimensionMismatch
	}
	newCenter := make([]float64, r)
	for i := 0; i < r; i++ {
		var s float64
		for k := 0; k < c; k++ {
			s += mm.At(i, k) * z.Center[k]
		}
		newCenter[i] = s
	}
	_, ngen := z.Generators.Dims()
	newGen := mat.NewDense(r, ngen, nil)
	newGen.Mul(mm, z.Generators)
	return &Zonotope{Center: newCenter, Generators: newGen}, nil
}

// MinkowskiSum concatenates generators and adds centers exactly when
// other is also a Zonotope; otherwise falls back to a lazy sum array.
func (z *Zonotope) MinkowskiSum(other Set) (Set, error) {
	if other.Dim() != z.Dim() {
		return nil, ErrDimensionMismatch
	}
	o, ok := other.(*Zonotope)
	if !ok {
		return NewMinkowskiSumArray(z.Dim(), z, other), nil
	}
	n := z.Dim()
	center := make([]float64, n)
	for i := range center {
		center[i] = z.Center[i] + o.Center[i]
	}
	_, m1 := z.Generators.Dims()
	_, m2 := o.Generators.Dims()
	gen := mat.NewDense(n, m1+m2, nil)
	gen.Slice(0, n, 0, m1).(*mat.Dense).Copy(z.Generators)
	gen.Slice(0, n, m1, m1+m2).(*mat.Dense).Copy(o.Generators)
	return &Zonotope{Center: center, Generators: gen}, nil
}

// Overapproximate collapses a zonotope to a box/polygon/passthrough via
// the shared support-function kernels; KindNone keeps it lazy (exact).
func (z *Zonotope) Overapproximate(policy BlockPolicy) (Set, error) {
	return overapproximateGeneric(z, policy)
}
