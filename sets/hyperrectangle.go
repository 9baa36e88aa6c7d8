package sets

import "gonum.org/v1/gonum/mat"

// Hyperrectangle is a concrete n-dimensional axis-aligned box: the
// Cartesian product of per-axis intervals [Lo[i], Hi[i]].
type Hyperrectangle struct {
	Lo, Hi []float64
}

// Dim returns len(Lo).
func (h *Hyperrectangle) Dim() int { return len(h.Lo) }

// Support evaluates ρ_H(d) = Σ_i max(d_i*Lo_i, d_i*Hi_i).
func (h *Hyperrectangle) Support(d []float64) (float64, error) {
	if len(d) != h.Dim() {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i, di := range d {
		lo, hi := di*h.Lo[i], di*h.Hi[i]
		if lo > hi {
			sum += lo
		} else {
			sum += hi
		}
	}
	return sum, nil
}

// LinearMap wraps the mapped box lazily — an axis-aligned box is not in
// general closed under a dense linear map, so the result only becomes
// concrete again once Overapproximate is invoked.
func (h *Hyperrectangle) LinearMap(m mat.Matrix) (Set, error) {
	_, c := m.Dims()
	if c != h.Dim() {
		return nil, ErrDimensionMismatch
	}
	return &LinearMap{M: m, X: h}, nil
}

// MinkowskiSum returns h ⊕ other, computed exactly (component-wise) when
// other is also a concrete Hyperrectangle of the same dimension.
func (h *Hyperrectangle) MinkowskiSum(other Set) (Set, error) {
	if other.Dim() != h.Dim() {
		return nil, ErrDimensionMismatch
	}
	if o, ok := other.(*Hyperrectangle); ok {
		n := h.Dim()
		lo := make([]float64, n)
		hi := make([]float64, n)
		for i := 0; i < n; i++ {
			lo[i] = h.Lo[i] + o.Lo[i]
			hi[i] = h.Hi[i] + o.Hi[i]
		}
		return &Hyperrectangle{Lo: lo, Hi: hi}, nil
	}
	return NewMinkowskiSumArray(h.Dim(), h, other), nil
}

// Overapproximate: a Hyperrectangle already satisfies KindHyperrectangle
// and KindTemplateBox exactly; KindInterval additionally requires Dim()==1.
func (h *Hyperrectangle) Overapproximate(policy BlockPolicy) (Set, error) {
	switch policy.Kind {
	case KindNone, KindHyperrectangle, KindTemplateBox:
		return h, nil
	case KindInterval:
		if h.Dim() != 1 {
			return nil, ErrPolicyDimension
		}
		return &Interval{Lo: h.Lo[0], Hi: h.Hi[0]}, nil
	case KindTemplateOctagon, KindTemplateBoxDiag:
		if h.Dim() != 2 {
			return nil, ErrPolicyDimension
		}
		return polygonFromSupport(h, octagonDirections())
	case KindEpsPolygon:
		if h.Dim() != 2 {
			return nil, ErrPolicyDimension
		}
		if policy.Epsilon <= 0 {
			return nil, ErrEpsilonRequired
		}
		return polygonFromSupport(h, epsDirections(policy.Epsilon))
	default:
		return nil, ErrPolicyDimension
	}
}
