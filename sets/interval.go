package sets

import "gonum.org/v1/gonum/mat"

// Interval is a concrete 1-dimensional box [Lo, Hi]. It is the default
// policy target for every 1D block (§4.5: "Blocks with no configured
// policy default to interval for 1D blocks").
type Interval struct {
	Lo, Hi float64
}

// Dim always returns 1 for an Interval.
func (iv *Interval) Dim() int { return 1 }

// Support returns d[0]*Hi when d[0] >= 0, d[0]*Lo otherwise.
func (iv *Interval) Support(d []float64) (float64, error) {
	if len(d) != 1 {
		return 0, ErrDimensionMismatch
	}
	if d[0] >= 0 {
		return d[0] * iv.Hi, nil
	}
	return d[0] * iv.Lo, nil
}

// LinearMap applies an r×1 matrix. A 1×1 map keeps the result as a
// concrete Interval (scaling, with sign flip handled); any other row
// count wraps into a lazy LinearMap since the image is no longer 1D.
func (iv *Interval) LinearMap(m mat.Matrix) (Set, error) {
	r, c := m.Dims()
	if c != 1 {
		return nil, ErrDimensionMismatch
	}
	if r == 1 {
		a := m.At(0, 0)
		lo, hi := a*iv.Lo, a*iv.Hi
		if lo > hi {
			lo, hi = hi, lo
		}
		return &Interval{Lo: lo, Hi: hi}, nil
	}
	return &LinearMap{M: m, X: iv}, nil
}

// MinkowskiSum returns iv ⊕ other. If other is also a concrete Interval
// the sum is computed exactly and cheaply; otherwise the result is a
// fresh MinkowskiSumArray (flattening to keep the engine's accumulation
// tree shallow per §9 design note #3).
func (iv *Interval) MinkowskiSum(other Set) (Set, error) {
	if other.Dim() != 1 {
		return nil, ErrDimensionMismatch
	}
	if o, ok := other.(*Interval); ok {
		return &Interval{Lo: iv.Lo + o.Lo, Hi: iv.Hi + o.Hi}, nil
	}
	return NewMinkowskiSumArray(1, iv, other), nil
}

// Overapproximate is a no-op for KindNone/KindInterval/KindHyperrectangle
// (an Interval already satisfies all three at dimension 1); any other
// policy is not applicable to a 1D block.
func (iv *Interval) Overapproximate(policy BlockPolicy) (Set, error) {
	switch policy.Kind {
	case KindNone, KindInterval, KindHyperrectangle, KindTemplateBox:
		return iv, nil
	default:
		return nil, ErrPolicyDimension
	}
}
