package sets

import "gonum.org/v1/gonum/mat"

// ZeroSet represents the singleton {0} ⊂ R^n. It is the Minkowski-sum
// identity and the natural starting accumulator value for the per-block
// cross-term gather in §4.5's pseudocode ("acc := 0-set of dimension
// |P[i]|"), avoiding a special nil-vs-zero-set check at every fold step.
type ZeroSet struct {
	N int
}

// Dim returns the configured dimension.
func (z *ZeroSet) Dim() int { return z.N }

// Support is identically 0 in every direction.
func (z *ZeroSet) Support(d []float64) (float64, error) {
	if len(d) != z.N {
		return 0, ErrDimensionMismatch
	}
	return 0, nil
}

// LinearMap of the zero set is again a zero set of the image dimension:
// M*0 = 0, computed without touching m's entries.
func (z *ZeroSet) LinearMap(m mat.Matrix) (Set, error) {
	r, c := m.Dims()
	if c != z.N {
		return nil, ErrDimensionMismatch
	}
	return &ZeroSet{N: r}, nil
}

// MinkowskiSum returns other unchanged: {0} is the identity element.
func (z *ZeroSet) MinkowskiSum(other Set) (Set, error) {
	if other.Dim() != z.N {
		return nil, ErrDimensionMismatch
	}
	return other, nil
}

// Overapproximate returns z unchanged for every policy: {0} already
// satisfies every box/polygon/passthrough policy exactly.
func (z *ZeroSet) Overapproximate(policy BlockPolicy) (Set, error) {
	return z, nil
}
