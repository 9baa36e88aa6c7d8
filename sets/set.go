package sets

import "gonum.org/v1/gonum/mat"

// Set is the capability trait every concrete set kind implements. The
// block-propagation engine (package engine) operates exclusively through
// this interface; it never inspects which concrete kind it is holding.
//
// Support is the one primitive every other operation in this package is
// built on: ρ_X(d) = sup { d·x : x ∈ X }. Overapproximation to a box or
// template polytope, and separation tests against guard/invariant
// half-spaces, are all expressed as a handful of Support queries.
type Set interface {
	// Dim returns the dimension of the space this set inhabits.
	Dim() int

	// Support evaluates the support function of the set in direction d.
	// len(d) must equal Dim(). Returns ErrDimensionMismatch otherwise.
	Support(d []float64) (float64, error)

	// LinearMap returns a (generally lazy) set representing { m*x : x ∈ s }.
	// m.Dims() returns (rows, Dim()); the result has dimension rows.
	LinearMap(m mat.Matrix) (Set, error)

	// MinkowskiSum returns a (generally lazy) set representing s ⊕ other.
	// Both operands must share the same Dim().
	MinkowskiSum(other Set) (Set, error)

	// Overapproximate returns a concrete superset of s computed under the
	// given policy. KindNone returns s unchanged (still lazy).
	Overapproximate(policy BlockPolicy) (Set, error)
}

// unitDir returns the n-dimensional unit vector e_i (all zero except a 1
// at index i), used throughout Overapproximate to sample axis directions.
func unitDir(n, i int) []float64 {
	d := make([]float64, n)
	d[i] = 1
	return d
}

// negate returns a fresh slice with every component negated.
func negate(d []float64) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = -v
	}
	return out
}

// boxFromSupport overapproximates any Set to an axis-aligned box by
// sampling Support along ±e_i for every axis i. This is the shared
// kernel behind KindHyperrectangle, KindInterval and KindTemplateBox.
func boxFromSupport(s Set) (*Hyperrectangle, error) {
	n := s.Dim()
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := 0; i < n; i++ {
		up, err := s.Support(unitDir(n, i))
		if err != nil {
			return nil, err
		}
		down, err := s.Support(negate(unitDir(n, i)))
		if err != nil {
			return nil, err
		}
		hi[i] = up
		lo[i] = -down
	}
	return &Hyperrectangle{Lo: lo, Hi: hi}, nil
}

// Separates reports whether s lies entirely on the Normal·x > Offset
// side of h, i.e. s does not intersect h. This is the one primitive both
// guard-union and invariant-intersection disjointness tests are built
// from (see DisjointFromUnion and MayIntersectIntersection below).
func Separates(s Set, h HalfSpace) (bool, error) {
	// s intersects h iff min_{x in s} Normal·x <= Offset.
	// min_{x in s} Normal·x = -sup_{x in s} (-Normal)·x = -Support(-Normal).
	sup, err := s.Support(negate(h.Normal))
	if err != nil {
		return false, err
	}
	minVal := -sup
	return minVal > h.Offset, nil
}

// DisjointFromUnion reports whether s is disjoint from the union of the
// given half-spaces. A set is disjoint from a union iff it is separated
// from every member (if it intersected any member, it would intersect
// the union). Used for guard-crossing detection (§4.5 point 3): the
// candidate set "may cross a guard" iff DisjointFromUnion returns false.
func DisjointFromUnion(s Set, guards []HalfSpace) (bool, error) {
	for _, h := range guards {
		ok, err := Separates(s, h)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// MayIntersectIntersection reports whether s may intersect the polytope
// formed by the intersection (conjunction) of the given half-spaces —
// i.e. whether disjointness from the invariant could NOT be proven.
// Finding any single separating half-space is a sound certificate of
// true disjointness from an intersection-type region; failing to find
// one does not prove intersection, so the result is a safe "continue"
// default. Used by the Invariant termination policy (§4.7).
func MayIntersectIntersection(s Set, invariant []HalfSpace) (bool, error) {
	for _, h := range invariant {
		ok, err := Separates(s, h)
		if err != nil {
			return false, err
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}
