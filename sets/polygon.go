package sets

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Polygon is a concrete 2-dimensional convex polytope given in half-space
// (H-representation) form: the intersection of Directions[i]·x <= Offsets[i].
// Directions are stored sorted by angle, which lets Support answer exactly
// via vertex enumeration (each vertex is the intersection of two
// angularly-adjacent constraint lines) rather than a general LP.
type Polygon struct {
	Directions [][]float64 // unit 2-vectors, sorted ascending by angle
	Offsets    []float64   // Offsets[i] corresponds to Directions[i]
	vertices   [][2]float64
}

// Dim always returns 2 for a Polygon.
func (p *Polygon) Dim() int { return 2 }

// Support returns max over the polygon's vertices of d·vertex. Computing
// vertices once at construction (see polygonFromSupport) makes repeated
// Support queries O(#vertices) with no LP solve.
func (p *Polygon) Support(d []float64) (float64, error) {
	if len(d) != 2 {
		return 0, ErrDimensionMismatch
	}
	if len(p.vertices) == 0 {
		return 0, ErrEmptySet
	}
	best := math.Inf(-1)
	for _, v := range p.vertices {
		val := d[0]*v[0] + d[1]*v[1]
		if val > best {
			best = val
		}
	}
	return best, nil
}

// LinearMap wraps the image lazily; a polygon's H-representation is not
// closed under a general 2x2 (or r x 2) linear map without re-deriving
// constraints, so materialization is deferred to Overapproximate.
func (p *Polygon) LinearMap(m mat.Matrix) (Set, error) {
	_, c := m.Dims()
	if c != 2 {
		return nil, ErrDimensionMismatch
	}
	return &LinearMap{M: m, X: p}, nil
}

// MinkowskiSum wraps the sum lazily (flattened into a sum array); exact
// polygon-polygon Minkowski sum would require merging edge lists by
// angle, which no caller in this engine needs since blocks overapproximate
// before crossing back into the propagation loop.
func (p *Polygon) MinkowskiSum(other Set) (Set, error) {
	if other.Dim() != 2 {
		return nil, ErrDimensionMismatch
	}
	return NewMinkowskiSumArray(2, p, other), nil
}

// Overapproximate re-derives the polygon (or box) via the shared
// support-function kernel; a Polygon built from a finer template is
// already a valid enclosure for a coarser one (e.g. box) but not the
// reverse, so every box/template/eps policy re-samples. KindNone returns
// p unchanged.
func (p *Polygon) Overapproximate(policy BlockPolicy) (Set, error) {
	return overapproximateGeneric(p, policy)
}

// octagonDirections returns the 8 unit directions of the axis+diagonal
// template (KindTemplateOctagon / KindTemplateBoxDiag), sorted by angle.
func octagonDirections() [][]float64 {
	dirs := make([][]float64, 8)
	for i := 0; i < 8; i++ {
		theta := float64(i) * math.Pi / 4
		dirs[i] = []float64{math.Cos(theta), math.Sin(theta)}
	}
	return dirs
}

// epsDirections returns enough evenly-spaced unit directions that the
// resulting polygon's support-function error against a smooth convex set
// is bounded by eps at every sampled angle: a chord at angular spacing θ
// undershoots the true support by a factor of (1 - cos(θ/2)); solving
// 1 - cos(θ/2) <= eps for θ gives the spacing used here.
func epsDirections(eps float64) [][]float64 {
	if eps > 1 {
		eps = 1
	}
	theta := 2 * math.Acos(1-eps)
	n := int(math.Ceil(2 * math.Pi / theta))
	if n < 8 {
		n = 8
	}
	dirs := make([][]float64, n)
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / float64(n)
		dirs[i] = []float64{math.Cos(a), math.Sin(a)}
	}
	return dirs
}

// polygonFromSupport builds a Polygon by evaluating s.Support at every
// direction in dirs (already sorted by angle), then deriving vertices as
// the pairwise intersection of angularly-adjacent constraint lines.
func polygonFromSupport(s Set, dirs [][]float64) (*Polygon, error) {
	if s.Dim() != 2 {
		return nil, ErrPolicyDimension
	}
	offsets := make([]float64, len(dirs))
	for i, d := range dirs {
		v, err := s.Support(d)
		if err != nil {
			return nil, err
		}
		offsets[i] = v
	}
	poly := &Polygon{Directions: dirs, Offsets: offsets}
	poly.vertices = verticesFromHalfspaces(dirs, offsets)
	return poly, nil
}

// verticesFromHalfspaces solves, for each pair of angularly-adjacent
// constraints i, i+1 (mod n), the 2x2 linear system
//
//	Directions[i]·x   = Offsets[i]
//	Directions[i+1]·x = Offsets[i+1]
//
// yielding the polygon's vertex between those two edges.
func verticesFromHalfspaces(dirs [][]float64, offsets []float64) [][2]float64 {
	n := len(dirs)
	if n < 3 {
		return nil
	}
	verts := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a1, b1, c1 := dirs[i][0], dirs[i][1], offsets[i]
		a2, b2, c2 := dirs[j][0], dirs[j][1], offsets[j]
		det := a1*b2 - a2*b1
		if math.Abs(det) < 1e-12 {
			continue // near-parallel adjacent constraints; skip degenerate vertex
		}
		x := (c1*b2 - c2*b1) / det
		y := (a1*c2 - a2*c1) / det
		verts = append(verts, [2]float64{x, y})
	}
	return verts
}

// overapproximateGeneric is the shared dispatcher used by every concrete
// and lazy Set kind's Overapproximate method. It is the "overapprox_i"
// referenced throughout spec.md §4.
func overapproximateGeneric(s Set, policy BlockPolicy) (Set, error) {
	switch policy.Kind {
	case KindNone:
		return s, nil
	case KindLinearMapPassthrough:
		if _, ok := s.(*LinearMap); !ok {
			return nil, ErrPolicyNotApplicable
		}
		return s, nil
	case KindInterval:
		if s.Dim() != 1 {
			return nil, ErrPolicyDimension
		}
		box, err := boxFromSupport(s)
		if err != nil {
			return nil, err
		}
		return &Interval{Lo: box.Lo[0], Hi: box.Hi[0]}, nil
	case KindHyperrectangle, KindTemplateBox:
		return boxFromSupport(s)
	case KindTemplateOctagon, KindTemplateBoxDiag:
		return polygonFromSupport(s, octagonDirections())
	case KindEpsPolygon:
		if policy.Epsilon <= 0 {
			return nil, ErrEpsilonRequired
		}
		return polygonFromSupport(s, epsDirections(policy.Epsilon))
	default:
		return nil, ErrPolicyDimension
	}
}

// sortDirectionsByAngle is a small helper kept for callers that build a
// custom template direction set and need the angle-sortedness Support
// enumeration relies on.
func sortDirectionsByAngle(dirs [][]float64) {
	sort.Slice(dirs, func(i, j int) bool {
		return math.Atan2(dirs[i][1], dirs[i][0]) < math.Atan2(dirs[j][1], dirs[j][0])
	})
}
