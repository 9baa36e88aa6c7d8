// Package sets_test contains unit tests for the lazy set algebra.
package sets_test

import (
	"testing"

	"github.com/arborix/reachflow/sets"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestIntervalSupportAndSum(t *testing.T) {
	a := &sets.Interval{Lo: -1, Hi: 2}
	v, err := a.Support([]float64{1})
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = a.Support([]float64{-1})
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // -1 * Lo = -1*-1 = 1

	b := &sets.Interval{Lo: 0, Hi: 1}
	sum, err := a.MinkowskiSum(b)
	require.NoError(t, err)
	si, ok := sum.(*sets.Interval)
	require.True(t, ok)
	require.Equal(t, -1.0, si.Lo)
	require.Equal(t, 3.0, si.Hi)
}

func TestIntervalDimensionMismatch(t *testing.T) {
	a := &sets.Interval{Lo: 0, Hi: 1}
	_, err := a.Support([]float64{1, 2})
	require.ErrorIs(t, err, sets.ErrDimensionMismatch)
}

func TestHyperrectangleSupportAndOverapproximate(t *testing.T) {
	box := &sets.Hyperrectangle{Lo: []float64{-1, -2}, Hi: []float64{1, 2}}
	v, err := box.Support([]float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = box.Support([]float64{0, -1})
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	out, err := box.Overapproximate(sets.BlockPolicy{Kind: sets.KindHyperrectangle})
	require.NoError(t, err)
	require.Same(t, box, out.(*sets.Hyperrectangle))
}

func TestZeroSetIsIdentity(t *testing.T) {
	z := &sets.ZeroSet{N: 2}
	box := &sets.Hyperrectangle{Lo: []float64{-1, -1}, Hi: []float64{1, 1}}

	sum, err := z.MinkowskiSum(box)
	require.NoError(t, err)
	require.Same(t, box, sum.(*sets.Hyperrectangle))

	v, err := z.Support([]float64{5, -3})
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestLinearMapPullsBackDirection(t *testing.T) {
	box := &sets.Hyperrectangle{Lo: []float64{0, 0}, Hi: []float64{1, 1}}
	m := mat.NewDense(1, 2, []float64{1, 1}) // projects x+y
	lm, err := box.LinearMap(m)
	require.NoError(t, err)
	require.Equal(t, 1, lm.Dim())

	v, err := lm.Support([]float64{1})
	require.NoError(t, err)
	require.InDelta(t, 2.0, v, 1e-9) // max of x+y over unit box is 2
}

// TestLinearMapComposesWithDifferentDomainAndRangeDims guards against a
// composed-shape regression: l.M projects 3 dims down to 1 (domain 3,
// range 1), and m2 maps that same range (1) down to a further reduced
// dimension (1), so the composed matrix's column count must track l.M's
// domain (3), not m2's own column count.
func TestLinearMapComposesWithDifferentDomainAndRangeDims(t *testing.T) {
	box := &sets.Hyperrectangle{Lo: []float64{0, 0, 0}, Hi: []float64{1, 1, 1}}
	sel := mat.NewDense(1, 3, []float64{1, 0, 0}) // l.M: domain 3, range 1
	lazy, err := box.LinearMap(sel)
	require.NoError(t, err)

	scale := mat.NewDense(1, 1, []float64{2}) // m2: domain 1, range 1
	composed, err := lazy.LinearMap(scale)
	require.NoError(t, err)
	require.Equal(t, 1, composed.Dim())

	v, err := composed.Support([]float64{1})
	require.NoError(t, err)
	require.InDelta(t, 2.0, v, 1e-9) // max of 2*x over [0,1] is 2
}

func TestMinkowskiSumArrayCollapseAndForget(t *testing.T) {
	arr := sets.NewMinkowskiSumArray(1, &sets.Interval{Lo: 0, Hi: 1})
	require.NoError(t, arr.Append(&sets.Interval{Lo: 0, Hi: 1}))
	require.Equal(t, 2, arr.Len())

	collapsed, err := arr.CollapseInto(sets.BlockPolicy{Kind: sets.KindInterval})
	require.NoError(t, err)
	iv := collapsed.(*sets.Interval)
	require.Equal(t, 0.0, iv.Lo)
	require.Equal(t, 2.0, iv.Hi)
	require.Equal(t, 0, arr.Len()) // box policy doesn't depend on history: tail forgotten

	require.NoError(t, arr.Append(&sets.Interval{Lo: -1, Hi: 1}))
	v, err := arr.Support([]float64{1})
	require.NoError(t, err)
	require.InDelta(t, 3.0, v, 1e-9) // collapsed prefix (0..2) + new term (-1..1) support at d=1
}

func TestMinkowskiSumArrayRetainsHistoryForEpsPolygon(t *testing.T) {
	arr := sets.NewMinkowskiSumArray(2, &sets.Hyperrectangle{Lo: []float64{0, 0}, Hi: []float64{1, 1}})
	_, err := arr.CollapseInto(sets.BlockPolicy{Kind: sets.KindEpsPolygon, Epsilon: 0.1})
	require.NoError(t, err)
	require.Equal(t, 1, arr.Len(), "eps-polygon policy must retain the tail across a collapse")
}

func TestOctagonPolygonSupportMatchesBox(t *testing.T) {
	box := &sets.Hyperrectangle{Lo: []float64{-1, -1}, Hi: []float64{1, 1}}
	poly, err := box.Overapproximate(sets.BlockPolicy{Kind: sets.KindTemplateOctagon})
	require.NoError(t, err)

	for _, d := range [][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
		bv, _ := box.Support(d)
		pv, err := poly.Support(d)
		require.NoError(t, err)
		require.InDelta(t, bv, pv, 1e-9)
	}
}

func TestCartesianProductArraySupportIsAdditive(t *testing.T) {
	b1 := &sets.Interval{Lo: -1, Hi: 1}
	b2 := &sets.Hyperrectangle{Lo: []float64{0, 0}, Hi: []float64{2, 2}}
	cp := sets.NewCartesianProductArray([]sets.Set{b1, b2})
	require.Equal(t, 3, cp.Dim())

	v, err := cp.Support([]float64{1, 1, 0})
	require.NoError(t, err)
	require.InDelta(t, 3.0, v, 1e-9) // Support(b1,[1])=1, Support(b2,[1,0])=2

	_, err = cp.LinearMap(mat.NewDense(1, 3, []float64{1, 1, 1}))
	require.ErrorIs(t, err, sets.ErrUnsupportedOperation)
}

func TestDisjointFromUnionAndInvariant(t *testing.T) {
	box := &sets.Hyperrectangle{Lo: []float64{0, 0}, Hi: []float64{1, 1}}
	farGuard := sets.HalfSpace{Normal: []float64{1, 0}, Offset: -5} // x <= -5, box is at x in [0,1]

	disjoint, err := sets.DisjointFromUnion(box, []sets.HalfSpace{farGuard})
	require.NoError(t, err)
	require.True(t, disjoint)

	nearGuard := sets.HalfSpace{Normal: []float64{1, 0}, Offset: 0.5}
	disjoint, err = sets.DisjointFromUnion(box, []sets.HalfSpace{nearGuard})
	require.NoError(t, err)
	require.False(t, disjoint)

	may, err := sets.MayIntersectIntersection(box, []sets.HalfSpace{farGuard})
	require.NoError(t, err)
	require.False(t, may) // separating hyperplane found: truly disjoint from the invariant

	may, err = sets.MayIntersectIntersection(box, []sets.HalfSpace{nearGuard})
	require.NoError(t, err)
	require.True(t, may) // no separating hyperplane found: must conservatively continue
}

func TestZonotopeLinearMapExact(t *testing.T) {
	z := &sets.Zonotope{
		Center:     []float64{0, 0},
		Generators: mat.NewDense(2, 1, []float64{1, 0}),
	}
	rot := mat.NewDense(2, 2, []float64{0, -1, 1, 0}) // 90deg rotation
	out, err := z.LinearMap(rot)
	require.NoError(t, err)
	zz := out.(*sets.Zonotope)
	require.InDeltaSlice(t, []float64{0, 0}, zz.Center, 1e-9)
	require.InDelta(t, 0.0, zz.Generators.At(0, 0), 1e-9)
	require.InDelta(t, 1.0, zz.Generators.At(1, 0), 1e-9)
}
