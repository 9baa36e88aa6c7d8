package inputs_test

import (
	"testing"

	"github.com/arborix/reachflow/inputs"
	"github.com/arborix/reachflow/sets"
	"github.com/stretchr/testify/require"
)

func box(lo, hi float64) *sets.Hyperrectangle {
	return &sets.Hyperrectangle{Lo: []float64{lo}, Hi: []float64{hi}}
}

func TestAccumulatorInitWrapsAndCollapses(t *testing.T) {
	acc := inputs.NewAccumulator(1, sets.BlockPolicy{Kind: sets.KindInterval}, inputs.Always())
	w1, err := acc.Init(box(-1, 1))
	require.NoError(t, err)
	require.Equal(t, 1, w1.Dim())
	iv, ok := w1.(*sets.Interval)
	require.True(t, ok)
	require.Equal(t, -1.0, iv.Lo)
	require.Equal(t, 1.0, iv.Hi)
}

func TestAccumulatorInitTwiceFails(t *testing.T) {
	acc := inputs.NewAccumulator(1, sets.BlockPolicy{Kind: sets.KindInterval}, inputs.Always())
	_, err := acc.Init(box(-1, 1))
	require.NoError(t, err)
	_, err = acc.Init(box(-1, 1))
	require.ErrorIs(t, err, inputs.ErrAlreadyInitialized)
}

func TestAccumulatorAdvanceBeforeInitFails(t *testing.T) {
	acc := inputs.NewAccumulator(1, sets.BlockPolicy{Kind: sets.KindInterval}, inputs.Always())
	_, err := acc.Advance(1, box(-1, 1))
	require.ErrorIs(t, err, inputs.ErrNotInitialized)
}

func TestAccumulatorAlwaysCollapseStaysConcrete(t *testing.T) {
	acc := inputs.NewAccumulator(1, sets.BlockPolicy{Kind: sets.KindInterval}, inputs.Always())
	_, err := acc.Init(box(-1, 1))
	require.NoError(t, err)

	for k := 1; k <= 3; k++ {
		w, err := acc.Advance(k, box(-0.5, 0.5))
		require.NoError(t, err)
		_, isInterval := w.(*sets.Interval)
		require.True(t, isInterval, "Always() should collapse to a concrete Interval every step")
		require.Equal(t, 0, acc.Len(), "collapsing under a history-independent policy should forget the tail")
	}
}

func TestAccumulatorNeverCollapseGrowsArray(t *testing.T) {
	acc := inputs.NewAccumulator(1, sets.BlockPolicy{Kind: sets.KindInterval}, inputs.Never())
	_, err := acc.Init(box(-1, 1))
	require.NoError(t, err)

	for k := 1; k <= 3; k++ {
		w, err := acc.Advance(k, box(-0.1, 0.1))
		require.NoError(t, err)
		_, isArray := w.(*sets.MinkowskiSumArray)
		require.True(t, isArray, "Never() must keep the value lazy")
	}
	require.Equal(t, 3, acc.Len())
}

func TestAccumulatorPeriodCollapsesOnMultiples(t *testing.T) {
	pred, err := inputs.Period(2)
	require.NoError(t, err)
	acc := inputs.NewAccumulator(1, sets.BlockPolicy{Kind: sets.KindInterval}, pred)
	_, err = acc.Init(box(-1, 1))
	require.NoError(t, err)

	// collapse?(2) holds: k=1 -> k+1=2 collapses.
	w, err := acc.Advance(1, box(-0.1, 0.1))
	require.NoError(t, err)
	_, isInterval := w.(*sets.Interval)
	require.True(t, isInterval)

	// collapse?(3) does not hold: k=2 -> k+1=3 stays lazy.
	w, err = acc.Advance(2, box(-0.1, 0.1))
	require.NoError(t, err)
	_, isArray := w.(*sets.MinkowskiSumArray)
	require.True(t, isArray)
}

func TestAccumulatorDimensionMismatchRejected(t *testing.T) {
	acc := inputs.NewAccumulator(1, sets.BlockPolicy{Kind: sets.KindInterval}, inputs.Always())
	_, err := acc.Init(&sets.Hyperrectangle{Lo: []float64{0, 0}, Hi: []float64{1, 1}})
	require.ErrorIs(t, err, sets.ErrDimensionMismatch)
}

func TestInvalidPeriodRejected(t *testing.T) {
	_, err := inputs.Period(0)
	require.ErrorIs(t, err, inputs.ErrInvalidPeriod)
}
