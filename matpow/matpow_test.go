package matpow_test

import (
	"testing"

	"github.com/arborix/reachflow/matpow"
	"github.com/arborix/reachflow/partition"
	"github.com/arborix/reachflow/sparsemat"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// blockDiagPhi builds the 4x4 block-diagonal state-transition matrix
// [[0,1,0,0],[-1,0,0,0],[0,0,2,0],[0,0,0,0.5]] — a 2D rotation-generator
// block paired with an independent 1D scaling block, the same style of
// fixture spec.md §8's worked examples use.
func blockDiagPhi() [][]float64 {
	return [][]float64{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 0.5},
	}
}

func densePhi(t *testing.T) *mat.Dense {
	t.Helper()
	rows := blockDiagPhi()
	d := mat.NewDense(4, 4, nil)
	for i, row := range rows {
		for j, v := range row {
			d.Set(i, j, v)
		}
	}
	return d
}

func sparsePhi(t *testing.T) *sparsemat.CSR {
	t.Helper()
	rows := blockDiagPhi()
	var entries []sparsemat.Entry
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				entries = append(entries, sparsemat.Entry{Row: i, Col: j, Value: v})
			}
		}
	}
	m, err := sparsemat.NewCSR(4, 4, entries)
	require.NoError(t, err)
	return m
}

func twoBlockPartition(t *testing.T) *partition.Partition {
	t.Helper()
	p, err := partition.New([]partition.Block{{Lo: 0, Hi: 1}, {Lo: 2, Hi: 3}})
	require.NoError(t, err)
	return p
}

func matAt(m mat.Matrix, i, j int) float64 { return m.At(i, j) }

func TestDenseHandleAdvanceMatchesDirectPower(t *testing.T) {
	part := twoBlockPartition(t)
	h, err := matpow.NewDense(part, densePhi(t))
	require.NoError(t, err)
	require.Equal(t, 1, h.K())

	require.NoError(t, h.Advance())
	require.Equal(t, 2, h.K())

	// Φ² restricted to block 0 (rows 0-1) is the standard rotation-square
	// [[-1,0],[0,-1]] embedded in columns 0-1.
	row, err := h.Row(0)
	require.NoError(t, err)
	require.InDelta(t, -1, matAt(row, 0, 0), 1e-9)
	require.InDelta(t, 0, matAt(row, 0, 1), 1e-9)
	require.InDelta(t, 0, matAt(row, 1, 0), 1e-9)
	require.InDelta(t, -1, matAt(row, 1, 1), 1e-9)

	sub, err := h.Sub(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 4, matAt(sub, 0, 0), 1e-9)
	require.InDelta(t, 0.25, matAt(sub, 1, 1), 1e-9)
}

func TestSparseHandleAdvanceMatchesDense(t *testing.T) {
	part := twoBlockPartition(t)
	dh, err := matpow.NewDense(part, densePhi(t))
	require.NoError(t, err)
	sh, err := matpow.NewSparse(part, sparsePhi(t))
	require.NoError(t, err)

	for step := 0; step < 3; step++ {
		for i := 0; i < part.Len(); i++ {
			for j := 0; j < part.Len(); j++ {
				ds, err := dh.Sub(i, j)
				require.NoError(t, err)
				ss, err := sh.Sub(i, j)
				require.NoError(t, err)
				dr, dc := ds.Dims()
				sr, sc := ss.Dims()
				require.Equal(t, dr, sr)
				require.Equal(t, dc, sc)
				for r := 0; r < dr; r++ {
					for c := 0; c < dc; c++ {
						require.InDelta(t, matAt(ds, r, c), matAt(ss, r, c), 1e-9)
					}
				}
			}
		}
		require.NoError(t, dh.Advance())
		require.NoError(t, sh.Advance())
	}
}

func TestSparseHandleIsZeroBlockReflectsStructure(t *testing.T) {
	part := twoBlockPartition(t)
	sh, err := matpow.NewSparse(part, sparsePhi(t))
	require.NoError(t, err)

	zero, err := sh.IsZeroBlock(0, 1)
	require.NoError(t, err)
	require.True(t, zero, "cross-block Phi coupling is structurally zero in this fixture")

	zero, err = sh.IsZeroBlock(0, 0)
	require.NoError(t, err)
	require.False(t, zero)
}

func TestLazyExpHandleAdvanceOnlyIncrementsK(t *testing.T) {
	part := twoBlockPartition(t)
	a := densePhi(t) // reused as the generator A for this fixture; only k's bookkeeping matters here
	calls := 0
	extractor := func(a mat.Matrix, delta float64, k int, rowLo, rowHi, colLo, colHi int, assumeSparse bool) (mat.Matrix, error) {
		calls++
		h := rowHi - rowLo + 1
		w := colHi - colLo + 1
		out := mat.NewDense(h, w, nil)
		// Stand in for exp(A*delta*k): just scale an identity block by k,
		// enough to prove the handle threads k through to the extractor
		// instead of mutating any matrix itself.
		for i := 0; i < h && i < w; i++ {
			out.Set(i, i, float64(k))
		}
		return out, nil
	}

	h, err := matpow.NewLazyExp(part, a, 0.1, false, extractor)
	require.NoError(t, err)
	require.Equal(t, 1, h.K())

	sub, err := h.Sub(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 1, matAt(sub, 0, 0), 1e-9)

	require.NoError(t, h.Advance())
	require.NoError(t, h.Advance())
	require.Equal(t, 3, h.K())

	sub, err = h.Sub(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 3, matAt(sub, 0, 0), 1e-9)
	require.Equal(t, 2, calls, "Row/Sub before the two Advance calls should not have driven extra extractor calls")
}

func TestLazyExpHandleRejectsNilExtractor(t *testing.T) {
	part := twoBlockPartition(t)
	_, err := matpow.NewLazyExp(part, densePhi(t), 0.1, false, nil)
	require.ErrorIs(t, err, matpow.ErrNilExtractor)
}

func TestHandlesRejectOutOfRangeBlock(t *testing.T) {
	part := twoBlockPartition(t)
	dh, err := matpow.NewDense(part, densePhi(t))
	require.NoError(t, err)
	_, err = dh.Row(5)
	require.ErrorIs(t, err, matpow.ErrBlockOutOfRange)

	sh, err := matpow.NewSparse(part, sparsePhi(t))
	require.NoError(t, err)
	_, err = sh.Sub(0, 9)
	require.ErrorIs(t, err, matpow.ErrBlockOutOfRange)
}

func TestNewDenseRejectsDimensionMismatch(t *testing.T) {
	part := twoBlockPartition(t)
	bad := mat.NewDense(3, 3, nil)
	_, err := matpow.NewDense(part, bad)
	require.ErrorIs(t, err, matpow.ErrDimensionMismatch)
}
