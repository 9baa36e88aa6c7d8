package sparsemat_test

import (
	"testing"

	"github.com/arborix/reachflow/sparsemat"
	"github.com/stretchr/testify/require"
)

func TestAtAndStructuralZero(t *testing.T) {
	m, err := sparsemat.NewCSR(3, 3, []sparsemat.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 2},
		{Row: 2, Col: 2, Value: 3},
	})
	require.NoError(t, err)
	require.Equal(t, 2.0, m.At(1, 1))
	require.Equal(t, 0.0, m.At(0, 1))
	require.True(t, m.IsStructurallyZero(0, 0, 1, 2))
	require.False(t, m.IsStructurallyZero(0, 0, 0, 0))
}

func TestMulIdentity(t *testing.T) {
	id := sparsemat.Identity(3)
	m, err := sparsemat.NewCSR(3, 3, []sparsemat.Entry{
		{Row: 0, Col: 1, Value: 5},
		{Row: 2, Col: 0, Value: 7},
	})
	require.NoError(t, err)

	out, err := sparsemat.Mul(id, m)
	require.NoError(t, err)
	require.Equal(t, 5.0, out.At(0, 1))
	require.Equal(t, 7.0, out.At(2, 0))
	require.Equal(t, 0.0, out.At(1, 1))
}

func TestMulDimensionMismatch(t *testing.T) {
	a, _ := sparsemat.NewCSR(2, 3, nil)
	b, _ := sparsemat.NewCSR(2, 2, nil)
	_, err := sparsemat.Mul(a, b)
	require.ErrorIs(t, err, sparsemat.ErrDimensionMismatch)
}

func TestRowBlockAndSubBlockDense(t *testing.T) {
	m, err := sparsemat.NewCSR(2, 2, []sparsemat.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 2},
		{Row: 1, Col: 1, Value: 4},
	})
	require.NoError(t, err)

	row := m.RowBlockDense(1, 1)
	require.Equal(t, 0.0, row.At(0, 0))
	require.Equal(t, 4.0, row.At(0, 1))

	sub := m.SubBlockDense(0, 0, 1, 1)
	require.Equal(t, 1, sub.RawMatrix().Rows)
	require.Equal(t, 2.0, sub.At(0, 0))
}
