// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	out, err := matrix.Apply(m, func(v float64) float64 { return v * 10 })
	require.NoError(t, err)
	require.Equal(t, [][]float64{{10, 20}, {30, 40}}, out.ToRows())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	_, err = matrix.Apply(nil, math.Sqrt)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSymmetrize(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0.2}, {0.6, 1}})
	s, err := matrix.Symmetrize(m)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(s, 0))
	v, _ := s.At(0, 1)
	require.InDelta(t, 0.4, v, 1e-12)

	_, err = matrix.Symmetrize(mustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAllClose(t *testing.T) {
	a := mustDense(t, [][]float64{{1, math.Inf(1)}})
	b := mustDense(t, [][]float64{{1 + 1e-12, math.Inf(1)}})
	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	c := mustDense(t, [][]float64{{1.1, math.Inf(1)}})
	ok, err = matrix.AllClose(a, c, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustDense(t, [][]float64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidators(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	asym := mustDense(t, [][]float64{{0, 1}, {2, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-9), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 1.5))

	bad := mustDense(t, [][]float64{{0, math.NaN()}})
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
}

func TestFromGonum(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	back, err := matrix.FromGonum(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, back, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}
