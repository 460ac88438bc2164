// SPDX-License-Identifier: MIT

package reducer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsotonic(t *testing.T) {
	require.Equal(t, []float64{1, 2.5, 2.5, 4}, isotonic([]float64{1, 3, 2, 4}))
	require.Equal(t, []float64{2, 2, 2}, isotonic([]float64{3, 2, 1}))
	require.Equal(t, []float64{0, 1, 2}, isotonic([]float64{0, 1, 2}))
	require.Empty(t, isotonic(nil))
}

func TestRankPairs_StableTies(t *testing.T) {
	delta := [][]float64{
		{0, 2, 1},
		{2, 0, 1},
		{1, 1, 0},
	}
	require.Equal(t, [][2]int{{0, 2}, {1, 2}, {0, 1}}, rankPairs(delta))
}
