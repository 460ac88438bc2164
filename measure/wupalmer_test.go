// SPDX-License-Identifier: MIT

package measure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
)

func TestWuPalmer_FlatTree(t *testing.T) {
	wp, err := measure.NewWuPalmer(weekdayTree(t))
	require.NoError(t, err)

	s, err := wp.Compare("Mon", "Mon")
	require.NoError(t, err)
	require.Equal(t, 1.0, s)

	s, err = wp.Compare("Mon", "Tue")
	require.NoError(t, err)
	require.InDelta(t, 0.5, s, 1e-12)

	s, err = wp.Compare("Weekday", "Weekday")
	require.NoError(t, err)
	require.Equal(t, 1.0, s)

	// Node-counting depth: root 1, days 2.
	s, err = wp.Compare("Weekday", "Mon")
	require.NoError(t, err)
	require.InDelta(t, 2.0/3.0, s, 1e-12)
}

func TestWuPalmer_TwoLevels(t *testing.T) {
	wp, err := measure.NewWuPalmer(colorTree(t))
	require.NoError(t, err)

	cases := []struct {
		a, b string
		want float64
	}{
		{"Darkblue", "Yellow", 2.0 / 6.0},
		{"Darkblue", "Dark", 4.0 / 5.0},
		{"Dark", "Light", 2.0 / 4.0},
		{"Color", "Yellow", 2.0 / 4.0},
	}
	for _, c := range cases {
		ab, err := wp.Compare(c.a, c.b)
		require.NoError(t, err)
		ba, err := wp.Compare(c.b, c.a)
		require.NoError(t, err)
		require.InDelta(t, c.want, ab, 1e-12, "%s/%s", c.a, c.b)
		require.Equal(t, ab, ba, "symmetry %s/%s", c.a, c.b)
		require.GreaterOrEqual(t, ab, 0.0)
		require.LessOrEqual(t, ab, 1.0)
	}

	lca, err := wp.LCA("Darkblue", "Dark")
	require.NoError(t, err)
	require.Equal(t, "Dark", lca)
}

func TestWuPalmer_SelfSimilarityEverywhere(t *testing.T) {
	tree := colorTree(t)
	wp, err := measure.NewWuPalmer(tree)
	require.NoError(t, err)
	for _, c := range tree.Concepts() {
		s, err := wp.Compare(c, c)
		require.NoError(t, err)
		require.Equal(t, 1.0, s, c)
	}
}

func TestWuPalmer_WeightedDepth(t *testing.T) {
	wp, err := measure.NewWuPalmer(colorTree(t), measure.WithWeightedDepth())
	require.NoError(t, err)

	d, ok := wp.Depth("Darkblue")
	require.True(t, ok)
	require.InDelta(t, 2.4, d, 1e-12)

	s, err := wp.Compare("Darkblue", "Dark")
	require.NoError(t, err)
	require.InDelta(t, 4.0/4.4, s, 1e-12)
}

func TestWuPalmer_RootDepthZero(t *testing.T) {
	wp, err := measure.NewWuPalmer(colorTree(t), measure.WithRootDepth(0))
	require.NoError(t, err)

	s, err := wp.Compare("Dark", "Light")
	require.NoError(t, err)
	require.Equal(t, 0.0, s)

	s, err = wp.Compare("Color", "Color")
	require.NoError(t, err)
	require.Equal(t, 1.0, s, "zero denominator yields 1")

	_, err = measure.NewWuPalmer(colorTree(t), measure.WithRootDepth(-1))
	require.ErrorIs(t, err, measure.ErrBadOption)
}

func TestWuPalmer_Errors(t *testing.T) {
	wp, err := measure.NewWuPalmer(colorTree(t))
	require.NoError(t, err)
	_, err = wp.Compare("Darkblue", "Purple")
	require.ErrorIs(t, err, measure.ErrUnknownConcept)

	bad, err := hierarchy.NewTree("R")
	require.NoError(t, err)
	require.NoError(t, bad.AddChild("A", ""))
	require.NoError(t, bad.AddChild("B", ""))
	require.NoError(t, bad.AddChild("C", "A"))
	require.NoError(t, bad.AddChild("C", "B"))
	_, err = measure.NewWuPalmer(bad)
	require.ErrorIs(t, err, measure.ErrInvalidHierarchy)

	neg, err := hierarchy.NewTree("R")
	require.NoError(t, err)
	require.NoError(t, neg.AddConcept("A", "", -1))
	_, err = measure.NewWuPalmer(neg)
	require.NoError(t, err, "edge counting ignores weights")
	_, err = measure.NewWuPalmer(neg, measure.WithWeightedDepth())
	require.ErrorIs(t, err, measure.ErrNegativeWeight)
}
