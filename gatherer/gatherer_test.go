// SPDX-License-Identifier: MIT

package gatherer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StuttgarterDotNet/contextual-encoders/gatherer"
	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
)

// lenRatio is an asymmetric toy measure: len(a)/len(b).
type lenRatio struct{}

func (lenRatio) Compare(a, b string) (float64, error) {
	if a == "?" || b == "?" {
		return 0, errors.New("boom")
	}
	return float64(len(a)) / float64(len(b)), nil
}
func (lenRatio) Kind() measure.Kind { return measure.Similarity }
func (lenRatio) MultiValued() bool  { return false }
func (lenRatio) Name() string       { return "len_ratio" }

// jaccard is a multi-valued toy measure over whole sequences.
type jaccard struct{ lenRatio }

func (jaccard) MultiValued() bool { return true }
func (jaccard) CompareSets(a, b []string) (float64, error) {
	set := map[string]int{}
	for _, x := range a {
		set[x] |= 1
	}
	for _, x := range b {
		set[x] |= 2
	}
	both := 0
	for _, v := range set {
		if v == 3 {
			both++
		}
	}
	return float64(both) / float64(len(set)), nil
}

func wuPalmer(t *testing.T) measure.Measure {
	t.Helper()
	tree, err := hierarchy.NewTree("Color")
	require.NoError(t, err)
	require.NoError(t, tree.AddChild("Dark", ""))
	require.NoError(t, tree.AddChild("Light", ""))
	require.NoError(t, tree.AddChild("Darkblue", "Dark"))
	require.NoError(t, tree.AddChild("Yellow", "Light"))
	m, err := measure.NewWuPalmer(tree)
	require.NoError(t, err)

	return m
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"id", "first", "smm"} {
		g, err := gatherer.New(name)
		require.NoError(t, err)
		require.Equal(t, name, g.Name())
	}
	_, err := gatherer.New("avg")
	require.ErrorIs(t, err, gatherer.ErrUnknownVariant)
}

func TestUnboundAndEmpty(t *testing.T) {
	for _, name := range []string{"id", "first", "smm"} {
		g, err := gatherer.New(name)
		require.NoError(t, err)
		_, err = g.Gather([]string{"a"}, []string{"b"})
		require.ErrorIs(t, err, gatherer.ErrUnbound, name)

		g.SetMeasure(lenRatio{})
		_, err = g.Gather(nil, []string{"b"})
		require.ErrorIs(t, err, gatherer.ErrEmptyValues, name)
	}
}

func TestSymMaxMean_SingletonsEqualMeasure(t *testing.T) {
	m := wuPalmer(t)
	g, err := gatherer.New("smm")
	require.NoError(t, err)
	g.SetMeasure(m)

	for _, pair := range [][2]string{{"Darkblue", "Yellow"}, {"Dark", "Darkblue"}, {"Light", "Light"}} {
		want, err := m.Compare(pair[0], pair[1])
		require.NoError(t, err)
		got, err := g.Gather([]string{pair[0]}, []string{pair[1]})
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestSymMaxMean_Sets(t *testing.T) {
	g := &gatherer.SymMaxMean{}
	g.SetMeasure(wuPalmer(t))

	// fwd: Darkblue→max(0.8 Dark, 1/3 Yellow)=0.8; Yellow→max(0.4, 1)=1 → 0.9
	// rev: Dark→max(0.8, 0.4)=0.8; Yellow→1 → 0.9
	s, err := g.Gather([]string{"Darkblue", "Yellow"}, []string{"Dark", "Yellow"})
	require.NoError(t, err)
	require.InDelta(t, 0.9, s, 1e-12)
}

func TestSymMaxMean_ArgumentOrderWithAsymmetricMeasure(t *testing.T) {
	g := &gatherer.SymMaxMean{}
	g.SetMeasure(lenRatio{})

	x := []string{"a"}
	y := []string{"bb", "cccc"}
	xy, err := g.Gather(x, y)
	require.NoError(t, err)
	yx, err := g.Gather(y, x)
	require.NoError(t, err)
	// fwd: a→max(0.5, 0.25)=0.5; rev: mean(bb→a=2, cccc→a=4)=3
	require.Equal(t, 1.75, xy)
	require.Equal(t, xy, yx)

	// First keeps the measure's argument order.
	f := &gatherer.First{}
	f.SetMeasure(lenRatio{})
	fxy, err := f.Gather(x, y)
	require.NoError(t, err)
	fyx, err := f.Gather(y, x)
	require.NoError(t, err)
	require.NotEqual(t, fxy, fyx)
}

func TestSymMaxMean_PropagatesMeasureError(t *testing.T) {
	g := &gatherer.SymMaxMean{}
	g.SetMeasure(lenRatio{})
	_, err := g.Gather([]string{"a", "?"}, []string{"b"})
	require.EqualError(t, err, "boom")
}

func TestFirst(t *testing.T) {
	g := &gatherer.First{}
	g.SetMeasure(lenRatio{})
	s, err := g.Gather([]string{"aa", "?"}, []string{"bbbb", "?"})
	require.NoError(t, err)
	require.Equal(t, 0.5, s)
}

func TestIdentity(t *testing.T) {
	g := &gatherer.Identity{}
	g.SetMeasure(lenRatio{})

	s, err := g.Gather([]string{"aa"}, []string{"b"})
	require.NoError(t, err)
	require.Equal(t, 2.0, s)

	_, err = g.Gather([]string{"a", "b"}, []string{"c"})
	require.ErrorIs(t, err, gatherer.ErrCardinality)

	g.SetMeasure(jaccard{})
	s, err = g.Gather(strings.Split("a,b", ","), strings.Split("b,c", ","))
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, s, 1e-12)
}
