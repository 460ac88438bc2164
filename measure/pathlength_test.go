// SPDX-License-Identifier: MIT

package measure_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
)

func TestPathLength_Undirected(t *testing.T) {
	pl, err := measure.NewPathLength(colorTree(t))
	require.NoError(t, err)

	d, err := pl.Compare("Darkblue", "Yellow")
	require.NoError(t, err)
	require.InDelta(t, 2.9, d, 1e-12)

	back, err := pl.Compare("Yellow", "Darkblue")
	require.NoError(t, err)
	require.Equal(t, d, back)

	self, err := pl.Compare("Dark", "Dark")
	require.NoError(t, err)
	require.Equal(t, 0.0, self)
	require.Equal(t, measure.Dissimilarity, pl.Kind())
}

func TestPathLength_Directed(t *testing.T) {
	pl, err := measure.NewPathLength(colorTree(t), measure.WithDirected())
	require.NoError(t, err)

	d, err := pl.Compare("Dark", "Darkblue")
	require.NoError(t, err)
	require.InDelta(t, 0.4, d, 1e-12)

	_, err = pl.Compare("Darkblue", "Dark")
	require.ErrorIs(t, err, measure.ErrNoPath)
}

func TestPathLength_Normalized(t *testing.T) {
	pl, err := measure.NewPathLength(colorTree(t), measure.WithNormalized())
	require.NoError(t, err)

	d, err := pl.Compare("Darkblue", "Yellow")
	require.NoError(t, err)
	require.InDelta(t, 1.0, d, 1e-12)

	d, err = pl.Compare("Dark", "Darkblue")
	require.NoError(t, err)
	require.InDelta(t, 0.4/2.9, d, 1e-12)
}

func TestPathLength_GraphShortestAndDisconnected(t *testing.T) {
	g, err := hierarchy.NewGraph("City")
	require.NoError(t, err)
	require.NoError(t, g.AddConcept("A", "B", 3))
	require.NoError(t, g.AddConcept("B", "A", 1))
	require.NoError(t, g.AddConcept("B", "C", 1))
	require.NoError(t, g.AddConcept("A", "C", 5))
	require.NoError(t, g.AddConcept("Island", "", 0))

	pl, err := measure.NewPathLength(g)
	require.NoError(t, err)

	d, err := pl.Compare("A", "C")
	require.NoError(t, err)
	require.Equal(t, 2.0, d)

	_, err = pl.Compare("A", "Island")
	require.ErrorIs(t, err, measure.ErrNoPath)
	_, err = pl.Compare("A", "Nowhere")
	require.ErrorIs(t, err, measure.ErrUnknownConcept)
}

func TestPathLength_NegativeWeight(t *testing.T) {
	g, err := hierarchy.NewGraph("G")
	require.NoError(t, err)
	require.NoError(t, g.AddConcept("A", "B", -0.5))

	_, err = measure.NewPathLength(g)
	require.ErrorIs(t, err, measure.ErrNegativeWeight)
}

func TestPathLength_ConcurrentCompare(t *testing.T) {
	pl, err := measure.NewPathLength(weekdayTree(t), measure.WithNormalized())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := pl.Compare("Mon", "Sun")
			assert.NoError(t, err)
			assert.InDelta(t, 1.0, d, 1e-12)
		}()
	}
	wg.Wait()
}

func TestPathLength_NilContexts(t *testing.T) {
	var tree *hierarchy.Tree
	var graph *hierarchy.Graph
	cases := map[string]hierarchy.Context{
		"nil interface": nil,
		"nil tree":      tree,
		"nil graph":     graph,
	}
	for name, ctx := range cases {
		t.Run(name, func(t *testing.T) {
			require.NotPanics(t, func() {
				_, err := measure.NewPathLength(ctx)
				require.ErrorIs(t, err, measure.ErrContextType)
			})
		})
	}

	_, err := measure.New(measure.NamePathLength, graph)
	require.ErrorIs(t, err, measure.ErrContextType)
	_, err = measure.New(measure.NameWuPalmer, tree)
	require.ErrorIs(t, err, measure.ErrContextType)
}
