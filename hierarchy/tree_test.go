// SPDX-License-Identifier: MIT

package hierarchy_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
)

func TestTree_OneLayer(t *testing.T) {
	tree, err := hierarchy.NewTree("Gender")
	require.NoError(t, err)
	require.NoError(t, tree.AddChild("Male", ""))
	require.NoError(t, tree.AddChild("Female", ""))

	require.Equal(t, "Gender", tree.Root())
	require.Equal(t, hierarchy.KindTree, tree.Kind())
	require.True(t, tree.HasConcept("Male"))
	require.True(t, tree.HasConcept("Female"))
	require.Equal(t, []string{"Female", "Gender", "Male"}, tree.Concepts())
	require.Equal(t, 2, tree.EdgeCount())
	require.NoError(t, tree.Validate())
}

func TestTree_TwoLayerWeights(t *testing.T) {
	tree, err := hierarchy.NewTree("Color")
	require.NoError(t, err)
	require.NoError(t, tree.AddChild("Dark", ""))
	require.NoError(t, tree.AddChild("Light", ""))
	require.NoError(t, tree.AddConcept("Yellow", "Light", 0.5))
	require.NoError(t, tree.AddConcept("Darkblue", "Dark", 0.4))

	w, ok := tree.Weight("Light", "Yellow")
	require.True(t, ok)
	require.Equal(t, 0.5, w)
	w, ok = tree.Weight("Dark", "Darkblue")
	require.True(t, ok)
	require.Equal(t, 0.4, w)

	p, pw, ok := tree.Parent("Darkblue")
	require.True(t, ok)
	require.Equal(t, "Dark", p)
	require.Equal(t, 0.4, pw)

	_, _, ok = tree.Parent("Color")
	require.False(t, ok, "root has no parent")

	kids, err := tree.Children("Color")
	require.NoError(t, err)
	require.Equal(t, []string{"Dark", "Light"}, kids)
	require.NoError(t, tree.Validate())
}

func TestTree_ParentInsertedOnDemand(t *testing.T) {
	tree, err := hierarchy.NewTree("Animal")
	require.NoError(t, err)
	require.NoError(t, tree.AddChild("Cat", "Mammal"))

	require.True(t, tree.HasConcept("Mammal"))
	// Mammal is not linked to the root yet.
	require.ErrorIs(t, tree.Validate(), hierarchy.ErrInvalidHierarchy)

	require.NoError(t, tree.AddChild("Mammal", ""))
	require.NoError(t, tree.Validate())
}

func TestTree_WeightReplacement(t *testing.T) {
	tree, err := hierarchy.NewTree("R")
	require.NoError(t, err)
	require.NoError(t, tree.AddConcept("A", "", 1))
	require.NoError(t, tree.AddConcept("A", "", 1))
	require.Equal(t, 1, tree.EdgeCount())

	require.NoError(t, tree.AddConcept("A", "", 2.5))
	require.Equal(t, 1, tree.EdgeCount())
	w, _ := tree.Weight("R", "A")
	require.Equal(t, 2.5, w)
}

func TestTree_InvalidInputs(t *testing.T) {
	_, err := hierarchy.NewTree("")
	require.ErrorIs(t, err, hierarchy.ErrEmptyConcept)

	tree, err := hierarchy.NewTree("R")
	require.NoError(t, err)
	require.ErrorIs(t, tree.AddChild("", ""), hierarchy.ErrEmptyConcept)
	require.ErrorIs(t, tree.AddChild("R", ""), hierarchy.ErrLoopNotAllowed)
	require.ErrorIs(t, tree.AddConcept("A", "", math.NaN()), hierarchy.ErrBadWeight)
	require.ErrorIs(t, tree.AddConcept("A", "", math.Inf(1)), hierarchy.ErrBadWeight)
	require.Equal(t, 1, tree.ConceptCount())
}

func TestTree_ValidateRejectsSecondParent(t *testing.T) {
	tree, err := hierarchy.NewTree("R")
	require.NoError(t, err)
	require.NoError(t, tree.AddChild("A", ""))
	require.NoError(t, tree.AddChild("B", ""))
	require.NoError(t, tree.AddChild("C", "A"))
	require.NoError(t, tree.AddChild("C", "B"))

	err = tree.Validate()
	require.True(t, errors.Is(err, hierarchy.ErrInvalidHierarchy))
	require.Contains(t, err.Error(), `"C" has 2 parents`)

	_, _, ok := tree.Parent("C")
	require.False(t, ok)
}

func TestTree_ValidateRejectsParentOfRoot(t *testing.T) {
	tree, err := hierarchy.NewTree("R")
	require.NoError(t, err)
	require.NoError(t, tree.AddChild("A", ""))
	require.NoError(t, tree.AddChild("R", "A"))

	require.ErrorIs(t, tree.Validate(), hierarchy.ErrInvalidHierarchy)
}

func TestTree_ValidateRejectsDetachedCycle(t *testing.T) {
	tree, err := hierarchy.NewTree("R")
	require.NoError(t, err)
	require.NoError(t, tree.AddChild("A", "B"))
	require.NoError(t, tree.AddChild("B", "A"))

	err = tree.Validate()
	require.ErrorIs(t, err, hierarchy.ErrInvalidHierarchy)
	require.Contains(t, err.Error(), "unreachable")
}
