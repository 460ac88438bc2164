// SPDX-License-Identifier: MIT

package measure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
)

// colorTree: Color → {Dark → Darkblue (0.4), Light → Yellow (0.5)}.
func colorTree(t *testing.T) *hierarchy.Tree {
	t.Helper()
	tree, err := hierarchy.NewTree("Color")
	require.NoError(t, err)
	require.NoError(t, tree.AddChild("Dark", ""))
	require.NoError(t, tree.AddChild("Light", ""))
	require.NoError(t, tree.AddConcept("Darkblue", "Dark", 0.4))
	require.NoError(t, tree.AddConcept("Yellow", "Light", 0.5))

	return tree
}

// weekdayTree is a flat tree with seven leaves under "Weekday".
func weekdayTree(t *testing.T) *hierarchy.Tree {
	t.Helper()
	tree, err := hierarchy.NewTree("Weekday")
	require.NoError(t, err)
	for _, d := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		require.NoError(t, tree.AddChild(d, ""))
	}

	return tree
}
