// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"math"
)

// Graph is a general directed semantic network. Unlike Tree it has no root
// and a concept may have any number of incoming relations.
type Graph struct {
	*store
}

// NewGraph returns an empty graph context named name.
func NewGraph(name string) (*Graph, error) {
	if name == "" {
		return nil, fmt.Errorf("NewGraph: %w", ErrEmptyConcept)
	}

	return &Graph{store: newStore(name)}, nil
}

// Kind returns KindGraph.
func (g *Graph) Kind() Kind { return KindGraph }

// AddConcept inserts node and, when neighbor is non-empty, relates
// node→neighbor with the given weight.
//
// Errors:
//   - ErrEmptyConcept if node is empty.
//   - ErrLoopNotAllowed if node equals neighbor.
//   - ErrBadWeight if weight is NaN or infinite.
//
// Complexity: O(1) amortized.
func (g *Graph) AddConcept(node, neighbor string, weight float64) error {
	if node == "" {
		return fmt.Errorf("AddConcept: %w", ErrEmptyConcept)
	}
	if node == neighbor {
		return fmt.Errorf("AddConcept(%q): %w", node, ErrLoopNotAllowed)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddConcept(%q→%q, %v): %w", node, neighbor, weight, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(node)
	if neighbor == "" {
		return nil // isolated concept
	}
	g.addNodeLocked(neighbor)
	g.relateLocked(node, neighbor, weight)

	return nil
}

// AddRelation is AddConcept with unit weight.
func (g *Graph) AddRelation(node, neighbor string) error {
	return g.AddConcept(node, neighbor, 1.0)
}
