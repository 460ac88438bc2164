// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"math"
)

// Tree is a rooted semantic hierarchy. The root is the context name and is
// present from construction.
type Tree struct {
	*store
}

// NewTree returns a tree context whose root node is name.
// An empty name is rejected with ErrEmptyConcept.
func NewTree(name string) (*Tree, error) {
	if name == "" {
		return nil, fmt.Errorf("NewTree: %w", ErrEmptyConcept)
	}
	t := &Tree{store: newStore(name)}
	t.nodes[name] = struct{}{} // root exists from construction

	return t, nil
}

// Kind returns KindTree.
func (t *Tree) Kind() Kind { return KindTree }

// Root returns the root concept, which equals Name.
func (t *Tree) Root() string { return t.name }

// AddConcept relates parent→child with the given weight, inserting either
// endpoint when missing. An empty parent means the root.
//
// Errors:
//   - ErrEmptyConcept if child is empty.
//   - ErrLoopNotAllowed if child equals the (resolved) parent.
//   - ErrBadWeight if weight is NaN or infinite.
//
// Complexity: O(1) amortized.
func (t *Tree) AddConcept(child, parent string, weight float64) error {
	if child == "" {
		return fmt.Errorf("AddConcept: %w", ErrEmptyConcept)
	}
	if parent == "" {
		parent = t.name // attach under the root
	}
	if child == parent {
		return fmt.Errorf("AddConcept(%q): %w", child, ErrLoopNotAllowed)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddConcept(%q→%q, %v): %w", parent, child, weight, ErrBadWeight)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.addNodeLocked(parent)
	t.addNodeLocked(child)
	t.relateLocked(parent, child, weight)

	return nil
}

// AddChild is AddConcept with unit weight.
func (t *Tree) AddChild(child, parent string) error {
	return t.AddConcept(child, parent, 1.0)
}

// Parent returns the parent of id and the weight of the parent→id relation.
// ok is false for the root, for unknown concepts and for concepts with more
// than one parent (an invalid tree).
//
// Complexity: O(1).
func (t *Tree) Parent(id string) (parent string, weight float64, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	in := t.in[id]
	if len(in) != 1 {
		return "", 0, false
	}
	for p, w := range in {
		parent, weight = p, w
	}

	return parent, weight, true
}

// Children returns the sorted children of id.
//
// Errors: ErrConceptNotFound.
// Complexity: O(d log d), d = number of children.
func (t *Tree) Children(id string) ([]string, error) {
	return t.Successors(id)
}
