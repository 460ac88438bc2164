// SPDX-License-Identifier: MIT

package hierarchy

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for hierarchy operations.
var (
	// ErrEmptyConcept indicates an empty concept identifier.
	ErrEmptyConcept = errors.New("hierarchy: concept ID is empty")

	// ErrLoopNotAllowed indicates a concept related to itself.
	ErrLoopNotAllowed = errors.New("hierarchy: self-relation not allowed")

	// ErrBadWeight indicates a NaN or infinite relation weight.
	ErrBadWeight = errors.New("hierarchy: weight must be finite")

	// ErrConceptNotFound indicates a query referenced a concept that is not present.
	ErrConceptNotFound = errors.New("hierarchy: concept not found")

	// ErrInvalidHierarchy indicates a tree context that is not a rooted tree.
	ErrInvalidHierarchy = errors.New("hierarchy: invalid hierarchy")

	// ErrBadNodeLink indicates a malformed node-link document.
	ErrBadNodeLink = errors.New("hierarchy: malformed node-link document")
)

// Kind distinguishes tree-shaped contexts from general graph contexts.
type Kind int

const (
	// KindTree is a rooted tree whose root is the context name.
	KindTree Kind = iota

	// KindGraph is a general directed graph.
	KindGraph
)

// String returns "tree" or "graph".
func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// Edge is one weighted, directed relation From→To.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Context is the read-only view measures depend on.
// Both *Tree and *Graph implement it.
type Context interface {
	// Name returns the context identity (the root for trees).
	Name() string

	// Kind reports whether this is a tree or a graph context.
	Kind() Kind

	// HasConcept reports whether id is a node of the context.
	HasConcept(id string) bool

	// Concepts returns all node IDs in ascending order.
	Concepts() []string

	// Edges returns all relations sorted by (From, To).
	Edges() []Edge

	// Weight returns the weight of From→To and whether the relation exists.
	Weight(from, to string) (float64, bool)

	// Successors returns the sorted targets of id's outgoing relations.
	Successors(id string) ([]string, error)

	// Predecessors returns the sorted sources of id's incoming relations.
	Predecessors(id string) ([]string, error)

	// ConceptCount returns the number of nodes.
	ConceptCount() int

	// EdgeCount returns the number of relations.
	EdgeCount() int
}

// store is the adjacency storage shared by Tree and Graph.
//
// out[from][to] and in[to][from] both hold the weight of from→to, so successor
// and predecessor queries are O(d log d) without scanning all edges.
type store struct {
	mu    sync.RWMutex
	name  string
	nodes map[string]struct{}
	out   map[string]map[string]float64
	in    map[string]map[string]float64
	edges int
}

// newStore returns an empty store named name.
// The root of a tree is inserted by NewTree, not here.
func newStore(name string) *store {
	return &store{
		name:  name,
		nodes: make(map[string]struct{}),
		out:   make(map[string]map[string]float64),
		in:    make(map[string]map[string]float64),
	}
}

// Name returns the context identity.
func (s *store) Name() string { return s.name }

// addNodeLocked inserts id if absent. Caller holds mu for writing.
// Complexity: O(1).
func (s *store) addNodeLocked(id string) {
	if _, ok := s.nodes[id]; ok {
		return
	}
	s.nodes[id] = struct{}{}
}

// relateLocked inserts from→to or replaces its weight when it differs.
// Caller holds mu for writing and has inserted both endpoints.
//
// Implementation:
//   - Stage 1: write out[from][to]; a repeated identical weight is a no-op.
//   - Stage 2: mirror the weight into in[to][from].
//
// Complexity: O(1) amortized.
func (s *store) relateLocked(from, to string, weight float64) {
	// Stage 1
	inner, ok := s.out[from]
	if !ok {
		inner = make(map[string]float64)
		s.out[from] = inner
	}
	old, exists := inner[to]
	if exists && old == weight {
		return
	}
	if !exists {
		s.edges++
	}
	inner[to] = weight

	// Stage 2
	back, ok := s.in[to]
	if !ok {
		back = make(map[string]float64)
		s.in[to] = back
	}
	back[from] = weight
}

// HasConcept reports whether id is present.
// Complexity: O(1).
func (s *store) HasConcept(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[id]

	return ok
}

// Concepts returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (s *store) Concepts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.nodes))
	for id := range s.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all relations sorted by (From, To).
// Complexity: O(E log E).
func (s *store) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Edge, 0, s.edges)
	for from, inner := range s.out {
		for to, w := range inner {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Weight returns the stored weight of from→to.
// Complexity: O(1).
func (s *store) Weight(from, to string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.out[from][to] // nil inner map reads as absent

	return w, ok
}

// Successors returns the sorted targets of id's outgoing relations.
//
// Errors: ErrConceptNotFound.
// Complexity: O(d log d), d = out-degree of id.
func (s *store) Successors(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.nodes[id]; !ok {
		return nil, ErrConceptNotFound
	}

	return sortedKeys(s.out[id]), nil
}

// Predecessors returns the sorted sources of id's incoming relations.
//
// Errors: ErrConceptNotFound.
// Complexity: O(d log d), d = in-degree of id.
func (s *store) Predecessors(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.nodes[id]; !ok {
		return nil, ErrConceptNotFound
	}

	return sortedKeys(s.in[id]), nil
}

// ConceptCount returns the number of nodes.
// Complexity: O(1).
func (s *store) ConceptCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.nodes)
}

// EdgeCount returns the number of relations.
// Complexity: O(1).
func (s *store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edges
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
