// SPDX-License-Identifier: MIT

// Package hierarchy holds the caller-defined semantic hierarchies ("contexts")
// that give meaning to categorical attribute values.
//
// A context is a named, weighted, directed graph over concepts:
//
//   - Tree: a rooted tree. The root is the context name itself and exists from
//     construction. AddConcept(child, parent, weight) links parent→child; an
//     empty parent means the root.
//   - Graph: a general directed graph without the single-parent restriction.
//     AddConcept(node, neighbor, weight) links node→neighbor; an empty
//     neighbor only inserts the node.
//
// Insertion semantics (both kinds):
//
//   - Missing endpoints are inserted on demand.
//   - Edges are de-duplicated by the (source, target) pair. Re-adding a pair
//     with a different weight replaces the stored weight (exact value
//     comparison); re-adding it with the same weight is a no-op.
//   - Nothing is ever removed.
//
// Tree shape is a caller precondition. AddConcept does not reject a second
// parent or a cycle; Tree.Validate reports them with ErrInvalidHierarchy and
// tree-based measures call it at construction time.
//
// Concurrency:
//
//	Both kinds guard their maps with a sync.RWMutex, so a context may be
//	built from several goroutines and read concurrently afterwards.
//	Every listing (Concepts, Edges, Successors, Predecessors) is sorted.
//
// Persistence:
//
//	MarshalNodeLink / UnmarshalNodeLink and ExportFile / ImportFile read and
//	write the node-link JSON layout ({"nodes":[...],"links":[...]}).
//	Plain networkx dumps carry an empty "graph" header; WithName and
//	WithKind supply the missing fields, and an unnamed tree takes its
//	single parentless concept as root.
//
// Errors:
//
//	ErrEmptyConcept     - empty concept identifier.
//	ErrLoopNotAllowed   - a concept related to itself.
//	ErrBadWeight        - NaN or ±Inf weight.
//	ErrConceptNotFound  - query for a concept that is not present.
//	ErrInvalidHierarchy - Tree.Validate found a structural violation.
//	ErrBadNodeLink      - malformed node-link document.
package hierarchy
