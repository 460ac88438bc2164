// SPDX-License-Identifier: MIT

// Package measure scores pairs of concepts inside a hierarchy.Context.
//
// Two measures are provided:
//
//   - WuPalmer (similarity, tree contexts only):
//     score(a,b) = 2·depth(LCA(a,b)) / (depth(a) + depth(b)),
//     where the lowest common ancestor is the last shared element of the two
//     root-first ancestor chains. depth(x) counts nodes on the root path
//     (root = 1) unless WithWeightedDepth or WithRootDepth change it.
//     Scores lie in [0,1]; self-similarity is 1 for every concept.
//
//   - PathLength (dissimilarity, tree or graph contexts):
//     shortest weighted path between a and b, found with Dijkstra over a
//     lazy decrease-key heap. Relations are traversed in both directions
//     unless WithDirected is set. WithNormalized rescales into [0,1] by the
//     largest finite pairwise distance of the context.
//
// Both measures snapshot the context at construction; later context edits are
// not observed. Both are safe for concurrent Compare calls.
//
// Registry:
//
//	New(name, ctx, opts...) builds a measure by name:
//	"wu_palmer" / "wup" and "path_length" / "path".
//
// Errors:
//
//	ErrUnknownConcept   - Compare argument not in the context.
//	ErrNoPath           - no path between two concepts (PathLength).
//	ErrNegativeWeight   - a negative relation weight where distances are summed.
//	ErrInvalidHierarchy - WuPalmer given a tree that fails Validate.
//	ErrContextType      - registry given the wrong kind of context.
//	ErrUnknownVariant   - registry given an unknown name.
//	ErrBadOption        - invalid option value.
package measure
