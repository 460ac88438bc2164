// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
)

// WuPalmer is the Wu-Palmer similarity over a validated tree.
//
// Depth counts nodes, so the root has depth 1 (see WithRootDepth). Two
// distinct concepts directly under the root therefore score 2·1/(2+2) = 0.5,
// never 0, while a concept compared with itself scores 1.0. The root against
// one of its children scores 2·1/(1+2) = 2/3.
type WuPalmer struct {
	root  string
	chain map[string][]string // root-first ancestor chain, ending at the concept itself
	depth map[string]float64
}

// NewWuPalmer validates tree and snapshots every concept's ancestor chain and depth.
//
// Errors:
//   - ErrInvalidHierarchy if tree.Validate fails.
//   - ErrNegativeWeight if WithWeightedDepth is set and a relation weight is negative.
//   - ErrBadOption for invalid option values.
//
// Complexity: O(V·h) time and memory, h = tree height.
func NewWuPalmer(tree *hierarchy.Tree, opts ...Option) (*WuPalmer, error) {
	if tree == nil {
		return nil, fmt.Errorf("NewWuPalmer: nil tree: %w", ErrContextType)
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("NewWuPalmer: %w", err)
	}
	if err = tree.Validate(); err != nil {
		return nil, fmt.Errorf("NewWuPalmer: %w", err)
	}

	root := tree.Root()
	w := &WuPalmer{
		root:  root,
		chain: map[string][]string{root: {root}},
		depth: map[string]float64{root: o.rootDepth},
	}

	// Breadth-first from the root: parents are resolved before children.
	queue := []string{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		kids, _ := tree.Successors(u)
		for _, v := range kids {
			step := 1.0
			if o.weightedDepth {
				step, _ = tree.Weight(u, v)
				if step < 0 {
					return nil, fmt.Errorf("NewWuPalmer: %q→%q weight %v: %w", u, v, step, ErrNegativeWeight)
				}
			}
			parentChain := w.chain[u]
			c := make([]string, len(parentChain)+1)
			copy(c, parentChain)
			c[len(parentChain)] = v
			w.chain[v] = c
			w.depth[v] = w.depth[u] + step
			queue = append(queue, v)
		}
	}

	return w, nil
}

// Compare returns 2·depth(LCA)/(depth(a)+depth(b)); a zero denominator yields 1.
func (w *WuPalmer) Compare(a, b string) (float64, error) {
	lca, err := w.LCA(a, b)
	if err != nil {
		return 0, err
	}

	denom := w.depth[a] + w.depth[b]
	if denom == 0 {
		return 1.0, nil
	}

	return 2 * w.depth[lca] / denom, nil
}

// Depth returns the snapshotted depth of id.
func (w *WuPalmer) Depth(id string) (float64, bool) {
	d, ok := w.depth[id]

	return d, ok
}

// LCA returns the lowest common ancestor of a and b.
func (w *WuPalmer) LCA(a, b string) (string, error) {
	ca, ok := w.chain[a]
	if !ok {
		return "", fmt.Errorf("wu_palmer: %q: %w", a, ErrUnknownConcept)
	}
	cb, ok := w.chain[b]
	if !ok {
		return "", fmt.Errorf("wu_palmer: %q: %w", b, ErrUnknownConcept)
	}
	// Longest common prefix of the two chains; both start at the root.
	lca := w.root
	for i := 0; i < len(ca) && i < len(cb) && ca[i] == cb[i]; i++ {
		lca = ca[i]
	}

	return lca, nil
}

// Kind returns Similarity.
func (w *WuPalmer) Kind() Kind { return Similarity }

// MultiValued returns false.
func (w *WuPalmer) MultiValued() bool { return false }

// Name returns "wu_palmer".
func (w *WuPalmer) Name() string { return NameWuPalmer }
