// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"sync"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
)

// PathLength is the shortest-weighted-path dissimilarity over any context.
type PathLength struct {
	adj        map[string]map[string]float64
	directed   bool
	normalized bool

	mu    sync.Mutex
	cache map[string]map[string]float64 // source → reachable distances

	scaleOnce sync.Once
	scale     float64
}

// NewPathLength snapshots ctx's relations into an adjacency map. Unless
// WithDirected is set each relation is usable in both directions; when both
// u→v and v→u exist the smaller weight wins.
//
// Errors:
//   - ErrContextType if ctx is nil, including a nil *Tree or *Graph.
//   - ErrNegativeWeight if any relation weight is negative.
func NewPathLength(ctx hierarchy.Context, opts ...Option) (*PathLength, error) {
	if isNilContext(ctx) {
		return nil, fmt.Errorf("NewPathLength: nil context: %w", ErrContextType)
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("NewPathLength: %w", err)
	}

	adj := make(map[string]map[string]float64, ctx.ConceptCount())
	for _, id := range ctx.Concepts() {
		adj[id] = make(map[string]float64)
	}
	link := func(u, v string, w float64) {
		if old, ok := adj[u][v]; ok && old <= w {
			return
		}
		adj[u][v] = w
	}
	for _, e := range ctx.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("NewPathLength: %q→%q weight %v: %w", e.From, e.To, e.Weight, ErrNegativeWeight)
		}
		link(e.From, e.To, e.Weight)
		if !o.directed {
			link(e.To, e.From, e.Weight)
		}
	}

	return &PathLength{
		adj:        adj,
		directed:   o.directed,
		normalized: o.normalized,
		cache:      make(map[string]map[string]float64),
	}, nil
}

// isNilContext reports a nil interface or one holding a nil concrete pointer.
func isNilContext(ctx hierarchy.Context) bool {
	switch c := ctx.(type) {
	case nil:
		return true
	case *hierarchy.Tree:
		return c == nil
	case *hierarchy.Graph:
		return c == nil
	default:
		return false
	}
}

// Compare returns the shortest path length from a to b (divided by the
// largest finite pairwise distance when normalized).
//
// Errors:
//   - ErrUnknownConcept if a or b is absent.
//   - ErrNoPath if b is unreachable from a.
func (p *PathLength) Compare(a, b string) (float64, error) {
	if _, ok := p.adj[a]; !ok {
		return 0, fmt.Errorf("path_length: %q: %w", a, ErrUnknownConcept)
	}
	if _, ok := p.adj[b]; !ok {
		return 0, fmt.Errorf("path_length: %q: %w", b, ErrUnknownConcept)
	}

	d, ok := p.distances(a)[b]
	if !ok {
		return 0, fmt.Errorf("path_length: %q→%q: %w", a, b, ErrNoPath)
	}
	if !p.normalized {
		return d, nil
	}

	p.scaleOnce.Do(func() {
		for src := range p.adj {
			if m := maxFinite(p.distances(src)); m > p.scale {
				p.scale = m
			}
		}
	})
	if p.scale == 0 {
		return d, nil
	}

	return d / p.scale, nil
}

// distances returns the cached single-source result for src, computing it on
// first use. Concurrent first calls may both compute; the results are equal.
func (p *PathLength) distances(src string) map[string]float64 {
	p.mu.Lock()
	dist, ok := p.cache[src]
	p.mu.Unlock()
	if ok {
		return dist
	}

	dist = shortestFrom(p.adj, src)

	p.mu.Lock()
	p.cache[src] = dist
	p.mu.Unlock()

	return dist
}

// Kind returns Dissimilarity.
func (p *PathLength) Kind() Kind { return Dissimilarity }

// MultiValued returns false.
func (p *PathLength) MultiValued() bool { return false }

// Name returns "path_length".
func (p *PathLength) Name() string { return NamePathLength }
