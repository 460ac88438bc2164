// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"sort"
	"strings"
)

// color marks DFS progress: White = unvisited, Gray = on stack, Black = done.
type color int

const (
	white color = iota
	gray
	black
)

// Validate checks that t is a rooted tree:
//
//  1. the root has no parent;
//  2. every other concept has exactly one parent;
//  3. no relation closes a cycle;
//  4. every concept is reachable from the root.
//
// The first violation is returned wrapped in ErrInvalidHierarchy.
//
// Implementation:
//   - Stage 1: parent-count scan over the reverse adjacency.
//   - Stage 2: iterative three-color DFS from the root; a Gray successor is a
//     back edge and reports the cycle path.
//   - Stage 3: any concept left White is unreachable.
//
// Complexity: O(V + E) time, O(V) memory.
func (t *Tree) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	// Stage 1: parent counts.
	if n := len(t.in[t.name]); n > 0 {
		return fmt.Errorf("tree %q: root has %d parent(s): %w", t.name, n, ErrInvalidHierarchy)
	}
	for _, id := range sortedSet(t.nodes) {
		if id == t.name {
			continue
		}
		if n := len(t.in[id]); n != 1 {
			return fmt.Errorf("tree %q: concept %q has %d parents: %w", t.name, id, n, ErrInvalidHierarchy)
		}
	}

	// Stage 2: DFS with explicit stack of (node, next-child index).
	state := make(map[string]color, len(t.nodes))
	type frame struct {
		id       string
		children []string
		next     int
	}
	stack := []frame{{id: t.name, children: sortedKeys(t.out[t.name])}}
	state[t.name] = gray
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.children) {
			state[top.id] = black
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.children[top.next]
		top.next++
		switch state[child] {
		case gray:
			path := make([]string, 0, len(stack)+1)
			for _, f := range stack {
				path = append(path, f.id)
			}
			path = append(path, child)
			return fmt.Errorf("tree %q: cycle %s: %w", t.name, strings.Join(path, " → "), ErrInvalidHierarchy)
		case black:
			continue
		}
		state[child] = gray
		stack = append(stack, frame{id: child, children: sortedKeys(t.out[child])})
	}

	// Stage 3: reachability.
	for _, id := range sortedSet(t.nodes) {
		if state[id] != black {
			return fmt.Errorf("tree %q: concept %q unreachable from root: %w", t.name, id, ErrInvalidHierarchy)
		}
	}

	return nil
}

func sortedSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
