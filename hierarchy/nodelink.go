// SPDX-License-Identifier: MIT

package hierarchy

import (
	"encoding/json"
	"fmt"
	"os"
)

// nodeLinkDoc is the node-link JSON layout:
//
//	{"directed":true,"multigraph":false,
//	 "graph":{"name":"Color","kind":"tree"},
//	 "nodes":[{"id":"Color"},...],
//	 "links":[{"source":"Color","target":"Red","weight":1},...]}
//
// Plain networkx dumps leave "graph" empty, and newer ones name the relation
// list "edges"; both are accepted on input.
type nodeLinkDoc struct {
	Directed   bool           `json:"directed"`
	Multigraph bool           `json:"multigraph"`
	Graph      nodeLinkHeader `json:"graph"`
	Nodes      []nodeLinkNode `json:"nodes"`
	Links      []nodeLinkLink `json:"links"`
	Edges      []nodeLinkLink `json:"edges,omitempty"`
}

type nodeLinkHeader struct {
	Name string `json:"name,omitempty"`
	Kind string `json:"kind,omitempty"`
}

type nodeLinkNode struct {
	ID string `json:"id"`
}

type nodeLinkLink struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight *float64 `json:"weight,omitempty"`
}

// NodeLinkOption supplies a header value that a document leaves empty.
// Values present in the document always win.
type NodeLinkOption func(*nodeLinkHeader)

// WithName names the context when graph.name is missing. For trees the name
// is the root concept.
func WithName(name string) NodeLinkOption {
	return func(h *nodeLinkHeader) { h.Name = name }
}

// WithKind sets the context kind when graph.kind is missing.
func WithKind(k Kind) NodeLinkOption {
	return func(h *nodeLinkHeader) { h.Kind = k.String() }
}

// MarshalNodeLink encodes ctx as an indented node-link JSON document.
// Nodes and links are emitted in sorted order, so output is deterministic.
func MarshalNodeLink(ctx Context) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("MarshalNodeLink: nil context: %w", ErrBadNodeLink)
	}
	doc := nodeLinkDoc{
		Directed: true,
		Graph:    nodeLinkHeader{Name: ctx.Name(), Kind: ctx.Kind().String()},
		Nodes:    []nodeLinkNode{},
		Links:    []nodeLinkLink{},
	}
	for _, id := range ctx.Concepts() {
		doc.Nodes = append(doc.Nodes, nodeLinkNode{ID: id})
	}
	for _, e := range ctx.Edges() {
		w := e.Weight
		doc.Links = append(doc.Links, nodeLinkLink{Source: e.From, Target: e.To, Weight: &w})
	}

	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalNodeLink decodes a node-link document into a Tree or Graph.
//
// Implementation:
//   - Stage 1: decode; "links" and "edges" are merged.
//   - Stage 2: resolve the header. Empty fields take the opts values; a
//     kind still empty means graph. A tree still without a name takes the
//     single concept that no link points to.
//   - Stage 3: replay nodes and links through AddConcept.
//
// Links without a weight get weight 1.
//
// Errors: ErrBadNodeLink for malformed documents, unknown kinds, unnamed
// graphs and trees without a unique root; insertion errors otherwise.
func UnmarshalNodeLink(data []byte, opts ...NodeLinkOption) (Context, error) {
	// Stage 1
	var doc nodeLinkDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("UnmarshalNodeLink: %v: %w", err, ErrBadNodeLink)
	}
	if doc.Multigraph {
		return nil, fmt.Errorf("UnmarshalNodeLink: multigraphs unsupported: %w", ErrBadNodeLink)
	}
	links := append(doc.Links, doc.Edges...)

	// Stage 2
	var fallback nodeLinkHeader
	for _, opt := range opts {
		opt(&fallback)
	}
	head := doc.Graph
	if head.Name == "" {
		head.Name = fallback.Name
	}
	if head.Kind == "" {
		head.Kind = fallback.Kind
	}

	// Stage 3
	switch head.Kind {
	case "tree":
		if head.Name == "" {
			root, err := soleSource(doc.Nodes, links)
			if err != nil {
				return nil, err
			}
			head.Name = root
		}
		t, err := NewTree(head.Name)
		if err != nil {
			return nil, err
		}
		for _, n := range doc.Nodes {
			if n.ID == "" {
				return nil, fmt.Errorf("UnmarshalNodeLink: %w", ErrEmptyConcept)
			}
			t.mu.Lock()
			t.addNodeLocked(n.ID)
			t.mu.Unlock()
		}
		for _, l := range links {
			if l.Source == "" {
				return nil, fmt.Errorf("UnmarshalNodeLink: link to %q without source: %w", l.Target, ErrBadNodeLink)
			}
			if err := t.AddConcept(l.Target, l.Source, weightOrUnit(l.Weight)); err != nil {
				return nil, err
			}
		}

		return t, nil

	case "graph", "":
		if head.Name == "" {
			return nil, fmt.Errorf("UnmarshalNodeLink: graph without a name: %w", ErrBadNodeLink)
		}
		g, err := NewGraph(head.Name)
		if err != nil {
			return nil, err
		}
		for _, n := range doc.Nodes {
			if err := g.AddConcept(n.ID, "", 0); err != nil {
				return nil, err
			}
		}
		for _, l := range links {
			if l.Target == "" {
				return nil, fmt.Errorf("UnmarshalNodeLink: link from %q without target: %w", l.Source, ErrBadNodeLink)
			}
			if err := g.AddConcept(l.Source, l.Target, weightOrUnit(l.Weight)); err != nil {
				return nil, err
			}
		}

		return g, nil

	default:
		return nil, fmt.Errorf("UnmarshalNodeLink: kind %q: %w", head.Kind, ErrBadNodeLink)
	}
}

// soleSource returns the only concept without an incoming link.
// Complexity: O(V + E).
func soleSource(nodes []nodeLinkNode, links []nodeLinkLink) (string, error) {
	seen := make(map[string]bool, len(nodes))
	var order []string
	note := func(id string) {
		if _, ok := seen[id]; !ok && id != "" {
			seen[id] = false
			order = append(order, id)
		}
	}
	for _, n := range nodes {
		note(n.ID)
	}
	for _, l := range links {
		note(l.Source)
		note(l.Target)
		if l.Target != "" {
			seen[l.Target] = true // has a parent
		}
	}

	var roots []string
	for _, id := range order {
		if !seen[id] {
			roots = append(roots, id)
		}
	}
	if len(roots) != 1 {
		return "", fmt.Errorf("UnmarshalNodeLink: tree without a name has %d candidate roots %v: %w", len(roots), roots, ErrBadNodeLink)
	}

	return roots[0], nil
}

// ExportFile writes ctx as node-link JSON to path.
func ExportFile(ctx Context, path string) error {
	data, err := MarshalNodeLink(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("ExportFile(%s): %w", path, err)
	}

	return nil
}

// ImportFile reads a node-link JSON context from path; opts fill header
// fields the file leaves empty.
func ImportFile(path string, opts ...NodeLinkOption) (Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ImportFile(%s): %w", path, err)
	}

	return UnmarshalNodeLink(data, opts...)
}

func weightOrUnit(w *float64) float64 {
	if w == nil {
		return 1.0
	}

	return *w
}
