// SPDX-License-Identifier: MIT

// Package config loads encoder definitions from YAML and CLI settings through
// viper.
//
// An encoder document lists named contexts (inline trees or graphs, or
// node-link JSON files) and the columns that use them:
//
//	separator: ","
//	aggregator: mean
//	reducer: {name: mds, components: 2, seed: 42}
//	contexts:
//	  - name: job
//	    kind: tree
//	    concepts:
//	      - {concept: Education}
//	      - {concept: Teacher, parent: Education}
//	  - name: day
//	    kind: graph
//	    edges:
//	      - {from: Mon, to: Tue}
//	  - name: color
//	    file: color.json
//	columns:
//	  - {name: job, context: job}
//	  - {name: day, context: day, measure: path_length}
//
// Relative context file paths resolve against the document's directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/StuttgarterDotNet/contextual-encoders/encoder"
	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
	"github.com/StuttgarterDotNet/contextual-encoders/metrics"
	"github.com/StuttgarterDotNet/contextual-encoders/reducer"
)

// Sentinel errors.
var (
	// ErrUnknownContext indicates a column referencing an undeclared context.
	ErrUnknownContext = errors.New("config: unknown context")

	// ErrDuplicateContext indicates two contexts with the same name.
	ErrDuplicateContext = errors.New("config: duplicate context")

	// ErrBadValue indicates an invalid field value.
	ErrBadValue = errors.New("config: invalid value")
)

// ConceptConfig is one tree relation; an empty Parent means the root.
type ConceptConfig struct {
	Concept string   `yaml:"concept"`
	Parent  string   `yaml:"parent,omitempty"`
	Weight  *float64 `yaml:"weight,omitempty"`
}

// EdgeConfig is one graph relation; an empty To only declares From.
type EdgeConfig struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to,omitempty"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// ContextConfig declares one hierarchy, inline or from a node-link file.
type ContextConfig struct {
	Name     string          `yaml:"name"`
	Kind     string          `yaml:"kind,omitempty"`
	File     string          `yaml:"file,omitempty"`
	Concepts []ConceptConfig `yaml:"concepts,omitempty"`
	Edges    []EdgeConfig    `yaml:"edges,omitempty"`
}

// ColumnConfig configures one attribute column.
type ColumnConfig struct {
	Name          string   `yaml:"name"`
	Context       string   `yaml:"context"`
	Measure       string   `yaml:"measure,omitempty"`
	Directed      bool     `yaml:"directed,omitempty"`
	Normalized    *bool    `yaml:"normalized,omitempty"`
	WeightedDepth bool     `yaml:"weighted_depth,omitempty"`
	RootDepth     *float64 `yaml:"root_depth,omitempty"`
	Gatherer      string   `yaml:"gatherer,omitempty"`
	Inverter      string   `yaml:"inverter,omitempty"`
	MaxSimilarity float64  `yaml:"max_similarity,omitempty"`
	Degree        float64  `yaml:"degree,omitempty"`
}

// ReducerConfig configures the reducer.
type ReducerConfig struct {
	Name       string  `yaml:"name,omitempty"`
	Components int     `yaml:"components,omitempty"`
	Metric     *bool   `yaml:"metric,omitempty"`
	Seed       *int64  `yaml:"seed,omitempty"`
	MaxIter    int     `yaml:"max_iter,omitempty"`
	Eps        float64 `yaml:"eps,omitempty"`
	Inits      int     `yaml:"inits,omitempty"`
	Init       string  `yaml:"init,omitempty"`
}

// File is the root encoder document.
type File struct {
	Separator  string          `yaml:"separator,omitempty"`
	Aggregator string          `yaml:"aggregator,omitempty"`
	Workers    int             `yaml:"workers,omitempty"`
	Reducer    ReducerConfig   `yaml:"reducer"`
	Contexts   []ContextConfig `yaml:"contexts"`
	Columns    []ColumnConfig  `yaml:"columns"`

	dir string
}

// Load reads and decodes the document at path. Unknown keys are rejected.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc File
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	doc.dir = filepath.Dir(path)

	return &doc, nil
}

// Save writes doc to path as YAML.
func Save(path string, doc *File) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// BuildContexts materializes every declared context, keyed by name.
func (f *File) BuildContexts() (map[string]hierarchy.Context, error) {
	out := make(map[string]hierarchy.Context, len(f.Contexts))
	for _, cc := range f.Contexts {
		if _, dup := out[cc.Name]; dup {
			return nil, fmt.Errorf("context %q: %w", cc.Name, ErrDuplicateContext)
		}
		ctx, err := f.buildContext(cc)
		if err != nil {
			return nil, fmt.Errorf("context %q: %w", cc.Name, err)
		}
		out[cc.Name] = ctx
	}

	return out, nil
}

func (f *File) buildContext(cc ContextConfig) (hierarchy.Context, error) {
	if cc.File != "" {
		path := cc.File
		if !filepath.IsAbs(path) && f.dir != "" {
			path = filepath.Join(f.dir, path)
		}
		opts := []hierarchy.NodeLinkOption{hierarchy.WithName(cc.Name)}
		switch cc.Kind {
		case "tree":
			opts = append(opts, hierarchy.WithKind(hierarchy.KindTree))
		case "graph":
			opts = append(opts, hierarchy.WithKind(hierarchy.KindGraph))
		case "":
		default:
			return nil, fmt.Errorf("context kind %q: %w", cc.Kind, ErrBadValue)
		}
		return hierarchy.ImportFile(path, opts...)
	}

	switch cc.Kind {
	case "tree", "":
		if len(cc.Edges) > 0 {
			return nil, fmt.Errorf("tree context with edges: %w", ErrBadValue)
		}
		t, err := hierarchy.NewTree(cc.Name)
		if err != nil {
			return nil, err
		}
		for _, c := range cc.Concepts {
			if err := t.AddConcept(c.Concept, c.Parent, weightOr1(c.Weight)); err != nil {
				return nil, err
			}
		}
		return t, nil

	case "graph":
		if len(cc.Concepts) > 0 {
			return nil, fmt.Errorf("graph context with concepts: %w", ErrBadValue)
		}
		g, err := hierarchy.NewGraph(cc.Name)
		if err != nil {
			return nil, err
		}
		for _, e := range cc.Edges {
			if err := g.AddConcept(e.From, e.To, weightOr1(e.Weight)); err != nil {
				return nil, err
			}
		}
		return g, nil

	default:
		return nil, fmt.Errorf("kind %q: %w", cc.Kind, ErrBadValue)
	}
}

// EncoderConfig resolves the document into an encoder.Config.
func (f *File) EncoderConfig(log *slog.Logger, met *metrics.Metrics) (encoder.Config, error) {
	contexts, err := f.BuildContexts()
	if err != nil {
		return encoder.Config{}, err
	}

	cfg := encoder.Config{
		Separator:  f.Separator,
		Aggregator: f.Aggregator,
		Workers:    f.Workers,
		Logger:     log,
		Metrics:    met,
		Reducer: encoder.ReducerConfig{
			Name:       f.Reducer.Name,
			Components: f.Reducer.Components,
			Metric:     f.Reducer.Metric,
			Seed:       f.Reducer.Seed,
			MaxIter:    f.Reducer.MaxIter,
			Eps:        f.Reducer.Eps,
			Inits:      f.Reducer.Inits,
		},
	}
	switch f.Reducer.Init {
	case "", "random":
		cfg.Reducer.Init = reducer.InitRandom
	case "classical":
		cfg.Reducer.Init = reducer.InitClassical
	default:
		return encoder.Config{}, fmt.Errorf("reducer init %q: %w", f.Reducer.Init, ErrBadValue)
	}

	for _, col := range f.Columns {
		ctx, ok := contexts[col.Context]
		if !ok {
			return encoder.Config{}, fmt.Errorf("column %q: context %q: %w", col.Name, col.Context, ErrUnknownContext)
		}
		cfg.Columns = append(cfg.Columns, encoder.ColumnConfig{
			Name:           col.Name,
			Context:        ctx,
			Measure:        resolveMeasure(col.Measure, ctx),
			MeasureOptions: col.measureOptions(resolveMeasure(col.Measure, ctx)),
			Gatherer:       col.Gatherer,
			Inverter:       col.Inverter,
			MaxSimilarity:  col.MaxSimilarity,
			Degree:         col.Degree,
		})
	}

	return cfg, nil
}

// resolveMeasure picks wu_palmer for trees and path_length otherwise when
// name is empty.
func resolveMeasure(name string, ctx hierarchy.Context) string {
	if name != "" {
		return name
	}
	if ctx.Kind() == hierarchy.KindTree {
		return measure.NameWuPalmer
	}

	return measure.NamePathLength
}

// measureOptions maps the column flags to measure options. Path-length
// columns are normalized unless normalized: false is given.
func (c ColumnConfig) measureOptions(name string) []measure.Option {
	var opts []measure.Option
	if c.WeightedDepth {
		opts = append(opts, measure.WithWeightedDepth())
	}
	if c.RootDepth != nil {
		opts = append(opts, measure.WithRootDepth(*c.RootDepth))
	}
	if c.Directed {
		opts = append(opts, measure.WithDirected())
	}
	isPath := name == measure.NamePathLength || name == "path"
	if (c.Normalized == nil && isPath) || (c.Normalized != nil && *c.Normalized) {
		opts = append(opts, measure.WithNormalized())
	}

	return opts
}

func weightOr1(w *float64) float64 {
	if w == nil {
		return 1.0
	}

	return *w
}
