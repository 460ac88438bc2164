// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StuttgarterDotNet/contextual-encoders/config"
	"github.com/StuttgarterDotNet/contextual-encoders/encoder"
	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
	"github.com/StuttgarterDotNet/contextual-encoders/reducer"
)

const document = `
separator: ";"
aggregator: max
workers: 2
reducer:
  name: mds
  components: 1
  seed: 7
  init: classical
contexts:
  - name: job
    kind: tree
    concepts:
      - {concept: Education}
      - {concept: Teacher, parent: Education}
      - {concept: Professor, parent: Education, weight: 2}
  - name: day
    kind: graph
    edges:
      - {from: Mon, to: Tue}
      - {from: Tue, to: Wed}
      - {from: Wed, to: Mon}
  - name: color
    file: color.json
columns:
  - {name: job, context: job}
  - {name: day, context: day}
  - {name: color, context: color, measure: path_length, normalized: false, inverter: lin, max_similarity: 2}
`

func writeDoc(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	color, err := hierarchy.NewTree("color")
	require.NoError(t, err)
	require.NoError(t, color.AddChild("Warm", ""))
	require.NoError(t, color.AddChild("Red", "Warm"))
	require.NoError(t, hierarchy.ExportFile(color, filepath.Join(dir, "color.json")))

	path := filepath.Join(dir, "encoder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))
	return path
}

func TestLoadAndBuild(t *testing.T) {
	doc, err := config.Load(writeDoc(t))
	require.NoError(t, err)
	assert.Equal(t, ";", doc.Separator)
	require.Len(t, doc.Contexts, 3)
	require.Len(t, doc.Columns, 3)

	contexts, err := doc.BuildContexts()
	require.NoError(t, err)
	assert.Equal(t, hierarchy.KindTree, contexts["job"].Kind())
	assert.Equal(t, hierarchy.KindGraph, contexts["day"].Kind())
	assert.True(t, contexts["color"].HasConcept("Red"))
	w, ok := contexts["job"].Weight("Education", "Professor")
	require.True(t, ok)
	assert.Equal(t, 2.0, w)

	cfg, err := doc.EncoderConfig(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "max", cfg.Aggregator)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, reducer.InitClassical, cfg.Reducer.Init)
	require.NotNil(t, cfg.Reducer.Seed)
	assert.Equal(t, int64(7), *cfg.Reducer.Seed)

	assert.Equal(t, measure.NameWuPalmer, cfg.Columns[0].Measure)
	assert.Empty(t, cfg.Columns[0].MeasureOptions)
	assert.Equal(t, measure.NamePathLength, cfg.Columns[1].Measure)
	assert.Len(t, cfg.Columns[1].MeasureOptions, 1, "graph columns default to normalized")
	assert.Empty(t, cfg.Columns[2].MeasureOptions)
	assert.Equal(t, "lin", cfg.Columns[2].Inverter)
	assert.Equal(t, 2.0, cfg.Columns[2].MaxSimilarity)

	enc, err := encoder.New(cfg)
	require.NoError(t, err)
	pts, err := enc.Transform([][]string{
		{"Teacher", "Mon", "Red"},
		{"Professor", "Tue", "Warm"},
		{"Teacher", "Wed", "Red"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, pts.Rows())
	assert.Equal(t, 1, pts.Cols())
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colums: []\n"), 0o644))
	_, err = config.Load(path)
	require.Error(t, err, "unknown keys are rejected")
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]struct {
		doc  config.File
		want error
	}{
		"duplicate context": {
			doc: config.File{Contexts: []config.ContextConfig{
				{Name: "a", Kind: "tree"}, {Name: "a", Kind: "graph"},
			}},
			want: config.ErrDuplicateContext,
		},
		"unknown kind": {
			doc:  config.File{Contexts: []config.ContextConfig{{Name: "a", Kind: "lattice"}}},
			want: config.ErrBadValue,
		},
		"tree with edges": {
			doc: config.File{Contexts: []config.ContextConfig{
				{Name: "a", Kind: "tree", Edges: []config.EdgeConfig{{From: "x", To: "y"}}},
			}},
			want: config.ErrBadValue,
		},
		"self loop": {
			doc: config.File{Contexts: []config.ContextConfig{
				{Name: "a", Kind: "graph", Edges: []config.EdgeConfig{{From: "x", To: "x"}}},
			}},
			want: hierarchy.ErrLoopNotAllowed,
		},
		"unknown context": {
			doc: config.File{
				Contexts: []config.ContextConfig{{Name: "a", Kind: "graph"}},
				Columns:  []config.ColumnConfig{{Name: "c", Context: "b"}},
			},
			want: config.ErrUnknownContext,
		},
		"bad init": {
			doc:  config.File{Reducer: config.ReducerConfig{Init: "spectral"}},
			want: config.ErrBadValue,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.doc.EncoderConfig(nil, nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	doc, err := config.Load(writeDoc(t))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "nested", "copy.yaml")
	require.NoError(t, config.Save(out, doc))

	back, err := config.Load(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Columns, back.Columns)
	assert.Equal(t, doc.Reducer, back.Reducer)
}

func TestBuildContexts_HeaderlessFileTakesDeclaredNameAndKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
	  "directed": true, "multigraph": false, "graph": {},
	  "nodes": [{"id": "job"}, {"id": "Education"}, {"id": "Teacher"}],
	  "links": [
	    {"weight": 1.0, "source": "job", "target": "Education"},
	    {"weight": 1.0, "source": "Education", "target": "Teacher"}
	  ]
	}`), 0o644))

	doc := config.File{Contexts: []config.ContextConfig{{Name: "job", Kind: "tree", File: path}}}
	ctxs, err := doc.BuildContexts()
	require.NoError(t, err)
	require.Contains(t, ctxs, "job")
	assert.Equal(t, hierarchy.KindTree, ctxs["job"].Kind())
	assert.Equal(t, "job", ctxs["job"].Name())

	doc.Contexts[0].Kind = "lattice"
	_, err = doc.BuildContexts()
	require.ErrorIs(t, err, config.ErrBadValue)
}
