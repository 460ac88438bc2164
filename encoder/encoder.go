// SPDX-License-Identifier: MIT

package encoder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/StuttgarterDotNet/contextual-encoders/aggregator"
	"github.com/StuttgarterDotNet/contextual-encoders/computer"
	"github.com/StuttgarterDotNet/contextual-encoders/gatherer"
	"github.com/StuttgarterDotNet/contextual-encoders/inverter"
	"github.com/StuttgarterDotNet/contextual-encoders/logger"
	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
	"github.com/StuttgarterDotNet/contextual-encoders/metrics"
	"github.com/StuttgarterDotNet/contextual-encoders/reducer"
)

// Sentinel errors.
var (
	// ErrNoColumns indicates a configuration without columns.
	ErrNoColumns = errors.New("encoder: no columns configured")

	// ErrNilContext indicates a column without a context.
	ErrNilContext = errors.New("encoder: column has no context")

	// ErrNoRows indicates Transform was given no rows.
	ErrNoRows = errors.New("encoder: no rows")

	// ErrRowWidth indicates a row whose width differs from the column count.
	ErrRowWidth = errors.New("encoder: row width does not match column count")
)

// column is one configured, ready-to-run column.
type column struct {
	name    string
	measure measure.Measure
	comp    *computer.Computer
	inv     inverter.Inverter
}

// Encoder runs the full pipeline. It is safe for concurrent use; results
// reported by Similarity, Dissimilarity and Stress belong to the latest
// successful Transform.
type Encoder struct {
	cols    []column
	agg     aggregator.Aggregator
	red     reducer.Reducer
	workers int
	log     *slog.Logger
	met     *metrics.Metrics

	runMu sync.Mutex // serializes reductions, which keep per-call state

	mu     sync.RWMutex
	sim    *matrix.Dense
	dis    *matrix.Dense
	stress float64
}

// New validates cfg, fills defaults and constructs every stage.
//
// Errors: ErrNoColumns, ErrNilContext, and any registry or constructor error
// wrapped with the column name.
func New(cfg Config) (*Encoder, error) {
	if len(cfg.Columns) == 0 {
		return nil, ErrNoColumns
	}
	cfg = cfg.withDefaults()
	log := logger.OrNop(cfg.Logger)

	e := &Encoder{
		workers: cfg.Workers,
		log:     log,
		met:     cfg.Metrics,
	}
	for _, cc := range cfg.Columns {
		col, err := buildColumn(cc, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cc.Name, err)
		}
		e.cols = append(e.cols, col)
	}

	var err error
	if e.agg, err = aggregator.New(cfg.Aggregator); err != nil {
		return nil, err
	}
	if e.red, err = reducer.New(cfg.Reducer.Name, cfg.Reducer.options(log)...); err != nil {
		return nil, err
	}

	return e, nil
}

func buildColumn(cc ColumnConfig, cfg Config, log *slog.Logger) (column, error) {
	if cc.Context == nil {
		return column{}, ErrNilContext
	}
	m, err := measure.New(cc.Measure, cc.Context, cc.MeasureOptions...)
	if err != nil {
		return column{}, err
	}
	g, err := gatherer.New(cc.Gatherer)
	if err != nil {
		return column{}, err
	}
	var invOpts []inverter.Option
	if cc.MaxSimilarity != 0 {
		invOpts = append(invOpts, inverter.WithMaxSimilarity(cc.MaxSimilarity))
	}
	if cc.Degree != 0 {
		invOpts = append(invOpts, inverter.WithDegree(cc.Degree))
	}
	inv, err := inverter.New(cc.Inverter, invOpts...)
	if err != nil {
		return column{}, err
	}
	comp, err := computer.New(m, g,
		computer.WithSeparator(cfg.Separator),
		computer.WithWorkers(cfg.RowWorkers),
		computer.WithLogger(log.With("column", cc.Name)),
	)
	if err != nil {
		return column{}, err
	}

	return column{name: cc.Name, measure: m, comp: comp, inv: inv}, nil
}

// Transform encodes rows (one value per configured column) into n×m
// coordinates.
func (e *Encoder) Transform(rows [][]string) (*matrix.Dense, error) {
	return e.TransformContext(context.Background(), rows)
}

// TransformContext is Transform with cancellation.
//
// Implementation:
//   - Stage 1: validate the row shape.
//   - Stage 2: per column (concurrently) compute the score matrix and invert
//     it into the missing side.
//   - Stage 3: aggregate similarities and dissimilarities separately.
//   - Stage 4: reduce the aggregate matching the reducer's input kind.
//
// Errors: ErrNoRows, ErrRowWidth, or the first stage error.
func (e *Encoder) TransformContext(ctx context.Context, rows [][]string) (out *matrix.Dense, err error) {
	start := time.Now()
	defer func() { e.met.ObserveTransform(err, time.Since(start)) }()

	// Stage 1
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	for i, r := range rows {
		if len(r) != len(e.cols) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), len(e.cols), ErrRowWidth)
		}
	}

	// Stage 2
	sims := make([]*matrix.Dense, len(e.cols))
	diss := make([]*matrix.Dense, len(e.cols))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(e.workers)
	for c := range e.cols {
		grp.Go(func() error {
			s, d, err := e.column(gctx, c, rows)
			if err != nil {
				return fmt.Errorf("column %q: %w", e.cols[c].name, err)
			}
			sims[c], diss[c] = s, d
			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	// Stage 3
	sim, err := e.agg.Aggregate(sims)
	if err != nil {
		return nil, fmt.Errorf("aggregate similarities: %w", err)
	}
	dis, err := e.agg.Aggregate(diss)
	if err != nil {
		return nil, fmt.Errorf("aggregate dissimilarities: %w", err)
	}

	// Stage 4
	in := dis
	if e.red.Input() == reducer.SimilarityInput {
		in = sim
	}
	e.runMu.Lock()
	out, err = e.red.Reduce(in)
	stress := e.red.Stress()
	iters := -1
	if it, ok := e.red.(interface{ Iterations() int }); ok {
		iters = it.Iterations()
	}
	e.runMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	e.met.ObserveReducer(e.red.Name(), stress, iters)

	e.mu.Lock()
	e.sim, e.dis, e.stress = sim, dis, stress
	e.mu.Unlock()

	e.log.Debug("transform finished",
		"rows", len(rows), "columns", len(e.cols),
		"reducer", e.red.Name(), "stress", stress, "took", time.Since(start))

	return out, nil
}

// column computes both matrices for column c.
func (e *Encoder) column(ctx context.Context, c int, rows [][]string) (sim, dis *matrix.Dense, err error) {
	col := e.cols[c]
	values := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r[c]
	}

	start := time.Now()
	scores, err := col.comp.ComputeContext(ctx, values)
	if err != nil {
		return nil, nil, err
	}
	e.met.ObserveColumn(col.name, col.measure.Name(), len(values), time.Since(start))

	if col.measure.Kind() == measure.Similarity {
		dis, err = inverter.SimilarityToDissimilarity(col.inv, scores)
		return scores, dis, err
	}
	sim, err = inverter.DissimilarityToSimilarity(col.inv, scores)

	return sim, scores, err
}

// Similarity returns a copy of the aggregated similarity matrix of the
// latest successful Transform, or nil.
func (e *Encoder) Similarity() *matrix.Dense {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.sim == nil {
		return nil
	}

	return e.sim.Clone()
}

// Dissimilarity returns a copy of the aggregated dissimilarity matrix of
// the latest successful Transform, or nil.
func (e *Encoder) Dissimilarity() *matrix.Dense {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.dis == nil {
		return nil
	}

	return e.dis.Clone()
}

// Stress returns the reducer stress of the latest successful Transform.
func (e *Encoder) Stress() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.stress
}

// Columns returns the configured column names in order.
func (e *Encoder) Columns() []string {
	out := make([]string, len(e.cols))
	for i, c := range e.cols {
		out[i] = c.name
	}

	return out
}
