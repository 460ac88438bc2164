// SPDX-License-Identifier: MIT

package encoder

import (
	"fmt"
	"log/slog"

	"github.com/StuttgarterDotNet/contextual-encoders/aggregator"
	"github.com/StuttgarterDotNet/contextual-encoders/computer"
	"github.com/StuttgarterDotNet/contextual-encoders/gatherer"
	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/inverter"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
	"github.com/StuttgarterDotNet/contextual-encoders/metrics"
	"github.com/StuttgarterDotNet/contextual-encoders/reducer"
)

// Defaults applied by Config.withDefaults.
const (
	DefaultGatherer   = gatherer.NameSymMaxMean
	DefaultInverter   = inverter.NameSqrt
	DefaultAggregator = aggregator.NameMean
	DefaultReducer    = reducer.NameMDS
	DefaultSeparator  = computer.DefaultSeparator
	DefaultComponents = 2
)

// ColumnConfig describes how one attribute column is scored.
type ColumnConfig struct {
	// Name labels the column in logs, metrics and errors (default "col<i>").
	Name string

	// Context is the hierarchy the column's values belong to. Required.
	Context hierarchy.Context

	// Measure is a measure registry name. Empty selects "wu_palmer" for tree
	// contexts and normalized "path_length" otherwise, so the default
	// inverters see scores in [0,1].
	Measure string

	// MeasureOptions are passed to the measure constructor.
	MeasureOptions []measure.Option

	// Gatherer is a gatherer registry name (default "smm").
	Gatherer string

	// Inverter is an inverter registry name (default "sqrt").
	Inverter string

	// MaxSimilarity is the inverter's similarity upper bound (0 means 1).
	MaxSimilarity float64

	// Degree is the hyperbolic inverter's exponent (0 means 1).
	Degree float64
}

// ReducerConfig selects and tunes the reducer. Zero values keep the
// reducer's own defaults.
type ReducerConfig struct {
	Name       string
	Components int
	Metric     *bool
	Seed       *int64
	MaxIter    int
	Eps        float64
	Inits      int
	Init       reducer.Init
}

// Config is the full encoder configuration.
type Config struct {
	Columns []ColumnConfig

	// Separator splits multi-valued cells (default ",").
	Separator string

	// Aggregator is an aggregator registry name (default "mean").
	Aggregator string

	Reducer ReducerConfig

	// Workers bounds concurrently computed columns (default 1).
	Workers int

	// RowWorkers bounds concurrently scored rows per column (default 1).
	RowWorkers int

	// Logger receives debug diagnostics; nil discards them.
	Logger *slog.Logger

	// Metrics records run instruments; nil disables them.
	Metrics *metrics.Metrics
}

// withDefaults returns a copy of c with empty fields filled in.
func (c Config) withDefaults() Config {
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.Aggregator == "" {
		c.Aggregator = DefaultAggregator
	}
	if c.Reducer.Name == "" {
		c.Reducer.Name = DefaultReducer
	}
	if c.Reducer.Components == 0 {
		c.Reducer.Components = DefaultComponents
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.RowWorkers < 1 {
		c.RowWorkers = 1
	}
	cols := make([]ColumnConfig, len(c.Columns))
	for i, col := range c.Columns {
		if col.Name == "" {
			col.Name = fmt.Sprintf("col%d", i)
		}
		if col.Measure == "" && col.Context != nil {
			if col.Context.Kind() == hierarchy.KindTree {
				col.Measure = measure.NameWuPalmer
			} else {
				col.Measure = measure.NamePathLength
				col.MeasureOptions = append([]measure.Option{measure.WithNormalized()}, col.MeasureOptions...)
			}
		}
		if col.Gatherer == "" {
			col.Gatherer = DefaultGatherer
		}
		if col.Inverter == "" {
			col.Inverter = DefaultInverter
		}
		cols[i] = col
	}
	c.Columns = cols

	return c
}

// options converts rc into reducer options.
func (rc ReducerConfig) options(log *slog.Logger) []reducer.Option {
	opts := []reducer.Option{
		reducer.WithComponents(rc.Components),
		reducer.WithInit(rc.Init),
		reducer.WithLogger(log),
	}
	if rc.Metric != nil {
		opts = append(opts, reducer.WithMetric(*rc.Metric))
	}
	if rc.Seed != nil {
		opts = append(opts, reducer.WithSeed(*rc.Seed))
	}
	if rc.MaxIter > 0 {
		opts = append(opts, reducer.WithMaxIter(rc.MaxIter))
	}
	if rc.Eps > 0 {
		opts = append(opts, reducer.WithEps(rc.Eps))
	}
	if rc.Inits > 0 {
		opts = append(opts, reducer.WithInits(rc.Inits))
	}

	return opts
}
