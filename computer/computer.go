// SPDX-License-Identifier: MIT

// Package computer builds the n×n score matrix of one attribute column.
//
// Every cell is split once on the separator (no trimming); then every ordered
// pair (i, j), the diagonal included, is scored by the gatherer bound to the
// column's measure. Self-scores come from the same measure, never a constant.
//
// When the measure is multi-valued the requested gatherer is replaced by an
// Identity gatherer, since the measure already combines value sets.
//
// Cost is O(n²·s²) measure calls and O(n²) memory for n cells of s values
// each, which limits columns to a few thousand rows. WithWorkers spreads rows
// over goroutines; the result is identical for any worker count.
package computer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/StuttgarterDotNet/contextual-encoders/gatherer"
	"github.com/StuttgarterDotNet/contextual-encoders/logger"
	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
)

// DefaultSeparator splits multi-valued cells.
const DefaultSeparator = ","

// Sentinel errors.
var (
	// ErrEmptyColumn indicates Compute was given no values.
	ErrEmptyColumn = errors.New("computer: empty column")

	// ErrNilMeasure indicates New was given no measure.
	ErrNilMeasure = errors.New("computer: nil measure")

	// ErrBadSeparator indicates an empty separator.
	ErrBadSeparator = errors.New("computer: separator must not be empty")
)

// Option configures a Computer.
type Option func(*Computer)

// WithSeparator sets the multi-value separator (default ",").
func WithSeparator(sep string) Option { return func(c *Computer) { c.sep = sep } }

// WithWorkers sets how many rows are scored concurrently (default 1).
func WithWorkers(n int) Option { return func(c *Computer) { c.workers = n } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(c *Computer) { c.log = l } }

// Computer scores all cell pairs of a column.
type Computer struct {
	m       measure.Measure
	g       gatherer.Gatherer
	sep     string
	workers int
	log     *slog.Logger
}

// New returns a Computer scoring with m and the variant named by g. A nil g
// means symmetric max-mean.
//
// g only selects the variant: the Computer binds m to a private instance from
// gatherer.New, so one gatherer value may be handed to several computers.
//
// Errors: ErrNilMeasure, ErrBadSeparator, gatherer.ErrUnknownVariant.
func New(m measure.Measure, g gatherer.Gatherer, opts ...Option) (*Computer, error) {
	if m == nil {
		return nil, ErrNilMeasure
	}
	c := &Computer{m: m, sep: DefaultSeparator, workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logger.OrNop(c.log)
	if c.sep == "" {
		return nil, ErrBadSeparator
	}
	if c.workers < 1 {
		c.workers = 1
	}

	name := gatherer.NameSymMaxMean
	if g != nil {
		name = g.Name()
	}
	if m.MultiValued() && name != gatherer.NameIdentity {
		c.log.Debug("multi-valued measure, forcing identity gatherer",
			"measure", m.Name(), "requested", name)
		name = gatherer.NameIdentity
	}
	own, err := gatherer.New(name)
	if err != nil {
		return nil, fmt.Errorf("computer.New: %w", err)
	}
	own.SetMeasure(m)
	c.g = own

	return c, nil
}

// Gatherer returns the gatherer in effect after the identity rule.
func (c *Computer) Gatherer() gatherer.Gatherer { return c.g }

// Compute returns the n×n matrix with cell (i, j) = Gather(split(values[i]), split(values[j])).
// Any failing pair fails the call; no partial matrix is returned.
//
// Errors: ErrEmptyColumn, or the first gatherer/measure error wrapped with
// the failing pair.
func (c *Computer) Compute(values []string) (*matrix.Dense, error) {
	return c.ComputeContext(context.Background(), values)
}

// ComputeContext is Compute with cancellation between rows.
func (c *Computer) ComputeContext(ctx context.Context, values []string) (*matrix.Dense, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyColumn
	}

	cells := make([][]string, n)
	for i, v := range values {
		cells[i] = strings.Split(v, c.sep)
	}

	data := make([]float64, n*n)
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(c.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := data[i*n : (i+1)*n]
			for j := 0; j < n; j++ {
				s, err := c.g.Gather(cells[i], cells[j])
				if err != nil {
					return fmt.Errorf("cell (%d,%d) %q vs %q: %w", i, j, values[i], values[j], err)
				}
				row[j] = s
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.log.Debug("column matrix computed", "rows", n, "measure", c.m.Name(), "gatherer", c.g.Name())

	return matrix.NewDenseData(n, n, data)
}
