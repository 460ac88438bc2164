// SPDX-License-Identifier: MIT

// Package aggregator combines k equally shaped matrices into one by an
// elementwise statistic: mean, median, max or min.
//
// Aggregate never returns a degenerate result: an empty input list fails with
// ErrEmptyInput, a nil entry with ErrNilMatrix and differing shapes with
// ErrShapeMismatch. Inputs are not modified.
package aggregator

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
)

// Sentinel errors.
var (
	// ErrEmptyInput indicates an empty matrix list.
	ErrEmptyInput = errors.New("aggregator: no matrices to aggregate")

	// ErrShapeMismatch indicates matrices of differing shapes.
	ErrShapeMismatch = errors.New("aggregator: matrix shapes differ")

	// ErrNilMatrix indicates a nil entry in the list.
	ErrNilMatrix = errors.New("aggregator: nil matrix")

	// ErrUnknownVariant indicates an unknown registry name.
	ErrUnknownVariant = errors.New("aggregator: unknown variant")
)

// Registry names.
const (
	NameMean   = "mean"
	NameMedian = "median"
	NameMax    = "max"
	NameMin    = "min"
)

// Aggregator reduces a list of matrices elementwise.
type Aggregator interface {
	Aggregate(ms []*matrix.Dense) (*matrix.Dense, error)
	Name() string
}

// New returns the aggregator registered under name.
func New(name string) (Aggregator, error) {
	switch name {
	case NameMean:
		return Mean{}, nil
	case NameMedian:
		return Median{}, nil
	case NameMax:
		return Max{}, nil
	case NameMin:
		return Min{}, nil
	default:
		return nil, fmt.Errorf("aggregator %q: %w", name, ErrUnknownVariant)
	}
}

// Names lists every registry name.
func Names() []string {
	return []string{NameMean, NameMedian, NameMax, NameMin}
}

// Mean is the elementwise arithmetic mean.
type Mean struct{}

func (Mean) Aggregate(ms []*matrix.Dense) (*matrix.Dense, error) {
	return reduce(NameMean, ms, func(xs []float64) float64 { return stat.Mean(xs, nil) })
}
func (Mean) Name() string { return NameMean }

// Median is the elementwise median; for an even count it averages the two
// middle values.
type Median struct{}

func (Median) Aggregate(ms []*matrix.Dense) (*matrix.Dense, error) {
	return reduce(NameMedian, ms, median)
}
func (Median) Name() string { return NameMedian }

// Max is the elementwise maximum.
type Max struct{}

func (Max) Aggregate(ms []*matrix.Dense) (*matrix.Dense, error) {
	return reduce(NameMax, ms, floats.Max)
}
func (Max) Name() string { return NameMax }

// Min is the elementwise minimum.
type Min struct{}

func (Min) Aggregate(ms []*matrix.Dense) (*matrix.Dense, error) {
	return reduce(NameMin, ms, floats.Min)
}
func (Min) Name() string { return NameMin }

// reduce validates ms and applies f to the k values of every cell.
// Complexity: O(k·r·c), plus O(k log k) per cell for median.
func reduce(name string, ms []*matrix.Dense, f func([]float64) float64) (*matrix.Dense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyInput)
	}
	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("%s: matrix %d: %w", name, i, ErrNilMatrix)
		}
	}
	r, c := ms[0].Shape()
	for i, m := range ms[1:] {
		if err := matrix.ValidateSameShape(ms[0], m); err != nil {
			return nil, fmt.Errorf("%s: matrix %d: %w: %w", name, i+1, ErrShapeMismatch, err)
		}
	}

	elems := make([][]float64, len(ms))
	for k, m := range ms {
		elems[k] = m.Elements()
	}
	out := make([]float64, r*c)
	buf := make([]float64, len(ms))
	for idx := range out {
		for k := range ms {
			buf[k] = elems[k][idx]
		}
		out[idx] = f(buf)
	}

	return matrix.NewDenseData(r, c, out)
}

// median sorts xs in place.
func median(xs []float64) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	return (xs[n/2-1] + xs[n/2]) / 2
}
