// SPDX-License-Identifier: MIT

package gatherer

import (
	"errors"
	"fmt"

	"github.com/StuttgarterDotNet/contextual-encoders/measure"
)

// Sentinel errors.
var (
	// ErrUnbound indicates Gather was called before SetMeasure.
	ErrUnbound = errors.New("gatherer: no measure bound")

	// ErrEmptyValues indicates an empty value sequence.
	ErrEmptyValues = errors.New("gatherer: empty value sequence")

	// ErrCardinality indicates Identity got a sequence with more than one value.
	ErrCardinality = errors.New("gatherer: identity needs single values")

	// ErrUnknownVariant indicates an unknown registry name.
	ErrUnknownVariant = errors.New("gatherer: unknown variant")
)

// Registry names.
const (
	NameIdentity   = "id"
	NameFirst      = "first"
	NameSymMaxMean = "smm"
)

// Gatherer combines pairwise measure scores over two value sequences.
type Gatherer interface {
	// SetMeasure binds the measure used by Gather.
	SetMeasure(m measure.Measure)

	// Gather returns the combined score of first against second.
	Gather(first, second []string) (float64, error)

	// Name returns the registry name.
	Name() string
}

// New returns a fresh, unbound gatherer for name.
func New(name string) (Gatherer, error) {
	switch name {
	case NameIdentity:
		return &Identity{}, nil
	case NameFirst:
		return &First{}, nil
	case NameSymMaxMean:
		return &SymMaxMean{}, nil
	default:
		return nil, fmt.Errorf("gatherer %q: %w", name, ErrUnknownVariant)
	}
}

// bound holds the measure shared by all variants.
type bound struct {
	m measure.Measure
}

// SetMeasure binds m.
func (b *bound) SetMeasure(m measure.Measure) { b.m = m }

func (b *bound) check(first, second []string) error {
	if b.m == nil {
		return ErrUnbound
	}
	if len(first) == 0 || len(second) == 0 {
		return ErrEmptyValues
	}

	return nil
}

// Identity delegates to the measure without combining anything.
type Identity struct{ bound }

// Gather implements Gatherer.
func (g *Identity) Gather(first, second []string) (float64, error) {
	if err := g.check(first, second); err != nil {
		return 0, err
	}
	if sc, ok := g.m.(measure.SetComparer); ok && g.m.MultiValued() {
		return sc.CompareSets(first, second)
	}
	if len(first) != 1 || len(second) != 1 {
		return 0, fmt.Errorf("%d×%d values: %w", len(first), len(second), ErrCardinality)
	}

	return g.m.Compare(first[0], second[0])
}

// Name returns "id".
func (g *Identity) Name() string { return NameIdentity }

// First compares the leading values only.
type First struct{ bound }

// Gather implements Gatherer.
func (g *First) Gather(first, second []string) (float64, error) {
	if err := g.check(first, second); err != nil {
		return 0, err
	}

	return g.m.Compare(first[0], second[0])
}

// Name returns "first".
func (g *First) Name() string { return NameFirst }

// SymMaxMean is the symmetric max-mean set comparison.
//
// Complexity: O(|first|·|second|) Compare calls, each pair visited twice.
type SymMaxMean struct{ bound }

// Gather implements Gatherer.
func (g *SymMaxMean) Gather(first, second []string) (float64, error) {
	if err := g.check(first, second); err != nil {
		return 0, err
	}

	fwd, err := g.maxMean(first, second)
	if err != nil {
		return 0, err
	}
	rev, err := g.maxMean(second, first)
	if err != nil {
		return 0, err
	}

	return (fwd + rev) / 2, nil
}

// maxMean averages, over xs, the best Compare(x, y) for y in ys.
func (g *SymMaxMean) maxMean(xs, ys []string) (float64, error) {
	sum := 0.0
	for _, x := range xs {
		best, err := g.m.Compare(x, ys[0])
		if err != nil {
			return 0, err
		}
		for _, y := range ys[1:] {
			s, err := g.m.Compare(x, y)
			if err != nil {
				return 0, err
			}
			if s > best {
				best = s
			}
		}
		sum += best
	}

	return sum / float64(len(xs)), nil
}

// Name returns "smm".
func (g *SymMaxMean) Name() string { return NameSymMaxMean }
