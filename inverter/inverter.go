// SPDX-License-Identifier: MIT

package inverter

import (
	"errors"
	"fmt"
	"math"

	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
)

// Sentinel errors.
var (
	// ErrBadMaxSimilarity indicates a non-positive or non-finite max similarity.
	ErrBadMaxSimilarity = errors.New("inverter: max similarity must be positive and finite")

	// ErrBadDegree indicates a non-positive or non-finite hyperbolic degree.
	ErrBadDegree = errors.New("inverter: degree must be positive and finite")

	// ErrUnknownVariant indicates an unknown registry name.
	ErrUnknownVariant = errors.New("inverter: unknown variant")
)

// Registry names.
const (
	NameIdentity = "id"
	NameLinear   = "lin"
	NameSqrt     = "sqrt"
	NameExp      = "exp"
	NameGauss    = "gauss"
	NameHyper    = "hyp"
	NameCosine   = "cos"
)

// Inverter is a scalar similarity↔dissimilarity transform.
type Inverter interface {
	// Dissimilarity maps a similarity s ∈ [0, max] to a dissimilarity.
	Dissimilarity(s float64) float64

	// Similarity is the inverse of Dissimilarity.
	Similarity(d float64) float64

	// Name returns the registry name.
	Name() string
}

// Option configures New.
type Option func(*options)

type options struct {
	max    float64
	degree float64
}

// WithMaxSimilarity sets the upper bound of the similarity scale (default 1).
func WithMaxSimilarity(max float64) Option {
	return func(o *options) { o.max = max }
}

// WithDegree sets the exponent of the hyperbolic variant (default 1).
func WithDegree(deg float64) Option {
	return func(o *options) { o.degree = deg }
}

// New returns the inverter registered under name.
//
// Errors: ErrUnknownVariant, ErrBadMaxSimilarity, ErrBadDegree.
func New(name string, opts ...Option) (Inverter, error) {
	o := options{max: 1.0, degree: 1.0}
	for _, fn := range opts {
		fn(&o)
	}
	if !(o.max > 0) || math.IsInf(o.max, 0) {
		return nil, fmt.Errorf("inverter %q: max=%v: %w", name, o.max, ErrBadMaxSimilarity)
	}
	if !(o.degree > 0) || math.IsInf(o.degree, 0) {
		return nil, fmt.Errorf("inverter %q: degree=%v: %w", name, o.degree, ErrBadDegree)
	}

	switch name {
	case NameIdentity:
		return Identity{}, nil
	case NameLinear:
		return Linear{Max: o.max}, nil
	case NameSqrt:
		return Sqrt{Max: o.max}, nil
	case NameExp:
		return Exp{Max: o.max}, nil
	case NameGauss:
		return Gauss{Max: o.max}, nil
	case NameHyper:
		return Hyper{Max: o.max, Degree: o.degree}, nil
	case NameCosine:
		return Cosine{Max: o.max}, nil
	default:
		return nil, fmt.Errorf("inverter %q: %w", name, ErrUnknownVariant)
	}
}

// Names lists every registry name.
func Names() []string {
	return []string{NameIdentity, NameLinear, NameSqrt, NameExp, NameGauss, NameHyper, NameCosine}
}

// SimilarityToDissimilarity applies inv.Dissimilarity to every entry of m.
func SimilarityToDissimilarity(inv Inverter, m *matrix.Dense) (*matrix.Dense, error) {
	out, err := matrix.Apply(m, inv.Dissimilarity)
	if err != nil {
		return nil, fmt.Errorf("inverter %s: %w", inv.Name(), err)
	}

	return out, nil
}

// DissimilarityToSimilarity applies inv.Similarity to every entry of m.
func DissimilarityToSimilarity(inv Inverter, m *matrix.Dense) (*matrix.Dense, error) {
	out, err := matrix.Apply(m, inv.Similarity)
	if err != nil {
		return nil, fmt.Errorf("inverter %s: %w", inv.Name(), err)
	}

	return out, nil
}
