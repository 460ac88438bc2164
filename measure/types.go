// SPDX-License-Identifier: MIT

package measure

import (
	"errors"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
)

// Sentinel errors for measure construction and comparison.
var (
	// ErrUnknownConcept indicates a compared value is not a concept of the context.
	ErrUnknownConcept = errors.New("measure: unknown concept")

	// ErrNoPath indicates that two concepts are not connected.
	ErrNoPath = errors.New("measure: no path between concepts")

	// ErrNegativeWeight indicates a negative relation weight.
	ErrNegativeWeight = errors.New("measure: negative relation weight")

	// ErrInvalidHierarchy is hierarchy.ErrInvalidHierarchy, re-exported for callers
	// that only import this package.
	ErrInvalidHierarchy = hierarchy.ErrInvalidHierarchy

	// ErrContextType indicates a measure was given a context kind it cannot use.
	ErrContextType = errors.New("measure: unsupported context type")

	// ErrUnknownVariant indicates an unknown registry name.
	ErrUnknownVariant = errors.New("measure: unknown variant")

	// ErrBadOption indicates an invalid option value.
	ErrBadOption = errors.New("measure: invalid option")
)

// Kind tells downstream stages whether larger scores mean "closer" or "farther".
type Kind int

const (
	// Similarity scores grow as concepts get closer.
	Similarity Kind = iota

	// Dissimilarity scores grow as concepts get farther apart.
	Dissimilarity
)

// String returns "similarity" or "dissimilarity".
func (k Kind) String() string {
	if k == Dissimilarity {
		return "dissimilarity"
	}

	return "similarity"
}

// Measure compares two single concepts.
type Measure interface {
	// Compare returns the score of the ordered pair (a, b).
	Compare(a, b string) (float64, error)

	// Kind reports the orientation of the scores.
	Kind() Kind

	// MultiValued reports whether the measure compares whole value sets.
	MultiValued() bool

	// Name returns the registry name.
	Name() string
}

// SetComparer is implemented by multi-valued measures that natively compare
// two value sequences.
type SetComparer interface {
	CompareSets(a, b []string) (float64, error)
}

// options collects every measure option; each measure reads the fields it uses.
type options struct {
	weightedDepth bool
	rootDepth     float64
	directed      bool
	normalized    bool
	err           error
}

// Option configures a measure.
type Option func(*options)

func defaultOptions() options {
	return options{rootDepth: 1.0}
}

// WithWeightedDepth makes WuPalmer accumulate relation weights along the root
// path instead of counting edges.
func WithWeightedDepth() Option {
	return func(o *options) { o.weightedDepth = true }
}

// WithRootDepth sets the depth assigned to the root (default 1).
// Negative values are rejected at construction with ErrBadOption.
func WithRootDepth(d float64) Option {
	return func(o *options) {
		if d < 0 {
			o.err = ErrBadOption
			return
		}
		o.rootDepth = d
	}
}

// WithDirected makes PathLength follow relations only in their stored direction.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}

// WithNormalized makes PathLength divide by the largest finite pairwise distance.
func WithNormalized() Option {
	return func(o *options) { o.normalized = true }
}

func applyOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}
