// SPDX-License-Identifier: MIT

package reducer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/StuttgarterDotNet/contextual-encoders/logger"
	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
)

// Sentinel errors.
var (
	// ErrNonSquare indicates a non-square input matrix.
	ErrNonSquare = errors.New("reducer: input matrix is not square")

	// ErrBadComponents indicates an invalid target dimensionality.
	ErrBadComponents = errors.New("reducer: invalid number of components")

	// ErrEigenFailed indicates the symmetric eigendecomposition did not converge.
	ErrEigenFailed = errors.New("reducer: eigendecomposition failed")

	// ErrBadOption indicates an invalid option value.
	ErrBadOption = errors.New("reducer: invalid option")

	// ErrUnknownVariant indicates an unknown registry name.
	ErrUnknownVariant = errors.New("reducer: unknown variant")
)

// Registry names.
const (
	NameMDS    = "mds"
	NameKernel = "kernel"
)

// Input names the kind of matrix a reducer consumes.
type Input int

const (
	// DissimilarityInput reducers embed distances.
	DissimilarityInput Input = iota

	// SimilarityInput reducers embed similarities.
	SimilarityInput
)

// String returns "dissimilarity" or "similarity".
func (in Input) String() string {
	if in == SimilarityInput {
		return "similarity"
	}

	return "dissimilarity"
}

// Reducer embeds a square matrix into Euclidean coordinates.
type Reducer interface {
	// Reduce returns one row of coordinates per input row.
	Reduce(m *matrix.Dense) (*matrix.Dense, error)

	// Input reports which matrix kind Reduce expects.
	Input() Input

	// Stress returns the residual of the latest Reduce.
	Stress() float64

	// Name returns the registry name.
	Name() string
}

// Init selects the MDS starting configuration.
type Init int

const (
	// InitRandom draws uniform [0,1) coordinates; WithInits restarts are kept.
	InitRandom Init = iota

	// InitClassical starts from the Torgerson (classical MDS) solution.
	InitClassical
)

type options struct {
	components int
	metric     bool
	seed       int64
	seeded     bool
	maxIter    int
	eps        float64
	inits      int
	init       Init
	log        *slog.Logger
}

func defaultOptions() options {
	return options{
		components: 2,
		metric:     true,
		maxIter:    300,
		eps:        1e-3,
		inits:      4,
		init:       InitRandom,
	}
}

// Option configures a reducer.
type Option func(*options)

// WithComponents sets the target dimensionality m (default 2).
func WithComponents(m int) Option { return func(o *options) { o.components = m } }

// WithMetric selects metric (true, default) or non-metric MDS.
func WithMetric(metric bool) Option { return func(o *options) { o.metric = metric } }

// WithSeed fixes the random initialization.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithMaxIter caps SMACOF iterations per start (default 300).
func WithMaxIter(n int) Option { return func(o *options) { o.maxIter = n } }

// WithEps sets the convergence tolerance on normalized stress (default 1e-3).
func WithEps(eps float64) Option { return func(o *options) { o.eps = eps } }

// WithInits sets the number of random starts (default 4).
func WithInits(n int) Option { return func(o *options) { o.inits = n } }

// WithInit selects the starting configuration.
func WithInit(init Init) Option { return func(o *options) { o.init = init } }

// WithLogger sets the logger for per-start diagnostics.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.log = l } }

func applyOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	o.log = logger.OrNop(o.log)

	switch {
	case o.components < 1:
		return o, fmt.Errorf("components=%d: %w", o.components, ErrBadComponents)
	case o.maxIter < 1:
		return o, fmt.Errorf("max_iter=%d: %w", o.maxIter, ErrBadOption)
	case !(o.eps > 0):
		return o, fmt.Errorf("eps=%v: %w", o.eps, ErrBadOption)
	case o.inits < 1:
		return o, fmt.Errorf("inits=%d: %w", o.inits, ErrBadOption)
	case o.init != InitRandom && o.init != InitClassical:
		return o, fmt.Errorf("init=%d: %w", o.init, ErrBadOption)
	}

	return o, nil
}

// New returns the reducer registered under name.
func New(name string, opts ...Option) (Reducer, error) {
	switch name {
	case NameMDS:
		return NewMDS(opts...)
	case NameKernel:
		return NewKernel(opts...)
	default:
		return nil, fmt.Errorf("reducer %q: %w", name, ErrUnknownVariant)
	}
}

// asymmetryTol is the largest |m[i,j]-m[j,i]| accepted without a debug note.
const asymmetryTol = 1e-9

// prepare validates m and returns its symmetrized copy as row slices,
// zeroing the diagonal when zeroDiag is set.
func prepare(m *matrix.Dense, zeroDiag bool, log *slog.Logger) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSymmetric(m, asymmetryTol); err != nil {
		log.Debug("averaging asymmetric input with its transpose", "cause", err)
	}
	sym, err := matrix.Symmetrize(m)
	if err != nil {
		return nil, err
	}
	rows := sym.ToRows()
	if zeroDiag {
		for i := range rows {
			rows[i][i] = 0
		}
	}

	return rows, nil
}
