// SPDX-License-Identifier: MIT

package reducer

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
)

// Kernel embeds a similarity matrix through its double-centered
// eigendecomposition. Only WithComponents and WithLogger affect it.
type Kernel struct {
	opts options

	mu     sync.Mutex
	stress float64
}

// NewKernel returns a similarity-input reducer.
func NewKernel(opts ...Option) (*Kernel, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("NewKernel: %w", err)
	}

	return &Kernel{opts: o}, nil
}

// Input returns SimilarityInput.
func (k *Kernel) Input() Input { return SimilarityInput }

// Name returns "kernel".
func (k *Kernel) Name() string { return NameKernel }

// Stress returns Σ_{i<j}(⟨x_i,x_j⟩ − B_ij)² of the latest Reduce.
func (k *Kernel) Stress() float64 {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.stress
}

// Reduce embeds the similarity matrix s.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquare, matrix.ErrNaNInf,
// ErrBadComponents (m > n), ErrEigenFailed.
//
// Complexity: O(n³).
func (k *Kernel) Reduce(s *matrix.Dense) (*matrix.Dense, error) {
	sim, err := prepare(s, false, k.opts.log)
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}
	n, m := len(sim), k.opts.components
	if m > n {
		return nil, fmt.Errorf("kernel: %d components for %d samples: %w", m, n, ErrBadComponents)
	}

	b := doubleCenter(sim)
	x, err := embed(b, m)
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}

	stress := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e := floats.Dot(x.RawRowView(i), x.RawRowView(j)) - b.At(i, j)
			stress += e * e
		}
	}
	k.mu.Lock()
	k.stress = stress
	k.mu.Unlock()
	k.opts.log.Debug("kernel embedding finished", "samples", n, "stress", stress)

	return matrix.FromGonum(x)
}
