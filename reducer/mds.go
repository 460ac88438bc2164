// SPDX-License-Identifier: MIT

package reducer

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
)

// minDistance replaces zero embedded distances in the Guttman transform.
const minDistance = 1e-5

// MDS is SMACOF multidimensional scaling over a dissimilarity matrix.
type MDS struct {
	opts options

	mu     sync.Mutex
	stress float64
	iters  int
}

// NewMDS returns an MDS reducer.
//
// Errors: ErrBadComponents, ErrBadOption.
func NewMDS(opts ...Option) (*MDS, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("NewMDS: %w", err)
	}

	return &MDS{opts: o}, nil
}

// Input returns DissimilarityInput.
func (r *MDS) Input() Input { return DissimilarityInput }

// Name returns "mds".
func (r *MDS) Name() string { return NameMDS }

// Stress returns the raw stress of the best start of the latest Reduce.
func (r *MDS) Stress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stress
}

// Iterations returns the SMACOF iterations used by the best start of the
// latest Reduce.
func (r *MDS) Iterations() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.iters
}

// Reduce embeds the dissimilarity matrix d into n×m coordinates.
//
// Implementation:
//   - Stage 1: validate, symmetrize, zero the diagonal.
//   - Stage 2: build the starting configurations (random or classical).
//   - Stage 3: run SMACOF from each start and keep the lowest stress.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquare, matrix.ErrNaNInf, ErrEigenFailed.
//
// Complexity: O(inits · iterations · n²·m).
func (r *MDS) Reduce(d *matrix.Dense) (*matrix.Dense, error) {
	delta, err := prepare(d, true, r.opts.log)
	if err != nil {
		return nil, fmt.Errorf("mds: %w", err)
	}
	n, m := len(delta), r.opts.components

	if n == 1 {
		r.record(0, 0)
		return matrix.NewDense(1, m)
	}

	var starts []*mat.Dense
	switch r.opts.init {
	case InitClassical:
		x, err := classical(delta, m)
		if err != nil {
			return nil, fmt.Errorf("mds: %w", err)
		}
		starts = []*mat.Dense{x}
	default:
		seed := r.opts.seed
		if !r.opts.seeded {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		for k := 0; k < r.opts.inits; k++ {
			x := mat.NewDense(n, m, nil)
			for i := 0; i < n; i++ {
				for j := 0; j < m; j++ {
					x.Set(i, j, rng.Float64())
				}
			}
			starts = append(starts, x)
		}
	}

	var (
		best      *mat.Dense
		bestSt    = math.Inf(1)
		bestIters int
	)
	for k, x0 := range starts {
		x, st, it := smacof(delta, x0, r.opts.metric, r.opts.maxIter, r.opts.eps)
		r.opts.log.Debug("smacof start finished", "start", k, "stress", st, "iterations", it)
		if best == nil || st < bestSt {
			best, bestSt, bestIters = x, st, it
		}
	}
	r.record(bestSt, bestIters)

	return matrix.FromGonum(best)
}

func (r *MDS) record(stress float64, iters int) {
	r.mu.Lock()
	r.stress, r.iters = stress, iters
	r.mu.Unlock()
}

// smacof runs SMACOF from x and returns the final configuration, its stress
// and the iteration count.
//
// Each iteration computes embedded distances, the disparities (input in metric
// mode, isotonic fit otherwise), the raw stress, and then the Guttman update
// X ← (1/n)·B(X)·X. It stops once the stress normalized by Σ‖x_i‖ improves by
// less than eps.
func smacof(delta [][]float64, x *mat.Dense, metric bool, maxIter int, eps float64) (*mat.Dense, float64, int) {
	n, _ := x.Dims()
	dis := make([][]float64, n)
	disp := make([][]float64, n)
	for i := range dis {
		dis[i] = make([]float64, n)
		disp[i] = make([]float64, n)
	}

	var order [][2]int
	if !metric {
		order = rankPairs(delta)
	}

	b := mat.NewDense(n, n, nil)
	invN := 1 / float64(n)
	var (
		stress    float64
		oldStress float64
		haveOld   bool
		it        int
	)
	for it = 1; it <= maxIter; it++ {
		pairwise(x, dis)
		if metric {
			for i := range disp {
				copy(disp[i], delta[i])
			}
		} else {
			disparities(order, dis, disp)
		}

		stress = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				e := dis[i][j] - disp[i][j]
				stress += e * e
			}
		}

		// Guttman transform, with the 1/n factor folded into B.
		for i := 0; i < n; i++ {
			diag := 0.0
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				dij := dis[i][j]
				if dij == 0 {
					dij = minDistance
				}
				v := -disp[i][j] / dij * invN
				b.Set(i, j, v)
				diag -= v
			}
			b.Set(i, i, diag)
		}
		var next mat.Dense
		next.Mul(b, x)
		x = &next

		norm := 0.0
		for i := 0; i < n; i++ {
			norm += floats.Norm(x.RawRowView(i), 2)
		}
		if norm == 0 {
			break
		}
		cur := stress / norm
		if haveOld && oldStress-cur < eps {
			break
		}
		oldStress, haveOld = cur, true
	}
	if it > maxIter {
		it = maxIter
	}

	return x, stress, it
}

// pairwise fills dis with the Euclidean distances between rows of x.
func pairwise(x *mat.Dense, dis [][]float64) {
	n := len(dis)
	for i := 0; i < n; i++ {
		dis[i][i] = 0
		xi := x.RawRowView(i)
		for j := i + 1; j < n; j++ {
			d := floats.Distance(xi, x.RawRowView(j), 2)
			dis[i][j] = d
			dis[j][i] = d
		}
	}
}

// rankPairs returns the i<j index pairs ordered by ascending dissimilarity;
// ties keep row-major order.
func rankPairs(delta [][]float64) [][2]int {
	n := len(delta)
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return delta[pairs[a][0]][pairs[a][1]] < delta[pairs[b][0]][pairs[b][1]]
	})

	return pairs
}

// disparities fits the current distances monotonically to the rank order
// and rescales so that Σ_{i<j} d̂² = n(n−1)/2.
func disparities(order [][2]int, dis, disp [][]float64) {
	y := make([]float64, len(order))
	for k, p := range order {
		y[k] = dis[p[0]][p[1]]
	}
	fit := isotonic(y)

	sumSq := 0.0
	for _, v := range fit {
		sumSq += v * v
	}
	scale := 1.0
	if sumSq > 0 {
		scale = math.Sqrt(float64(len(order)) / sumSq)
	}
	for k, p := range order {
		v := fit[k] * scale
		disp[p[0]][p[1]] = v
		disp[p[1]][p[0]] = v
	}
	for i := range disp {
		disp[i][i] = 0
	}
}
