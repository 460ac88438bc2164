// SPDX-License-Identifier: MIT

package reducer

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// doubleCenter returns J·A·J with J = I − 11ᵀ/n.
func doubleCenter(a [][]float64) *mat.SymDense {
	n := len(a)
	rowMean := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rowMean[i] += a[i][j]
		}
		total += rowMean[i]
		rowMean[i] /= float64(n)
	}
	grand := total / float64(n*n)

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			// a is symmetric, so column means equal row means.
			out.SetSym(i, j, a[i][j]-rowMean[i]-rowMean[j]+grand)
		}
	}

	return out
}

// embed factorizes the symmetric b and returns the n×m matrix whose k-th
// column is v_k·sqrt(max(λ_k, 0)) for the k-th largest eigenvalue.
// Components beyond n stay zero.
func embed(b *mat.SymDense, m int) (*mat.Dense, error) {
	n := b.SymmetricDim()
	var es mat.EigenSym
	if ok := es.Factorize(b, true); !ok {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	out := mat.NewDense(n, m, nil)
	for k := 0; k < m && k < n; k++ {
		idx := n - 1 - k
		lambda := vals[idx]
		if lambda <= 0 {
			break
		}
		s := math.Sqrt(lambda)
		for i := 0; i < n; i++ {
			out.Set(i, k, vecs.At(i, idx)*s)
		}
	}

	return out, nil
}

// classical is Torgerson scaling: B = −½·J·D²·J, then the leading m
// eigenpairs of B.
func classical(delta [][]float64, m int) (*mat.Dense, error) {
	n := len(delta)
	sq := make([][]float64, n)
	for i := range sq {
		sq[i] = make([]float64, n)
		for j := range sq[i] {
			sq[i][j] = -0.5 * delta[i][j] * delta[i][j]
		}
	}

	return embed(doubleCenter(sq), m)
}
