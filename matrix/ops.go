// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Apply returns a new matrix with f applied to every entry of m.
func Apply(m *Dense, f func(float64) float64) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Apply: %w", ErrNilMatrix)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out, nil
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
func Symmetrize(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Symmetrize: %w", err)
	}
	n := m.r
	out := &Dense{r: n, c: n, data: make([]float64, len(m.data))}
	for i := 0; i < n; i++ {
		out.data[i*n+i] = m.data[i*n+i]
		for j := i + 1; j < n; j++ {
			avg := 0.5 * (m.data[i*n+j] + m.data[j*n+i])
			out.data[i*n+j] = avg
			out.data[j*n+i] = avg
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for k := range a.data {
		x, y := a.data[k], b.data[k]
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false, nil
			}
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
