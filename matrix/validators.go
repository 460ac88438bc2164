// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil rejects a nil matrix.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape rejects nil operands and differing shapes.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare rejects nil and non-square matrices.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric requires |m[i,j]-m[j,i]| <= tol over the upper triangle.
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries, reporting the first one.
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for k, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateFinite: (%d,%d): %w", k/m.c, k%m.c, ErrNaNInf)
		}
	}

	return nil
}
