// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrInvalidDimensions reports a zero or negative shape.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange reports an index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch reports operands whose shapes differ, or a buffer
	// whose length does not match the requested shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare reports a rectangular matrix where n×n is needed.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry reports m[i,j] and m[j,i] differing beyond tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNaNInf reports a non-finite entry.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix reports a nil *Dense.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged reports rows of unequal length.
	ErrRagged = errors.New("matrix: ragged rows")
)
