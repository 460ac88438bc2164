// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix that flows
// through the contextual encoding pipeline.
//
// Every stage of the pipeline produces and consumes *Dense values:
//
//   - computer builds one n×n score matrix per attribute column,
//   - inverter maps a similarity matrix onto a dissimilarity matrix (and back),
//   - aggregator combines k equally shaped matrices elementwise,
//   - reducer embeds one aggregate into n×m Euclidean coordinates.
//
// Matrices are values: a stage never mutates a matrix after handing it to the
// next stage. Apply and Symmetrize always return fresh copies.
//
// Errors:
//
//	ErrInvalidDimensions - negative or zero-sized shape where one is required.
//	ErrOutOfRange        - At/Set index outside the matrix.
//	ErrDimensionMismatch - operands of different shapes.
//	ErrNonSquare         - a square matrix was required.
//	ErrAsymmetry         - symmetry check failed within tolerance.
//	ErrNaNInf            - non-finite value where finite values are required.
//	ErrNilMatrix         - nil receiver or argument.
//	ErrRagged            - row slices of unequal length.
//
// Interop with gonum (used by the reducer) goes through FromGonum,
// which copies in O(r*c).
package matrix
