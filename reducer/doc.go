// SPDX-License-Identifier: MIT

// Package reducer embeds an n×n (dis)similarity matrix into n×m Euclidean
// coordinates.
//
// MDS ("mds") consumes dissimilarities and minimizes raw stress
//
//	σ(X) = Σ_{i<j} (‖x_i − x_j‖ − d̂_ij)²
//
// with SMACOF (Guttman-transform majorization). In metric mode d̂ is the
// input dissimilarity. In non-metric mode d̂ is the isotonic (monotone)
// regression of the current distances on the rank order of the input,
// rescaled so that Σ_{i<j} d̂² = n(n−1)/2.
//
// Kernel ("kernel") consumes similarities: it double-centers S and keeps the
// m leading eigenpairs, coordinates v·sqrt(λ). Its stress is the squared
// residual between coordinate inner products and the centered similarities.
//
// Determinism:
//
//	MDS starts from uniform random configurations. WithSeed fixes the
//	generator so repeated calls on the same input return identical
//	coordinates; without it each call is seeded from the clock.
//	WithInit(InitClassical) starts from the Torgerson solution instead and
//	is deterministic without a seed.
//
// Inputs are symmetrized ((M+Mᵀ)/2) and their diagonal ignored. Reduce is
// not safe for concurrent use on one reducer; Stress and Iterations report
// the latest call.
package reducer
