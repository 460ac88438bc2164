// SPDX-License-Identifier: MIT

// Package inverter converts between similarity and dissimilarity scales.
//
// Every variant is configured with the upper bound of the similarity scale
// (max, default 1) and maps s ∈ [0, max] to a bounded dissimilarity:
//
//	variant  name   similarity → dissimilarity    dissimilarity → similarity
//	Identity id     s                             d
//	Linear   lin    1 − s/max                     max·(1 − d)
//	Sqrt     sqrt   sqrt(2max − 2s)/sqrt(2max)    max·(1 − d²)
//	Exp      exp    exp(−s/max)                   −max·ln d
//	Gauss    gauss  exp(−(s/max)²)                max·sqrt(−ln d)
//	Hyper    hyp    1/(1 + (s/max)^deg)           max·(1/d − 1)^(1/deg)
//	Cosine   cos    cos(π·s/(2max))               (2max/π)·acos d
//
// Each reverse formula is the exact inverse of its forward formula on the
// forward image of [0, max]. Inputs outside that range are not checked.
//
// SimilarityToDissimilarity and DissimilarityToSimilarity apply a variant
// elementwise and return a new matrix; the input is never modified.
package inverter
