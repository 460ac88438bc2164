// SPDX-License-Identifier: MIT

// Package encoder turns rows of categorical values into Euclidean
// coordinates that reflect the semantic hierarchies behind each column.
//
// Per configured column the encoder:
//
//  1. builds the n×n score matrix with the column's measure and gatherer;
//  2. derives the missing side with the column's inverter, so every column
//     yields both a similarity and a dissimilarity matrix;
//
// then aggregates all similarity matrices and, separately, all dissimilarity
// matrices, and reduces whichever aggregate the reducer consumes.
//
// Configuration is explicit: Config lists every column with its context and
// variant names. Empty fields take the defaults documented on Config.
//
// Columns are computed concurrently (Config.Workers). A failure in any column
// fails the whole call and leaves the previous results in place.
package encoder
