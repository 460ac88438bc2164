// SPDX-License-Identifier: MIT

// Package encoders turns categorical attributes into numeric coordinates that
// respect the meaning of the categories, not just their identity.
//
// 🚀 What is contextual-encoders?
//
//	A small, thread-safe pipeline that brings together:
//		• Contexts: concept trees and relation graphs (hierarchy/)
//		• Measures: Wu-Palmer similarity, shortest-path dissimilarity (measure/)
//		• Gatherers: lifting value comparisons to multi-valued cells (gatherer/)
//		• Matrix computation: pairwise n×n scores per column (computer/)
//		• Inverters: similarity ↔ dissimilarity transforms (inverter/)
//		• Aggregators: mean, median, max, min across columns (aggregator/)
//		• Reducers: SMACOF MDS and kernel eigendecomposition (reducer/)
//
// The encoder/ package wires every stage together; config/ loads YAML
// encoder documents and cmd/ctxenc exposes the pipeline on the command line.
//
// Data flow for n rows and k columns:
//
//	rows ──► column 1 ──► MatrixComputer ──► S₁, D₁ ─┐
//	     ──► column 2 ──► MatrixComputer ──► S₂, D₂ ─┼─► Aggregator ──► S, D ──► Reducer ──► n×m
//	     ──► column k ──► MatrixComputer ──► Sₖ, Dₖ ─┘
//
// Each column's measure yields either similarities or dissimilarities; the
// column's inverter supplies the other side so both aggregates always exist.
// MDS consumes D, the kernel reducer consumes S.
//
// Supporting packages:
//
//	matrix/   dense row-major matrices with validation and gonum interop
//	logger/   slog construction (text, JSON, charmbracelet pretty output)
//	metrics/  Prometheus instruments for columns, transforms and reducers
//
//	go get github.com/StuttgarterDotNet/contextual-encoders
package encoders
