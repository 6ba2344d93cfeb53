// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage used by the
// dissimilarity and linkage stages of the cellcluster pipeline.
//
// What & Why:
//
//	Distance structures in the pipeline are square, symmetric and carry a
//	zero diagonal. Dense gives them a cache-friendly flat buffer with safe
//	accessors (At/Set return errors, never panic), and the validators in
//	this package check the structural contract in one place so that the
//	higher stages can fail fast with a stable sentinel.
//
// Numeric policy:
//
//	By default Set rejects NaN and ±Inf (ErrNaNInf). Structural checks use a
//	tolerance eps (DefaultEpsilon) configured through WithEpsilon.
//
// Complexity:
//
//	NewDense O(r*c); At/Set O(1); Clone O(r*c);
//	ValidateSymmetric / ValidateZeroDiagonal O(n²) over the upper triangle.
package matrix
