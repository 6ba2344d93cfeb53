// SPDX-License-Identifier: MIT

// Package dissim computes the pairwise dissimilarity matrix between the
// channels of a conditioned time series.
//
// What & Why:
//
//	Hierarchical clustering consumes a square, symmetric, zero-diagonal
//	matrix of channel-to-channel distances. The metric is pluggable through
//	the Metric interface; the closed set shipped here covers the distances
//	used on cell voltage traces:
//
//	  Euclidean    — L2 distance (gonum floats.Distance).
//	  SqEuclidean  — squared L2.
//	  Cityblock    — L1 distance.
//	  Chebyshev    — L∞ distance.
//	  Correlation  — 1 − Pearson r (gonum stat.Correlation), range [0, 2].
//	  DTW          — dynamic time warping, for profiles shifted in time.
//
// Determinism:
//
//	Pairs are visited in fixed i<j order and mirrored, the diagonal is zero,
//	so identical inputs always produce bit-identical matrices.
//
// Complexity:
//
//	O(C²·n) for the vector metrics, O(C²·n·w) for DTW with band w.
package dissim
