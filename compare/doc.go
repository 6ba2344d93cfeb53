// SPDX-License-Identifier: MIT

// Package compare measures how stable clusters are across runs.
//
// Jaccard here is deliberately asymmetric: |a∩b| / |b|, the share of the
// second set recovered by the first. Overlap applies it to every pair of
// ranked records of two summaries and Best picks, for each cluster of the
// first run, its closest counterpart in the second.
package compare
