// SPDX-License-Identifier: MIT

// Package summary turns flat cluster assignments into ranked, display-ready
// reports: records sorted by size (largest first, ties by ascending cluster
// id) with members in input channel order and an optional highlight overlay.
//
// The package also hosts Extremes, which picks the lowest and highest
// channels by voltage at one sample: the usual companion view when a
// summary is inspected for weak cells.
package summary
