// SPDX-License-Identifier: MIT

// Package matrix: the read/write view shared by distance tables and their
// validators. Errors and options live in errors.go and options.go.
package matrix

// Matrix is a rows×cols table of float64 values. Dense implements it;
// dissim hands callers a Matrix so they cannot reach its internal storage.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns the value at (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set stores v at (i, j), or returns ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
