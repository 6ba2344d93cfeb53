// SPDX-License-Identifier: MIT

package linkage

import "errors"

var (
	// ErrInvalidClusterCount indicates k < 1 or k > N in Cut.
	ErrInvalidClusterCount = errors.New("linkage: cluster count out of range")

	// ErrUnknownMethod is returned by ParseMethod for unsupported names.
	ErrUnknownMethod = errors.New("linkage: unknown method")

	// ErrNilInput indicates a nil matrix or tree argument.
	ErrNilInput = errors.New("linkage: nil input")

	// ErrMalformedTree indicates a tree whose merge count is not N−1 or
	// whose merges reference unknown nodes.
	ErrMalformedTree = errors.New("linkage: malformed tree")
)
