// SPDX-License-Identifier: MIT

package summary

import "errors"

var (
	// ErrInvalidCount indicates a non-positive count or a sample index
	// outside the series in Extremes.
	ErrInvalidCount = errors.New("summary: invalid count or sample index")

	// ErrUnknownRank indicates a rank outside [1, Len()].
	ErrUnknownRank = errors.New("summary: unknown rank")
)
