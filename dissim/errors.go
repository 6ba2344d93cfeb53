// SPDX-License-Identifier: MIT

package dissim

import (
	"errors"

	"github.com/katalvlaran/cellcluster/series"
)

var (
	// ErrDimensionMismatch indicates channels of unequal length or with
	// missing values. It is the series sentinel so errors.Is matches across
	// the pipeline.
	ErrDimensionMismatch = series.ErrDimensionMismatch

	// ErrTooFewChannels indicates an empty channel set.
	ErrTooFewChannels = errors.New("dissim: at least one channel required")

	// ErrInvalidDistance indicates a metric returned NaN, Inf or a negative value.
	ErrInvalidDistance = errors.New("dissim: metric produced an invalid distance")

	// ErrCondensedLength indicates a condensed vector whose length is not n(n−1)/2.
	ErrCondensedLength = errors.New("dissim: condensed length does not match channel count")

	// ErrUnknownMetric is returned by Lookup for unsupported names.
	ErrUnknownMetric = errors.New("dissim: unknown metric")
)
