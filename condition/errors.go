// SPDX-License-Identifier: MIT

package condition

import "errors"

var (
	// ErrInsufficientData indicates that the series is shorter than the
	// smoothing window, that trimming would remove every sample, or that
	// resampling would leave nothing.
	ErrInsufficientData = errors.New("condition: insufficient data")

	// ErrInvalidConfig indicates an even or too small smoothing window, a
	// polynomial order not below the window, negative trims or a factor < 1.
	ErrInvalidConfig = errors.New("condition: invalid configuration")

	// ErrMissingValues indicates NaN values in the input; the ingestion layer
	// must drop or impute them before conditioning.
	ErrMissingValues = errors.New("condition: input contains missing values")

	// ErrUnknownResampler is returned by ParseResampler for unsupported names.
	ErrUnknownResampler = errors.New("condition: unknown resampler")

	// ErrUnknownOrder is returned by ParseOrder for unsupported names.
	ErrUnknownOrder = errors.New("condition: unknown smoothing/trim order")
)
