package series

import "errors"

var (
	// ErrEmpty indicates a matrix without timestamps or without channels.
	ErrEmpty = errors.New("series: matrix must have at least one sample and one channel")

	// ErrDimensionMismatch indicates that a channel's value count differs from
	// the timestamp count, or that channels disagree in length.
	ErrDimensionMismatch = errors.New("series: dimension mismatch")

	// ErrDuplicateChannel indicates that a channel label appears twice.
	ErrDuplicateChannel = errors.New("series: duplicate channel")

	// ErrUnknownChannel indicates a lookup of a channel not present in the matrix.
	ErrUnknownChannel = errors.New("series: unknown channel")

	// ErrUnorderedTimes indicates that timestamps are not strictly increasing.
	ErrUnorderedTimes = errors.New("series: timestamps must be strictly increasing")

	// ErrOutOfRange indicates a sample index outside [0, Len()).
	ErrOutOfRange = errors.New("series: sample index out of range")
)
