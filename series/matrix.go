package series

import (
	"fmt"
	"math"
	"time"
)

// Channel identifies one cell/battery position. Labels are unique within a
// Matrix and never change once assigned.
type Channel string

// Matrix is an immutable timestamps × channels table of voltages.
//
// Invariants (enforced by New):
//   - len(times) ≥ 1 and len(channels) ≥ 1
//   - times strictly increasing
//   - channel labels unique
//   - every channel holds exactly len(times) values
type Matrix struct {
	times    []time.Time
	channels []Channel
	index    map[Channel]int
	values   [][]float64 // values[c][s]: channel c, sample s
}

// New builds a Matrix from a timestamp axis, channel labels and per-channel
// value columns (values[c] belongs to channels[c]). All inputs are copied.
//
// Errors: ErrEmpty, ErrDimensionMismatch, ErrDuplicateChannel, ErrUnorderedTimes.
//
// Complexity: O(samples·channels).
func New(times []time.Time, channels []Channel, values [][]float64) (*Matrix, error) {
	if len(times) == 0 || len(channels) == 0 {
		return nil, ErrEmpty
	}
	if len(values) != len(channels) {
		return nil, fmt.Errorf("New: %d channels, %d value columns: %w", len(channels), len(values), ErrDimensionMismatch)
	}
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			return nil, fmt.Errorf("New: sample %d: %w", i, ErrUnorderedTimes)
		}
	}

	index := make(map[Channel]int, len(channels))
	cols := make([][]float64, len(channels))
	for c, ch := range channels {
		if _, dup := index[ch]; dup {
			return nil, fmt.Errorf("New: channel %q: %w", ch, ErrDuplicateChannel)
		}
		index[ch] = c
		if len(values[c]) != len(times) {
			return nil, fmt.Errorf("New: channel %q has %d values, want %d: %w",
				ch, len(values[c]), len(times), ErrDimensionMismatch)
		}
		cols[c] = append([]float64(nil), values[c]...)
	}

	return &Matrix{
		times:    append([]time.Time(nil), times...),
		channels: append([]Channel(nil), channels...),
		index:    index,
		values:   cols,
	}, nil
}

// FromRows builds a Matrix from row-major samples (rows[s][c]), the layout
// produced by tabular ingestion. It is equivalent to New after a transpose.
func FromRows(times []time.Time, channels []Channel, rows [][]float64) (*Matrix, error) {
	if len(rows) != len(times) {
		return nil, fmt.Errorf("FromRows: %d rows, %d timestamps: %w", len(rows), len(times), ErrDimensionMismatch)
	}
	cols := make([][]float64, len(channels))
	for c := range cols {
		cols[c] = make([]float64, len(rows))
	}
	for s, row := range rows {
		if len(row) != len(channels) {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", s, len(row), len(channels), ErrDimensionMismatch)
		}
		for c, v := range row {
			cols[c][s] = v
		}
	}

	return New(times, channels, cols)
}

// Len returns the number of samples (timestamps).
func (m *Matrix) Len() int { return len(m.times) }

// Width returns the number of channels.
func (m *Matrix) Width() int { return len(m.channels) }

// Times returns a copy of the timestamp axis.
func (m *Matrix) Times() []time.Time { return append([]time.Time(nil), m.times...) }

// Channels returns a copy of the channel labels in column order.
func (m *Matrix) Channels() []Channel { return append([]Channel(nil), m.channels...) }

// Index returns the column position of ch.
func (m *Matrix) Index(ch Channel) (int, bool) {
	i, ok := m.index[ch]
	return i, ok
}

// Column returns a copy of the values of the channel at position c.
// It panics if c is out of range, like slice indexing.
func (m *Matrix) Column(c int) []float64 { return append([]float64(nil), m.values[c]...) }

// Columns returns a deep copy of all channel columns.
func (m *Matrix) Columns() [][]float64 {
	out := make([][]float64, len(m.values))
	for c := range m.values {
		out[c] = m.Column(c)
	}

	return out
}

// Values returns a copy of the values of channel ch.
func (m *Matrix) Values(ch Channel) ([]float64, error) {
	c, ok := m.index[ch]
	if !ok {
		return nil, fmt.Errorf("Values(%q): %w", ch, ErrUnknownChannel)
	}

	return m.Column(c), nil
}

// At returns the value of channel c at sample s.
func (m *Matrix) At(s, c int) (float64, error) {
	if s < 0 || s >= len(m.times) || c < 0 || c >= len(m.channels) {
		return 0, fmt.Errorf("At(%d,%d): %w", s, c, ErrOutOfRange)
	}

	return m.values[c][s], nil
}

// HasMissing reports whether any value is NaN.
func (m *Matrix) HasMissing() bool {
	for _, col := range m.values {
		for _, v := range col {
			if math.IsNaN(v) {
				return true
			}
		}
	}

	return false
}
