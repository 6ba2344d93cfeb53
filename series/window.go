package series

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Window returns the samples in index range [lo, hi) as a new Matrix.
// Errors: ErrOutOfRange if the range is invalid, ErrEmpty if it is empty.
func (m *Matrix) Window(lo, hi int) (*Matrix, error) {
	if lo < 0 || hi > len(m.times) || lo > hi {
		return nil, fmt.Errorf("Window(%d,%d): %w", lo, hi, ErrOutOfRange)
	}
	if lo == hi {
		return nil, fmt.Errorf("Window(%d,%d): %w", lo, hi, ErrEmpty)
	}
	cols := make([][]float64, len(m.values))
	for c, col := range m.values {
		cols[c] = col[lo:hi]
	}

	return New(m.times[lo:hi], m.channels, cols)
}

// Slice returns the event window of samples with start ≤ t ≤ stop, the way
// a refresh or capacity test is cut out of a day of telemetry.
// Errors: ErrEmpty if no sample falls inside the window.
func (m *Matrix) Slice(start, stop time.Time) (*Matrix, error) {
	lo := sort.Search(len(m.times), func(i int) bool { return !m.times[i].Before(start) })
	hi := sort.Search(len(m.times), func(i int) bool { return m.times[i].After(stop) })
	if lo >= hi {
		return nil, fmt.Errorf("Slice(%s,%s): %w", start.Format(time.RFC3339), stop.Format(time.RFC3339), ErrEmpty)
	}

	return m.Window(lo, hi)
}

// Select returns a Matrix restricted to the given channels, in the given order.
// Errors: ErrUnknownChannel, ErrDuplicateChannel, ErrEmpty.
func (m *Matrix) Select(channels ...Channel) (*Matrix, error) {
	cols := make([][]float64, len(channels))
	for i, ch := range channels {
		c, ok := m.index[ch]
		if !ok {
			return nil, fmt.Errorf("Select(%q): %w", ch, ErrUnknownChannel)
		}
		cols[i] = m.values[c]
	}

	return New(m.times, channels, cols)
}

// DropMissing removes every timestamp at which any channel is NaN.
// Returns ErrEmpty when no complete sample remains.
func (m *Matrix) DropMissing() (*Matrix, error) {
	keep := make([]int, 0, len(m.times))
	for s := range m.times {
		complete := true
		for _, col := range m.values {
			if math.IsNaN(col[s]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, s)
		}
	}
	if len(keep) == len(m.times) {
		return m, nil
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("DropMissing: %w", ErrEmpty)
	}

	times := make([]time.Time, len(keep))
	cols := make([][]float64, len(m.values))
	for c := range cols {
		cols[c] = make([]float64, len(keep))
	}
	for k, s := range keep {
		times[k] = m.times[s]
		for c, col := range m.values {
			cols[c][k] = col[s]
		}
	}

	return New(times, m.channels, cols)
}
