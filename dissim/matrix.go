// SPDX-License-Identifier: MIT

package dissim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellcluster/matrix"
	"github.com/katalvlaran/cellcluster/series"
)

// Matrix is a square, symmetric, zero-diagonal table of channel
// dissimilarities. Row/column i belongs to Channels()[i].
type Matrix struct {
	channels []series.Channel
	d        *matrix.Dense
}

// Compute builds the dissimilarity matrix of every channel pair of ts.
//
// Errors: ErrTooFewChannels, ErrDimensionMismatch (missing values),
// ErrInvalidDistance.
//
// Complexity: O(C²·cost(metric)).
func Compute(ts *series.Matrix, metric Metric) (*Matrix, error) {
	if ts == nil {
		return nil, ErrTooFewChannels
	}

	return ComputeColumns(ts.Channels(), ts.Columns(), metric)
}

// ComputeColumns is Compute over raw per-channel vectors; cols[i] belongs
// to channels[i]. A nil metric means Euclidean.
func ComputeColumns(channels []series.Channel, cols [][]float64, metric Metric) (*Matrix, error) {
	n := len(channels)
	if n == 0 {
		return nil, ErrTooFewChannels
	}
	if len(cols) != n {
		return nil, fmt.Errorf("Compute: %d channels, %d columns: %w", n, len(cols), ErrDimensionMismatch)
	}
	if metric == nil {
		metric = Euclidean{}
	}
	length := len(cols[0])
	for i, c := range cols {
		if len(c) != length {
			return nil, fmt.Errorf("Compute: channel %q has %d samples, want %d: %w",
				channels[i], len(c), length, ErrDimensionMismatch)
		}
		for s, v := range c {
			if math.IsNaN(v) {
				return nil, fmt.Errorf("Compute: channel %q sample %d missing: %w", channels[i], s, ErrDimensionMismatch)
			}
		}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := metric.Distance(cols[i], cols[j])
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, fmt.Errorf("Compute: %s(%q, %q) = %g: %w",
					metric.Name(), channels[i], channels[j], v, ErrInvalidDistance)
			}
			if err = d.SetSym(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return &Matrix{channels: append([]series.Channel(nil), channels...), d: d}, nil
}

// FromCondensed rebuilds a Matrix from its upper triangle listed row by row
// (length n(n−1)/2), the layout Condensed produces.
func FromCondensed(channels []series.Channel, condensed []float64) (*Matrix, error) {
	n := len(channels)
	if n == 0 {
		return nil, ErrTooFewChannels
	}
	if len(condensed) != n*(n-1)/2 {
		return nil, fmt.Errorf("FromCondensed: got %d values for %d channels: %w", len(condensed), n, ErrCondensedLength)
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := condensed[k]
			k++
			if v < 0 || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromCondensed: (%d,%d) = %g: %w", i, j, v, ErrInvalidDistance)
			}
			if err = d.SetSym(i, j, v); err != nil {
				return nil, fmt.Errorf("FromCondensed: %w", ErrInvalidDistance)
			}
		}
	}
	if err = matrix.ValidateDissimilarity(d); err != nil {
		return nil, err
	}

	return &Matrix{channels: append([]series.Channel(nil), channels...), d: d}, nil
}

// Len returns the number of channels.
func (m *Matrix) Len() int { return len(m.channels) }

// Channels returns a copy of the channel order.
func (m *Matrix) Channels() []series.Channel {
	return append([]series.Channel(nil), m.channels...)
}

// At returns the dissimilarity between channel indices i and j.
// It panics if either index is out of range.
func (m *Matrix) At(i, j int) float64 {
	v, err := m.d.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}

// Between returns the dissimilarity between two labelled channels.
func (m *Matrix) Between(a, b series.Channel) (float64, error) {
	i, j := m.indexOf(a), m.indexOf(b)
	if i < 0 {
		return 0, fmt.Errorf("Between: %q: %w", a, series.ErrUnknownChannel)
	}
	if j < 0 {
		return 0, fmt.Errorf("Between: %q: %w", b, series.ErrUnknownChannel)
	}

	return m.At(i, j), nil
}

// Condensed returns the upper triangle row by row, length n(n−1)/2.
func (m *Matrix) Condensed() []float64 {
	n := m.Len()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, m.At(i, j))
		}
	}

	return out
}

// Dense exposes the backing matrix as a copy.
func (m *Matrix) Dense() matrix.Matrix { return m.d.Clone() }

// Validate re-checks the dissimilarity contract on the backing storage.
func (m *Matrix) Validate() error { return matrix.ValidateDissimilarity(m.d) }

func (m *Matrix) indexOf(ch series.Channel) int {
	for i, c := range m.channels {
		if c == ch {
			return i
		}
	}

	return -1
}
