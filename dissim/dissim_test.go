// SPDX-License-Identifier: MIT

package dissim_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/cellcluster/dissim"
	"github.com/katalvlaran/cellcluster/series"
	"github.com/katalvlaran/cellcluster/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromCols(t *testing.T, cols ...[]float64) *series.Matrix {
	t.Helper()
	times := make([]time.Time, len(cols[0]))
	start := time.Date(2019, 3, 26, 11, 0, 0, 0, time.UTC)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * time.Minute)
	}
	chs := make([]series.Channel, len(cols))
	for i := range cols {
		chs[i] = series.Channel(string(rune('A' + i)))
	}
	m, err := series.New(times, chs, cols)
	require.NoError(t, err)

	return m
}

func TestCompute_Euclidean(t *testing.T) {
	ts := fromCols(t, []float64{0, 0}, []float64{3, 4}, []float64{0, 1})
	d, err := dissim.Compute(ts, dissim.Euclidean{})
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.InDelta(t, 5, d.At(0, 1), 1e-12)
	assert.InDelta(t, 1, d.At(0, 2), 1e-12)
	assert.InDelta(t, math.Sqrt(18), d.At(1, 2), 1e-12)
	assert.Equal(t, []float64{d.At(0, 1), d.At(0, 2), d.At(1, 2)}, d.Condensed())

	v, err := d.Between("C", "B")
	require.NoError(t, err)
	assert.Equal(t, d.At(1, 2), v)
	_, err = d.Between("A", "Z")
	assert.ErrorIs(t, err, series.ErrUnknownChannel)
}

// TestCompute_Contract: symmetric, zero diagonal, non-negative for every metric.
func TestCompute_Contract(t *testing.T) {
	ts, _, err := synth.Refresh(120, []synth.Group{{Size: 3, Depth: 0.2}, {Size: 3, Depth: 0.4}},
		synth.WithSeed(11), synth.WithNoise(0.01))
	require.NoError(t, err)

	for _, name := range []string{"euclidean", "sqeuclidean", "cityblock", "chebyshev", "correlation", "dtw"} {
		metric, err := dissim.Lookup(name)
		require.NoError(t, err)
		d, err := dissim.Compute(ts, metric)
		require.NoError(t, err, name)
		require.NoError(t, d.Validate(), name)
		for i := 0; i < d.Len(); i++ {
			assert.Zero(t, d.At(i, i), name)
			for j := 0; j < d.Len(); j++ {
				assert.Equal(t, d.At(i, j), d.At(j, i), name)
				assert.GreaterOrEqual(t, d.At(i, j), 0.0, name)
			}
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	ts, _, err := synth.Refresh(80, []synth.Group{{Size: 4, Depth: 0.3}}, synth.WithSeed(2), synth.WithNoise(0.02))
	require.NoError(t, err)
	a, err := dissim.Compute(ts, dissim.Correlation{})
	require.NoError(t, err)
	b, err := dissim.Compute(ts, dissim.Correlation{})
	require.NoError(t, err)
	assert.Equal(t, a.Condensed(), b.Condensed())
}

func TestCompute_Errors(t *testing.T) {
	_, err := dissim.ComputeColumns(nil, nil, nil)
	assert.ErrorIs(t, err, dissim.ErrTooFewChannels)

	_, err = dissim.ComputeColumns([]series.Channel{"a", "b"}, [][]float64{{1, 2}, {1}}, nil)
	assert.ErrorIs(t, err, dissim.ErrDimensionMismatch)
	assert.ErrorIs(t, err, series.ErrDimensionMismatch)

	_, err = dissim.ComputeColumns([]series.Channel{"a", "b"}, [][]float64{{1, math.NaN()}, {1, 2}}, nil)
	assert.ErrorIs(t, err, dissim.ErrDimensionMismatch)

	// A single channel yields a 1×1 zero matrix.
	d, err := dissim.ComputeColumns([]series.Channel{"a"}, [][]float64{{1, 2}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	assert.Empty(t, d.Condensed())
}

func TestCorrelation(t *testing.T) {
	c := dissim.Correlation{}
	assert.InDelta(t, 0, c.Distance([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-12)
	assert.InDelta(t, 2, c.Distance([]float64{1, 2, 3}, []float64{3, 2, 1}), 1e-12)
	assert.Equal(t, 1.0, c.Distance([]float64{1, 1, 1}, []float64{1, 2, 3}), "constant trace")
}

func TestDTW(t *testing.T) {
	a := []float64{0, 1, 2, 3, 2, 1, 0}
	b := []float64{0, 0, 1, 2, 3, 2, 1} // a shifted by one sample
	assert.Zero(t, dissim.DTW{}.Distance(a, a))
	assert.Less(t, dissim.DTW{}.Distance(a, b), dissim.Cityblock{}.Distance(a, b))

	dist, path, err := dissim.DTW{}.Align(a, b)
	require.NoError(t, err)
	assert.Equal(t, dissim.DTW{}.Distance(a, b), dist)
	assert.Equal(t, [2]int{0, 0}, path[0])
	assert.Equal(t, [2]int{len(a) - 1, len(b) - 1}, path[len(path)-1])

	// A prohibitive slope penalty forces the diagonal: DTW equals L1.
	assert.InDelta(t, dissim.Cityblock{}.Distance(a, b), dissim.DTW{SlopePenalty: 1e9}.Distance(a, b), 1e-9)
	assert.InDelta(t, 1.0, dissim.DTW{Window: 1}.Distance(a, b), 1e-12)
	assert.True(t, math.IsInf(dissim.DTW{}.Distance(nil, b), 1))

	_, _, err = dissim.DTW{}.Align(nil, b)
	assert.ErrorIs(t, err, dissim.ErrEmptySequence)
}

func TestFromCondensed(t *testing.T) {
	chs := []series.Channel{"x", "y", "z"}
	d, err := dissim.FromCondensed(chs, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.At(2, 1))
	assert.Equal(t, chs, d.Channels())

	_, err = dissim.FromCondensed(chs, []float64{1, 2})
	assert.ErrorIs(t, err, dissim.ErrCondensedLength)
	_, err = dissim.FromCondensed(chs, []float64{1, -2, 3})
	assert.ErrorIs(t, err, dissim.ErrInvalidDistance)
}

func TestLookup(t *testing.T) {
	m, err := dissim.Lookup("Pearson")
	require.NoError(t, err)
	assert.Equal(t, "correlation", m.Name())
	_, err = dissim.Lookup("cosine")
	assert.ErrorIs(t, err, dissim.ErrUnknownMetric)
}
