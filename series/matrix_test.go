package series_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/cellcluster/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2019, 3, 26, 11, 0, 0, 0, time.UTC)

// axis returns n timestamps spaced 30s apart starting at t0.
func axis(n int) []time.Time {
	ts := make([]time.Time, n)
	for i := range ts {
		ts[i] = t0.Add(time.Duration(i) * 30 * time.Second)
	}

	return ts
}

func TestNew_Validation(t *testing.T) {
	chs := []series.Channel{"1", "2"}

	_, err := series.New(nil, chs, nil)
	assert.ErrorIs(t, err, series.ErrEmpty)

	_, err = series.New(axis(3), chs, [][]float64{{1, 2, 3}, {1, 2}})
	assert.ErrorIs(t, err, series.ErrDimensionMismatch)

	_, err = series.New(axis(2), []series.Channel{"1", "1"}, [][]float64{{1, 2}, {1, 2}})
	assert.ErrorIs(t, err, series.ErrDuplicateChannel)

	times := axis(2)
	times[1] = times[0]
	_, err = series.New(times, chs, [][]float64{{1, 2}, {1, 2}})
	assert.ErrorIs(t, err, series.ErrUnorderedTimes)
}

// TestNew_CopiesInput verifies the matrix is insulated from caller mutation.
func TestNew_CopiesInput(t *testing.T) {
	col := []float64{1, 2, 3}
	m, err := series.New(axis(3), []series.Channel{"A"}, [][]float64{col})
	require.NoError(t, err)

	col[0] = 99
	got, err := m.Values("A")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	got[1] = 42
	again := m.Column(0)
	assert.Equal(t, 2.0, again[1], "accessors must return copies")
}

func TestFromRows(t *testing.T) {
	m, err := series.FromRows(axis(2), []series.Channel{"A", "B"}, [][]float64{{1, 10}, {2, 20}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.Width())
	b, _ := m.Values("B")
	assert.Equal(t, []float64{10, 20}, b)

	_, err = series.FromRows(axis(2), []series.Channel{"A", "B"}, [][]float64{{1}, {2, 20}})
	assert.ErrorIs(t, err, series.ErrDimensionMismatch)
}

func TestMatrix_SliceWindowSelect(t *testing.T) {
	m, err := series.New(axis(5), []series.Channel{"A", "B"},
		[][]float64{{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}})
	require.NoError(t, err)

	ev, err := m.Slice(t0.Add(30*time.Second), t0.Add(90*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 3, ev.Len())
	assert.Equal(t, []float64{1, 2, 3}, ev.Column(0))

	_, err = m.Slice(t0.Add(time.Hour), t0.Add(2*time.Hour))
	assert.ErrorIs(t, err, series.ErrEmpty)

	w, err := m.Window(3, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 9}, w.Column(1))
	_, err = m.Window(4, 6)
	assert.ErrorIs(t, err, series.ErrOutOfRange)

	sel, err := m.Select("B")
	require.NoError(t, err)
	assert.Equal(t, []series.Channel{"B"}, sel.Channels())
	_, err = m.Select("Z")
	assert.ErrorIs(t, err, series.ErrUnknownChannel)
}

func TestMatrix_DropMissing(t *testing.T) {
	nan := math.NaN()
	m, err := series.New(axis(4), []series.Channel{"A", "B"},
		[][]float64{{1, nan, 3, 4}, {5, 6, 7, nan}})
	require.NoError(t, err)
	assert.True(t, m.HasMissing())

	clean, err := m.DropMissing()
	require.NoError(t, err)
	assert.False(t, clean.HasMissing())
	assert.Equal(t, []float64{1, 3}, clean.Column(0))
	assert.Equal(t, []time.Time{t0, t0.Add(60 * time.Second)}, clean.Times())

	allNaN, err := series.New(axis(1), []series.Channel{"A"}, [][]float64{{nan}})
	require.NoError(t, err)
	_, err = allNaN.DropMissing()
	assert.ErrorIs(t, err, series.ErrEmpty)
}

func TestMatrix_At(t *testing.T) {
	m, err := series.New(axis(2), []series.Channel{"A"}, [][]float64{{1, 2}})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, series.ErrOutOfRange)
	i, ok := m.Index("A")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}
