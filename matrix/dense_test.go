// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cellcluster/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err)

	return m
}

// TestNewDense_InvalidShape verifies non-positive shapes are rejected.
func TestNewDense_InvalidShape(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
	}
}

// TestDense_AtSetBounds checks safe accessors never panic on bad indices.
func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 4.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_NumericPolicy checks NaN/Inf rejection and its opt-out.
func TestDense_NumericPolicy(t *testing.T) {
	strict := MustDense(t, 1, 1)
	assert.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	loose := MustDense(t, 1, 1, matrix.WithNoValidateNaNInf())
	assert.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestDense_CloneIndependent verifies Clone yields an independent copy.
func TestDense_CloneIndependent(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.SetSym(0, 1, 3))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 9))

	v, _ := m.At(0, 1)
	assert.Equal(t, 3.0, v, "original must not change")
	v, _ = m.At(1, 0)
	assert.Equal(t, 3.0, v, "SetSym mirrors the value")

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3}, row)
	assert.Equal(t, "[0, 3]\n[3, 0]\n", m.String())
}

// TestWithEpsilon_PanicsOnInvalid covers the programmer-error path.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
