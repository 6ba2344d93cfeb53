// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cellcluster/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill builds an n×n Dense from row-major values.
func fill(t *testing.T, n int, vals ...float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	for k, v := range vals {
		require.NoError(t, m.Set(k/n, k%n, v))
	}

	return m
}

func TestValidateDissimilarity(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"valid", fill(t, 3, 0, 1, 2, 1, 0, 3, 2, 3, 0), nil},
		{"non-square", MustDense(t, 2, 3), matrix.ErrNonSquare},
		{"diagonal", fill(t, 2, 1, 0, 0, 0), matrix.ErrNonZeroDiagonal},
		{"asymmetric", fill(t, 2, 0, 1, 2, 0), matrix.ErrAsymmetry},
		{"negative", fill(t, 2, 0, -1, -1, 0), matrix.ErrNegative},
		{"nil", nil, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateDissimilarity(tc.m)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateDissimilarity_Epsilon relaxes symmetry with a larger eps.
func TestValidateDissimilarity_Epsilon(t *testing.T) {
	m := fill(t, 2, 0, 1, 1.001, 0)
	assert.ErrorIs(t, matrix.ValidateDissimilarity(m), matrix.ErrAsymmetry)
	assert.NoError(t, matrix.ValidateDissimilarity(m, matrix.WithEpsilon(0.01)))
}

func TestValidateVecLen(t *testing.T) {
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
