// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the structural contract of a
//    dissimilarity matrix: square, finite, symmetric, zero diagonal, non-negative.
//  - Return plain sentinels wrapped with the validator tag so call sites can
//    match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - Symmetry and diagonal checks run O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures a vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDissimilarity checks the full dissimilarity contract on m:
// square, finite, non-negative, zero diagonal and symmetric within eps.
//
// Stage order follows the package error priority so the reported sentinel
// is stable for inputs violating several rules at once.
//
// Complexity: Time O(n²), Space O(1).
func ValidateDissimilarity(m Matrix, opts ...Option) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	var (
		i, j   int
		vij    float64
		vji    float64
		err    error
		tagSym = "ValidateDissimilarity"
	)
	for i = 0; i < n; i++ {
		if vij, err = m.At(i, i); err != nil {
			return validatorErrorf(tagSym, err)
		}
		if math.IsNaN(vij) || math.IsInf(vij, 0) {
			return validatorErrorf(tagSym, ErrNaNInf)
		}
		if math.Abs(vij) > o.eps {
			return validatorErrorf(tagSym, ErrNonZeroDiagonal)
		}
		for j = i + 1; j < n; j++ {
			if vij, err = m.At(i, j); err != nil {
				return validatorErrorf(tagSym, err)
			}
			if vji, err = m.At(j, i); err != nil {
				return validatorErrorf(tagSym, err)
			}
			if math.IsNaN(vij) || math.IsInf(vij, 0) || math.IsNaN(vji) || math.IsInf(vji, 0) {
				return validatorErrorf(tagSym, ErrNaNInf)
			}
			if vij < -o.eps {
				return validatorErrorf(tagSym, ErrNegative)
			}
			if math.Abs(vij-vji) > o.eps {
				return validatorErrorf(tagSym, ErrAsymmetry)
			}
		}
	}

	return nil
}
