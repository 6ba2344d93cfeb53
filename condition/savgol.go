// SPDX-License-Identifier: MIT

package condition

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// savgol holds the least-squares projection ("hat") matrix of a
// Savitzky–Golay filter.
//
// For a window of w samples centred on offsets x = -h..h and a polynomial of
// degree p, the design matrix A has A[i][k] = x_iᵏ. The hat matrix
// H = A·pinv(A) maps a window of raw samples onto the fitted polynomial
// evaluated at every window position:
//   - row h (the centre) is the classic convolution kernel for interior samples;
//   - rows 0..h-1 applied to the first window give the leading edge fit;
//   - rows h+1..w-1 applied to the last window give the trailing edge fit.
type savgol struct {
	window int
	half   int
	hat    *mat.Dense // window × window
}

// newSavgol derives the projection for (window, order). The caller has
// already validated window odd ≥ 3 and 0 ≤ order < window.
//
// Complexity: O(w²·p) once per Condition call.
func newSavgol(window, order int) (*savgol, error) {
	half := window / 2
	a := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		x := float64(i - half)
		v := 1.0
		for k := 0; k <= order; k++ {
			a.Set(i, k, v)
			v *= x
		}
	}

	ones := make([]float64, window)
	for i := range ones {
		ones[i] = 1
	}

	// pinv(A) via least squares against the identity (QR inside Solve).
	var pinv mat.Dense
	if err := pinv.Solve(a, mat.NewDiagDense(window, ones)); err != nil {
		return nil, fmt.Errorf("savgol(%d,%d): %v: %w", window, order, err, ErrInvalidConfig)
	}
	var hat mat.Dense
	hat.Mul(a, &pinv)

	return &savgol{window: window, half: half, hat: &hat}, nil
}

// apply smooths one channel. len(x) ≥ window is guaranteed by the caller.
// The input is not modified.
//
// Complexity: O(n·w).
func (s *savgol) apply(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	w, h := s.window, s.half

	// Interior: centre row of the hat matrix as a sliding kernel.
	centre := s.hat.RawRowView(h)
	for i := h; i < n-h; i++ {
		out[i] = floats.Dot(centre, x[i-h:i+h+1])
	}

	// Edges: evaluate the fit of the first/last full window.
	for i := 0; i < h; i++ {
		out[i] = floats.Dot(s.hat.RawRowView(i), x[:w])
	}
	tail := x[n-w:]
	for r := h + 1; r < w; r++ {
		out[n-w+r] = floats.Dot(s.hat.RawRowView(r), tail)
	}

	return out
}
