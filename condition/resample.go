// SPDX-License-Identifier: MIT

package condition

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Resampler reduces one channel by an integer factor.
//
// Contract:
//   - len(x) ≥ factor ≥ 2 (guaranteed by Condition);
//   - the result has exactly len(x)/factor samples;
//   - output sample k represents the input window starting at k*factor;
//   - x is not modified.
type Resampler interface {
	Name() string
	Resample(x []float64, factor int) []float64
}

// Compile-time conformance of the closed strategy set.
var (
	_ Resampler = WindowMean{}
	_ Resampler = Fourier{}
	_ Resampler = Decimate{}
)

// ParseResampler maps a configuration name to a strategy.
func ParseResampler(name string) (Resampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mean", "window-mean":
		return WindowMean{}, nil
	case "fourier", "fft":
		return Fourier{}, nil
	case "decimate", "fir":
		return Decimate{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownResampler)
	}
}

// WindowMean averages non-overlapping windows of factor samples. A trailing
// partial window is dropped.
type WindowMean struct{}

// Name implements Resampler.
func (WindowMean) Name() string { return "window-mean" }

// Resample implements Resampler. Complexity: O(n).
func (WindowMean) Resample(x []float64, factor int) []float64 {
	m := len(x) / factor
	out := make([]float64, m)
	inv := 1 / float64(factor)
	for k := 0; k < m; k++ {
		out[k] = floats.Sum(x[k*factor:(k+1)*factor]) * inv
	}

	return out
}

// Fourier resamples in the frequency domain: the real spectrum of x is
// truncated to the bins representable at n/factor samples and transformed
// back. A Nyquist bin shared by both lengths is doubled, matching the
// split/join convention of band-limited resampling for even lengths.
type Fourier struct{}

// Name implements Resampler.
func (Fourier) Name() string { return "fourier" }

// Resample implements Resampler. Complexity: O(n log n).
func (Fourier) Resample(x []float64, factor int) []float64 {
	n := len(x)
	m := n / factor

	coeff := fourier.NewFFT(n).Coefficients(nil, x) // n/2+1 bins, unnormalised
	keep := make([]complex128, m/2+1)
	nyq := m/2 + 1
	copy(keep[:nyq], coeff[:nyq])
	if m%2 == 0 && m < n {
		keep[m/2] *= 2
	}

	// Sequence is unnormalised: divide by the output length m, then rescale
	// by m/n for the change of length; together a single 1/n.
	out := fourier.NewFFT(m).Sequence(nil, keep)
	floats.Scale(1/float64(n), out)

	return out
}

// Decimate low-pass filters with a Hamming-windowed FIR (cutoff 1/factor of
// Nyquist) applied with zero phase, then keeps every factor-th sample.
//
// Order is the FIR order (taps = Order+1); 0 selects 20·factor. Samples
// beyond the ends are taken as the nearest edge value so a DC level such as a
// 2.3 V cell voltage is not pulled towards zero at the boundaries.
type Decimate struct {
	Order int
}

// Name implements Resampler.
func (Decimate) Name() string { return "decimate" }

// Resample implements Resampler. Complexity: O(n/factor · taps).
func (d Decimate) Resample(x []float64, factor int) []float64 {
	order := d.Order
	if order <= 0 {
		order = 20 * factor
	}
	if order%2 == 1 {
		order++ // even order keeps the filter centred on a sample
	}
	taps := firLowpass(order+1, 1/float64(factor))
	half := order / 2

	n := len(x)
	m := n / factor
	out := make([]float64, m)
	for k := 0; k < m; k++ {
		centre := k * factor
		var acc float64
		for j, b := range taps {
			idx := centre + j - half
			switch {
			case idx < 0:
				idx = 0
			case idx >= n:
				idx = n - 1
			}
			acc += b * x[idx]
		}
		out[k] = acc
	}

	return out
}

// firLowpass designs a linear-phase low-pass FIR by the window method:
// a sinc with cutoff fc (fraction of Nyquist) under a Hamming window,
// scaled to unit gain at DC.
func firLowpass(numtaps int, fc float64) []float64 {
	h := make([]float64, numtaps)
	alpha := 0.5 * float64(numtaps-1)
	for i := range h {
		m := float64(i) - alpha
		h[i] = fc * sinc(fc*m)
		h[i] *= 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(numtaps-1))
	}
	floats.Scale(1/floats.Sum(h), h)

	return h
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x

	return math.Sin(px) / px
}
