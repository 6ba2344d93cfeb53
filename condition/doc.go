// SPDX-License-Identifier: MIT

// Package condition turns a raw multi-channel voltage series into a
// denoised, trimmed and evenly resampled series ready for distance
// computation.
//
// 🚀 Stages
//
//	smooth   — Savitzky–Golay polynomial smoothing (odd window ≥ 3, degree 3
//	           by default); edges are fitted with the polynomial of the first
//	           and last full window.
//	trim     — drop TrimLeading samples from the start and TrimTrailing from
//	           the end to isolate the event profile.
//	resample — reduce the axis by ResampleFactor with one of three strategies.
//
// The order of smoothing and trimming is an explicit choice (Order):
// SmoothThenTrim filters the full event and then cuts the edges away, so the
// boundary samples of the result are interior samples of the filter;
// TrimThenSmooth cuts first and lets the filter's edge fit shape the new
// boundaries. Results differ near the boundary.
//
// ✨ Resampling strategies (Resampler):
//   - WindowMean — mean over fixed windows of factor samples.
//   - Fourier    — FFT-domain resampling to n/factor samples.
//   - Decimate   — Hamming-windowed FIR low-pass (cutoff 1/factor), zero
//     phase, then every factor-th sample.
//
// Every strategy returns n/factor samples per channel with timestamps
// t[0], t[f], t[2f], … so outputs are channel-aligned and comparable.
//
// ⚙️ Usage:
//
//	cfg := condition.DefaultConfig()
//	cfg.ResampleFactor = 20
//	cfg.Resampler = condition.Fourier{}
//	out, err := condition.Condition(raw, cfg)
//
// Condition is a pure function: the input is never mutated and no state is
// kept between calls, so independent runs may execute concurrently.
package condition
