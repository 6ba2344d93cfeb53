// SPDX-License-Identifier: MIT
// Package: cellcluster/synth
//
// refresh.go — refresh-event string generator.
//
// Contract:
//   • Refresh(n, groups, opts...) returns an n-sample matrix with Σ Size channels.
//   • Strict determinism per (n, groups, options); no global state.
//   • O(n·C) time and memory.

package synth

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/cellcluster/series"
)

// ErrInvalidInput reports a request the generator cannot satisfy
// (n < 2, no channels, negative sizes or sigma, a malformed dip window).
var ErrInvalidInput = errors.New("synth: invalid input")

const tau = 2.0 * math.Pi

// Group describes channels sharing one behaviour during the event.
type Group struct {
	Size   int     // number of channels (≥ 0)
	Depth  float64 // dip depth in volts below the float voltage
	Offset float64 // constant voltage offset
	Delay  float64 // dip shift as a fraction of the event (may be negative)
}

// Refresh generates a refresh event for the given groups. Channels are laid
// out group after group; truth maps each channel to its 1-based group index.
func Refresh(n int, groups []Group, opts ...Option) (*series.Matrix, map[series.Channel]int, error) {
	cfg := newConfig(opts...)
	if n < 2 || cfg.sigma < 0 || cfg.dipStart < 0 || cfg.dipEnd > 1 || cfg.dipStart >= cfg.dipEnd {
		return nil, nil, ErrInvalidInput
	}
	total := 0
	for _, g := range groups {
		if g.Size < 0 {
			return nil, nil, fmt.Errorf("group size %d: %w", g.Size, ErrInvalidInput)
		}
		total += g.Size
	}
	if total == 0 {
		return nil, nil, fmt.Errorf("no channels: %w", ErrInvalidInput)
	}

	rng := rngFrom(cfg)
	ripple := chirp(n, defaultChirpF0, defaultChirpF1)

	times := make([]time.Time, n)
	for i := range times {
		times[i] = cfg.start.Add(time.Duration(i) * cfg.step)
	}

	channels := make([]series.Channel, 0, total)
	values := make([][]float64, 0, total)
	truth := make(map[series.Channel]int, total)
	for gi, g := range groups {
		lo := (cfg.dipStart + g.Delay) * float64(n-1)
		hi := (cfg.dipEnd + g.Delay) * float64(n-1)
		for k := 0; k < g.Size; k++ {
			ch := series.Channel(cfg.idFn(len(channels)))
			col := make([]float64, n)
			for i := range col {
				v := cfg.base + g.Offset - g.Depth*triangle(float64(i), lo, hi)
				v += cfg.trend * float64(i)
				v += cfg.ripple * ripple[i]
				if cfg.sigma > 0 {
					v += cfg.sigma * rng.NormFloat64()
				}
				col[i] = v
			}
			channels = append(channels, ch)
			values = append(values, col)
			truth[ch] = gi + 1
		}
	}

	m, err := series.New(times, channels, values)
	if err != nil {
		return nil, nil, err
	}

	return m, truth, nil
}

// triangle is a unit triangular envelope on [lo, hi]: 0 outside, 1 at the
// midpoint, 1 − |2·frac − 1| inside.
func triangle(x, lo, hi float64) float64 {
	if x <= lo || x >= hi {
		return 0
	}
	frac := (x - lo) / (hi - lo)

	return 1 - math.Abs(2*frac-1)
}

// chirp returns a unit-amplitude linear chirp sweeping f0→f1 cycles/sample.
//   - fi  = f0 + (f1 − f0) * i/(n−1)
//   - θᵢ₊₁ = θᵢ + τ * fi
//   - yᵢ  = sin(θᵢ)
func chirp(n int, f0, f1 float64) []float64 {
	out := make([]float64, n)
	theta := 0.0
	for i := range out {
		t := float64(i) / float64(n-1)
		theta += tau * (f0 + (f1-f0)*t)
		out[i] = math.Sin(theta)
	}

	return out
}
