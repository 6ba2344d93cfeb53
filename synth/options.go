// SPDX-License-Identifier: MIT
// Package: cellcluster/synth
//
// options.go — configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in order (later overrides earlier).

package synth

import (
	"math/rand"
	"strconv"
	"time"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultBaseVoltage = 2.30  // float voltage of a healthy cell (V)
	defaultNoiseSigma  = 0.0   // Gaussian noise stdev (V); 0 disables noise
	defaultTrend       = 0.0   // linear drift per sample (V)
	defaultRipple      = 0.0   // chirp ripple amplitude (V); 0 disables ripple
	defaultDipStart    = 0.25  // dip start as a fraction of the event
	defaultDipEnd      = 0.80  // dip end as a fraction of the event
	defaultChirpF0     = 0.002 // ripple start frequency (cycles/sample)
	defaultChirpF1     = 0.02  // ripple end frequency (cycles/sample)
	defaultStep        = 30 * time.Second
)

var defaultStart = time.Date(2019, 3, 26, 11, 0, 0, 0, time.UTC)

// Option configures the generator.
type Option func(*config)

type config struct {
	idFn     func(int) string
	rng      *rand.Rand
	seed     int64
	start    time.Time
	step     time.Duration
	base     float64
	sigma    float64
	trend    float64
	ripple   float64
	dipStart float64
	dipEnd   float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     positionID,
		start:    defaultStart,
		step:     defaultStep,
		base:     defaultBaseVoltage,
		sigma:    defaultNoiseSigma,
		trend:    defaultTrend,
		ripple:   defaultRipple,
		dipStart: defaultDipStart,
		dipEnd:   defaultDipEnd,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// positionID labels channels as 1-based battery positions ("1","2",...).
func positionID(i int) string { return strconv.Itoa(i + 1) }

// WithIDScheme overrides channel labels (index → label).
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSeed seeds the noise stream for reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand shares an existing RNG stream; it takes priority over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithStart sets the first timestamp.
func WithStart(t time.Time) Option {
	return func(c *config) { c.start = t }
}

// WithStep sets the sampling interval (must be > 0; ignored otherwise).
func WithStep(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.step = d
		}
	}
}

// WithBaseVoltage sets the float voltage every channel starts from.
func WithBaseVoltage(v float64) Option {
	return func(c *config) { c.base = v }
}

// WithNoise sets the Gaussian noise stdev (≥ 0).
func WithNoise(sigma float64) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithTrend sets the linear drift per sample.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithRipple adds a linear chirp of the given amplitude to every channel.
func WithRipple(amp float64) Option {
	return func(c *config) { c.ripple = amp }
}

// WithDip places the discharge dip between two fractions of the event,
// 0 ≤ start < end ≤ 1.
func WithDip(start, end float64) Option {
	return func(c *config) { c.dipStart, c.dipEnd = start, end }
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by cfg.seed.
func rngFrom(cfg config) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(cfg.seed))
}
