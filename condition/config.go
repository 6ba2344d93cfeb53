// SPDX-License-Identifier: MIT

package condition

import (
	"fmt"
	"strings"
)

// Defaults tuned on the refresh-event shape of a 30 s sampled string export.
// They are starting points, not invariants; every field is configurable.
const (
	DefaultSmoothingWindow = 31
	DefaultPolyOrder       = 3
	DefaultTrimLeading     = 210
	DefaultTrimTrailing    = 140
	DefaultResampleFactor  = 1
)

// Order selects whether smoothing runs before or after trimming.
type Order int

const (
	// SmoothThenTrim filters the full series, then drops the edges.
	SmoothThenTrim Order = iota

	// TrimThenSmooth drops the edges, then filters what remains.
	TrimThenSmooth
)

// String returns the configuration name of the order.
func (o Order) String() string {
	switch o {
	case SmoothThenTrim:
		return "smooth-then-trim"
	case TrimThenSmooth:
		return "trim-then-smooth"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a configuration name to an Order.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "smooth-then-trim", "posttrim":
		return SmoothThenTrim, nil
	case "trim-then-smooth", "pretrim":
		return TrimThenSmooth, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownOrder)
	}
}

// Config holds every conditioning knob. Use DefaultConfig for the documented
// defaults; the zero value is not valid (SmoothingWindow 0).
//
// Fields:
//   - SmoothingWindow — odd window length ≥ 3 for Savitzky–Golay.
//   - PolyOrder       — polynomial degree, 0 ≤ PolyOrder < SmoothingWindow.
//   - SkipSmoothing   — disable the smoothing stage (trim/resample only).
//   - TrimLeading     — samples dropped from the start (≥ 0).
//   - TrimTrailing    — samples dropped from the end (≥ 0).
//   - Order           — SmoothThenTrim or TrimThenSmooth.
//   - ResampleFactor  — integer downsampling factor; 1 disables resampling.
//   - Resampler       — strategy; nil means WindowMean.
type Config struct {
	SmoothingWindow int
	PolyOrder       int
	SkipSmoothing   bool
	TrimLeading     int
	TrimTrailing    int
	Order           Order
	ResampleFactor  int
	Resampler       Resampler
}

// DefaultConfig returns the documented defaults: window 31, degree 3,
// trims 210/140, smooth-then-trim, no resampling.
func DefaultConfig() Config {
	return Config{
		SmoothingWindow: DefaultSmoothingWindow,
		PolyOrder:       DefaultPolyOrder,
		TrimLeading:     DefaultTrimLeading,
		TrimTrailing:    DefaultTrimTrailing,
		Order:           SmoothThenTrim,
		ResampleFactor:  DefaultResampleFactor,
		Resampler:       WindowMean{},
	}
}

// Validate checks the configuration independently of any input series.
func (c Config) Validate() error {
	if !c.SkipSmoothing {
		if c.SmoothingWindow < 3 || c.SmoothingWindow%2 == 0 {
			return fmt.Errorf("smoothing window %d must be odd and ≥ 3: %w", c.SmoothingWindow, ErrInvalidConfig)
		}
		if c.PolyOrder < 0 || c.PolyOrder >= c.SmoothingWindow {
			return fmt.Errorf("poly order %d must be in [0, %d): %w", c.PolyOrder, c.SmoothingWindow, ErrInvalidConfig)
		}
	}
	if c.TrimLeading < 0 || c.TrimTrailing < 0 {
		return fmt.Errorf("trims %d/%d must be ≥ 0: %w", c.TrimLeading, c.TrimTrailing, ErrInvalidConfig)
	}
	if c.ResampleFactor < 1 {
		return fmt.Errorf("resample factor %d must be ≥ 1: %w", c.ResampleFactor, ErrInvalidConfig)
	}
	if c.Order != SmoothThenTrim && c.Order != TrimThenSmooth {
		return fmt.Errorf("%s: %w", c.Order, ErrUnknownOrder)
	}

	return nil
}

func (c Config) resampler() Resampler {
	if c.Resampler == nil {
		return WindowMean{}
	}

	return c.Resampler
}
