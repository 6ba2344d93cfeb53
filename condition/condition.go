// SPDX-License-Identifier: MIT

package condition

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/cellcluster/series"
)

// Condition smooths, trims and resamples every channel of ts.
//
// Algorithm Outline:
//  1. Validate cfg and reject inputs with missing values.
//  2. SmoothThenTrim: require n ≥ window, smooth, trim.
//     TrimThenSmooth: trim (require something left), require the rest ≥ window, smooth.
//  3. If ResampleFactor > 1: require n' ≥ factor, resample each channel to
//     n'/factor samples with timestamps t[0], t[f], t[2f], ….
//
// Errors:
//   - ErrInvalidConfig / ErrUnknownOrder — from Config.Validate.
//   - ErrMissingValues — input contains NaN.
//   - ErrInsufficientData — too few samples for the window, trims or factor.
//
// Complexity: O(C·n·w) for smoothing plus the resampler cost per channel.
func Condition(ts *series.Matrix, cfg Config) (*series.Matrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ts.HasMissing() {
		return nil, ErrMissingValues
	}

	var sg *savgol
	if !cfg.SkipSmoothing {
		var err error
		if sg, err = newSavgol(cfg.SmoothingWindow, cfg.PolyOrder); err != nil {
			return nil, err
		}
	}

	times := ts.Times()
	cols := ts.Columns()

	var err error
	switch cfg.Order {
	case SmoothThenTrim:
		if err = smoothAll(sg, cols); err != nil {
			return nil, err
		}
		if times, cols, err = trim(times, cols, cfg.TrimLeading, cfg.TrimTrailing); err != nil {
			return nil, err
		}
	case TrimThenSmooth:
		if times, cols, err = trim(times, cols, cfg.TrimLeading, cfg.TrimTrailing); err != nil {
			return nil, err
		}
		if err = smoothAll(sg, cols); err != nil {
			return nil, err
		}
	}

	if cfg.ResampleFactor > 1 {
		if times, cols, err = resample(cfg.resampler(), times, cols, cfg.ResampleFactor); err != nil {
			return nil, err
		}
	}

	return series.New(times, ts.Channels(), cols)
}

// smoothAll replaces each column with its filtered copy. sg == nil skips.
func smoothAll(sg *savgol, cols [][]float64) error {
	if sg == nil {
		return nil
	}
	if n := len(cols[0]); n < sg.window {
		return fmt.Errorf("smooth: %d samples < window %d: %w", n, sg.window, ErrInsufficientData)
	}
	for c := range cols {
		cols[c] = sg.apply(cols[c])
	}

	return nil
}

// trim drops lead samples from the front and tail from the back.
func trim(times []time.Time, cols [][]float64, lead, tail int) ([]time.Time, [][]float64, error) {
	n := len(times)
	if lead+tail >= n {
		return nil, nil, fmt.Errorf("trim %d+%d of %d samples: %w", lead, tail, n, ErrInsufficientData)
	}
	hi := n - tail
	for c := range cols {
		cols[c] = cols[c][lead:hi]
	}

	return times[lead:hi], cols, nil
}

// resample applies r to every column and decimates the timestamp axis.
func resample(r Resampler, times []time.Time, cols [][]float64, factor int) ([]time.Time, [][]float64, error) {
	m := len(times) / factor
	if m == 0 {
		return nil, nil, fmt.Errorf("resample: %d samples < factor %d: %w", len(times), factor, ErrInsufficientData)
	}
	outTimes := make([]time.Time, m)
	for k := range outTimes {
		outTimes[k] = times[k*factor]
	}
	out := make([][]float64, len(cols))
	for c, col := range cols {
		out[c] = r.Resample(col, factor)
	}

	return outTimes, out, nil
}

// ResampleDuration averages each channel over fixed wall-clock windows of
// length d aligned to d (time.Truncate), skipping NaN values. Windows with no
// sample are omitted; a channel with only NaN in a populated window yields
// NaN there. Output timestamps are the window starts.
//
// This is the calendar-bucket counterpart of WindowMean for irregular
// telemetry (e.g. 10-minute means of a 30 s export).
//
// Complexity: O(C·n).
func ResampleDuration(ts *series.Matrix, d time.Duration) (*series.Matrix, error) {
	if d <= 0 {
		return nil, fmt.Errorf("resample duration %s: %w", d, ErrInvalidConfig)
	}
	times := ts.Times()
	cols := ts.Columns()

	var (
		starts []time.Time
		bounds []int // bucket k covers samples [bounds[k], bounds[k+1])
	)
	for s, t := range times {
		b := t.Truncate(d)
		if len(starts) == 0 || !b.Equal(starts[len(starts)-1]) {
			starts = append(starts, b)
			bounds = append(bounds, s)
		}
	}
	bounds = append(bounds, len(times))

	out := make([][]float64, len(cols))
	for c, col := range cols {
		out[c] = make([]float64, len(starts))
		for k := range starts {
			var sum float64
			var cnt int
			for _, v := range col[bounds[k]:bounds[k+1]] {
				if !math.IsNaN(v) {
					sum += v
					cnt++
				}
			}
			if cnt == 0 {
				out[c][k] = math.NaN()
				continue
			}
			out[c][k] = sum / float64(cnt)
		}
	}

	return series.New(starts, ts.Channels(), out)
}
