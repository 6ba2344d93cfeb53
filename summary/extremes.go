// SPDX-License-Identifier: MIT

package summary

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cellcluster/series"
)

// Extremes returns the n lowest and n highest channels by voltage at sample
// index at. Low is ordered ascending, high ascending too (its last entry is
// the highest channel). Channels missing a value at that sample are left
// out; n larger than the remaining channels is clamped.
//
// A negative at selects the most common sample index at which channels hit
// their own minimum (ties resolve to the earliest sample).
//
// Errors: ErrInvalidCount for n < 1 or at ≥ ts.Len().
func Extremes(ts *series.Matrix, n, at int) (low, high []series.Channel, err error) {
	if ts == nil || n < 1 || at >= ts.Len() {
		return nil, nil, fmt.Errorf("Extremes: n=%d at=%d: %w", n, at, ErrInvalidCount)
	}
	if at < 0 {
		at = modalArgmin(ts)
	}

	type entry struct {
		ch series.Channel
		v  float64
	}
	entries := make([]entry, 0, ts.Width())
	for c, ch := range ts.Channels() {
		v, _ := ts.At(at, c)
		if !math.IsNaN(v) {
			entries = append(entries, entry{ch, v})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].v < entries[j].v })

	n = min(n, len(entries))
	for _, e := range entries[:n] {
		low = append(low, e.ch)
	}
	for _, e := range entries[len(entries)-n:] {
		high = append(high, e.ch)
	}

	return low, high, nil
}

// modalArgmin finds, for every channel, the first sample of its minimum and
// returns the most frequent such sample.
func modalArgmin(ts *series.Matrix) int {
	counts := make(map[int]int, ts.Width())
	for c := 0; c < ts.Width(); c++ {
		best, idx := math.Inf(1), -1
		for s, v := range ts.Column(c) {
			if v < best {
				best, idx = v, s
			}
		}
		if idx >= 0 {
			counts[idx]++
		}
	}
	mode, top := 0, 0
	for idx, cnt := range counts {
		if cnt > top || (cnt == top && idx < mode) {
			mode, top = idx, cnt
		}
	}

	return mode
}
