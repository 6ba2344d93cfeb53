// SPDX-License-Identifier: MIT

package dissim

import (
	"errors"
	"math"
)

// ErrEmptySequence indicates Align was called with an empty input.
var ErrEmptySequence = errors.New("dissim: dtw input sequences must be non-empty")

// DTW is the dynamic time warping distance between two traces.
//
// Recurrence (1-based, D[0][0]=0, D[i][0]=D[0][j]=+∞):
//
//	D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//
// Window > 0 restricts cells to |i−j| ≤ Window (Sakoe–Chiba band); zero
// means unconstrained. SlopePenalty p is added to non-diagonal steps.
// Distance keeps two rolling rows, so memory is O(len(b)).
type DTW struct {
	Window       int
	SlopePenalty float64
}

// Name implements Metric.
func (DTW) Name() string { return "dtw" }

// Distance implements Metric. Empty inputs yield +Inf, which Compute
// reports as ErrInvalidDistance.
func (d DTW) Distance(a, b []float64) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return math.Inf(1)
	}
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !d.inBand(i, j) {
				curr[j] = inf
				continue
			}
			step := min(prev[j]+d.SlopePenalty, curr[j-1]+d.SlopePenalty, prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + step
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// Align computes the DTW distance together with the optimal warping path as
// (i, j) index pairs from (0,0) to (len(a)-1, len(b)-1). It keeps the full
// cost table: memory O(len(a)·len(b)).
func (d DTW) Align(a, b []float64) (float64, [][2]int, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		if i > 0 {
			dp[i][0] = inf
		}
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !d.inBand(i, j) {
				dp[i][j] = inf
				continue
			}
			step := min(dp[i-1][j]+d.SlopePenalty, dp[i][j-1]+d.SlopePenalty, dp[i-1][j-1])
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + step
		}
	}

	// Backtrack preferring the diagonal on ties.
	var path [][2]int
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, [2]int{i - 1, j - 1})
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+d.SlopePenalty, dp[i][j-1]+d.SlopePenalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return dp[n][m], path, nil
}

func (d DTW) inBand(i, j int) bool {
	if d.Window <= 0 {
		return true
	}
	k := i - j
	if k < 0 {
		k = -k
	}

	return k <= d.Window
}
