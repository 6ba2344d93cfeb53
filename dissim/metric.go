// SPDX-License-Identifier: MIT

package dissim

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metric maps a pair of equal-length channel vectors to a non-negative
// dissimilarity. Implementations must be pure and symmetric.
type Metric interface {
	Name() string
	Distance(a, b []float64) float64
}

// Compile-time conformance of the closed metric set.
var (
	_ Metric = Euclidean{}
	_ Metric = SqEuclidean{}
	_ Metric = Cityblock{}
	_ Metric = Chebyshev{}
	_ Metric = Correlation{}
	_ Metric = DTW{}
)

// Lookup maps a configuration name to a Metric.
func Lookup(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean":
		return Euclidean{}, nil
	case "sqeuclidean":
		return SqEuclidean{}, nil
	case "cityblock", "manhattan":
		return Cityblock{}, nil
	case "chebyshev":
		return Chebyshev{}, nil
	case "correlation", "pearson":
		return Correlation{}, nil
	case "dtw":
		return DTW{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
	}
}

// Euclidean is the L2 distance.
type Euclidean struct{}

// Name implements Metric.
func (Euclidean) Name() string { return "euclidean" }

// Distance implements Metric.
func (Euclidean) Distance(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// SqEuclidean is the squared L2 distance.
type SqEuclidean struct{}

// Name implements Metric.
func (SqEuclidean) Name() string { return "sqeuclidean" }

// Distance implements Metric.
func (SqEuclidean) Distance(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

// Cityblock is the L1 distance.
type Cityblock struct{}

// Name implements Metric.
func (Cityblock) Name() string { return "cityblock" }

// Distance implements Metric.
func (Cityblock) Distance(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// Chebyshev is the L∞ distance.
type Chebyshev struct{}

// Name implements Metric.
func (Chebyshev) Name() string { return "chebyshev" }

// Distance implements Metric.
func (Chebyshev) Distance(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

// Correlation is 1 − Pearson r: 0 for perfectly correlated traces, 1 for
// uncorrelated, 2 for perfectly anti-correlated. A constant trace has no
// defined correlation and is treated as uncorrelated (distance 1).
type Correlation struct{}

// Name implements Metric.
func (Correlation) Name() string { return "correlation" }

// Distance implements Metric.
func (Correlation) Distance(a, b []float64) float64 {
	r := stat.Correlation(a, b, nil)
	if math.IsNaN(r) {
		return 1
	}
	d := 1 - r
	// Clamp rounding just outside the mathematical range.
	switch {
	case d < 0:
		return 0
	case d > 2:
		return 2
	}

	return d
}
