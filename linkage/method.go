// SPDX-License-Identifier: MIT

package linkage

import (
	"fmt"
	"math"
	"strings"
)

// Method selects the Lance–Williams rule that recomputes the distance from
// a freshly merged cluster to every other cluster.
type Method int

const (
	// Single uses the minimum pairwise distance (nearest neighbour).
	Single Method = iota
	// Complete uses the maximum pairwise distance (farthest neighbour).
	Complete
	// Average is UPGMA: the size-weighted mean of the two sub-distances.
	Average
	// Weighted is WPGMA: the unweighted mean of the two sub-distances.
	Weighted
	// Centroid is UPGMC. Merge distances may decrease.
	Centroid
	// Median is WPGMC. Merge distances may decrease.
	Median
	// Ward minimizes the increase of within-cluster variance.
	Ward
)

var methodNames = [...]string{
	Single:   "single",
	Complete: "complete",
	Average:  "average",
	Weighted: "weighted",
	Centroid: "centroid",
	Median:   "median",
	Ward:     "ward",
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	return []Method{Single, Complete, Average, Weighted, Centroid, Median, Ward}
}

// String returns the configuration name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a configuration name to a Method.
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "upgma":
		return Average, nil
	case "wpgma":
		return Weighted, nil
	case "upgmc":
		return Centroid, nil
	case "wpgmc":
		return Median, nil
	}
	for i, n := range methodNames {
		if n == key {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

// Update returns the distance between the cluster formed by merging x and y
// and another cluster i, given dXI, dYI, dXY and the cluster sizes.
// Centroid, Median and Ward operate on squared distances and return the
// square root; negative intermediate values from rounding clamp to zero.
func (m Method) Update(dXI, dYI, dXY float64, nX, nY, nI int) float64 {
	fx, fy, fi := float64(nX), float64(nY), float64(nI)
	switch m {
	case Single:
		return math.Min(dXI, dYI)
	case Complete:
		return math.Max(dXI, dYI)
	case Average:
		return (fx*dXI + fy*dYI) / (fx + fy)
	case Weighted:
		return 0.5 * (dXI + dYI)
	case Centroid:
		s := fx + fy
		return sqrt0(((fx*dXI*dXI + fy*dYI*dYI) - fx*fy*dXY*dXY/s) / s)
	case Median:
		return sqrt0(0.5*(dXI*dXI+dYI*dYI) - 0.25*dXY*dXY)
	case Ward:
		t := 1 / (fx + fy + fi)
		return sqrt0((fi+fx)*t*dXI*dXI + (fi+fy)*t*dYI*dYI - fi*t*dXY*dXY)
	default:
		return math.NaN()
	}
}

func (m Method) valid() bool { return m >= Single && m <= Ward }

func sqrt0(v float64) float64 {
	if v <= 0 {
		return 0
	}

	return math.Sqrt(v)
}
