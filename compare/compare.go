// SPDX-License-Identifier: MIT

package compare

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellcluster/series"
	"github.com/katalvlaran/cellcluster/summary"
)

var (
	// ErrEmptySet indicates an empty second operand in Jaccard.
	ErrEmptySet = errors.New("compare: empty set")

	// ErrNilSummary indicates a nil summary passed to Overlap.
	ErrNilSummary = errors.New("compare: nil summary")
)

// Jaccard returns |a∩b| / |b|. Inputs are treated as sets, so duplicates
// collapse. The denominator is always the second operand.
//
// Errors: ErrEmptySet if b is empty.
func Jaccard(a, b []series.Channel) (float64, error) {
	sb := toSet(b)
	if len(sb) == 0 {
		return 0, ErrEmptySet
	}
	sa := toSet(a)
	inter := 0
	for ch := range sb {
		if sa[ch] {
			inter++
		}
	}

	return float64(inter) / float64(len(sb)), nil
}

// Grid holds Jaccard scores between the ranked records of two summaries:
// At(i, j) = Jaccard(a.rank i, b.rank j), both ranks 1-based.
type Grid struct {
	rows, cols int
	scores     []float64
}

// Overlap scores every record of a against every record of b.
//
// Complexity: O(Ka·Kb·m) for m members per record.
func Overlap(a, b *summary.Summary) (*Grid, error) {
	if a == nil || b == nil {
		return nil, ErrNilSummary
	}
	ra, rb := a.Records(), b.Records()
	g := &Grid{rows: len(ra), cols: len(rb), scores: make([]float64, len(ra)*len(rb))}
	for i, x := range ra {
		for j, y := range rb {
			v, err := Jaccard(x.Members, y.Members)
			if err != nil {
				return nil, fmt.Errorf("Overlap: rank %d: %w", y.Rank, err)
			}
			g.scores[i*g.cols+j] = v
		}
	}

	return g, nil
}

// Shape returns the record counts of the two summaries.
func (g *Grid) Shape() (rows, cols int) { return g.rows, g.cols }

// At returns the score between rank i of the first summary and rank j of
// the second. It panics on ranks out of range.
func (g *Grid) At(i, j int) float64 {
	if i < 1 || i > g.rows || j < 1 || j > g.cols {
		panic(fmt.Sprintf("compare: rank (%d,%d) outside %dx%d grid", i, j, g.rows, g.cols))
	}

	return g.scores[(i-1)*g.cols+(j-1)]
}

// Row returns a copy of the scores of rank i against every rank of b.
func (g *Grid) Row(i int) []float64 {
	if i < 1 || i > g.rows {
		return nil
	}

	return append([]float64(nil), g.scores[(i-1)*g.cols:i*g.cols]...)
}

// Match pairs a rank of the first summary with its best counterpart.
type Match struct {
	Rank  int
	Other int
	Score float64
}

// Best returns, for each rank of the first summary, the rank of the second
// with the highest score; ties go to the lowest rank. Other is 0 when the
// second summary is empty.
func Best(g *Grid) []Match {
	if g == nil {
		return nil
	}
	out := make([]Match, g.rows)
	for i := 1; i <= g.rows; i++ {
		m := Match{Rank: i}
		for j := 1; j <= g.cols; j++ {
			if v := g.At(i, j); m.Other == 0 || v > m.Score {
				m.Other, m.Score = j, v
			}
		}
		out[i-1] = m
	}

	return out
}

func toSet(xs []series.Channel) map[series.Channel]bool {
	s := make(map[series.Channel]bool, len(xs))
	for _, x := range xs {
		s[x] = true
	}

	return s
}
