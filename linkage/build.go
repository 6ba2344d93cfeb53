// SPDX-License-Identifier: MIT

package linkage

import (
	"fmt"

	"github.com/katalvlaran/cellcluster/dissim"
)

// Build agglomerates the channels of d with the given method.
//
// Implementation:
//   - Stage 1: copy d into a working table of active slots.
//   - Stage 2: N−1 times, pick the closest active pair (i<j); ties go to
//     the lowest i+j, then the lowest i.
//   - Stage 3: record the merge, move the new cluster into slot i, retire
//     slot j and refresh row i with Method.Update.
//
// Single linkage is delegated to SingleMST, which yields the same tree.
//
// Errors: ErrNilInput, ErrUnknownMethod.
//
// Complexity: O(N³) time, O(N²) memory.
func Build(d *dissim.Matrix, method Method) (*Tree, error) {
	if d == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilInput)
	}
	if !method.valid() {
		return nil, fmt.Errorf("Build: %s: %w", method, ErrUnknownMethod)
	}
	if method == Single {
		return SingleMST(d)
	}

	return agglomerate(d, method), nil
}

// agglomerate is the generic Lance–Williams loop for any valid method.
func agglomerate(d *dissim.Matrix, method Method) *Tree {
	n := d.Len()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = d.At(i, j)
		}
	}
	active := make([]bool, n)
	size := make([]int, n)
	node := make([]int, n)
	for i := 0; i < n; i++ {
		active[i], size[i], node[i] = true, 1, i
	}

	merges := make([]Merge, 0, n-1)
	for step := 0; step < n-1; step++ {
		bi, bj := -1, -1
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if bi < 0 || closer(dist[i][j], i, j, dist[bi][bj], bi, bj) {
					bi, bj = i, j
				}
			}
		}

		dxy := dist[bi][bj]
		merges = append(merges, newMerge(node[bi], node[bj], dxy, size[bi]+size[bj]))
		for k := 0; k < n; k++ {
			if !active[k] || k == bi || k == bj {
				continue
			}
			v := method.Update(dist[bi][k], dist[bj][k], dxy, size[bi], size[bj], size[k])
			dist[bi][k], dist[k][bi] = v, v
		}
		size[bi] += size[bj]
		node[bi] = n + step
		active[bj] = false
	}

	return &Tree{channels: d.Channels(), merges: merges, method: method}
}

// closer orders candidate pairs by distance, then i+j, then i.
func closer(d float64, i, j int, bd float64, bi, bj int) bool {
	if d != bd {
		return d < bd
	}
	if i+j != bi+bj {
		return i+j < bi+bj
	}

	return i < bi
}

func newMerge(a, b int, d float64, size int) Merge {
	if a > b {
		a, b = b, a
	}

	return Merge{Left: a, Right: b, Distance: d, Size: size}
}
