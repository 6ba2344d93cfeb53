// SPDX-License-Identifier: MIT

package linkage

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cellcluster/dissim"
)

// edge is one channel pair of the complete dissimilarity graph.
type edge struct {
	u, v int
	w    float64
}

// SingleMST computes single linkage through Kruskal's minimum spanning tree:
// every accepted MST edge is one merge at the edge weight.
//
// Steps:
//  1. Collect the N(N−1)/2 pair edges and stable-sort them by weight.
//  2. Walk groups of equal weight. Inside a group, repeatedly accept the
//     edge joining two components whose lowest channel indices have the
//     smallest sum (then the smallest first index), so the merge order
//     matches Build's tie-breaking exactly.
//  3. Union-find with path compression and union by rank tracks components,
//     their lowest channel index and their current node id.
//
// Complexity: O(E log E + Σ g²) for equal-weight groups of size g.
func SingleMST(d *dissim.Matrix) (*Tree, error) {
	if d == nil {
		return nil, fmt.Errorf("SingleMST: %w", ErrNilInput)
	}
	n := d.Len()
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{u: i, v: j, w: d.At(i, j)})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].w < edges[b].w })

	ds := newDisjointSet(n)
	merges := make([]Merge, 0, n-1)
	for lo := 0; lo < len(edges) && len(merges) < n-1; {
		hi := lo + 1
		for hi < len(edges) && edges[hi].w == edges[lo].w {
			hi++
		}
		group := edges[lo:hi]
		for len(merges) < n-1 {
			best, bx, by := -1, 0, 0
			for g, e := range group {
				ru, rv := ds.find(e.u), ds.find(e.v)
				if ru == rv {
					continue
				}
				x, y := ds.low[ru], ds.low[rv]
				if x > y {
					x, y = y, x
				}
				if best < 0 || x+y < bx+by || (x+y == bx+by && x < bx) {
					best, bx, by = g, x, y
				}
			}
			if best < 0 {
				break
			}
			e := group[best]
			ru, rv := ds.find(e.u), ds.find(e.v)
			size := ds.size[ru] + ds.size[rv]
			merges = append(merges, newMerge(ds.node[ru], ds.node[rv], e.w, size))
			root := ds.union(ru, rv)
			ds.node[root] = n + len(merges) - 1
		}
		lo = hi
	}

	return &Tree{channels: d.Channels(), merges: merges, method: Single}, nil
}

// disjointSet is union-find over channel indices carrying, per root, the
// component size, its lowest channel index and its tree node id.
type disjointSet struct {
	parent []int
	rank   []int
	size   []int
	low    []int
	node   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		low:    make([]int, n),
		node:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		ds.parent[i], ds.size[i], ds.low[i], ds.node[i] = i, 1, i, i
	}

	return ds
}

// find returns the root of u, compressing the path iteratively.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union joins two distinct roots by rank and returns the surviving root.
func (ds *disjointSet) union(ru, rv int) int {
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}
	ds.size[ru] += ds.size[rv]
	ds.low[ru] = min(ds.low[ru], ds.low[rv])

	return ru
}
