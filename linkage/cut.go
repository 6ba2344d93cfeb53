// SPDX-License-Identifier: MIT

package linkage

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cellcluster/series"
)

// Assignment maps every channel of a tree to a cluster id in [1, K].
type Assignment struct {
	channels []series.Channel
	labels   []int
	k        int
}

// NewAssignment builds an Assignment from explicit labels. Labels must
// cover exactly [1, k] with every id used at least once.
func NewAssignment(channels []series.Channel, labels []int) (*Assignment, error) {
	if len(channels) == 0 || len(channels) != len(labels) {
		return nil, fmt.Errorf("NewAssignment: %d channels, %d labels: %w", len(channels), len(labels), series.ErrDimensionMismatch)
	}
	k := 0
	for _, l := range labels {
		k = max(k, l)
	}
	seen := make([]bool, k+1)
	for _, l := range labels {
		if l < 1 {
			return nil, fmt.Errorf("NewAssignment: label %d: %w", l, ErrInvalidClusterCount)
		}
		seen[l] = true
	}
	for id := 1; id <= k; id++ {
		if !seen[id] {
			return nil, fmt.Errorf("NewAssignment: cluster %d unused: %w", id, ErrInvalidClusterCount)
		}
	}

	return &Assignment{
		channels: append([]series.Channel(nil), channels...),
		labels:   append([]int(nil), labels...),
		k:        k,
	}, nil
}

// Cut flattens t into exactly k clusters ("maxclust"): the k−1 merges with
// the largest distance are removed (ties remove the later merge) and the
// remaining merges are replayed with union-find. Components are numbered
// by first appearance in channel order.
//
// Errors: ErrNilInput, ErrInvalidClusterCount (k < 1 or k > N).
//
// Complexity: O(N log N).
func Cut(t *Tree, k int) (*Assignment, error) {
	if t == nil {
		return nil, fmt.Errorf("Cut: %w", ErrNilInput)
	}
	n := t.Len()
	if k < 1 || k > n {
		return nil, fmt.Errorf("Cut: k=%d with %d channels: %w", k, n, ErrInvalidClusterCount)
	}

	order := make([]int, len(t.merges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, db := t.merges[order[a]].Distance, t.merges[order[b]].Distance
		if da != db {
			return da > db
		}
		return order[a] > order[b]
	})
	removed := make([]bool, len(t.merges))
	for _, i := range order[:k-1] {
		removed[i] = true
	}

	// rep[id] is one channel under node id; linking representatives of the
	// two children reproduces the merge as a spanning-tree edge.
	rep := make([]int, 2*n-1)
	for i := 0; i < n; i++ {
		rep[i] = i
	}
	ds := newDisjointSet(n)
	for i, m := range t.merges {
		rep[n+i] = rep[m.Left]
		if removed[i] {
			continue
		}
		if ru, rv := ds.find(rep[m.Left]), ds.find(rep[m.Right]); ru != rv {
			ds.union(ru, rv)
		}
	}

	labels := make([]int, n)
	ids := make(map[int]int, k)
	for c := 0; c < n; c++ {
		root := ds.find(c)
		id, ok := ids[root]
		if !ok {
			id = len(ids) + 1
			ids[root] = id
		}
		labels[c] = id
	}

	return &Assignment{channels: t.Channels(), labels: labels, k: len(ids)}, nil
}

// K returns the number of clusters.
func (a *Assignment) K() int { return a.k }

// Len returns the number of channels.
func (a *Assignment) Len() int { return len(a.channels) }

// Channels returns the channels in input order.
func (a *Assignment) Channels() []series.Channel { return append([]series.Channel(nil), a.channels...) }

// Labels returns the cluster id of each channel in input order.
func (a *Assignment) Labels() []int { return append([]int(nil), a.labels...) }

// Of returns the cluster id of ch.
func (a *Assignment) Of(ch series.Channel) (int, error) {
	for i, c := range a.channels {
		if c == ch {
			return a.labels[i], nil
		}
	}

	return 0, fmt.Errorf("Of: %q: %w", ch, series.ErrUnknownChannel)
}

// Members returns the channels of cluster id in input order; nil when the
// id is outside [1, K].
func (a *Assignment) Members(id int) []series.Channel {
	if id < 1 || id > a.k {
		return nil
	}
	var out []series.Channel
	for i, l := range a.labels {
		if l == id {
			out = append(out, a.channels[i])
		}
	}

	return out
}
