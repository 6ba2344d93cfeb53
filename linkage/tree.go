// SPDX-License-Identifier: MIT

package linkage

import (
	"fmt"

	"github.com/katalvlaran/cellcluster/dissim"
	"github.com/katalvlaran/cellcluster/series"
)

// Merge is one agglomeration step. Left < Right are node ids: ids below N
// are channels, id N+i is the cluster created by merge i. Size counts the
// channels under the new node.
type Merge struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// Tree is an immutable dendrogram over N channels with N−1 merges.
type Tree struct {
	channels []series.Channel
	merges   []Merge
	method   Method
}

// NewTree assembles a Tree from explicit merges, checking that they form a
// full binary tree over the channels. It lets callers rebuild archived or
// externally computed dendrograms.
func NewTree(channels []series.Channel, merges []Merge, method Method) (*Tree, error) {
	n := len(channels)
	if n == 0 {
		return nil, fmt.Errorf("NewTree: %w", ErrNilInput)
	}
	if len(merges) != n-1 {
		return nil, fmt.Errorf("NewTree: %d merges for %d channels: %w", len(merges), n, ErrMalformedTree)
	}
	used := make([]bool, 2*n-1)
	size := make([]int, 2*n-1)
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	for i, m := range merges {
		id := n + i
		for _, c := range [2]int{m.Left, m.Right} {
			if c < 0 || c >= id || used[c] {
				return nil, fmt.Errorf("NewTree: merge %d child %d: %w", i, c, ErrMalformedTree)
			}
			used[c] = true
		}
		if m.Left == m.Right || m.Size != size[m.Left]+size[m.Right] {
			return nil, fmt.Errorf("NewTree: merge %d: %w", i, ErrMalformedTree)
		}
		size[id] = m.Size
	}

	return &Tree{
		channels: append([]series.Channel(nil), channels...),
		merges:   append([]Merge(nil), merges...),
		method:   method,
	}, nil
}

// Len returns the number of leaves.
func (t *Tree) Len() int { return len(t.channels) }

// Channels returns the leaf labels in input order.
func (t *Tree) Channels() []series.Channel { return append([]series.Channel(nil), t.channels...) }

// Merges returns a copy of the merge list in agglomeration order.
func (t *Tree) Merges() []Merge { return append([]Merge(nil), t.merges...) }

// Method reports the update rule the tree was built with.
func (t *Tree) Method() Method { return t.method }

// Monotonic reports whether merge distances never decrease. Centroid and
// Median trees may contain inversions.
func (t *Tree) Monotonic() bool {
	for i := 1; i < len(t.merges); i++ {
		if t.merges[i].Distance < t.merges[i-1].Distance {
			return false
		}
	}

	return true
}

// Leaves returns channel indices in dendrogram order: a left-to-right
// traversal from the root visiting Left before Right.
func (t *Tree) Leaves() []int {
	n := len(t.channels)
	out := make([]int, 0, n)
	if len(t.merges) == 0 {
		return append(out, 0)
	}
	stack := []int{2*n - 2}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id < n {
			out = append(out, id)
			continue
		}
		m := t.merges[id-n]
		stack = append(stack, m.Right, m.Left)
	}

	return out
}

// Members returns the channel indices under node id in ascending order.
func (t *Tree) Members(id int) []int {
	n := len(t.channels)
	if id < 0 || id > 2*n-2 {
		return nil
	}
	mark := make([]bool, n)
	stack := []int{id}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x < n {
			mark[x] = true
			continue
		}
		m := t.merges[x-n]
		stack = append(stack, m.Left, m.Right)
	}
	out := make([]int, 0, n)
	for i, ok := range mark {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// Cophenetic returns the matrix of cophenetic distances: for each channel
// pair, the distance of the merge that first joins them.
func (t *Tree) Cophenetic() (*dissim.Matrix, error) {
	n := len(t.channels)
	cond := make([]float64, n*(n-1)/2)
	at := func(i, j int) int {
		if i > j {
			i, j = j, i
		}
		return n*i - i*(i+1)/2 + (j - i - 1)
	}
	for i, m := range t.merges {
		left, right := t.Members(m.Left), t.Members(m.Right)
		for _, a := range left {
			for _, b := range right {
				cond[at(a, b)] = t.merges[i].Distance
			}
		}
	}

	return dissim.FromCondensed(t.channels, cond)
}
