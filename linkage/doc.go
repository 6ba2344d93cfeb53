// SPDX-License-Identifier: MIT

// Package linkage builds agglomerative hierarchical clustering trees over a
// channel dissimilarity matrix and flattens them into a fixed number of
// clusters.
//
// What & Why:
//
//	Build repeatedly merges the two closest clusters until one remains,
//	recomputing distances to the merged cluster with the Lance–Williams
//	recurrence of the chosen Method. The result is a Tree of exactly N−1
//	merges in scipy node numbering: ids below N are channels, id N+i is
//	the cluster formed by merge i.
//
//	Cut applies the "maxclust" policy: the k−1 highest merges are removed
//	and the k remaining connected components become clusters.
//
// Determinism:
//
//	Among equal candidate distances the pair with the lowest combined slot
//	index wins (then the lowest first slot). A slot's index is always the
//	lowest channel index it contains. Cluster ids in an Assignment follow
//	first appearance in channel order, so channel 0 is always cluster 1.
//
// Complexity:
//
//	Build: O(N³) time, O(N²) memory. SingleMST: O(N² log N).
//	Cut: O(N log N).
package linkage
