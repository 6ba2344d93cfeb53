// SPDX-License-Identifier: MIT

package linkage

// Agglomerate exposes the generic merge loop so tests can compare it with
// the Kruskal path for single linkage.
var Agglomerate = agglomerate
