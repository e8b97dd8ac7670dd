// SPDX-License-Identifier: MIT

// Package dfs implements depth-first algorithms on a bitmatrix.Graph read
// as a directed graph (row → column): topological sort and cycle finding.
//
// Both walks use three-color marking. A diagonal bit is a self-loop and
// counts as a cycle of length one.
//
// Complexity (N = Graph.Size()):
//
//   - Time:   O(N²), one row scan per node
//   - Memory: O(N)   (recursion stack and state slice)
package dfs
