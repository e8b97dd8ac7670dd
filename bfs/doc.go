// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a bitmatrix.Graph,
// returning unweighted hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Follow edges in their stored direction: row → column.
//   - Return a Result containing:
//   - Order: visit sequence
//   - Depth: per-node distance from the start, -1 when unreached
//   - Parent: per-node predecessor in the BFS tree, -1 for the root and
//     unreached nodes
//   - Supports hooks at visit time (WithOnVisit) and neighbor filtering
//     (WithFilterNeighbor).
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Graph.Neighbors yields columns in ascending order, so the visit
//	sequence is fully reproducible.
//
// Complexity (N = Graph.Size())
//
//   - Time:   O(N²), one row scan per visited node
//   - Memory: O(N)
package bfs
