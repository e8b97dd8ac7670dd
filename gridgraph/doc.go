// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of integer cell values as a graph.
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a symmetric *bitmatrix.Graph, one node per cell in
//     row-major order, edges only between adjacent land cells
//   - Connected components ("islands") of land cells
//
// Cells with value < LandThreshold are water; the rest are land.
package gridgraph
