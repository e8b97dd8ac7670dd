// SPDX-License-Identifier: MIT

// Package bitgraph stores dense directed graphs as bit-packed square
// adjacency matrices: one bit per (row, column) pair, N² bits in
// ceil(N²/8) bytes.
//
// Under the hood, everything is organized under these subpackages:
//
//	bitmatrix/  packed Matrix, Graph with self-linking policy, construction adapters
//	codec/      CSV, raw binary, YAML, JSON and MessagePack encodings (+zstd/lz4)
//	store/      named graphs persisted in SQLite
//	bfs/, dfs/  traversal, hop paths, topological sort, cycle finding
//	builder/    generated topologies (complete, cycle, path, star, wheel, random)
//	gridgraph/  2D integer grids as graphs, land components
//	cmd/bitgraph command-line front end
//
// Quick example:
//
//	|0110|    0 → 1, 0 → 2
//	|0001|    1 → 3
//	|0001|    2 → 3
//	|0000|
//
//	go get github.com/katalvlaran/bitgraph
package bitgraph
