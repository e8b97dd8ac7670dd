// SPDX-License-Identifier: MIT

// Package codec moves bitmatrix graphs in and out of byte streams.
//
// Formats:
//
//	csv      one row per line, cells 0/1 (any integer, non-zero = 1)
//	bin      the raw packed payload; size is inferred from its length
//	yaml     Document with "0101" row strings
//	json     Document with "0101" row strings
//	msgpack  Document with the packed payload
//
// Any format may be wrapped in zstd or lz4 compression. Files are recognized
// by extension: "graph.csv.zst", "graph.bin.lz4", "graph.yaml".
//
// The codecs are format converters only: every structural rule (squareness,
// size inference, symmetry and self-linking policy) lives in bitmatrix.
package codec
