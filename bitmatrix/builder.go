// SPDX-License-Identifier: MIT

// Package bitmatrix - construction adapters.
//
// Purpose:
//   - Convert nested rows, raw packed bytes and tokenized text rows into a
//     size plus packed payload, then hand both to New/NewGraph.
//   - Apply invariants once, to the fully populated payload.
//
// Adapters own no state. Reading files or splitting delimited text is the
// caller's job (see package codec).

package bitmatrix

import (
	"fmt"
	"strconv"
	"strings"
)

// packRows validates that rows is square and packs it. cell reports the bit
// at (i, j).
func packRows(n int, rowLen func(i int) int, cell func(i, j int) (bool, error)) ([]byte, error) {
	if n == 0 {
		return nil, ErrInvalidSize
	}
	if n > MaxSize {
		return nil, ErrInvalidSize
	}
	buf := make([]byte, byteLen(n))
	for i := 0; i < n; i++ {
		if l := rowLen(i); l != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, l, n, ErrDimensionMismatch)
		}
		for j := 0; j < n; j++ {
			v, err := cell(i, j)
			if err != nil {
				return nil, err
			}
			if v {
				writeBit(buf, bitIndex(i, j, n), true)
			}
		}
	}

	return buf, nil
}

func packBools(rows [][]bool) ([]byte, error) {
	return packRows(len(rows),
		func(i int) int { return len(rows[i]) },
		func(i, j int) (bool, error) { return rows[i][j], nil })
}

func packInts(rows [][]int) ([]byte, error) {
	return packRows(len(rows),
		func(i int) int { return len(rows[i]) },
		func(i, j int) (bool, error) { return rows[i][j] != 0, nil })
}

func packText(rows [][]string) ([]byte, error) {
	return packRows(len(rows),
		func(i int) int { return len(rows[i]) },
		func(i, j int) (bool, error) {
			v, err := strconv.Atoi(strings.TrimSpace(rows[i][j]))
			if err != nil {
				return false, fmt.Errorf("cell (%d,%d) %q: %w", i, j, rows[i][j], ErrInvalidCell)
			}
			return v != 0, nil
		})
}

// withPayload appends WithBuffer(buf) last so the adapter payload wins over
// any caller-supplied buffer, without touching the caller's slice.
func withPayload(opts []Option, buf []byte) Options {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)

	return gatherOptions(append(all, WithBuffer(buf))...)
}

// build turns a packed payload into a Matrix.
func build(tag string, size int, buf []byte, err error, opts []Option) (*Matrix, error) {
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	m, err := newMatrix(size, withPayload(opts, buf))
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return m, nil
}

func buildGraph(tag string, size int, buf []byte, err error, opts []Option) (*Graph, error) {
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	g, err := newGraph(size, withPayload(opts, buf))
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return g, nil
}

// FromRows builds a Matrix from a square [][]bool.
// Errors: ErrInvalidSize (no rows), ErrDimensionMismatch (ragged/non-square).
func FromRows(rows [][]bool, opts ...Option) (*Matrix, error) {
	buf, err := packBools(rows)

	return build("FromRows", len(rows), buf, err, opts)
}

// GraphFromRows is FromRows for graphs.
func GraphFromRows(rows [][]bool, opts ...Option) (*Graph, error) {
	buf, err := packBools(rows)

	return buildGraph("GraphFromRows", len(rows), buf, err, opts)
}

// FromInts builds a Matrix from a square [][]int; non-zero cells are set.
func FromInts(rows [][]int, opts ...Option) (*Matrix, error) {
	buf, err := packInts(rows)

	return build("FromInts", len(rows), buf, err, opts)
}

// GraphFromInts is FromInts for graphs.
func GraphFromInts(rows [][]int, opts ...Option) (*Graph, error) {
	buf, err := packInts(rows)

	return buildGraph("GraphFromInts", len(rows), buf, err, opts)
}

// FromTextRows builds a Matrix from already tokenized text rows; each field
// must parse as an integer (surrounding spaces allowed).
// Errors: ErrInvalidCell plus the FromRows errors.
func FromTextRows(rows [][]string, opts ...Option) (*Matrix, error) {
	buf, err := packText(rows)

	return build("FromTextRows", len(rows), buf, err, opts)
}

// GraphFromTextRows is FromTextRows for graphs.
func GraphFromTextRows(rows [][]string, opts ...Option) (*Graph, error) {
	buf, err := packText(rows)

	return buildGraph("GraphFromTextRows", len(rows), buf, err, opts)
}

// ByteLen returns ceil(n²/8), the packed payload length of an n×n matrix.
func ByteLen(n int) int { return byteLen(n) }

// InferSize returns the largest N whose packed payload, ceil(N²/8) bytes,
// fits in l bytes, capped at MaxSize (0 when none).
func InferSize(l int) int { return inferSize(l) }

// FromBytes adopts a raw packed payload, inferring N from its length and
// ignoring bytes past ceil(N²/8). The payload is copied.
// Errors: ErrInvalidSize when not even a 1×1 matrix fits.
func FromBytes(buf []byte, opts ...Option) (*Matrix, error) {
	n := inferSize(len(buf))
	if n == 0 {
		return nil, fmt.Errorf("FromBytes(len=%d): %w", len(buf), ErrInvalidSize)
	}

	return build("FromBytes", n, buf[:byteLen(n)], nil, opts)
}

// GraphFromBytes is FromBytes for graphs.
func GraphFromBytes(buf []byte, opts ...Option) (*Graph, error) {
	n := inferSize(len(buf))
	if n == 0 {
		return nil, fmt.Errorf("GraphFromBytes(len=%d): %w", len(buf), ErrInvalidSize)
	}

	return buildGraph("GraphFromBytes", n, buf[:byteLen(n)], nil, opts)
}
