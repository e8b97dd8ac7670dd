// SPDX-License-Identifier: MIT
// Package bitmatrix_test contains test helpers.

package bitmatrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// N is the default matrix size used by table-driven tests.
const N = 7

// MustMatrix allocates an n×n matrix or fails the test.
func MustMatrix(t *testing.T, n int, opts ...bitmatrix.Option) *bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.New(n, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return m
}

// MustGraph allocates an n-node graph or fails the test.
func MustGraph(t *testing.T, n int, opts ...bitmatrix.Option) *bitmatrix.Graph {
	t.Helper()
	g, err := bitmatrix.NewGraph(n, opts...)
	if err != nil {
		t.Fatalf("NewGraph(%d): %v", n, err)
	}

	return g
}

// RandomRows returns a deterministic n×n pseudo-random bool grid.
func RandomRows(seed int64, n int) [][]bool {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]bool, n)
	for i := range rows {
		rows[i] = make([]bool, n)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(2) == 1
		}
	}

	return rows
}

// Snapshot reads every cell of m into a grid.
func Snapshot(t *testing.T, m *bitmatrix.Matrix) [][]bool {
	t.Helper()
	out := make([][]bool, m.Size())
	for i := range out {
		row, err := m.ReadRow(i)
		if err != nil {
			t.Fatalf("ReadRow(%d): %v", i, err)
		}
		out[i] = row
	}

	return out
}
