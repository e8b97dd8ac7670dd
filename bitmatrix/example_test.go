// SPDX-License-Identifier: MIT

package bitmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// ExampleGraphFromInts builds a small directed graph and lists neighbors.
func ExampleGraphFromInts() {
	g, err := bitmatrix.GraphFromInts([][]int{
		{0, 1, 0, 1},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	n, _ := g.Neighbors(0)
	fmt.Println("neighbors(0):", n)
	fmt.Println("lists:", g.AdjacencyLists())
	fmt.Print(g)

	// Output:
	// neighbors(0): [1 3]
	// lists: [[1 3] [0] [] [0]]
	// |0101|
	// |1000|
	// |0000|
	// |1000|
}

// ExampleNew_forceSymmetry shows the construction-time symmetry checkpoint.
func ExampleNew_forceSymmetry() {
	m, _ := bitmatrix.New(3,
		bitmatrix.WithBuffer([]byte{0b00000110}), // (0,1) and (0,2)
		bitmatrix.WithForceSymmetry(true),
	)
	fmt.Println("symmetric:", m.IsSymmetric())
	fmt.Print(m)

	// Output:
	// symmetric: true
	// |011|
	// |100|
	// |100|
}

// ExampleMatrix_Select demonstrates the tagged index selectors.
func ExampleMatrix_Select() {
	m, _ := bitmatrix.FromInts([][]int{{1, 0}, {1, 1}})

	cell, _ := m.Select(bitmatrix.Cell(0, 1))
	row, _ := m.Select(bitmatrix.Row(1))
	col, _ := m.Select(bitmatrix.Column(0))
	_, err := m.Select(bitmatrix.Index{})

	fmt.Println(cell, row, col)
	fmt.Println(err)

	// Output:
	// [false] [true true] [true true]
	// Matrix.Select(Index(invalid)): bitmatrix: invalid index
}
