// SPDX-License-Identifier: MIT

// Package bitmatrix - Graph: a Matrix with a self-linking policy.
//
// Purpose:
//   - Interpret row x as the out-links of node x (bit (x,y) = edge x→y).
//   - Enforce the self-linking policy (diagonal forced to zero when off) at
//     construction, on SetSelfLinking(false) and on Enforce.
//   - Extract neighbor and adjacency lists into freshly allocated slices.
//
// Edge editing by name (link/unlink/is-linked) is deliberately absent: its
// directedness and idempotence semantics are not designed yet. Use Write.

package bitmatrix

import (
	"fmt"
	"sort"
)

const (
	ctxNeighbors = "Neighbors"
	ctxDegree    = "Degree"
	ctxSetName   = "SetName"
)

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// Graph is a Matrix whose rows are adjacency rows.
type Graph struct {
	*Matrix
	selfLinking bool
	names       map[int]string
}

// NewGraph creates an N-node graph. Besides the Matrix options it honors
// WithSelfLinking (default true) and WithNames.
// Errors: ErrInvalidSize; ErrIndexOutOfRange for a name keyed outside [0,N).
func NewGraph(size int, opts ...Option) (*Graph, error) {
	return newGraph(size, gatherOptions(opts...))
}

func newGraph(size int, o Options) (*Graph, error) {
	m, err := newMatrix(size, o)
	if err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}
	for node := range o.names {
		if node < 0 || node >= size {
			return nil, fmt.Errorf("NewGraph: name for node %d: %w", node, ErrIndexOutOfRange)
		}
	}
	g := &Graph{Matrix: m, selfLinking: o.selfLinking, names: o.names}
	g.Enforce()

	return g, nil
}

// SelfLinking reports whether diagonal bits are allowed.
func (g *Graph) SelfLinking() bool { return g.selfLinking }

// SetSelfLinking updates the policy. Disabling it clears the diagonal at once;
// re-enabling it does not bring cleared bits back.
func (g *Graph) SetSelfLinking(enabled bool) {
	g.selfLinking = enabled
	g.Enforce()
}

// Enforce runs the Matrix checkpoint and then the diagonal policy.
func (g *Graph) Enforce() {
	g.Matrix.Enforce()
	if !g.selfLinking {
		g.SetDiagonal(false)
	}
}

// Neighbors returns, in ascending order, every column set in node's row.
// The slice is owned by the caller.
// Errors: ErrIndexOutOfRange.
func (g *Graph) Neighbors(node int) ([]int, error) {
	if err := g.checkCoord(node); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Graph.%s(%d)", ctxNeighbors, node), err)
	}

	return g.neighbors(node), nil
}

func (g *Graph) neighbors(node int) []int {
	out := make([]int, 0, defaultReserve)
	for j := 0; j < g.size; j++ {
		if g.at(node, j) {
			out = append(out, j)
		}
	}

	return out
}

// AdjacencyLists returns lists[x] == Neighbors(x) for every node; each list
// is a separate allocation.
func (g *Graph) AdjacencyLists() [][]int {
	lists := make([][]int, g.size)
	for x := range lists {
		lists[x] = g.neighbors(x)
	}

	return lists
}

// Degree returns the out-degree of node.
func (g *Graph) Degree(node int) (int, error) {
	if err := g.checkCoord(node); err != nil {
		return 0, matrixErrorf(fmt.Sprintf("Graph.%s(%d)", ctxDegree, node), err)
	}
	d := 0
	for j := 0; j < g.size; j++ {
		if g.at(node, j) {
			d++
		}
	}

	return d, nil
}

// Name returns the label of node, if any.
func (g *Graph) Name(node int) (string, bool) {
	name, ok := g.names[node]

	return name, ok
}

// SetName labels node. An empty label removes it. Labels never affect
// structure.
func (g *Graph) SetName(node int, label string) error {
	if err := g.checkCoord(node); err != nil {
		return matrixErrorf(fmt.Sprintf("Graph.%s(%d)", ctxSetName, node), err)
	}
	if label == "" {
		delete(g.names, node)
		return nil
	}
	if g.names == nil {
		g.names = make(map[int]string)
	}
	g.names[node] = label

	return nil
}

// Names returns a copy of the label map (nil when no labels are set).
func (g *Graph) Names() map[int]string {
	if len(g.names) == 0 {
		return nil
	}
	out := make(map[int]string, len(g.names))
	for k, v := range g.names {
		out[k] = v
	}

	return out
}

// LabeledNodes returns labeled node indices in ascending order.
func (g *Graph) LabeledNodes() []int {
	nodes := make([]int, 0, len(g.names))
	for k := range g.names {
		nodes = append(nodes, k)
	}
	sort.Ints(nodes)

	return nodes
}

// Clone returns a deep copy: buffer, policies and labels.
func (g *Graph) Clone() *Graph {
	return &Graph{
		Matrix:      g.Matrix.Clone(),
		selfLinking: g.selfLinking,
		names:       g.Names(),
	}
}
