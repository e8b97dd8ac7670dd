// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// walker holds the state shared by TopologicalSort and FindCycle.
type walker struct {
	graph *bitmatrix.Graph
	opts  options
	state []int
	stack []int // current gray path
	order []int // post-order
	cycle []int
}

func newWalker(g *bitmatrix.Graph, opts []Option) *walker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.Size()

	return &walker{
		graph: g,
		opts:  o,
		state: make([]int, n),
		stack: make([]int, 0, n),
		order: make([]int, 0, n),
	}
}

// run drives visit from every white node in ascending order.
func (w *walker) run() error {
	for v := range w.state {
		if w.state[v] != White {
			continue
		}
		if err := w.visit(v); err != nil {
			return err
		}
	}

	return nil
}

// visit explores node and records the first back edge as a cycle.
func (w *walker) visit(node int) error {
	select {
	case <-w.opts.ctx.Done():
		return w.opts.ctx.Err()
	default:
	}

	w.state[node] = Gray
	w.stack = append(w.stack, node)

	neighbors, err := w.graph.Neighbors(node)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", node, err)
	}
	for _, nbr := range neighbors {
		switch w.state[nbr] {
		case Gray:
			w.cycle = w.backEdge(nbr)
			return ErrCycleDetected
		case White:
			if err = w.visit(nbr); err != nil {
				return err
			}
		}
	}

	w.stack = w.stack[:len(w.stack)-1]
	w.state[node] = Black
	w.order = append(w.order, node)

	return nil
}

// backEdge returns the stack suffix starting at target.
func (w *walker) backEdge(target int) []int {
	for i := len(w.stack) - 1; i >= 0; i-- {
		if w.stack[i] == target {
			return append([]int(nil), w.stack[i:]...)
		}
	}

	return nil
}

// TopologicalSort orders all nodes so that for every edge u→v, u comes
// before v. Returns ErrCycleDetected if g has a cycle, self-loops included.
func TopologicalSort(g *bitmatrix.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, opts)
	if err := w.run(); err != nil {
		return nil, err
	}
	for i, j := 0, len(w.order)-1; i < j; i, j = i+1, j-1 {
		w.order[i], w.order[j] = w.order[j], w.order[i]
	}

	return w.order, nil
}
