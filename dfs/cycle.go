// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// FindCycle returns one directed cycle of g as the node sequence along it,
// without repeating the first node, or nil when g is acyclic.
// A self-loop on v is reported as []int{v}.
func FindCycle(g *bitmatrix.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, opts)
	err := w.run()
	if errors.Is(err, ErrCycleDetected) {
		return w.cycle, nil
	}

	return nil, err
}
