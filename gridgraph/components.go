// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/bitgraph/bfs"
	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// ConnectedComponents finds all contiguous regions ("islands") of land
// cells by walking the grid itself, so it never allocates the W·H×W·H
// matrix that ToGraph needs. Each component lists its node indices in BFS
// order; components are ordered by their first cell in row-major order.
// The result matches Components(gg.ToGraph(), IsLand) on grids small enough
// to convert.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.Index(x, y)
			if seen[i0] || !gg.IsLand(x, y) {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					if vi := gg.Index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Components returns the connected components of a symmetric graph
// restricted to nodes accepted by keep (nil keeps all): excluded nodes
// neither start a component nor join one.
func Components(g *bitmatrix.Graph, keep func(node int) bool) ([][]int, error) {
	kept := func(node int) bool { return keep == nil || keep(node) }
	seen := make([]bool, g.Size())
	var comps [][]int
	for v := range seen {
		if seen[v] || !kept(v) {
			continue
		}
		res, err := bfs.BFS(g, v, bfs.WithFilterNeighbor(func(_, n int) bool { return kept(n) }))
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
