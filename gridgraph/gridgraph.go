// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = append([]int(nil), row...)
	}

	// ascending node-index order, matching Graph.Neighbors
	offsets := [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// Index maps (x,y) to its node: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a node back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ToGraph builds a symmetric graph with one node per cell. Adjacent land
// cells are linked both ways; water cells stay isolated. Land nodes are
// labeled "x,y". The graph never links a cell to itself.
// The matrix holds (W·H)² bits, so grids above bitmatrix.MaxSize cells are
// refused with bitmatrix.ErrInvalidSize.
func (gg *GridGraph) ToGraph() (*bitmatrix.Graph, error) {
	n := gg.Width * gg.Height
	names := make(map[int]string)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) {
				names[gg.Index(x, y)] = fmt.Sprintf("%d,%d", x, y)
			}
		}
	}

	g, err := bitmatrix.NewGraph(n,
		bitmatrix.WithSelfLinking(false),
		bitmatrix.WithNames(names),
	)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: %dx%d grid: %w", gg.Width, gg.Height, err)
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			u := gg.Index(x, y)
			for _, d := range gg.offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				if err = g.Write(u, gg.Index(nx, ny), true); err != nil {
					return nil, err
				}
			}
		}
	}
	g.SetForceSymmetry(true)

	return g, nil
}
