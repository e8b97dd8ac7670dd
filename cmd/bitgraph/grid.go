// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"github.com/katalvlaran/bitgraph/gridgraph"
)

func newGridCmd(a *app) *cobra.Command {
	var (
		threshold int
		diagonal  bool
	)

	cmd := &cobra.Command{
		Use:   "grid CSV [OUT]",
		Short: "Build a graph from an integer grid and list its land components",
		Long: "Reads a CSV grid of integers. Cells at or above --threshold are land; " +
			"adjacent land cells are linked. Prints one line per component and, " +
			"when OUT is given, writes the grid graph there. The graph has one node " +
			"per cell and (W*H)^2 bits, so OUT is limited to grids of at most " +
			strconv.Itoa(bitmatrix.MaxSize) + " cells; listing components has no such limit.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			values, err := readGrid(args[0])
			if err != nil {
				return err
			}
			opts := gridgraph.GridOptions{LandThreshold: threshold, Conn: gridgraph.Conn4}
			if diagonal {
				opts.Conn = gridgraph.Conn8
			}
			gg, err := gridgraph.NewGridGraph(values, opts)
			if err != nil {
				return err
			}
			comps := gg.ConnectedComponents()
			a.log.Debug("grid components",
				zap.Int("width", gg.Width),
				zap.Int("height", gg.Height),
				zap.Int("components", len(comps)),
			)
			for i, comp := range comps {
				cells := make([]string, len(comp))
				for j, idx := range comp {
					x, y := gg.Coordinate(idx)
					cells[j] = fmt.Sprintf("(%d,%d)", x, y)
				}
				fmt.Fprintf(a.out, "%d: %s\n", i, strings.Join(cells, " "))
			}

			if len(args) == 2 {
				g, err := gg.ToGraph()
				if err != nil {
					return err
				}
				return a.saveGraph(args[1], g)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", 1, "minimum cell value counted as land")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "link diagonal neighbors too")

	return cmd
}

func readGrid(path string) ([][]int, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is chosen by the caller
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	grid := make([][]int, len(records))
	for y, rec := range records {
		grid[y] = make([]int, len(rec))
		for x, cell := range rec {
			if grid[y][x], err = strconv.Atoi(strings.TrimSpace(cell)); err != nil {
				return nil, fmt.Errorf("%s: cell (%d,%d): %w", path, x, y, err)
			}
		}
	}

	return grid, nil
}
