// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitgraph/bfs"
	"github.com/katalvlaran/bitgraph/dfs"
)

func newReachCmd(a *app) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "reach FILE FROM [TO]",
		Short: "List nodes reachable from FROM, or the shortest hop path to TO",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("node %q: %w", args[1], err)
			}
			res, err := bfs.BFS(g, from,
				bfs.WithContext(contextOf(cmd)),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}

			if len(args) == 3 {
				to, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("node %q: %w", args[2], err)
				}
				path, err := res.PathTo(to)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, joinNodes(g, path))

				return err
			}

			for _, n := range res.Order {
				if _, err = fmt.Fprintf(a.out, "%s\t%d\n", nodeLabel(g, n), res.Depth[n]); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many hops (0 = unlimited)")

	return cmd
}

func newToposortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toposort FILE",
		Short: "Print a topological order, or the first cycle found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			ctx := dfs.WithCancelContext(contextOf(cmd))
			order, err := dfs.TopologicalSort(g, ctx)
			if err == nil {
				_, err = fmt.Fprintln(a.out, joinNodes(g, order))
				return err
			}
			cycle, cerr := dfs.FindCycle(g, ctx)
			if cerr != nil || cycle == nil {
				return err
			}

			return fmt.Errorf("%w: %s", err, joinNodes(g, cycle))
		},
	}
}
