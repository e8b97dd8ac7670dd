// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Print the matrix as rows of 0/1",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			return renderGraph(a.out, g)
		},
	}
}

// renderGraph writes one "|0101|" line per row, highlighting set bits and
// appending the node label when one exists.
func renderGraph(w io.Writer, g *bitmatrix.Graph) error {
	one := color.New(color.FgGreen, color.Bold)
	zero := color.New(color.Faint)
	diag := color.New(color.FgYellow, color.Bold)

	for r := 0; r < g.Size(); r++ {
		row, err := g.ReadRow(r)
		if err != nil {
			return err
		}
		if _, err = io.WriteString(w, "|"); err != nil {
			return err
		}
		for c, v := range row {
			switch {
			case v && c == r:
				_, err = diag.Fprint(w, "1")
			case v:
				_, err = one.Fprint(w, "1")
			default:
				_, err = zero.Fprint(w, "0")
			}
			if err != nil {
				return err
			}
		}
		label := ""
		if name, ok := g.Name(r); ok {
			label = " " + name
		}
		if _, err = fmt.Fprintf(w, "|%s\n", label); err != nil {
			return err
		}
	}

	return nil
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Summarize size, edge count and policies",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			loops := 0
			for i := 0; i < g.Size(); i++ {
				if v, _ := g.Read(i, i); v {
					loops++
				}
			}
			key := color.New(color.FgCyan).SprintFunc()
			fmt.Fprintf(a.out, "%s %d\n", key("size:"), g.Size())
			fmt.Fprintf(a.out, "%s %d\n", key("bytes:"), bitmatrix.ByteLen(g.Size()))
			fmt.Fprintf(a.out, "%s %d\n", key("edges:"), g.Count())
			fmt.Fprintf(a.out, "%s %d\n", key("self-loops:"), loops)
			fmt.Fprintf(a.out, "%s %t\n", key("symmetric:"), g.IsSymmetric())
			fmt.Fprintf(a.out, "%s %t\n", key("force-symmetry:"), g.ForceSymmetry())
			fmt.Fprintf(a.out, "%s %t\n", key("self-linking:"), g.SelfLinking())
			fmt.Fprintf(a.out, "%s %d\n", key("labeled:"), len(g.LabeledNodes()))

			return nil
		},
	}
}

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors FILE NODE",
		Short: "List the successors of NODE",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			node, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("node %q: %w", args[1], err)
			}
			ns, err := g.Neighbors(node)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, joinNodes(g, ns))

			return err
		},
	}
}

func newAdjacencyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "adjacency FILE",
		Short: "Print the adjacency list of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			for i, ns := range g.AdjacencyLists() {
				if _, err = fmt.Fprintf(a.out, "%s: %s\n", nodeLabel(g, i), joinNodes(g, ns)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func nodeLabel(g *bitmatrix.Graph, node int) string {
	if name, ok := g.Name(node); ok {
		return fmt.Sprintf("%d(%s)", node, name)
	}

	return strconv.Itoa(node)
}

func joinNodes(g *bitmatrix.Graph, ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = nodeLabel(g, n)
	}

	return strings.Join(parts, " ")
}
