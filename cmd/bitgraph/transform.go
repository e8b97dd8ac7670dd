// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bitgraph/internal/config"
)

func newSymmetrizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symmetrize IN OUT",
		Short: "Mirror one triangle onto the other and write the result",
		Long: "Copies the triangle chosen by --axis onto the other one " +
			"(upper overwrites lower by default) and writes OUT.",
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			axis, err := config.ParseAxis(a.cfg.Graph.Axis)
			if err != nil {
				return err
			}
			before := g.Count()
			g.MakeSymmetric(axis)
			a.log.Info("symmetrized",
				zap.Stringer("axis", axis),
				zap.Int("edges_before", before),
				zap.Int("edges_after", g.Count()),
			)

			return a.saveGraph(args[1], g)
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Re-encode a graph into the format implied by OUT",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			return a.saveGraph(args[1], g)
		},
	}
}
