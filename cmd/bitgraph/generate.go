// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitgraph/builder"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		prob     float64
		seed     int64
		directed bool
	)

	cmd := &cobra.Command{
		Use:   "generate KIND N OUT",
		Short: "Write a generated graph (complete|cycle|path|star|wheel|random)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("size %q: %w", args[1], err)
			}

			var cons builder.Constructor
			switch args[0] {
			case "complete":
				cons = builder.Complete(n)
			case "cycle":
				cons = builder.Cycle(n)
			case "path":
				cons = builder.Path(n)
			case "star":
				cons = builder.Star(n)
			case "wheel":
				cons = builder.Wheel(n)
			case "random":
				cons = builder.RandomSparse(n, prob)
			default:
				return fmt.Errorf("unknown kind %q", args[0])
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			g, err := builder.BuildGraph(n, a.cfg.GraphOptions(),
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDirected(directed)},
				cons,
			)
			if err != nil {
				return err
			}

			return a.saveGraph(args[2], g)
		},
	}
	cmd.Flags().Float64Var(&prob, "p", 0.1, "edge probability for random graphs")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for random graphs (default: time based)")
	cmd.Flags().BoolVar(&directed, "directed", false, "write edges in one direction only")

	return cmd
}
