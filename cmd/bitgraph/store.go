// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"github.com/katalvlaran/bitgraph/store"
)

func newStoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage graphs kept in the SQLite database",
	}
	cmd.AddCommand(
		newStorePutCmd(a),
		newStoreGetCmd(a),
		newStoreListCmd(a),
		newStoreRmCmd(a),
	)

	return cmd
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.cfg.Store.Path, store.WithLogger(a.log))
}

// putArg splits "name=path"; a bare path is stored under its base name
// without extensions.
func putArg(arg string) (name, path string) {
	if i := strings.IndexByte(arg, '='); i > 0 {
		return arg[:i], arg[i+1:]
	}
	base := filepath.Base(arg)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}

	return base, arg
}

func newStorePutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put [NAME=]FILE...",
		Short: "Decode files and save them under a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs := make([]*bitmatrix.Graph, len(args))
			names := make([]string, len(args))

			var eg errgroup.Group
			eg.SetLimit(runtime.GOMAXPROCS(0))
			for i, arg := range args {
				name, path := putArg(arg)
				names[i] = name
				eg.Go(func() error {
					g, err := a.loadGraph(path)
					if err != nil {
						return err
					}
					graphs[i] = g

					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := contextOf(cmd)
			for i, g := range graphs {
				if err = s.Save(ctx, names[i], g); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "saved %s (%dx%d, %d edges)\n", names[i], g.Size(), g.Size(), g.Count())
			}

			return nil
		},
	}
}

func newStoreGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME [OUT]",
		Short: "Load a stored graph and render it or write it to OUT",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			g, err := s.Load(contextOf(cmd), args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return a.saveGraph(args[1], g)
			}

			return renderGraph(a.out, g)
		},
	}
}

func newStoreListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			entries, err := s.List(contextOf(cmd))
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSIZE\tEDGES\tUPDATED\tID")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", e.Name, e.Size, e.Edges, e.UpdatedAt.Format(time.RFC3339), e.ID)
			}

			return tw.Flush()
		},
	}
}

func newStoreRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME...",
		Short: "Delete stored graphs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := contextOf(cmd)
			for _, name := range args {
				if err = s.Delete(ctx, name); err != nil {
					return err
				}
				a.log.Info("graph deleted", zap.String("name", name))
			}

			return nil
		},
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
