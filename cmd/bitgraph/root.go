// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"github.com/katalvlaran/bitgraph/codec"
	"github.com/katalvlaran/bitgraph/internal/config"
	"github.com/katalvlaran/bitgraph/internal/logger"
)

var version = "0.1.0"

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath    string
	logLevel      string
	dbPath        string
	compression   string
	format        string
	colorMode     string
	metricsFile   string
	forceSymmetry bool
	noSelfLinking bool
	axis          string

	cfg config.Config
	log *zap.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: logger.Nop()}

	root := &cobra.Command{
		Use:           "bitgraph",
		Short:         "Inspect, convert and store bit-packed adjacency matrices",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			defer func() { _ = a.log.Sync() }()
			if a.metricsFile == "" {
				return nil
			}

			return prometheus.WriteToTextfile(a.metricsFile, prometheus.DefaultGatherer)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML or TOML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.StringVar(&a.dbPath, "db", "", "SQLite database for the store commands")
	flags.StringVar(&a.compression, "compression", "", "output compression when the file name has none (none|zstd|lz4)")
	flags.StringVar(&a.format, "format", "", "format for file names whose extension implies none")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVar(&a.forceSymmetry, "force-symmetry", false, "repair loaded graphs to be symmetric")
	flags.BoolVar(&a.noSelfLinking, "no-self-linking", false, "clear the diagonal of loaded graphs")
	flags.StringVar(&a.axis, "axis", "", "symmetry repair direction (upper|lower)")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newRenderCmd(a),
		newInfoCmd(a),
		newNeighborsCmd(a),
		newAdjacencyCmd(a),
		newReachCmd(a),
		newToposortCmd(a),
		newGridCmd(a),
		newGenerateCmd(a),
		newSymmetrizeCmd(a),
		newConvertCmd(a),
		newStoreCmd(a),
	)

	return root
}

// setup merges config file, then flags, and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if flags.Changed("db") {
		a.cfg.Store.Path = a.dbPath
	}
	if flags.Changed("compression") {
		a.cfg.Codec.Compression = a.compression
	}
	if flags.Changed("format") {
		a.cfg.Codec.Format = a.format
	}
	if flags.Changed("force-symmetry") {
		a.cfg.Graph.ForceSymmetry = a.forceSymmetry
	}
	if flags.Changed("no-self-linking") {
		a.cfg.Graph.SelfLinking = !a.noSelfLinking
	}
	if flags.Changed("axis") {
		a.cfg.Graph.Axis = a.axis
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	switch a.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		f, ok := a.out.(*os.File)
		color.NoColor = !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	default:
		return fmt.Errorf("unknown color mode %q", a.colorMode)
	}

	l, err := logger.New(a.cfg.Log)
	if err != nil {
		return err
	}
	a.log = l

	return nil
}

// resolve picks format and compression for path. The extension wins;
// the configured format is the fallback for names that imply none.
func (a *app) resolve(path string) (codec.Format, codec.Compression, error) {
	f, comp, err := codec.DetectFormat(path)
	if err != nil && errors.Is(err, codec.ErrUnsupportedFormat) && a.cfg.Codec.Format != "" {
		f, err = codec.ParseFormat(a.cfg.Codec.Format)
	}

	return f, comp, err
}

// loadGraph decodes path with the configured policies applied.
func (a *app) loadGraph(path string) (*bitmatrix.Graph, error) {
	f, comp, err := a.resolve(path)
	if err != nil {
		return nil, err
	}
	g, err := codec.ReadFileAs(path, f, comp, a.cfg.GraphOptions()...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded",
		zap.String("path", path),
		zap.String("format", string(f)),
		zap.Int("size", g.Size()),
		zap.Int("edges", g.Count()),
	)

	return g, nil
}

// saveGraph encodes g into path. The configured compression applies when
// the name carries none.
func (a *app) saveGraph(path string, g *bitmatrix.Graph) error {
	f, comp, err := a.resolve(path)
	if err != nil {
		return err
	}
	if comp == codec.CompressionNone {
		if comp, err = codec.ParseCompression(a.cfg.Codec.Compression); err != nil {
			return err
		}
	}
	if err = codec.WriteFileAs(path, g, f, comp); err != nil {
		return err
	}
	a.log.Info("graph written",
		zap.String("path", path),
		zap.String("format", string(f)),
		zap.String("compression", string(comp)),
	)

	return nil
}
