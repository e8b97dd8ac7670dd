// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"github.com/katalvlaran/bitgraph/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	return writeNamed(t, "bitgraph.yaml", body)
}

func writeNamed(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.True(t, cfg.Graph.SelfLinking)
	require.False(t, cfg.Graph.ForceSymmetry)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad(t *testing.T) {
	t.Setenv("BITGRAPH_DB", "/tmp/graphs.db")
	path := writeConfig(t, `
log:
  level: debug
store:
  path: ${BITGRAPH_DB}
codec:
  compression: zstd
graph:
  force_symmetry: true
  self_linking: false
  axis: lower
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Encoding) // default kept
	require.Equal(t, "/tmp/graphs.db", cfg.Store.Path)
	require.Equal(t, "zstd", cfg.Codec.Compression)

	g, err := bitmatrix.GraphFromInts([][]int{{1, 0}, {1, 0}}, cfg.GraphOptions()...)
	require.NoError(t, err)
	require.True(t, g.IsSymmetric())
	require.False(t, g.SelfLinking())
	require.Equal(t, "|01|\n|10|\n", g.String())
}

func TestLoadTOML(t *testing.T) {
	path := writeNamed(t, "bitgraph.toml", `
[log]
level = "warn"

[store]
path = "graphs.db"

[graph]
self_linking = false
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "graphs.db", cfg.Store.Path)
	require.False(t, cfg.Graph.SelfLinking)
	require.Equal(t, "upper", cfg.Graph.Axis) // default kept
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"Compression": "codec:\n  compression: rar\n",
		"Format":      "codec:\n  format: xml\n",
		"Axis":        "graph:\n  axis: diagonal\n",
		"StorePath":   "store:\n  path: \"\"\n",
		"BlankPath":   "store:\n  path: \"  \"\n",
		"LogLevel":    "log:\n  level: loud\n",
		"Encoding":    "log:\n  encoding: xml\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
