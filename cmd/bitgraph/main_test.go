// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitgraph/builder"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--log-level", "error", "--color", "off"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRender(t *testing.T) {
	path := writeFile(t, "g.csv", "0,1\n1,0\n")

	out, err := run(t, "render", path)
	require.NoError(t, err)
	require.Equal(t, "|01|\n|10|\n", out)
}

func TestRender_Policies(t *testing.T) {
	path := writeFile(t, "g.csv", "1,1,0\n0,1,0\n0,0,1\n")

	out, err := run(t, "--no-self-linking", "render", path)
	require.NoError(t, err)
	require.Equal(t, "|010|\n|000|\n|000|\n", out)

	out, err = run(t, "--force-symmetry", "--no-self-linking", "render", path)
	require.NoError(t, err)
	require.Equal(t, "|010|\n|100|\n|000|\n", out)
}

func TestNeighborsAndAdjacency(t *testing.T) {
	path := writeFile(t, "g.csv", "0,1,1\n0,0,1\n0,0,0\n")

	out, err := run(t, "neighbors", path, "0")
	require.NoError(t, err)
	require.Equal(t, "1 2\n", out)

	out, err = run(t, "adjacency", path)
	require.NoError(t, err)
	require.Equal(t, "0: 1 2\n1: 2\n2: \n", out)

	_, err = run(t, "neighbors", path, "3")
	require.Error(t, err)
	_, err = run(t, "neighbors", path, "x")
	require.Error(t, err)
}

func TestReach(t *testing.T) {
	path := writeFile(t, "g.csv", "0,1,0,1\n0,0,1,0\n0,0,0,0\n0,0,1,0\n")

	out, err := run(t, "reach", path, "0")
	require.NoError(t, err)
	require.Equal(t, "0\t0\n1\t1\n3\t1\n2\t2\n", out)

	out, err = run(t, "reach", "--max-depth", "1", path, "0")
	require.NoError(t, err)
	require.Equal(t, "0\t0\n1\t1\n3\t1\n", out)

	out, err = run(t, "reach", path, "0", "2")
	require.NoError(t, err)
	require.Equal(t, "0 1 2\n", out)

	_, err = run(t, "reach", path, "2", "0")
	require.Error(t, err)
}

func TestToposort(t *testing.T) {
	dag := writeFile(t, "dag.csv", "0,0,1\n1,0,0\n0,0,0\n")
	out, err := run(t, "toposort", dag)
	require.NoError(t, err)
	require.Equal(t, "1 0 2\n", out)

	cyclic := writeFile(t, "cyc.csv", "0,1\n1,0\n")
	_, err = run(t, "toposort", cyclic)
	require.ErrorContains(t, err, "cycle detected: 0 1")
}

func TestGrid(t *testing.T) {
	grid := writeFile(t, "grid.csv", "1,1,0\n0,0,0\n0,2,2\n")
	out := filepath.Join(filepath.Dir(grid), "grid.bin")

	stdout, err := run(t, "grid", grid, out)
	require.NoError(t, err)
	require.Equal(t, "0: (0,0) (1,0)\n1: (1,2) (2,2)\n", stdout)

	stdout, err = run(t, "info", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "size: 9\n")
	require.Contains(t, stdout, "edges: 4\n")

	stdout, err = run(t, "grid", "--threshold", "2", grid)
	require.NoError(t, err)
	require.Equal(t, "0: (1,2) (2,2)\n", stdout)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "star.csv")

	_, err := run(t, "generate", "star", "4", out)
	require.NoError(t, err)
	stdout, err := run(t, "render", out)
	require.NoError(t, err)
	require.Equal(t, "|0111|\n|1000|\n|1000|\n|1000|\n", stdout)

	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	_, err = run(t, "generate", "--seed", "7", "--p", "0.5", "random", "16", a)
	require.NoError(t, err)
	_, err = run(t, "generate", "--seed", "7", "--p", "0.5", "random", "16", b)
	require.NoError(t, err)
	ra, err := os.ReadFile(a)
	require.NoError(t, err)
	rb, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, ra, rb)

	_, err = run(t, "generate", "hexagon", "4", out)
	require.Error(t, err)

	_, err = run(t, "generate", "--seed", "1", "--p", "NaN", "random", "4", a)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestInfo(t *testing.T) {
	path := writeFile(t, "g.csv", "1,1\n1,0\n")

	out, err := run(t, "info", path)
	require.NoError(t, err)
	require.Contains(t, out, "size: 2\n")
	require.Contains(t, out, "edges: 3\n")
	require.Contains(t, out, "self-loops: 1\n")
	require.Contains(t, out, "symmetric: true\n")
}

func TestConvertAndSymmetrize(t *testing.T) {
	in := writeFile(t, "g.csv", "0,1,1\n0,0,0\n0,0,0\n")
	dir := filepath.Dir(in)

	js := filepath.Join(dir, "g.json.zst")
	_, err := run(t, "convert", in, js)
	require.NoError(t, err)
	out, err := run(t, "render", js)
	require.NoError(t, err)
	require.Equal(t, "|011|\n|000|\n|000|\n", out)

	sym := filepath.Join(dir, "sym.yaml")
	_, err = run(t, "symmetrize", in, sym)
	require.NoError(t, err)
	out, err = run(t, "render", sym)
	require.NoError(t, err)
	require.Equal(t, "|011|\n|100|\n|100|\n", out)

	low := filepath.Join(dir, "low.msgpack")
	_, err = run(t, "--axis", "lower", "symmetrize", in, low)
	require.NoError(t, err)
	out, err = run(t, "render", low)
	require.NoError(t, err)
	require.Equal(t, "|000|\n|000|\n|000|\n", out)
}

func TestFormatFallback(t *testing.T) {
	path := writeFile(t, "g.txt", "0,1\n0,0\n")

	_, err := run(t, "render", path)
	require.Error(t, err)

	out, err := run(t, "--format", "csv", "render", path)
	require.NoError(t, err)
	require.Equal(t, "|01|\n|00|\n", out)
}

func TestStoreCommands(t *testing.T) {
	a := writeFile(t, "a.csv", "0,1\n1,0\n")
	b := writeFile(t, "b.csv", "0,0,1\n0,0,0\n0,0,0\n")
	db := filepath.Join(t.TempDir(), "graphs.db")

	out, err := run(t, "--db", db, "store", "put", a, "other="+b)
	require.NoError(t, err)
	require.Contains(t, out, "saved a (2x2, 2 edges)")
	require.Contains(t, out, "saved other (3x3, 1 edges)")

	out, err = run(t, "--db", db, "store", "list")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "other")

	out, err = run(t, "--db", db, "store", "get", "other")
	require.NoError(t, err)
	require.Equal(t, "|001|\n|000|\n|000|\n", out)

	metrics := filepath.Join(t.TempDir(), "metrics.prom")
	_, err = run(t, "--db", db, "--metrics-file", metrics, "store", "rm", "a")
	require.NoError(t, err)
	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(prom), `bitgraph_store_operations_total{op="delete",status="success"}`)
	_, err = run(t, "--db", db, "store", "get", "a")
	require.Error(t, err)
}

func TestBadFlags(t *testing.T) {
	path := writeFile(t, "g.csv", "0\n")

	_, err := run(t, "--color", "sometimes", "render", path)
	require.Error(t, err)
	_, err = run(t, "--axis", "diagonal", "render", path)
	require.Error(t, err)
	_, err = run(t, "--compression", "gzip", "render", path)
	require.Error(t, err)
}

func TestPutArg(t *testing.T) {
	name, path := putArg("dir/graph.csv.zst")
	require.Equal(t, "graph", name)
	require.Equal(t, "dir/graph.csv.zst", path)

	name, path = putArg("g=dir/x.csv")
	require.Equal(t, "g", name)
	require.Equal(t, "dir/x.csv", path)
}
