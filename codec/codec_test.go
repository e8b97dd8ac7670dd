// SPDX-License-Identifier: MIT

package codec_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"github.com/katalvlaran/bitgraph/codec"
	"github.com/stretchr/testify/require"
)

func sampleGraph(t *testing.T) *bitmatrix.Graph {
	t.Helper()
	g, err := bitmatrix.GraphFromInts([][]int{
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
		{0, 0, 1, 0, 0},
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
	}, bitmatrix.WithNames(map[int]string{0: "gateway", 4: "edge"}))
	require.NoError(t, err)

	return g
}

// TestRoundTrip encodes and decodes every format under every compression.
func TestRoundTrip(t *testing.T) {
	g := sampleGraph(t)

	for _, name := range codec.Formats() {
		for _, comp := range []codec.Compression{codec.CompressionNone, codec.CompressionZstd, codec.CompressionLZ4} {
			f := codec.Format(name)
			t.Run(name+"/"+string(comp), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, codec.Write(&buf, g, f, comp))

				got, err := codec.Read(&buf, f, comp)
				require.NoError(t, err)
				require.True(t, g.Equal(got.Matrix), "cells differ:\n%s\nvs\n%s", g, got)
				if f != codec.FormatCSV && f != codec.FormatBinary {
					require.Equal(t, g.Names(), got.Names())
				}
			})
		}
	}
}

// TestCSVDecode checks comments, spacing and dimension errors.
func TestCSVDecode(t *testing.T) {
	in := "# adjacency\n0, 1\n1, 0\n"
	g, err := codec.Read(strings.NewReader(in), codec.FormatCSV, codec.CompressionNone)
	require.NoError(t, err)
	require.Equal(t, "|01|\n|10|\n", g.String())

	_, err = codec.Read(strings.NewReader("1,0\n1,0,1\n"), codec.FormatCSV, codec.CompressionNone)
	require.ErrorIs(t, err, bitmatrix.ErrDimensionMismatch)

	_, err = codec.Read(strings.NewReader("a,b\nc,d\n"), codec.FormatCSV, codec.CompressionNone)
	require.ErrorIs(t, err, bitmatrix.ErrInvalidCell)
}

// TestDecodeOptionsOverride ensures caller options win over stored policy.
func TestDecodeOptionsOverride(t *testing.T) {
	in := "size: 2\nself_linking: true\nrows: [\"11\", \"01\"]\n"
	g, err := codec.Read(strings.NewReader(in), codec.FormatYAML, codec.CompressionNone,
		bitmatrix.WithSelfLinking(false))
	require.NoError(t, err)
	require.False(t, g.SelfLinking())
	require.Equal(t, "|01|\n|00|\n", g.String())
}

// TestDocumentErrors covers malformed structured input.
func TestDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  codec.Document
		err  error
	}{
		{"RowCount", codec.Document{Size: 3, Rows: []string{"000"}}, codec.ErrBadDocument},
		{"PackedLen", codec.Document{Size: 4, Packed: []byte{1}}, codec.ErrBadDocument},
		{"Both", codec.Document{Size: 1, Rows: []string{"1"}, Packed: []byte{1}}, codec.ErrBadDocument},
		{"BadChar", codec.Document{Size: 1, Rows: []string{"x"}}, bitmatrix.ErrInvalidCell},
		{"Ragged", codec.Document{Size: 2, Rows: []string{"01", "1"}}, bitmatrix.ErrDimensionMismatch},
		{"ZeroSize", codec.Document{}, bitmatrix.ErrInvalidSize},
		{"OverMax", codec.Document{Size: bitmatrix.MaxSize + 1, Rows: []string{"0"}}, bitmatrix.ErrInvalidSize},
		{"NoPayload", codec.Document{Size: 3}, codec.ErrBadDocument},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.doc.Graph()
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestDecodeHugeSize rejects a declared size without allocating for it.
func TestDecodeHugeSize(t *testing.T) {
	for _, tc := range []struct {
		format codec.Format
		in     string
	}{
		{codec.FormatJSON, `{"size": 100000000}`},
		{codec.FormatJSON, `{"size": 100000000, "rows": ["0"]}`},
		{codec.FormatYAML, "size: 100000000\n"},
	} {
		_, err := codec.Read(strings.NewReader(tc.in), tc.format, codec.CompressionNone)
		require.ErrorIs(t, err, bitmatrix.ErrInvalidSize, "%s %q", tc.format, tc.in)
	}
}

// TestBinaryLossySize refuses sizes that would read back larger.
func TestBinaryLossySize(t *testing.T) {
	g, err := bitmatrix.NewGraph(3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, codec.Write(&buf, g, codec.FormatBinary, codec.CompressionNone), codec.ErrLossySize)
}

// TestDetectFormat covers extensions and compression suffixes.
func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		f    codec.Format
		c    codec.Compression
	}{
		{"g.csv", codec.FormatCSV, codec.CompressionNone},
		{"dir/G.BIN.ZST", codec.FormatBinary, codec.CompressionZstd},
		{"g.yml.lz4", codec.FormatYAML, codec.CompressionLZ4},
		{"g.mpk", codec.FormatMsgpack, codec.CompressionNone},
	}
	for _, tc := range tests {
		f, c, err := codec.DetectFormat(tc.path)
		require.NoError(t, err, tc.path)
		require.Equal(t, tc.f, f, tc.path)
		require.Equal(t, tc.c, c, tc.path)
	}

	_, _, err := codec.DetectFormat("g.txt")
	require.ErrorIs(t, err, codec.ErrUnsupportedFormat)
	_, err = codec.ForFormat("graphml")
	require.ErrorIs(t, err, codec.ErrUnsupportedFormat)
	_, err = codec.ParseCompression("brotli")
	require.ErrorIs(t, err, codec.ErrUnsupportedCompression)
	c, err := codec.ParseCompression("")
	require.NoError(t, err)
	require.Equal(t, codec.CompressionNone, c)
	require.Equal(t, ".zst", codec.CompressionZstd.Extension())
}

// TestFiles writes and reads through the filesystem.
func TestFiles(t *testing.T) {
	g := sampleGraph(t)
	dir := t.TempDir()

	for _, name := range []string{"g.csv", "g.bin.zst", "g.json.lz4", "g.msgpack"} {
		path := filepath.Join(dir, name)
		require.NoError(t, codec.WriteFile(path, g))
		require.NoFileExists(t, path+".tmp")

		got, err := codec.ReadFile(path)
		require.NoError(t, err, name)
		require.True(t, g.Equal(got.Matrix), name)
	}

	_, err := codec.ReadFile(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}
