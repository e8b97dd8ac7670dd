// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// Format names a serialization.
type Format string

// Supported formats.
const (
	FormatCSV     Format = "csv"
	FormatBinary  Format = "bin"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Decoder reads a graph from a stream. opts override any policy carried by
// the stream itself.
type Decoder interface {
	Decode(r io.Reader, opts ...bitmatrix.Option) (*bitmatrix.Graph, error)
	Format() Format
}

// Encoder writes a graph to a stream.
type Encoder interface {
	Encode(w io.Writer, g *bitmatrix.Graph) error
	Format() Format
}

// Codec is both.
type Codec interface {
	Decoder
	Encoder
}

var registry = map[Format]Codec{
	FormatCSV:     NewCSVCodec(),
	FormatBinary:  NewBinaryCodec(),
	FormatYAML:    NewYAMLCodec(),
	FormatJSON:    NewJSONCodec(),
	FormatMsgpack: NewMsgpackCodec(),
}

var extensions = map[string]Format{
	".csv":     FormatCSV,
	".bin":     FormatBinary,
	".raw":     FormatBinary,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".json":    FormatJSON,
	".msgpack": FormatMsgpack,
	".mpk":     FormatMsgpack,
}

// ForFormat returns the codec registered for f.
func ForFormat(f Format) (Codec, error) {
	c, ok := registry[f]
	if !ok {
		return nil, fmt.Errorf("format %q: %w", f, ErrUnsupportedFormat)
	}

	return c, nil
}

// ParseFormat validates a format name ("" is accepted and means "detect").
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return "", nil
	}
	if _, ok := registry[f]; !ok {
		return "", fmt.Errorf("format %q: %w", name, ErrUnsupportedFormat)
	}

	return f, nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, string(f))
	}
	sort.Strings(out)

	return out
}

// DetectFormat derives format and compression from a file name such as
// "g.csv.zst".
func DetectFormat(path string) (Format, Compression, error) {
	name := strings.ToLower(filepath.Base(path))
	comp := CompressionNone
	ext := filepath.Ext(name)
	if c, ok := compressionExtensions[ext]; ok {
		comp = c
		name = strings.TrimSuffix(name, ext)
		ext = filepath.Ext(name)
	}
	f, ok := extensions[ext]
	if !ok {
		return "", comp, fmt.Errorf("extension %q of %q: %w", ext, path, ErrUnsupportedFormat)
	}

	return f, comp, nil
}

// Read decodes a graph of format f from r, undoing compression c first.
func Read(r io.Reader, f Format, c Compression, opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	dec, err := ForFormat(f)
	if err != nil {
		return nil, err
	}
	rc, err := c.reader(r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := dec.Decode(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}

	return g, nil
}

// Write encodes g as format f into w, compressing with c.
func Write(w io.Writer, g *bitmatrix.Graph, f Format, c Compression) error {
	if g == nil {
		return bitmatrix.ErrNilMatrix
	}
	enc, err := ForFormat(f)
	if err != nil {
		return err
	}
	wc, err := c.writer(w)
	if err != nil {
		return err
	}
	if err = enc.Encode(wc, g); err != nil {
		_ = wc.Close()
		return fmt.Errorf("encode %s: %w", f, err)
	}

	return wc.Close()
}
