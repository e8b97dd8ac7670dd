// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"gopkg.in/yaml.v3"
)

// YAMLCodec handles Document import/export as YAML.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec { return &YAMLCodec{} }

// Format returns the codec format identifier.
func (c *YAMLCodec) Format() Format { return FormatYAML }

// Decode parses a YAML Document.
func (c *YAMLCodec) Decode(r io.Reader, opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return doc.Graph(opts...)
}

// Encode writes g as a YAML Document with row strings.
func (c *YAMLCodec) Encode(w io.Writer, g *bitmatrix.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(g, false)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}
