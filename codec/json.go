// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// JSONCodec handles Document import/export as JSON.
type JSONCodec struct {
	Indent string
}

// NewJSONCodec creates a JSON codec with two-space indentation.
func NewJSONCodec() *JSONCodec { return &JSONCodec{Indent: "  "} }

// Format returns the codec format identifier.
func (c *JSONCodec) Format() Format { return FormatJSON }

// Decode parses a JSON Document. Unknown fields are rejected.
func (c *JSONCodec) Decode(r io.Reader, opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return doc.Graph(opts...)
}

// Encode writes g as a JSON Document with row strings.
func (c *JSONCodec) Encode(w io.Writer, g *bitmatrix.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", c.Indent)
	if err := enc.Encode(NewDocument(g, false)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
