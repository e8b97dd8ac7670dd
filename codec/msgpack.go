// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackCodec handles Document import/export as msgpack with the packed
// payload, the compact structured form.
type MsgpackCodec struct{}

// NewMsgpackCodec creates a msgpack codec.
func NewMsgpackCodec() *MsgpackCodec { return &MsgpackCodec{} }

// Format returns the codec format identifier.
func (c *MsgpackCodec) Format() Format { return FormatMsgpack }

// Decode parses a msgpack Document.
func (c *MsgpackCodec) Decode(r io.Reader, opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	var doc Document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse msgpack: %w", err)
	}

	return doc.Graph(opts...)
}

// Encode writes g as a msgpack Document with the packed payload.
func (c *MsgpackCodec) Encode(w io.Writer, g *bitmatrix.Graph) error {
	if err := msgpack.NewEncoder(w).Encode(NewDocument(g, true)); err != nil {
		return fmt.Errorf("failed to encode msgpack: %w", err)
	}

	return nil
}
