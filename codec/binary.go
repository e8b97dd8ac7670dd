// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// BinaryCodec reads and writes the raw packed payload. The payload carries no
// header: size is the largest N whose ceil(N²/8) fits the byte count.
type BinaryCodec struct{}

// NewBinaryCodec creates a raw payload codec.
func NewBinaryCodec() *BinaryCodec { return &BinaryCodec{} }

// Format returns the codec format identifier.
func (c *BinaryCodec) Format() Format { return FormatBinary }

// Decode reads r to EOF and adopts it with bitmatrix.GraphFromBytes.
func (c *BinaryCodec) Decode(r io.Reader, opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	return bitmatrix.GraphFromBytes(buf, opts...)
}

// Encode writes g.Bytes(). Sizes whose payload would be read back as a
// larger matrix are refused with ErrLossySize.
func (c *BinaryCodec) Encode(w io.Writer, g *bitmatrix.Graph) error {
	payload := g.Bytes()
	if n := bitmatrix.InferSize(len(payload)); n != g.Size() {
		return fmt.Errorf("size %d reads back as %d: %w", g.Size(), n, ErrLossySize)
	}
	_, err := w.Write(payload)

	return err
}
