// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// Document is the structured form of a graph shared by the YAML, JSON and
// msgpack codecs. Exactly one of Rows or Packed carries the cells.
type Document struct {
	Size          int            `yaml:"size" json:"size" msgpack:"size"`
	ForceSymmetry bool           `yaml:"force_symmetry,omitempty" json:"force_symmetry,omitempty" msgpack:"force_symmetry,omitempty"`
	SelfLinking   *bool          `yaml:"self_linking,omitempty" json:"self_linking,omitempty" msgpack:"self_linking,omitempty"`
	Names         map[int]string `yaml:"names,omitempty" json:"names,omitempty" msgpack:"names,omitempty"`
	Rows          []string       `yaml:"rows,omitempty" json:"rows,omitempty" msgpack:"rows,omitempty"`
	Packed        []byte         `yaml:"packed,omitempty" json:"packed,omitempty" msgpack:"packed,omitempty"`
}

// NewDocument captures g. packed selects the payload form over row strings.
func NewDocument(g *bitmatrix.Graph, packed bool) Document {
	selfLinking := g.SelfLinking()
	doc := Document{
		Size:          g.Size(),
		ForceSymmetry: g.ForceSymmetry(),
		SelfLinking:   &selfLinking,
		Names:         g.Names(),
	}
	if packed {
		doc.Packed = g.Bytes()
		return doc
	}

	doc.Rows = make([]string, g.Size())
	var b strings.Builder
	for i := range doc.Rows {
		b.Reset()
		row, _ := g.ReadRow(i) // i < Size
		for _, v := range row {
			b.WriteString(bitString(v))
		}
		doc.Rows[i] = b.String()
	}

	return doc
}

// Graph rebuilds the graph. Policies stored in the document come first, so
// opts override them.
func (d Document) Graph(opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	base := []bitmatrix.Option{bitmatrix.WithForceSymmetry(d.ForceSymmetry)}
	if d.SelfLinking != nil {
		base = append(base, bitmatrix.WithSelfLinking(*d.SelfLinking))
	}
	if len(d.Names) > 0 {
		base = append(base, bitmatrix.WithNames(d.Names))
	}
	all := append(base, opts...)

	if d.Size <= 0 || d.Size > bitmatrix.MaxSize {
		return nil, fmt.Errorf("document size %d: %w", d.Size, bitmatrix.ErrInvalidSize)
	}

	switch {
	case len(d.Rows) > 0 && len(d.Packed) > 0:
		return nil, fmt.Errorf("both rows and packed set: %w", ErrBadDocument)
	case len(d.Rows) > 0:
		if len(d.Rows) != d.Size {
			return nil, fmt.Errorf("size %d with %d rows: %w", d.Size, len(d.Rows), ErrBadDocument)
		}
		rows, err := parseRows(d.Rows)
		if err != nil {
			return nil, err
		}
		return bitmatrix.GraphFromRows(rows, all...)
	case len(d.Packed) > 0:
		if len(d.Packed) != bitmatrix.ByteLen(d.Size) {
			return nil, fmt.Errorf("size %d with %d packed bytes: %w", d.Size, len(d.Packed), ErrBadDocument)
		}
		return bitmatrix.NewGraph(d.Size, append(all, bitmatrix.WithBuffer(d.Packed))...)
	default:
		return nil, fmt.Errorf("size %d without rows or packed: %w", d.Size, ErrBadDocument)
	}
}

// parseRows turns "0101" strings into bools. Row length is checked by
// bitmatrix.
func parseRows(in []string) ([][]bool, error) {
	rows := make([][]bool, len(in))
	for i, s := range in {
		s = strings.TrimSpace(s)
		rows[i] = make([]bool, len(s))
		for j := 0; j < len(s); j++ {
			switch s[j] {
			case '0':
			case '1':
				rows[i][j] = true
			default:
				return nil, fmt.Errorf("row %d col %d %q: %w", i, j, s[j], bitmatrix.ErrInvalidCell)
			}
		}
	}

	return rows, nil
}
