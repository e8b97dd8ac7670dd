// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// CSVCodec reads and writes one matrix row per record. Lines starting with
// '#' are comments.
type CSVCodec struct {
	Comma rune
}

// NewCSVCodec returns a comma-separated codec.
func NewCSVCodec() *CSVCodec { return &CSVCodec{Comma: ','} }

// Format returns the codec format identifier.
func (c *CSVCodec) Format() Format { return FormatCSV }

// Decode tokenizes r and hands the records to bitmatrix.GraphFromTextRows.
func (c *CSVCodec) Decode(r io.Reader, opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	cr := csv.NewReader(r)
	cr.Comma = c.Comma
	cr.Comment = '#'
	cr.FieldsPerRecord = -1 // squareness is checked by bitmatrix
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return bitmatrix.GraphFromTextRows(records, opts...)
}

// Encode writes "0"/"1" cells.
func (c *CSVCodec) Encode(w io.Writer, g *bitmatrix.Graph) error {
	cw := csv.NewWriter(w)
	cw.Comma = c.Comma

	record := make([]string, g.Size())
	for i := 0; i < g.Size(); i++ {
		row, err := g.ReadRow(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			record[j] = bitString(v)
		}
		if err = cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func bitString(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
