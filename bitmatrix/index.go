// SPDX-License-Identifier: MIT

package bitmatrix

import "fmt"

// IndexKind tags the shape of an Index.
type IndexKind uint8

const (
	// KindInvalid is the zero kind; selecting with it fails with ErrInvalidIndex.
	KindInvalid IndexKind = iota
	// KindCell selects a single (row, col) cell.
	KindCell
	// KindRow selects every cell of one row.
	KindRow
	// KindColumn selects every cell of one column.
	KindColumn
)

// Index is a tagged selector: Cell(row, col), Row(row) or Column(col).
// Build it with the constructors; the zero value is invalid.
type Index struct {
	kind     IndexKind
	row, col int
}

// Cell selects the cell at (row, col).
func Cell(row, col int) Index { return Index{kind: KindCell, row: row, col: col} }

// Row selects a whole row.
func Row(row int) Index { return Index{kind: KindRow, row: row} }

// Column selects a whole column.
func Column(col int) Index { return Index{kind: KindColumn, col: col} }

// Kind reports the selector shape.
func (ix Index) Kind() IndexKind { return ix.kind }

// String implements fmt.Stringer.
func (ix Index) String() string {
	switch ix.kind {
	case KindCell:
		return fmt.Sprintf("Cell(%d,%d)", ix.row, ix.col)
	case KindRow:
		return fmt.Sprintf("Row(%d)", ix.row)
	case KindColumn:
		return fmt.Sprintf("Column(%d)", ix.col)
	default:
		return "Index(invalid)"
	}
}
