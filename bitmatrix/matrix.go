// SPDX-License-Identifier: MIT

// Package bitmatrix - Matrix storage & safe accessors.
//
// Purpose:
//   - Own an exact ceil(N²/8) byte buffer, row-major, one bit per cell.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking on bad coordinates.
//   - Validate every index of a multi-cell write before touching any bit.
//
// Complexity quicksheet:
//   - New: O(N²/8); Read/Write: O(1); row/column ops: O(N);
//     IsSymmetric/MakeSymmetric/String: O(N²); SetDiagonal: O(N).

package bitmatrix

import (
	"fmt"
	"math/bits"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxRead        = "Read"
	ctxWrite       = "Write"
	ctxReadRow     = "ReadRow"
	ctxReadColumn  = "ReadColumn"
	ctxWriteRow    = "WriteRow"
	ctxWriteColumn = "WriteColumn"
	ctxSelect      = "Select"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "|"
	_fmtRowClose = "|\n"
	_fmtOne      = '1'
	_fmtZero     = '0'
)

// Matrix is a square bit-packed boolean matrix.
//   - size is N; the matrix holds N×N cells.
//   - data has length ceil(N²/8); cell (x,y) lives at bit x*N + y.
//   - forceSymmetry/axis describe the symmetry policy applied at checkpoints.
type Matrix struct {
	size          int
	data          []byte
	forceSymmetry bool
	axis          Axis
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an N×N matrix.
// Implementation:
//   - Stage 1: validate 0 < size <= MaxSize; else ErrInvalidSize.
//   - Stage 2: allocate a zeroed buffer or copy WithBuffer's payload into it.
//   - Stage 3: apply the symmetry policy once (checkpoint).
//
// Errors:
//   - ErrInvalidSize.
func New(size int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	return newMatrix(size, o)
}

func newMatrix(size int, o Options) (*Matrix, error) {
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("New(%d): %w", size, ErrInvalidSize)
	}
	buf := make([]byte, byteLen(size))
	if o.hasBuffer {
		copy(buf, o.buffer) // truncates or leaves the zero tail
		clearTrailing(buf, size)
	}
	m := &Matrix{
		size:          size,
		data:          buf,
		forceSymmetry: o.forceSymmetry,
		axis:          o.axis,
	}
	m.Enforce()

	return m, nil
}

// Size returns N.
func (m *Matrix) Size() int { return m.size }

// ForceSymmetry reports the symmetry policy.
func (m *Matrix) ForceSymmetry() bool { return m.forceSymmetry }

// SetForceSymmetry updates the symmetry policy. Enabling it repairs the
// matrix immediately along the configured axis; disabling it changes nothing.
func (m *Matrix) SetForceSymmetry(enabled bool) {
	m.forceSymmetry = enabled
	m.Enforce()
}

// Enforce re-runs the invariant checkpoint: when force-symmetry is on and the
// matrix is not symmetric, it is repaired. Call it after bulk mutation.
func (m *Matrix) Enforce() {
	if m.forceSymmetry && !m.IsSymmetric() {
		m.MakeSymmetric(m.axis)
	}
}

// checkCoord validates one coordinate against [0, size).
func (m *Matrix) checkCoord(i int) error {
	if i < 0 || i >= m.size {
		return ErrIndexOutOfRange
	}

	return nil
}

// Read returns the bit at (row, col).
// Errors: ErrIndexOutOfRange.
func (m *Matrix) Read(row, col int) (bool, error) {
	if m.checkCoord(row) != nil || m.checkCoord(col) != nil {
		return false, matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxRead, row, col), ErrIndexOutOfRange)
	}

	return readBit(m.data, bitIndex(row, col, m.size)), nil
}

// Write stores v at (row, col). It does not re-enforce any policy.
// Errors: ErrIndexOutOfRange.
func (m *Matrix) Write(row, col int, v bool) error {
	if m.checkCoord(row) != nil || m.checkCoord(col) != nil {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxWrite, row, col), ErrIndexOutOfRange)
	}
	writeBit(m.data, bitIndex(row, col, m.size), v)

	return nil
}

// at and set skip bounds checks; callers guarantee valid coordinates.
func (m *Matrix) at(row, col int) bool { return readBit(m.data, bitIndex(row, col, m.size)) }

func (m *Matrix) set(row, col int, v bool) { writeBit(m.data, bitIndex(row, col, m.size), v) }

// ReadRow returns a fresh slice holding row's N bits.
func (m *Matrix) ReadRow(row int) ([]bool, error) {
	if err := m.checkCoord(row); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Matrix.%s(%d)", ctxReadRow, row), err)
	}
	out := make([]bool, m.size)
	base := row * m.size
	for j := range out {
		out[j] = readBit(m.data, base+j)
	}

	return out, nil
}

// ReadColumn returns a fresh slice holding col's N bits (top to bottom).
func (m *Matrix) ReadColumn(col int) ([]bool, error) {
	if err := m.checkCoord(col); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Matrix.%s(%d)", ctxReadColumn, col), err)
	}
	out := make([]bool, m.size)
	for i := range out {
		out[i] = readBit(m.data, i*m.size+col)
	}

	return out, nil
}

// WriteRowValue broadcasts v to every cell of row.
func (m *Matrix) WriteRowValue(row int, v bool) error {
	if err := m.checkCoord(row); err != nil {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d)", ctxWriteRow, row), err)
	}
	base := row * m.size
	for j := 0; j < m.size; j++ {
		writeBit(m.data, base+j, v)
	}

	return nil
}

// WriteRowSequence writes vs positionally into row. Cells past len(vs) keep
// their value; elements past N are ignored.
func (m *Matrix) WriteRowSequence(row int, vs []bool) error {
	if err := m.checkCoord(row); err != nil {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d)", ctxWriteRow, row), err)
	}
	base := row * m.size
	for j := 0; j < m.size && j < len(vs); j++ {
		writeBit(m.data, base+j, vs[j])
	}

	return nil
}

// WriteColumnValue broadcasts v to every cell of col.
func (m *Matrix) WriteColumnValue(col int, v bool) error {
	if err := m.checkCoord(col); err != nil {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d)", ctxWriteColumn, col), err)
	}
	for i := 0; i < m.size; i++ {
		writeBit(m.data, i*m.size+col, v)
	}

	return nil
}

// WriteColumnSequence writes vs positionally into col (top to bottom), with
// the same short/long sequence rules as WriteRowSequence.
func (m *Matrix) WriteColumnSequence(col int, vs []bool) error {
	if err := m.checkCoord(col); err != nil {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d)", ctxWriteColumn, col), err)
	}
	for i := 0; i < m.size && i < len(vs); i++ {
		writeBit(m.data, i*m.size+col, vs[i])
	}

	return nil
}

// Select dispatches on the Index tag. A Cell yields a one-element slice.
// Errors: ErrInvalidIndex for the zero Index, ErrIndexOutOfRange otherwise.
func (m *Matrix) Select(ix Index) ([]bool, error) {
	switch ix.kind {
	case KindCell:
		v, err := m.Read(ix.row, ix.col)
		if err != nil {
			return nil, err
		}
		return []bool{v}, nil
	case KindRow:
		return m.ReadRow(ix.row)
	case KindColumn:
		return m.ReadColumn(ix.col)
	default:
		return nil, matrixErrorf(fmt.Sprintf("Matrix.%s(%s)", ctxSelect, ix), ErrInvalidIndex)
	}
}

// IsSymmetric compares (x,y) with (y,x) over the strict upper triangle and
// stops at the first mismatch.
func (m *Matrix) IsSymmetric() bool {
	for x := 0; x < m.size; x++ {
		for y := x + 1; y < m.size; y++ {
			if m.at(x, y) != m.at(y, x) {
				return false
			}
		}
	}

	return true
}

// MakeSymmetric mirrors one triangle onto the other: UpperToLower copies
// (x,y) into (y,x) for every x < y, LowerToUpper the reverse. One-shot repair;
// later writes may break symmetry again.
func (m *Matrix) MakeSymmetric(axis Axis) {
	for x := 0; x < m.size; x++ {
		for y := x + 1; y < m.size; y++ {
			if axis == LowerToUpper {
				m.set(x, y, m.at(y, x))
			} else {
				m.set(y, x, m.at(x, y))
			}
		}
	}
}

// SetDiagonal writes v into every (d,d).
func (m *Matrix) SetDiagonal(v bool) {
	for d := 0; d < m.size; d++ {
		m.set(d, d, v)
	}
}

// Count returns the number of set cells.
func (m *Matrix) Count() int {
	n := 0
	for _, b := range m.data {
		n += bits.OnesCount8(b)
	}

	return n
}

// Bytes returns a copy of the packed payload (ceil(N²/8) bytes). Feeding it
// to FromBytes yields the same size only when no larger N fits the length;
// use New(size, WithBuffer(b)) to round-trip exactly.
func (m *Matrix) Bytes() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy with the same policy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		size:          m.size,
		data:          m.Bytes(),
		forceSymmetry: m.forceSymmetry,
		axis:          m.axis,
	}
}

// Equal reports whether other has the same size and cells. Policies are not
// compared.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.size != other.size {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders one "|0101|" line per row. Diagnostic only; not a format.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow(m.size * (m.size + len(_fmtRowOpen) + len(_fmtRowClose)))
	for i := 0; i < m.size; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.size; j++ {
			if m.at(i, j) {
				b.WriteByte(_fmtOne)
			} else {
				b.WriteByte(_fmtZero)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
