// SPDX-License-Identifier: MIT
// Package bitmatrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with call-site
// context) and tests match them via errors.Is. No public operation panics on
// user-triggered error conditions.

package bitmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned for a non-positive size, a size above
	// MaxSize, or a byte buffer too short to host a 1×1 matrix.
	ErrInvalidSize = errors.New("bitmatrix: invalid size")

	// ErrIndexOutOfRange indicates a row, column or node outside [0, size).
	ErrIndexOutOfRange = errors.New("bitmatrix: index out of range")

	// ErrInvalidIndex indicates an Index value of unsupported shape
	// (e.g., the zero Index).
	ErrInvalidIndex = errors.New("bitmatrix: invalid index")

	// ErrDimensionMismatch indicates nested rows whose lengths differ from the
	// number of rows.
	ErrDimensionMismatch = errors.New("bitmatrix: dimension mismatch")

	// ErrInvalidCell indicates a text cell that does not parse as an integer.
	ErrInvalidCell = errors.New("bitmatrix: invalid cell")

	// ErrNilMatrix indicates a nil *Matrix or *Graph was passed as an operand.
	ErrNilMatrix = errors.New("bitmatrix: nil matrix")

	// ErrUnimplemented is reserved for edge editing by name (link, unlink,
	// is-linked) until its directedness semantics are designed. No operation
	// returns it today; when one does, callers must surface it, never treat
	// it as success.
	ErrUnimplemented = errors.New("bitmatrix: operation not implemented")
)

// matrixErrorf wraps a sentinel with a "Type.Method(args)" tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
