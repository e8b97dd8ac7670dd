// SPDX-License-Identifier: MIT

// Package bitmatrix - bit addressing primitives.
//
// Purpose:
//   - Map a logical (row, col) pair to a flat bit index (row*size + col).
//   - Map a flat bit index to (byte offset, bit offset), bit 0 = LSB.
//   - Read and write single bits with a read-modify-write on one byte.
//
// No bounds checking happens here; Matrix validates coordinates first.

package bitmatrix

import "math"

const bitsPerByte = 8

// MaxSize is the largest N any constructor accepts. Its payload is 128 MiB.
const MaxSize = 1 << 15

// bitIndex flattens (row, col) in row-major order.
func bitIndex(row, col, size int) int { return row*size + col }

// byteBit splits a flat bit index into its byte and bit offsets.
func byteBit(flat int) (int, uint) {
	return flat / bitsPerByte, uint(flat % bitsPerByte)
}

// readBit reports whether bit flat of buf is set.
func readBit(buf []byte, flat int) bool {
	byteOff, bitOff := byteBit(flat)

	return buf[byteOff]>>bitOff&1 == 1
}

// writeBit sets or clears bit flat of buf, leaving the other seven bits of
// that byte untouched.
func writeBit(buf []byte, flat int, v bool) {
	byteOff, bitOff := byteBit(flat)
	if v {
		buf[byteOff] |= 1 << bitOff
	} else {
		buf[byteOff] &^= 1 << bitOff
	}
}

// byteLen returns ceil(n²/8), the exact buffer length for an n×n matrix.
func byteLen(n int) int {
	return (n*n + bitsPerByte - 1) / bitsPerByte
}

// inferSize returns the largest n <= MaxSize with byteLen(n) <= l, or 0 when
// even a 1×1 matrix does not fit.
// Complexity: O(1) plus a bounded correction for float rounding.
func inferSize(l int) int {
	if l <= 0 {
		return 0
	}
	bits := l * bitsPerByte
	if bits/bitsPerByte != l { // overflow
		bits = math.MaxInt
	}
	n := int(math.Sqrt(float64(bits)))
	if n > MaxSize {
		n = MaxSize
	}
	// correct sqrt rounding in both directions
	for n > 0 && byteLen(n) > l {
		n--
	}
	for n < MaxSize && byteLen(n+1) <= l {
		n++
	}

	return n
}

// clearTrailing zeroes the bits of the last byte that lie past n² so that two
// matrices with equal cells always have equal payloads.
func clearTrailing(buf []byte, n int) {
	used := n * n % bitsPerByte
	if used == 0 || len(buf) == 0 {
		return
	}
	buf[len(buf)-1] &= byte(1)<<uint(used) - 1
}
