// SPDX-License-Identifier: MIT

package bitmatrix

// Test bridge exposing unexported primitives to bitmatrix_test.
var (
	ExportedBitIndex  = bitIndex
	ExportedByteBit   = byteBit
	ExportedReadBit   = readBit
	ExportedWriteBit  = writeBit
	ExportedByteLen   = byteLen
	ExportedPanicAxis = panicAxisInvalid
)
